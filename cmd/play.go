package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ysato/dokkai/internal/llm"
	"github.com/ysato/dokkai/internal/play"
	"github.com/ysato/dokkai/internal/quizgen"
	"github.com/ysato/dokkai/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play [file]",
	Short: "Generate questions for a passage and answer them interactively",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		passage, err := readPassage(cmd, args)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		eventRepo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		cfg, err := quizgen.ConfigFromEnv()
		if err != nil {
			return err
		}

		return play.Run(quizgen.New(provider, cfg), passage)
	},
}

func init() {
	playCmd.Flags().StringP("text", "t", "", "The passage text itself")
}
