package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ysato/dokkai/internal/llm"
	"github.com/ysato/dokkai/internal/quizgen"
	"github.com/ysato/dokkai/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate questions for a Japanese passage",
	Long: "Generate reads a passage from the given file, --text, or stdin, asks the\n" +
		"configured LLM for reading comprehension questions and prints them as JSON.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		passage, err := readPassage(cmd, args)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		eventRepo, err := s.EventRepo()
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

		cand, err := quizgen.New(provider, cfg).Generate(ctx, quizgen.Input{Passage: passage})
		if err != nil {
			return fmt.Errorf("generate questions: %w", err)
		}

		out, err := json.MarshalIndent(cand.Set, "", "  ")
		if err != nil {
			return fmt.Errorf("encode questions: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

// readPassage resolves the passage from --text, a file argument, or stdin.
func readPassage(cmd *cobra.Command, args []string) (string, error) {
	if text, _ := cmd.Flags().GetString("text"); text != "" {
		return text, nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read passage: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read passage from stdin: %w", err)
	}
	passage := strings.TrimSpace(string(data))
	if passage == "" {
		return "", fmt.Errorf("no passage given: pass a file, --text, or pipe to stdin")
	}
	return passage, nil
}

func init() {
	generateCmd.Flags().StringP("text", "t", "", "The passage text itself")
}
