package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ysato/dokkai/internal/llm"
	"github.com/ysato/dokkai/internal/score"
	"github.com/ysato/dokkai/internal/store"
)

var scoreCmd = &cobra.Command{
	Use:   "score [file]",
	Short: "Score a candidate question set",
	Long: "Score reads candidate question-set JSON from the given file or stdin and\n" +
		"runs the scorer suite on it. The candidate may be the wrapped object form\n" +
		"or a bare question list. With --source and --judges the LLM judge scorers\n" +
		"run as well.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sourceText, _ := cmd.Flags().GetString("source")
		judges, _ := cmd.Flags().GetBool("judges")

		candidate, err := readCandidate(args)
		if err != nil {
			return err
		}

		cfg := score.ConfigFromEnv()
		if judges {
			cfg.EnableJudges = true
		}

		var judgeProvider llm.Provider
		if cfg.EnableJudges {
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
			judgeProvider, err = llm.NewProviderFromEnv(cmd.Context(), eventRepo)
			if err != nil {
				return fmt.Errorf("configure judge provider: %w", err)
			}
		}

		in := score.Input{Candidate: candidate, SourceText: sourceText}
		failed := 0
		for _, s := range score.Suite(cfg, judgeProvider) {
			res := s.Score(in)
			mark := "PASS"
			if !res.Pass {
				mark = "FAIL"
				failed++
			}
			fmt.Printf("%-20s  %s  %s\n", s.Name(), mark, res.Rationale)
		}

		if failed > 0 {
			return fmt.Errorf("%d scorer(s) failed", failed)
		}
		return nil
	},
}

func readCandidate(args []string) (string, error) {
	var data []byte
	var err error
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read candidate: %w", err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read candidate from stdin: %w", err)
		}
	}

	candidate := strings.TrimSpace(string(data))
	if candidate == "" {
		return "", fmt.Errorf("no candidate given: pass a file or pipe JSON to stdin")
	}
	return candidate, nil
}

func init() {
	scoreCmd.Flags().StringP("source", "s", "", "Source passage the questions were generated from (required for judges)")
	scoreCmd.Flags().Bool("judges", false, "Enable LLM judge scorers (also DOKKAI_ENABLE_JUDGES)")
}
