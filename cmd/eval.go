package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ysato/dokkai/internal/harness"
	"github.com/ysato/dokkai/internal/llm"
	"github.com/ysato/dokkai/internal/quizgen"
	"github.com/ysato/dokkai/internal/score"
	"github.com/ysato/dokkai/internal/store"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate question generation against a dataset",
	Long: "Eval generates a question set for every sample in the dataset, runs the\n" +
		"scorer suite on each candidate, prints per-scorer pass rates and persists\n" +
		"the run. Without --dataset the built-in dataset is used.",
	RunE: func(cmd *cobra.Command, args []string) error {
		datasetPath, _ := cmd.Flags().GetString("dataset")
		workers, _ := cmd.Flags().GetInt("workers")
		judges, _ := cmd.Flags().GetBool("judges")
		noPersist, _ := cmd.Flags().GetBool("no-persist")

		ds := harness.BuiltinDataset()
		if datasetPath != "" {
			var err error
			ds, err = harness.LoadDataset(datasetPath)
			if err != nil {
				return err
			}
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
		llmCfg, err := llm.ResolveConfigFromEnv()
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}
		provider, err := llm.NewProvider(ctx, llmCfg, eventRepo)
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		genCfg, err := quizgen.ConfigFromEnv()
		if err != nil {
			return err
		}

		scoreCfg := score.ConfigFromEnv()
		if judges {
			scoreCfg.EnableJudges = true
		}
		var judgeProvider llm.Provider
		if scoreCfg.EnableJudges {
			judgeProvider = provider
		}

		runner := &harness.Runner{
			Generator: quizgen.New(provider, genCfg),
			Scorers:   score.Suite(scoreCfg, judgeProvider),
			Workers:   workers,
		}

		fmt.Printf("Evaluating %d samples from %q (model %s, style %s, judges %t)\n\n",
			len(ds.Samples), ds.Name, provider.ModelID(), genCfg.Style, scoreCfg.EnableJudges)

		run, err := runner.Run(ctx, ds)
		if err != nil {
			return fmt.Errorf("run evaluation: %w", err)
		}

		printSummary(run)

		if !noPersist {
			record := &store.EvalRunRecord{
				ID:            run.RunID,
				Dataset:       run.Dataset,
				Provider:      llmCfg.Provider,
				Model:         provider.ModelID(),
				PromptStyle:   string(genCfg.Style),
				JudgesEnabled: scoreCfg.EnableJudges,
				SampleCount:   len(ds.Samples),
				StartedAt:     run.StartedAt,
				FinishedAt:    run.FinishedAt,
			}

			results := make([]store.ScoreRecord, len(run.Results))
			for i, r := range run.Results {
				results[i] = store.ScoreRecord{
					RunID:     run.RunID,
					SampleID:  r.SampleID,
					Scorer:    r.Scorer,
					Pass:      r.Pass,
					Rationale: r.Rationale,
				}
			}
			if err := s.RunRepo().SaveRun(ctx, record, results); err != nil {
				return fmt.Errorf("persist run: %w", err)
			}
			fmt.Printf("\nRun %s saved.\n", run.RunID)
		}

		return nil
	},
}

func printSummary(run *harness.RunResult) {
	fmt.Printf("%-20s  %7s  %7s  %9s\n", "Scorer", "Passed", "Total", "Pass Rate")
	fmt.Println(strings.Repeat("─", 50))
	for _, s := range harness.Summarize(run.Results) {
		fmt.Printf("%-20s  %7d  %7d  %8.1f%%\n",
			s.Scorer, s.Passed, s.Total, s.PassRate()*100)
	}
}

func init() {
	evalCmd.Flags().StringP("dataset", "d", "", "Path to a YAML dataset file (default: built-in dataset)")
	evalCmd.Flags().IntP("workers", "w", harness.DefaultWorkers, "Samples evaluated concurrently")
	evalCmd.Flags().Bool("judges", false, "Enable LLM judge scorers (also DOKKAI_ENABLE_JUDGES)")
	evalCmd.Flags().Bool("no-persist", false, "Skip saving the run to the database")
}
