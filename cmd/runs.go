package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ysato/dokkai/internal/harness"
	"github.com/ysato/dokkai/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect past evaluation runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent evaluation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		runs, err := s.RunRepo().ListRuns(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("list runs: %w", err)
		}

		if len(runs) == 0 {
			fmt.Println("No evaluation runs recorded yet.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-12s  %-10s  %-8s  %7s\n",
			"Run ID", "Started", "Dataset", "Provider", "Style", "Samples")
		fmt.Println(strings.Repeat("─", 104))
		for _, r := range runs {
			fmt.Printf("%-36s  %-19s  %-12s  %-10s  %-8s  %7d\n",
				r.ID,
				r.StartedAt.Local().Format("2006-01-02 15:04:05"),
				truncate(r.Dataset, 12),
				r.Provider,
				r.PromptStyle,
				r.SampleCount,
			)
		}
		return nil
	},
}

var runsViewCmd = &cobra.Command{
	Use:   "view <run-id>",
	Short: "View one run's per-scorer summary and failures",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		run, records, err := s.RunRepo().GetRun(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("get run: %w", err)
		}
		if run == nil {
			return fmt.Errorf("run %q not found", args[0])
		}

		fmt.Printf("Run:       %s\n", run.ID)
		fmt.Printf("Dataset:   %s\n", run.Dataset)
		fmt.Printf("Provider:  %s (%s)\n", run.Provider, run.Model)
		fmt.Printf("Style:     %s\n", run.PromptStyle)
		fmt.Printf("Judges:    %t\n", run.JudgesEnabled)
		fmt.Printf("Samples:   %d\n", run.SampleCount)
		fmt.Printf("Started:   %s\n", run.StartedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Duration:  %s\n", run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond))
		fmt.Println()

		results := make([]harness.SampleResult, len(records))
		for i, r := range records {
			results[i] = harness.SampleResult{
				SampleID:  r.SampleID,
				Scorer:    r.Scorer,
				Pass:      r.Pass,
				Rationale: r.Rationale,
			}
		}

		fmt.Printf("%-20s  %7s  %7s  %9s\n", "Scorer", "Passed", "Total", "Pass Rate")
		fmt.Println(strings.Repeat("─", 50))
		for _, sum := range harness.Summarize(results) {
			fmt.Printf("%-20s  %7d  %7d  %8.1f%%\n",
				sum.Scorer, sum.Passed, sum.Total, sum.PassRate()*100)
		}

		var failures []harness.SampleResult
		for _, r := range results {
			if !r.Pass {
				failures = append(failures, r)
			}
		}
		if len(failures) > 0 {
			fmt.Println("\nFailures")
			fmt.Println(strings.Repeat("─", 50))
			for _, f := range failures {
				fmt.Printf("%s / %s:\n  %s\n", f.SampleID, f.Scorer, f.Rationale)
			}
		}
		return nil
	},
}

func init() {
	runsListCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")

	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsViewCmd)
}
