package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ysato/dokkai/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "dokkai",
	Short: "Japanese reading comprehension question generator and evaluator",
	Long: "Dokkai generates JLPT-style reading comprehension questions from Japanese\n" +
		"passages with an LLM, and evaluates generator quality with a scorer suite.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DOKKAI_DB env var)")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then DOKKAI_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
