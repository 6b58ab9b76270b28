package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ysato/dokkai/internal/relcheck"
)

// version is set via -ldflags at build time.
var version = "(devel)"

const (
	releaseOwner = "ysato"
	releaseRepo  = "dokkai"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("dokkai", version)

		check, _ := cmd.Flags().GetBool("check")
		if !check {
			return nil
		}

		checker := relcheck.NewChecker(releaseOwner, releaseRepo, relcheck.WithTimeout(30*time.Second))
		res, err := checker.Check(cmd.Context(), version)
		if errors.Is(err, relcheck.ErrDevBuild) {
			fmt.Println("Development build; skipping release check.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("check latest release: %w", err)
		}

		if res.UpdateAvailable {
			fmt.Printf("A newer release is available: %s\n", res.LatestVersion)
		} else {
			fmt.Println("You are on the latest release.")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Check GitHub for a newer release")
}
