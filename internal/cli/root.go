// Package cli implements the togglcon command tree for local use.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hgroves/togglcon/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "togglcon",
	Short: "Summarise Toggl time entries into billable timesheet rows",
	Long: `togglcon fetches one day of Toggl time entries and collapses them
into billable timesheet rows: one row per (project, charge type) pair,
with validated project/job codes, merged descriptions and half-hour
rounded hours reconciled against the day total.

Run "togglcon setup" once to store your credentials, then
"togglcon day" for today's timesheet.`,
	SilenceUsage: true,
}

// Execute runs the root command. Errors have already been printed by
// cobra, so only the exit code is left to set.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads and validates the CLI configuration, pointing the
// user at setup when it is missing or incomplete.
func loadConfig() (config.Config, error) {
	path, err := config.Path()
	if err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("no usable configuration at %s (run \"togglcon setup\"): %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("incomplete configuration at %s (run \"togglcon setup\"): %w", path, err)
	}

	return cfg, nil
}
