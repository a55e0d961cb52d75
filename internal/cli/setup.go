package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hgroves/togglcon/internal/config"
	"github.com/hgroves/togglcon/pkg/toggl"
)

var (
	setupEmail     string
	setupAPIKey    string
	setupWorkspace int
)

var setupCmd = &cobra.Command{
	Use:   "setup --email EMAIL --api-key KEY --workspace ID",
	Short: "Store your Toggl credentials in the config file",
	Long: `Store your Toggl credentials in the config file.

The API key comes from your Toggl profile settings. If you don't know
your workspace ID yet, run setup with just --email and --api-key: the
available workspaces are listed so you can rerun with --workspace.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
	setupCmd.Flags().StringVar(&setupEmail, "email", "", "your account email address")
	setupCmd.Flags().StringVar(&setupAPIKey, "api-key", "", "your Toggl API key")
	setupCmd.Flags().IntVar(&setupWorkspace, "workspace", 0, "the numeric workspace ID to report on")
	_ = setupCmd.MarkFlagRequired("email")
	_ = setupCmd.MarkFlagRequired("api-key")
}

func runSetup(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}

	if setupWorkspace == 0 {
		workspaces, err := toggl.New(setupAPIKey, setupEmail, 0).Workspaces()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Your workspaces:")
		for _, ws := range workspaces {
			fmt.Fprintf(cmd.OutOrStdout(), "  %d (%s)\n", ws.ID, ws.Name)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Rerun setup with --workspace <ID> to finish.")
		return nil
	}

	// Keep any existing tracking entries when re-running setup.
	cfg, err := config.Load(path)
	if err != nil {
		cfg = config.Default()
	}
	cfg.Email = setupEmail
	cfg.APIKey = setupAPIKey
	cfg.WorkspaceID = setupWorkspace

	if err := config.Save(path, cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
	return nil
}
