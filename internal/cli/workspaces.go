package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hgroves/togglcon/internal/config"
	"github.com/hgroves/togglcon/pkg/toggl"
)

var workspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "List the Toggl workspaces your API key can access",
	RunE:  runWorkspaces,
}

func init() {
	rootCmd.AddCommand(workspacesCmd)
}

func runWorkspaces(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("no usable configuration at %s (run \"togglcon setup\"): %w", path, err)
	}
	// workspace_id may still be unset here; listing workspaces is how
	// you find it in the first place.
	if cfg.APIKey == "" || cfg.Email == "" {
		return fmt.Errorf("email and api_key must be set in %s (run \"togglcon setup\")", path)
	}

	workspaces, err := toggl.New(cfg.APIKey, cfg.Email, cfg.WorkspaceID).Workspaces()
	if err != nil {
		return err
	}

	for _, ws := range workspaces {
		fmt.Fprintf(cmd.OutOrStdout(), "%d (%s)\n", ws.ID, ws.Name)
	}

	return nil
}
