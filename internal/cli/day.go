package cli

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/hgroves/togglcon/internal/domain"
	"github.com/hgroves/togglcon/internal/service"
	"github.com/hgroves/togglcon/pkg/toggl"
)

var (
	dayYesterday bool
	dayCopy      bool
)

var dayCmd = &cobra.Command{
	Use:   "day [DD/MM/YY]",
	Short: "Build the timesheet for a single day (default today)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDay,
}

func init() {
	rootCmd.AddCommand(dayCmd)
	dayCmd.Flags().BoolVarP(&dayYesterday, "yesterday", "y", false, "build yesterday's timesheet")
	dayCmd.Flags().BoolVar(&dayCopy, "copy", false, "copy the rows to the clipboard as header-less TSV")
}

func runDay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	date := time.Now().Format(domain.DateLayout)
	switch {
	case len(args) == 1:
		date = args[0]
	case dayYesterday:
		date = time.Now().AddDate(0, 0, -1).Format(domain.DateLayout)
	}

	client := toggl.New(cfg.APIKey, cfg.Email, cfg.WorkspaceID)

	rows, err := service.NewTimesheet().Create(cmd.Context(), client, service.CreateTimesheetRequest{Date: date})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), RenderTable(rows))
	fmt.Fprintln(cmd.OutOrStdout())

	if dayCopy {
		if err := clipboard.WriteAll(RenderTSV(rows)); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Data rows copied to clipboard. You can now paste them into your workbook.")
	}

	return nil
}
