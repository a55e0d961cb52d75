package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hgroves/togglcon/internal/domain"
	"github.com/hgroves/togglcon/pkg/toggl"
)

// trackLookbackDays bounds the detailed report fetch; the reports API
// caps ranges at one year.
const trackLookbackDays = 300

// hoursPerWorkDay converts remaining budget hours into full-time days
// for the buffer estimate.
const hoursPerWorkDay = 7.0

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Report hours spent against tracked project budgets",
	Long: `Report hours spent against tracked project budgets.

Projects to track are listed in the config file:

  [[tracking]]
  project = "PRO123"
  hours_available = 70
  due_date = "11/06/26"`,
	RunE: runTrack,
}

func init() {
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(cfg.Tracking) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No tracked projects. Add [[tracking]] entries to the config file to use this command.")
		return nil
	}

	now := time.Now()
	since := now.AddDate(0, 0, -trackLookbackDays).Format(domain.ISOLayout)
	until := now.Format(domain.ISOLayout)

	client := toggl.New(cfg.APIKey, cfg.Email, cfg.WorkspaceID)
	entries, err := client.DetailedReport(since, until)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\nProject status:")
	for _, tp := range cfg.Tracking {
		due, err := domain.ParseDate(tp.DueDate)
		if err != nil {
			return fmt.Errorf("tracked project %s: %w", tp.Project, err)
		}

		var spent float64
		for _, e := range entries {
			if e.Project != nil && strings.Contains(*e.Project, tp.Project) {
				spent += float64(e.Dur) / (60 * 60 * 1000)
			}
		}

		daysLeft := time.Until(due).Hours() / 24
		remaining := tp.HoursAvailable - spent
		daysOfWork := remaining / hoursPerWorkDay

		percentSpent := 0.0
		if tp.HoursAvailable > 0 {
			percentSpent = spent / tp.HoursAvailable * 100
		}
		buffer := 0.0
		if daysOfWork > 0 {
			buffer = daysLeft/daysOfWork*100 - 100
		}

		fmt.Fprintf(out, "%s; %.0f%% hours spent @ %.0f%% buffer. Due in %.0fd; %.1fd (%.1fhrs) work left (%.1f/%.1f hrs)\n",
			tp.Project, percentSpent, buffer, daysLeft, daysOfWork, remaining, spent, tp.HoursAvailable)
	}

	return nil
}
