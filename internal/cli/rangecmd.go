package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hgroves/togglcon/internal/domain"
	"github.com/hgroves/togglcon/internal/service"
	"github.com/hgroves/togglcon/pkg/toggl"
)

var (
	rangeSince string
	rangeUntil string
)

var rangeCmd = &cobra.Command{
	Use:   "range --since DD/MM/YY --until DD/MM/YY",
	Short: "Build timesheets for every day in a date range",
	Long: `Build timesheets for every day in a date range.

Each day is aggregated independently, so days run concurrently. Days
without any entries are skipped; any other failure aborts the range.`,
	RunE: runRange,
}

func init() {
	rootCmd.AddCommand(rangeCmd)
	rangeCmd.Flags().StringVar(&rangeSince, "since", "", "first day of the range (DD/MM/YY)")
	rangeCmd.Flags().StringVar(&rangeUntil, "until", "", "last day of the range (DD/MM/YY)")
	_ = rangeCmd.MarkFlagRequired("since")
	_ = rangeCmd.MarkFlagRequired("until")
}

func runRange(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	since, err := domain.ParseDate(rangeSince)
	if err != nil {
		return err
	}
	until, err := domain.ParseDate(rangeUntil)
	if err != nil {
		return err
	}
	if until.Before(since) {
		return errors.New("--until must not be earlier than --since")
	}

	var dates []string
	for d := since; !d.After(until); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(domain.DateLayout))
	}

	svc := service.NewTimesheet()
	results := make([][]domain.Row, len(dates))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(4)
	for i, date := range dates {
		i, date := i, date
		g.Go(func() error {
			client := toggl.New(cfg.APIKey, cfg.Email, cfg.WorkspaceID)
			rows, err := svc.Create(ctx, client, service.CreateTimesheetRequest{Date: date})
			if err != nil {
				var aggErr *domain.Error
				if errors.As(err, &aggErr) && aggErr.Kind == domain.KindNoDayData {
					return nil
				}
				return fmt.Errorf("%s: %w", date, err)
			}
			results[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, rows := range results {
		if len(rows) == 0 {
			continue
		}
		fmt.Fprintf(out, "\n%s\n", dates[i])
		fmt.Fprint(out, RenderTable(rows))
	}
	fmt.Fprintln(out)

	return nil
}
