// Package service implements the timesheet aggregation engine behind
// a small service facade.
package service

import (
	"context"

	"github.com/hgroves/togglcon/internal/domain"
	"github.com/hgroves/togglcon/pkg/toggl"
)

// EntryFetcher is the slice of the Toggl client the timesheet service
// needs: a range of detailed report entries.
type EntryFetcher interface {
	DetailedReport(since, until string) ([]toggl.Entry, error)
}

type Timesheet interface {
	Create(ctx context.Context, fetcher EntryFetcher, req CreateTimesheetRequest) ([]domain.Row, error)
}

type timesheet struct{}

func NewTimesheet() *timesheet {
	return &timesheet{}
}

type CreateTimesheetRequest struct {
	// Date of the timesheet in the internal DD/MM/YY convention.
	Date string
}

// Create fetches the day's entries and aggregates them into rows. The
// fetch uses a single-day range (since == until) in the ISO form the
// Toggl API expects.
func (t *timesheet) Create(ctx context.Context, fetcher EntryFetcher, req CreateTimesheetRequest) ([]domain.Row, error) {
	iso, err := domain.ToISO(req.Date)
	if err != nil {
		return nil, err
	}

	entries, err := fetcher.DetailedReport(iso, iso)
	if err != nil {
		return nil, err
	}

	return Aggregate(req.Date, entries)
}
