// Package logstore records timesheet invocations for later auditing,
// mirroring the "who asked for which day, when" log the service has
// always kept.
package logstore

import (
	"context"
	"time"
)

// Invocation is one recorded timesheet request.
type Invocation struct {
	ID          string
	Email       string
	Date        string // DD/MM/YY
	RequestedAt time.Time
}

// Store persists invocation records. A Store is constructed once per
// process and injected into the HTTP boundary; it is never held as a
// package-level global.
type Store interface {
	Record(ctx context.Context, inv Invocation) error
	Close() error
}
