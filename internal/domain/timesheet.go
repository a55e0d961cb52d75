// Package domain holds the timesheet types shared by the aggregation
// engine and its HTTP/CLI consumers.
package domain

import "time"

// DateLayout is the DD/MM/YY convention used throughout aggregation
// and on output rows. The HTTP boundary accepts ISO dates and
// transcodes them with [FromISO] before anything else runs.
const (
	DateLayout = "02/01/06"
	ISOLayout  = "2006-01-02"
)

// Row is one billable timesheet line, keyed the way the downstream
// spreadsheet expects its columns. Hours is a string so the ".5"
// half-hour precision survives serialization untouched.
type Row struct {
	Date        string `json:"Date"`
	Branch      string `json:"Branch"`
	ChargeType  string `json:"Charge Type"`
	ProjectNo   string `json:"Project No"`
	JobNo       string `json:"Job No"`
	Description string `json:"Description"`
	Hours       string `json:"Hours"`
}

// ParseDate validates a DD/MM/YY date string. An unparseable value is
// a DateOutOfRange failure.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, &Error{
			Kind:    KindDateOutOfRange,
			Message: "This date does not exist. Please check and try again.",
		}
	}
	return t, nil
}

// FromISO transcodes a YYYY-MM-DD date into the internal DD/MM/YY
// convention.
func FromISO(date string) (string, error) {
	t, err := time.Parse(ISOLayout, date)
	if err != nil {
		return "", &Error{
			Kind:    KindDateOutOfRange,
			Message: "This date does not exist. Please check and try again.",
		}
	}
	return t.Format(DateLayout), nil
}

// ToISO converts an internal DD/MM/YY date to the YYYY-MM-DD form the
// Toggl API expects.
func ToISO(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.Format(ISOLayout), nil
}
