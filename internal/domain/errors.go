package domain

// Kind classifies an aggregation failure. All kinds reflect bad input
// data rather than transient faults, so none of them is retryable.
type Kind string

const (
	KindMissingProject     Kind = "missing_project"
	KindMissingChargeType  Kind = "missing_charge_type"
	KindWrongProjectFormat Kind = "wrong_project_name_format"
	KindNoDayData          Kind = "no_day_data"
	KindDateOutOfRange     Kind = "date_out_of_range"
)

// Error is a typed aggregation failure. Any Error aborts the whole
// day: partial rows are never returned alongside one.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }
