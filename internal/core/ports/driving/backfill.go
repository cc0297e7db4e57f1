package driving

import (
	"context"

	"github.com/custodia-labs/benchrange-cli/internal/core/domain"
)

// BackfillOptions configures one backfill run.
type BackfillOptions struct {
	// Range is the span of days to iterate, start inclusive,
	// end exclusive.
	Range domain.DateRange

	// Command is the benchmark command line to invoke per day.
	Command []string

	// FailFast halts the run at the first failed day instead of
	// continuing to the end of the range.
	FailFast bool

	// NoStore skips result persistence for this run.
	NoStore bool

	// Progress, when non-nil, is called with each day's outcome as
	// soon as it is known.
	Progress func(outcome domain.DayOutcome)
}

// BackfillService walks a date range, invoking the benchmark command
// once per day and recording each outcome.
type BackfillService interface {
	// Backfill runs the benchmark for every day in the range.
	// The returned summary covers the days that actually ran, including
	// failed ones; it is returned alongside the error when FailFast or
	// context cancellation cuts the range short.
	Backfill(ctx context.Context, opts BackfillOptions) (*domain.RunSummary, error)
}
