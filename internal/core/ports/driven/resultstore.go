package driven

import (
	"context"

	"github.com/custodia-labs/benchrange-cli/internal/core/domain"
)

// ResultStore persists backfill runs and their per-day outcomes.
type ResultStore interface {
	// SaveRun records a new run.
	SaveRun(ctx context.Context, run domain.Run) error

	// SaveOutcome records the outcome for one day of a run.
	// Saving the same (run, day) pair again replaces the outcome
	// and its benchmarks.
	SaveOutcome(ctx context.Context, outcome domain.DayOutcome) error

	// GetRun retrieves a run by ID.
	// Returns domain.ErrNotFound if the run does not exist.
	GetRun(ctx context.Context, runID string) (*domain.Run, error)

	// ListRuns returns all recorded runs, most recent first.
	ListRuns(ctx context.Context) ([]domain.Run, error)

	// ListOutcomes returns a run's outcomes in day order,
	// with parsed benchmarks attached.
	ListOutcomes(ctx context.Context, runID string) ([]domain.DayOutcome, error)
}
