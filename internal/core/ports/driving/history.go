package driving

import (
	"context"

	"github.com/custodia-labs/benchrange-cli/internal/core/domain"
)

// HistoryService queries recorded backfill runs.
type HistoryService interface {
	// ListRuns returns all recorded runs, most recent first.
	ListRuns(ctx context.Context) ([]domain.Run, error)

	// RunDetail returns one run with its per-day outcomes.
	// Returns domain.ErrNotFound if the run does not exist.
	RunDetail(ctx context.Context, runID string) (*domain.RunSummary, error)

	// Compare aligns the benchmarks of two runs by name and reports
	// the per-benchmark duration deltas.
	Compare(ctx context.Context, runA, runB string) (*domain.RunComparison, error)
}
