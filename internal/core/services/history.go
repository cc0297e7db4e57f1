package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/custodia-labs/benchrange-cli/internal/core/domain"
	"github.com/custodia-labs/benchrange-cli/internal/core/ports/driven"
	"github.com/custodia-labs/benchrange-cli/internal/core/ports/driving"
)

// Ensure History implements the driving port.
var _ driving.HistoryService = (*History)(nil)

// History queries recorded backfill runs.
type History struct {
	store driven.ResultStore
}

// NewHistory creates a history service backed by store.
func NewHistory(store driven.ResultStore) *History {
	return &History{store: store}
}

// ListRuns returns all recorded runs, most recent first.
func (s *History) ListRuns(ctx context.Context) ([]domain.Run, error) {
	if s.store == nil {
		return nil, fmt.Errorf("%w: no result store configured", domain.ErrInvalidInput)
	}
	return s.store.ListRuns(ctx)
}

// RunDetail returns one run with its per-day outcomes.
func (s *History) RunDetail(ctx context.Context, runID string) (*domain.RunSummary, error) {
	if s.store == nil {
		return nil, fmt.Errorf("%w: no result store configured", domain.ErrInvalidInput)
	}

	run, err := s.store.GetRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("loading run %s: %w", runID, err)
	}

	outcomes, err := s.store.ListOutcomes(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("loading outcomes for %s: %w", runID, err)
	}

	return &domain.RunSummary{Run: *run, Outcomes: outcomes}, nil
}

// Compare aligns the benchmarks of two runs by name and reports the
// per-benchmark duration deltas. Each run contributes its most recent
// measurement per benchmark name (later days supersede earlier ones).
func (s *History) Compare(ctx context.Context, runA, runB string) (*domain.RunComparison, error) {
	detailA, err := s.RunDetail(ctx, runA)
	if err != nil {
		return nil, err
	}
	detailB, err := s.RunDetail(ctx, runB)
	if err != nil {
		return nil, err
	}

	benchA := latestBenchmarks(detailA.Outcomes)
	benchB := latestBenchmarks(detailB.Outcomes)

	cmp := &domain.RunComparison{
		RunA: detailA.Run,
		RunB: detailB.Run,
	}

	for name, a := range benchA {
		if b, ok := benchB[name]; ok {
			cmp.Deltas = append(cmp.Deltas, domain.BenchmarkDelta{
				Name:   name,
				Before: a.Ns,
				After:  b.Ns,
			})
		} else {
			cmp.OnlyA = append(cmp.OnlyA, name)
		}
	}
	for name := range benchB {
		if _, ok := benchA[name]; !ok {
			cmp.OnlyB = append(cmp.OnlyB, name)
		}
	}

	sort.Slice(cmp.Deltas, func(i, j int) bool { return cmp.Deltas[i].Name < cmp.Deltas[j].Name })
	sort.Strings(cmp.OnlyA)
	sort.Strings(cmp.OnlyB)

	return cmp, nil
}

// latestBenchmarks indexes outcomes by benchmark name. Outcomes arrive in
// day order, so a benchmark measured on several days keeps its latest value.
func latestBenchmarks(outcomes []domain.DayOutcome) map[string]domain.Benchmark {
	latest := make(map[string]domain.Benchmark)
	for i := range outcomes {
		for _, b := range outcomes[i].Benchmarks {
			latest[b.Name] = b
		}
	}
	return latest
}
