// Package memory provides in-memory implementations of the driven
// storage ports, used in tests and when persistence is disabled.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/benchrange-cli/internal/core/domain"
	"github.com/custodia-labs/benchrange-cli/internal/core/ports/driven"
)

// Ensure ResultStore implements the interface.
var _ driven.ResultStore = (*ResultStore)(nil)

// ResultStore is an in-memory implementation of driven.ResultStore.
type ResultStore struct {
	mu       sync.RWMutex
	runs     map[string]domain.Run
	outcomes map[string][]domain.DayOutcome
}

// NewResultStore creates a new in-memory result store.
func NewResultStore() *ResultStore {
	return &ResultStore{
		runs:     make(map[string]domain.Run),
		outcomes: make(map[string][]domain.DayOutcome),
	}
}

// SaveRun records a new run.
func (s *ResultStore) SaveRun(_ context.Context, run domain.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run
	return nil
}

// SaveOutcome records the outcome for one day of a run.
func (s *ResultStore) SaveOutcome(_ context.Context, outcome domain.DayOutcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.outcomes[outcome.RunID]
	for i := range existing {
		if existing[i].Day.Equal(outcome.Day) {
			existing[i] = outcome
			return nil
		}
	}
	s.outcomes[outcome.RunID] = append(existing, outcome)
	return nil
}

// GetRun retrieves a run by ID.
func (s *ResultStore) GetRun(_ context.Context, runID string) (*domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[runID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &run, nil
}

// ListRuns returns all recorded runs, most recent first.
func (s *ResultStore) ListRuns(_ context.Context) ([]domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]domain.Run, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})
	return runs, nil
}

// ListOutcomes returns a run's outcomes in day order.
func (s *ResultStore) ListOutcomes(_ context.Context, runID string) ([]domain.DayOutcome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	outcomes := make([]domain.DayOutcome, len(s.outcomes[runID]))
	copy(outcomes, s.outcomes[runID])
	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].Day.Before(outcomes[j].Day)
	})
	return outcomes, nil
}
