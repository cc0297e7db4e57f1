package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/benchrange-cli/internal/core/domain"
	"github.com/custodia-labs/benchrange-cli/internal/core/ports/driven"
	"github.com/custodia-labs/benchrange-cli/internal/core/ports/driving"
	"github.com/custodia-labs/benchrange-cli/internal/logger"
)

// Ensure Backfill implements the driving port.
var _ driving.BackfillService = (*Backfill)(nil)

// Backfill walks a date range and invokes the benchmark command once per
// day, capturing and recording each outcome.
type Backfill struct {
	runner driven.BenchRunner
	parser driven.OutputParser
	store  driven.ResultStore
}

// NewBackfill creates a backfill service.
// The store may be nil, in which case outcomes are not persisted.
func NewBackfill(runner driven.BenchRunner, parser driven.OutputParser, store driven.ResultStore) *Backfill {
	return &Backfill{
		runner: runner,
		parser: parser,
		store:  store,
	}
}

// Backfill runs the benchmark for every day in opts.Range.
//
// Failed days are recorded and iteration continues to the end of the
// range unless opts.FailFast is set. The summary always covers the days
// that actually ran, even when an error is returned.
func (s *Backfill) Backfill(ctx context.Context, opts driving.BackfillOptions) (*domain.RunSummary, error) {
	if s.runner == nil {
		return nil, fmt.Errorf("%w: no benchmark runner configured", domain.ErrInvalidInput)
	}
	if len(opts.Command) == 0 {
		return nil, fmt.Errorf("%w: empty benchmark command", domain.ErrInvalidInput)
	}

	run := domain.Run{
		ID:        uuid.New().String(),
		Command:   strings.Join(opts.Command, " "),
		Range:     opts.Range,
		StartedAt: time.Now().UTC(),
	}
	summary := &domain.RunSummary{Run: run}

	logger.Info("backfill %s: %s over %s (%d days)",
		run.ID, run.Command, opts.Range, opts.Range.Len())

	if err := s.saveRun(ctx, opts, run); err != nil {
		return nil, err
	}

	it := opts.Range.Iter()
	for day, ok := it.Next(); ok; day, ok = it.Next() {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		outcome := s.runDay(ctx, opts, run.ID, day)
		summary.Outcomes = append(summary.Outcomes, outcome)

		if err := s.saveOutcome(ctx, opts, outcome); err != nil {
			return summary, err
		}
		if opts.Progress != nil {
			opts.Progress(outcome)
		}

		if outcome.Failed() && opts.FailFast {
			return summary, fmt.Errorf("day %s: %w", day, domain.ErrBenchmarkFailed)
		}
	}

	return summary, nil
}

// runDay invokes the benchmark once and converts the result into an outcome.
func (s *Backfill) runDay(ctx context.Context, opts driving.BackfillOptions, runID string, day domain.Day) domain.DayOutcome {
	logger.Debug("running %s for %s", opts.Command[0], day)

	outcome := domain.DayOutcome{
		RunID: runID,
		Day:   day,
	}

	result, err := s.runner.Run(ctx, opts.Command, day)
	if err != nil {
		outcome.ExitCode = -1
		outcome.Error = err.Error()
		return outcome
	}

	outcome.ExitCode = result.ExitCode
	outcome.Duration = result.Duration
	outcome.Output = result.Stdout
	if result.ExitCode != 0 {
		outcome.Error = fmt.Sprintf("exit status %d", result.ExitCode)
		logger.Warn("benchmark for %s exited with status %d", day, result.ExitCode)
	}

	if s.parser != nil {
		benchmarks, perr := s.parser.Parse(strings.NewReader(result.Stdout))
		if perr != nil {
			logger.Warn("parsing output for %s: %v", day, perr)
		} else {
			domain.SortBenchmarks(benchmarks)
			outcome.Benchmarks = benchmarks
		}
	}

	return outcome
}

func (s *Backfill) saveRun(ctx context.Context, opts driving.BackfillOptions, run domain.Run) error {
	if s.store == nil || opts.NoStore {
		return nil
	}
	if err := s.store.SaveRun(ctx, run); err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

func (s *Backfill) saveOutcome(ctx context.Context, opts driving.BackfillOptions, outcome domain.DayOutcome) error {
	if s.store == nil || opts.NoStore {
		return nil
	}
	if err := s.store.SaveOutcome(ctx, outcome); err != nil {
		return fmt.Errorf("saving outcome for %s: %w", outcome.Day, err)
	}
	return nil
}
