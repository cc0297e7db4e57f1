package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/benchrange-cli/internal/core/domain"
	"github.com/custodia-labs/benchrange-cli/internal/core/ports/driven"
)

// resultStore implements driven.ResultStore.
type resultStore struct {
	store *Store
}

var _ driven.ResultStore = (*resultStore)(nil)

// SaveRun records a new run.
func (s *resultStore) SaveRun(ctx context.Context, run domain.Run) error {
	if run.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO runs (id, command, start_day, end_day, started_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			command = excluded.command,
			start_day = excluded.start_day,
			end_day = excluded.end_day,
			started_at = excluded.started_at
	`, run.ID, run.Command, run.Range.Start.String(), run.Range.End.String(),
		run.StartedAt.UTC().Format(time.RFC3339Nano))

	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// SaveOutcome records the outcome for one day of a run, replacing any
// previous outcome and benchmarks for the same (run, day) pair.
func (s *resultStore) SaveOutcome(ctx context.Context, outcome domain.DayOutcome) error {
	if outcome.RunID == "" || outcome.Day.IsZero() {
		return domain.ErrInvalidInput
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	_, err = tx.ExecContext(ctx, `
		INSERT INTO day_outcomes (run_id, day, exit_code, duration_ns, output, error)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, day) DO UPDATE SET
			exit_code = excluded.exit_code,
			duration_ns = excluded.duration_ns,
			output = excluded.output,
			error = excluded.error
	`, outcome.RunID, outcome.Day.String(), outcome.ExitCode,
		outcome.Duration.Nanoseconds(), outcome.Output, outcome.Error)
	if err != nil {
		return fmt.Errorf("saving outcome: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"DELETE FROM benchmarks WHERE run_id = ? AND day = ?",
		outcome.RunID, outcome.Day.String())
	if err != nil {
		return fmt.Errorf("clearing benchmarks: %w", err)
	}

	for _, b := range outcome.Benchmarks {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO benchmarks (run_id, day, name, shortname, ns, variance, throughput)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, outcome.RunID, outcome.Day.String(), b.Name, b.Shortname,
			int64(b.Ns), int64(b.Variance), int64(b.Throughput))
		if err != nil {
			return fmt.Errorf("saving benchmark %s: %w", b.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing outcome: %w", err)
	}
	return nil
}

// GetRun retrieves a run by ID.
// Returns domain.ErrNotFound if the run does not exist.
func (s *resultStore) GetRun(ctx context.Context, runID string) (*domain.Run, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, command, start_day, end_day, started_at
		FROM runs WHERE id = ?
	`, runID)

	run, err := scanRun(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// ListRuns returns all recorded runs, most recent first.
func (s *resultStore) ListRuns(ctx context.Context) ([]domain.Run, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, command, start_day, end_day, started_at
		FROM runs ORDER BY started_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.Run //nolint:prealloc // size unknown from query
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

// ListOutcomes returns a run's outcomes in day order,
// with parsed benchmarks attached.
func (s *resultStore) ListOutcomes(ctx context.Context, runID string) ([]domain.DayOutcome, error) {
	benchmarks, err := s.benchmarksByDay(ctx, runID)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT run_id, day, exit_code, duration_ns, output, error
		FROM day_outcomes WHERE run_id = ? ORDER BY day ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []domain.DayOutcome //nolint:prealloc // size unknown from query
	for rows.Next() {
		var (
			o          domain.DayOutcome
			dayStr     string
			durationNs int64
		)
		if err := rows.Scan(&o.RunID, &dayStr, &o.ExitCode, &durationNs, &o.Output, &o.Error); err != nil {
			return nil, fmt.Errorf("scanning outcome: %w", err)
		}
		day, err := domain.ParseISODay(dayStr)
		if err != nil {
			return nil, fmt.Errorf("scanning outcome day: %w", err)
		}
		o.Day = day
		o.Duration = time.Duration(durationNs)
		o.Benchmarks = benchmarks[dayStr]
		outcomes = append(outcomes, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating outcomes: %w", err)
	}
	return outcomes, nil
}

// benchmarksByDay loads all parsed benchmarks for a run, keyed by ISO day.
func (s *resultStore) benchmarksByDay(ctx context.Context, runID string) (map[string][]domain.Benchmark, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT day, name, shortname, ns, variance, throughput
		FROM benchmarks WHERE run_id = ? ORDER BY day ASC, name ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying benchmarks: %w", err)
	}
	defer rows.Close()

	byDay := make(map[string][]domain.Benchmark)
	for rows.Next() {
		var (
			day                      string
			b                        domain.Benchmark
			ns, variance, throughput int64
		)
		if err := rows.Scan(&day, &b.Name, &b.Shortname, &ns, &variance, &throughput); err != nil {
			return nil, fmt.Errorf("scanning benchmark: %w", err)
		}
		b.Ns = uint64(ns)
		b.Variance = uint64(variance)
		b.Throughput = uint64(throughput)
		byDay[day] = append(byDay[day], b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating benchmarks: %w", err)
	}
	return byDay, nil
}

// scanRun scans a run row via the given scan function.
func scanRun(scan func(dest ...any) error) (*domain.Run, error) {
	var (
		run              domain.Run
		startStr, endStr string
		startedAtStr     string
	)
	if err := scan(&run.ID, &run.Command, &startStr, &endStr, &startedAtStr); err != nil {
		return nil, err
	}

	start, err := domain.ParseISODay(startStr)
	if err != nil {
		return nil, fmt.Errorf("scanning run start day: %w", err)
	}
	end, err := domain.ParseISODay(endStr)
	if err != nil {
		return nil, fmt.Errorf("scanning run end day: %w", err)
	}
	run.Range = domain.NewDateRange(start, end)

	startedAt, err := time.Parse(time.RFC3339Nano, startedAtStr)
	if err != nil {
		return nil, fmt.Errorf("scanning run started_at: %w", err)
	}
	run.StartedAt = startedAt

	return &run, nil
}
