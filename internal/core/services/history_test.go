package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/benchrange-cli/internal/core/domain"
)

// seedRun stores a run with one outcome per given day, each carrying the
// supplied benchmarks.
func seedRun(t *testing.T, store *mockResultStore, id string, days []string, benchmarks ...domain.Benchmark) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, store.SaveRun(ctx, domain.Run{
		ID:        id,
		Command:   "./bench.sh",
		StartedAt: time.Now().UTC(),
	}))
	for _, dayStr := range days {
		day, err := domain.ParseISODay(dayStr)
		require.NoError(t, err)
		require.NoError(t, store.SaveOutcome(ctx, domain.DayOutcome{
			RunID:      id,
			Day:        day,
			Benchmarks: benchmarks,
		}))
	}
}

func TestHistory_ListRuns(t *testing.T) {
	store := &mockResultStore{}
	seedRun(t, store, "run-a", []string{"2022-08-01"})
	seedRun(t, store, "run-b", []string{"2022-08-02"})

	runs, err := NewHistory(store).ListRuns(context.Background())
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestHistory_ListRuns_NoStore(t *testing.T) {
	_, err := NewHistory(nil).ListRuns(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistory_RunDetail(t *testing.T) {
	store := &mockResultStore{}
	seedRun(t, store, "run-a", []string{"2022-08-01", "2022-08-02"},
		domain.NewBenchmark("mod::bench_x", 100, 5, 0))

	detail, err := NewHistory(store).RunDetail(context.Background(), "run-a")
	require.NoError(t, err)

	assert.Equal(t, "run-a", detail.Run.ID)
	require.Len(t, detail.Outcomes, 2)
	assert.Len(t, detail.Outcomes[0].Benchmarks, 1)
}

func TestHistory_RunDetail_NotFound(t *testing.T) {
	_, err := NewHistory(&mockResultStore{}).RunDetail(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistory_Compare_AlignsByName(t *testing.T) {
	store := &mockResultStore{}
	seedRun(t, store, "run-a", []string{"2022-08-01"},
		domain.NewBenchmark("mod::shared", 200, 0, 0),
		domain.NewBenchmark("mod::only_a", 50, 0, 0))
	seedRun(t, store, "run-b", []string{"2022-08-02"},
		domain.NewBenchmark("mod::shared", 150, 0, 0),
		domain.NewBenchmark("mod::only_b", 75, 0, 0))

	cmp, err := NewHistory(store).Compare(context.Background(), "run-a", "run-b")
	require.NoError(t, err)

	require.Len(t, cmp.Deltas, 1)
	assert.Equal(t, "mod::shared", cmp.Deltas[0].Name)
	assert.Equal(t, uint64(200), cmp.Deltas[0].Before)
	assert.Equal(t, uint64(150), cmp.Deltas[0].After)
	assert.Equal(t, int64(-50), cmp.Deltas[0].Diff())

	assert.Equal(t, []string{"mod::only_a"}, cmp.OnlyA)
	assert.Equal(t, []string{"mod::only_b"}, cmp.OnlyB)
}

func TestHistory_Compare_LaterDaysSupersede(t *testing.T) {
	store := &mockResultStore{}
	ctx := context.Background()

	require.NoError(t, store.SaveRun(ctx, domain.Run{ID: "run-a"}))
	day1, err := domain.ParseISODay("2022-08-01")
	require.NoError(t, err)
	day2, err := domain.ParseISODay("2022-08-02")
	require.NoError(t, err)
	require.NoError(t, store.SaveOutcome(ctx, domain.DayOutcome{
		RunID: "run-a", Day: day1,
		Benchmarks: []domain.Benchmark{domain.NewBenchmark("mod::b", 500, 0, 0)},
	}))
	require.NoError(t, store.SaveOutcome(ctx, domain.DayOutcome{
		RunID: "run-a", Day: day2,
		Benchmarks: []domain.Benchmark{domain.NewBenchmark("mod::b", 300, 0, 0)},
	}))

	seedRun(t, store, "run-b", []string{"2022-08-03"},
		domain.NewBenchmark("mod::b", 100, 0, 0))

	cmp, err := NewHistory(store).Compare(ctx, "run-a", "run-b")
	require.NoError(t, err)

	// run-a contributes its day-2 measurement, not day-1's.
	require.Len(t, cmp.Deltas, 1)
	assert.Equal(t, uint64(300), cmp.Deltas[0].Before)
}

func TestHistory_Compare_MissingRun(t *testing.T) {
	store := &mockResultStore{}
	seedRun(t, store, "run-a", []string{"2022-08-01"})

	_, err := NewHistory(store).Compare(context.Background(), "run-a", "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
