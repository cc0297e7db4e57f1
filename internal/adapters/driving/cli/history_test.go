package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/benchrange-cli/internal/core/domain"
)

func TestHistoryCmd_Use(t *testing.T) {
	assert.Equal(t, "history [run-id]", historyCmd.Use)
}

func TestHistoryCmd_RejectsExtraArgs(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"history", "run-1", "run-2"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts at most 1 arg(s)")
}

func TestHistoryCmd_ListsRuns(t *testing.T) {
	_, fh, _, cleanup := setupTestServices()
	defer cleanup()

	start, err := domain.ParseISODay("2022-08-01")
	require.NoError(t, err)
	fh.runs = []domain.Run{{
		ID:        "run-1",
		Command:   "./bench.sh",
		Range:     domain.NewDateRange(start, start.AddDays(3)),
		StartedAt: time.Date(2022, 8, 20, 10, 0, 0, 0, time.UTC),
	}}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"history"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err = rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Recorded runs:")
	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "2022-08-01..2022-08-04")
	assert.Contains(t, out, "./bench.sh")
}

func TestHistoryCmd_EmptyHistory(t *testing.T) {
	_, _, _, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"history"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No runs recorded.")
}

func TestHistoryCmd_ShowsRunDetail(t *testing.T) {
	_, fh, _, cleanup := setupTestServices()
	defer cleanup()

	day, err := domain.ParseISODay("2022-08-01")
	require.NoError(t, err)
	fh.detail = &domain.RunSummary{
		Run: domain.Run{
			ID:      "run-1",
			Command: "./bench.sh",
			Range:   domain.NewDateRange(day, day.AddDays(2)),
		},
		Outcomes: []domain.DayOutcome{
			{Day: day, ExitCode: 0, Duration: 120 * time.Millisecond,
				Benchmarks: []domain.Benchmark{domain.NewBenchmark("mod::a", 100, 5, 0)}},
			{Day: day.Next(), ExitCode: 1, Error: "exit status 1"},
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"history", "run-1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err = rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Run run-1: ./bench.sh over 2022-08-01..2022-08-03")
	assert.Contains(t, out, "2022-08-01  exit 0")
	assert.Contains(t, out, "1 benchmarks")
	assert.Contains(t, out, "2022-08-02  FAILED  exit status 1")
	assert.Contains(t, out, "1 of 2 days failed.")
}

func TestHistoryCmd_ErrorsWithoutServices(t *testing.T) {
	SetServices(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"history"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
