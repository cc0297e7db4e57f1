package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/benchrange-cli/internal/core/domain"
)

func TestCompareCmd_Use(t *testing.T) {
	assert.Equal(t, "compare [run-a] [run-b]", compareCmd.Use)
}

func TestCompareCmd_RequiresExactlyTwoArgs(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"compare", "run-1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestCompareCmd_PrintsDeltas(t *testing.T) {
	_, fh, _, cleanup := setupTestServices()
	defer cleanup()

	fh.comparison = &domain.RunComparison{
		RunA: domain.Run{ID: "run-a"},
		RunB: domain.Run{ID: "run-b"},
		Deltas: []domain.BenchmarkDelta{
			{Name: "mod::bench_x", Before: 200, After: 150},
		},
		OnlyA: []string{"mod::gone"},
		OnlyB: []string{"mod::new"},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"compare", "run-a", "run-b"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Comparing run-a -> run-b")
	assert.Contains(t, out, "mod::bench_x")
	assert.Contains(t, out, "-25.0%")
	assert.Contains(t, out, "Only in run-a: mod::gone")
	assert.Contains(t, out, "Only in run-b: mod::new")
}

func TestCompareCmd_NoBenchmarks(t *testing.T) {
	_, fh, _, cleanup := setupTestServices()
	defer cleanup()

	fh.comparison = &domain.RunComparison{
		RunA: domain.Run{ID: "run-a"},
		RunB: domain.Run{ID: "run-b"},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"compare", "run-a", "run-b"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No benchmarks recorded in either run.")
}

func TestCompareCmd_ErrorsWithoutServices(t *testing.T) {
	SetServices(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"compare", "run-a", "run-b"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
