package domain

import "time"

// Run records one backfill over a date range.
type Run struct {
	// ID is the unique identifier for the run.
	ID string

	// Command is the benchmark command line invoked for each day.
	Command string

	// Range is the span of days the run covered.
	Range DateRange

	// StartedAt is when the run began.
	StartedAt time.Time
}

// InvocationResult is the raw outcome of one external command invocation.
type InvocationResult struct {
	// ExitCode is the command's exit status. Zero on success.
	ExitCode int

	// Stdout is the captured standard output.
	Stdout string

	// Stderr is the captured standard error.
	Stderr string

	// Duration is the wall-clock time the invocation took.
	Duration time.Duration
}

// DayOutcome is the recorded result of the benchmark invocation for one day.
type DayOutcome struct {
	// RunID identifies the run this outcome belongs to.
	RunID string

	// Day is the cursor date passed to the benchmark command.
	Day Day

	// ExitCode is the benchmark command's exit status.
	ExitCode int

	// Duration is how long the invocation took.
	Duration time.Duration

	// Output is the benchmark command's captured standard output.
	Output string

	// Error holds the failure message when the command could not run
	// or exited non-zero. Empty on success.
	Error string

	// Benchmarks holds the measurements parsed from Output,
	// ordered by name.
	Benchmarks []Benchmark
}

// Failed reports whether the day's invocation did not complete cleanly.
func (o DayOutcome) Failed() bool {
	return o.ExitCode != 0 || o.Error != ""
}

// RunSummary aggregates a run with its per-day outcomes.
type RunSummary struct {
	Run      Run
	Outcomes []DayOutcome
}

// FailedDays counts outcomes that did not complete cleanly.
func (s *RunSummary) FailedDays() int {
	n := 0
	for i := range s.Outcomes {
		if s.Outcomes[i].Failed() {
			n++
		}
	}
	return n
}

// BenchmarkDelta compares one benchmark's duration across two runs.
type BenchmarkDelta struct {
	// Name is the fully qualified benchmark name.
	Name string

	// Before is the ns/iter figure from the first run.
	Before uint64

	// After is the ns/iter figure from the second run.
	After uint64
}

// Diff returns the signed ns/iter change from Before to After.
func (d BenchmarkDelta) Diff() int64 {
	return int64(d.After) - int64(d.Before)
}

// Pct returns the percentage change from Before to After.
// Zero when Before is zero.
func (d BenchmarkDelta) Pct() float64 {
	if d.Before == 0 {
		return 0
	}
	return float64(d.Diff()) / float64(d.Before) * 100
}

// RunComparison aligns the benchmarks of two runs by name.
type RunComparison struct {
	// RunA and RunB identify the compared runs.
	RunA Run
	RunB Run

	// Deltas holds benchmarks present in both runs, ordered by name.
	Deltas []BenchmarkDelta

	// OnlyA and OnlyB list benchmark names present in just one run.
	OnlyA []string
	OnlyB []string
}
