package domain

import (
	"sort"
	"strings"
)

// Benchmark is a single parsed micro-benchmark measurement.
type Benchmark struct {
	// Name is the fully qualified test name, e.g. "fastfield::bench_lookup".
	Name string

	// Shortname is the last path segment of Name, e.g. "bench_lookup".
	Shortname string

	// Ns is the benchmark duration in nanoseconds per iteration.
	Ns uint64

	// Variance is the reported +/- spread in nanoseconds.
	Variance uint64

	// Throughput is the reported rate in MB/s, or zero when the
	// benchmark did not report one.
	Throughput uint64
}

// NewBenchmark builds a Benchmark, deriving Shortname from name.
func NewBenchmark(name string, ns, variance, throughput uint64) Benchmark {
	return Benchmark{
		Name:       name,
		Shortname:  shortname(name),
		Ns:         ns,
		Variance:   variance,
		Throughput: throughput,
	}
}

// shortname returns the portion of name after the last colon.
func shortname(name string) string {
	if i := strings.LastIndex(name, ":"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// SortBenchmarks orders benchmarks by full name, ascending.
func SortBenchmarks(benchmarks []Benchmark) {
	sort.Slice(benchmarks, func(i, j int) bool {
		return benchmarks[i].Name < benchmarks[j].Name
	})
}
