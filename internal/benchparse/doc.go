// Package benchparse extracts micro-benchmark measurements from
// cargo-bench style output.
//
// A benchmark line has the shape:
//
//	test mod::bench_name ... bench: 1,234 ns/iter (+/- 56) = 789 MB/s
//
// The throughput tail is optional. Integers may use comma grouping.
// Everything else in the stream (test headers, summaries, noise) is
// ignored.
package benchparse
