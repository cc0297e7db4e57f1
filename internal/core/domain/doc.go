// Package domain defines the core business entities for benchrange.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Day: A calendar day normalised to midnight UTC
//   - DateRange: A half-open [start, end) span of days
//   - Benchmark: A single parsed micro-benchmark measurement
//   - Run: A recorded backfill over a date range
//   - DayOutcome: The captured result of one benchmark invocation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
