package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDate indicates a date expression could not be normalised.
	// No iteration begins when either end of the range fails to parse.
	ErrInvalidDate = errors.New("invalid date")

	// ErrBenchmarkFailed indicates one or more benchmark invocations
	// exited non-zero during a backfill.
	ErrBenchmarkFailed = errors.New("benchmark failed")
)
