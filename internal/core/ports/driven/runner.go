package driven

import (
	"context"

	"github.com/custodia-labs/benchrange-cli/internal/core/domain"
)

// BenchRunner invokes the external benchmark command.
type BenchRunner interface {
	// Run executes command once with the given day appended as a dated
	// argument, blocking until the process exits. A non-zero exit status
	// is reported through the result, not the error; the error is
	// reserved for invocations that could not start or were cancelled.
	Run(ctx context.Context, command []string, day domain.Day) (domain.InvocationResult, error)
}
