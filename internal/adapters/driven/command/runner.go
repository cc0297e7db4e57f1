// Package command runs the external benchmark executable,
// capturing its output and exit status.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/custodia-labs/benchrange-cli/internal/core/domain"
	"github.com/custodia-labs/benchrange-cli/internal/core/ports/driven"
	"github.com/custodia-labs/benchrange-cli/internal/logger"
)

// Ensure Runner implements the driven port.
var _ driven.BenchRunner = (*Runner)(nil)

// Runner executes benchmark commands via os/exec.
type Runner struct{}

// NewRunner creates a runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the command once with "--date YYYY-MM-DD" appended,
// blocking until the process exits. The invocation carries no timeout;
// cancellation comes from ctx.
//
// A non-zero exit status is reported through the result. The error
// return is reserved for invocations that never produced a status:
// command not found, cancelled context, and the like.
func (r *Runner) Run(ctx context.Context, cmdline []string, day domain.Day) (domain.InvocationResult, error) {
	if len(cmdline) == 0 {
		return domain.InvocationResult{}, fmt.Errorf("%w: empty command", domain.ErrInvalidInput)
	}

	args := make([]string, 0, len(cmdline)+1)
	args = append(args, cmdline[1:]...)
	args = append(args, "--date", day.String())

	cmd := exec.CommandContext(ctx, cmdline[0], args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("exec: %s %v", cmdline[0], args)

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	result := domain.InvocationResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: elapsed,
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		if ctx.Err() != nil {
			return result, fmt.Errorf("benchmark command cancelled: %w", ctx.Err())
		}
		return result, fmt.Errorf("running benchmark command: %w", err)
	}

	return result, nil
}
