package driven

import (
	"io"

	"github.com/custodia-labs/benchrange-cli/internal/core/domain"
)

// OutputParser extracts benchmark measurements from command output.
type OutputParser interface {
	// Parse reads output line by line and returns all recognised
	// benchmark measurements. Unrecognised lines are skipped; output
	// with no benchmark lines yields an empty slice, not an error.
	Parse(r io.Reader) ([]domain.Benchmark, error)
}
