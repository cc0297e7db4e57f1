package benchparse

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/benchrange-cli/internal/core/domain"
	"github.com/custodia-labs/benchrange-cli/internal/core/ports/driven"
)

// Ensure Parser implements the driven port.
var _ driven.OutputParser = (*Parser)(nil)

// benchLine matches a single cargo-bench result line:
//
//	test NAME ... bench: NS ns/iter (+/- VARIANCE) [= THROUGHPUT MB/s]
var benchLine = regexp.MustCompile(
	`test\s+(\S+)\s+\.\.\.\s+bench:\s+([0-9,]+)\s+ns/iter\s+\(\+/-\s+([0-9,]+)\)(?:\s+=\s+([0-9,]+)\s+MB/s)?`,
)

// Parser recognises benchmark result lines in command output.
type Parser struct{}

// New creates a parser.
func New() *Parser {
	return &Parser{}
}

// Parse reads r line by line and returns all recognised benchmark
// measurements, in input order. Lines that are not benchmark results
// are skipped.
func (p *Parser) Parse(r io.Reader) ([]domain.Benchmark, error) {
	scanner := bufio.NewScanner(r)
	// Benchmark names can get long; allow generous lines.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var benchmarks []domain.Benchmark
	for scanner.Scan() {
		if b, ok := ParseLine(scanner.Text()); ok {
			benchmarks = append(benchmarks, b)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading benchmark output: %w", err)
	}
	return benchmarks, nil
}

// ParseLine parses a single output line.
// Returns false when the line is not a benchmark result.
func ParseLine(line string) (domain.Benchmark, bool) {
	m := benchLine.FindStringSubmatch(line)
	if m == nil {
		return domain.Benchmark{}, false
	}

	ns, ok := parseCommas(m[2])
	if !ok {
		return domain.Benchmark{}, false
	}
	variance, ok := parseCommas(m[3])
	if !ok {
		return domain.Benchmark{}, false
	}

	var throughput uint64
	if m[4] != "" {
		throughput, _ = parseCommas(m[4])
	}

	return domain.NewBenchmark(m[1], ns, variance, throughput), true
}

// parseCommas parses an unsigned integer that may use comma grouping.
func parseCommas(s string) (uint64, bool) {
	n, err := strconv.ParseUint(strings.ReplaceAll(s, ",", ""), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
