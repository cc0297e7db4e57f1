package cli

import (
	"context"

	"github.com/custodia-labs/benchrange-cli/internal/core/domain"
	"github.com/custodia-labs/benchrange-cli/internal/core/ports/driving"
)

// --- Fake services shared by the command tests ---

type fakeBackfill struct {
	called   bool
	lastOpts driving.BackfillOptions
	summary  *domain.RunSummary
	err      error
}

func (f *fakeBackfill) Backfill(_ context.Context, opts driving.BackfillOptions) (*domain.RunSummary, error) {
	f.called = true
	f.lastOpts = opts

	if f.err != nil || f.summary != nil {
		return f.summary, f.err
	}

	// Default behaviour: one clean outcome per day, reported as progress.
	summary := &domain.RunSummary{Run: domain.Run{ID: "run-test"}}
	it := opts.Range.Iter()
	for day, ok := it.Next(); ok; day, ok = it.Next() {
		outcome := domain.DayOutcome{RunID: "run-test", Day: day}
		summary.Outcomes = append(summary.Outcomes, outcome)
		if opts.Progress != nil {
			opts.Progress(outcome)
		}
	}
	return summary, nil
}

type fakeHistory struct {
	runs       []domain.Run
	detail     *domain.RunSummary
	comparison *domain.RunComparison
	err        error
}

func (f *fakeHistory) ListRuns(_ context.Context) ([]domain.Run, error) {
	return f.runs, f.err
}

func (f *fakeHistory) RunDetail(_ context.Context, _ string) (*domain.RunSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.detail, nil
}

func (f *fakeHistory) Compare(_ context.Context, _, _ string) (*domain.RunComparison, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.comparison, nil
}

type fakeConfig struct {
	command    []string
	dataDir    string
	setCommand []string
}

func (f *fakeConfig) BenchmarkCommand() []string { return f.command }

func (f *fakeConfig) SetBenchmarkCommand(command []string) error {
	f.setCommand = command
	return nil
}

func (f *fakeConfig) DataDir() string { return f.dataDir }

func (f *fakeConfig) Path() string { return "/tmp/benchrange/config.toml" }

// setupTestServices wires fake services and returns them with a cleanup
// that unwires everything and resets run command flags.
func setupTestServices() (*fakeBackfill, *fakeHistory, *fakeConfig, func()) {
	fb := &fakeBackfill{}
	fh := &fakeHistory{}
	fc := &fakeConfig{command: []string{"./bench.sh"}}

	SetServices(&Services{Backfill: fb, History: fh, Config: fc})

	cleanup := func() {
		SetServices(nil)
		resetRunFlags()
	}
	return fb, fh, fc, cleanup
}

// resetRunFlags clears the package-level flag values between tests;
// cobra keeps parsed values across Execute calls.
func resetRunFlags() {
	runStart = ""
	runEnd = ""
	runCommand = ""
	runFailFast = false
	runDryRun = false
	runNoStore = false
}
