// Package cli implements the benchrange command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/benchrange-cli/internal/core/ports/driven"
	"github.com/custodia-labs/benchrange-cli/internal/core/ports/driving"
	"github.com/custodia-labs/benchrange-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Services bundles the dependencies the commands call into.
type Services struct {
	Backfill driving.BackfillService
	History  driving.HistoryService
	Config   driven.ConfigStore

	// Cleanup, when non-nil, runs after command execution
	// (e.g. closing the result store).
	Cleanup func()
}

var (
	backfillService driving.BackfillService
	historyService  driving.HistoryService
	configStore     driven.ConfigStore
	cleanupFn       func()
)

// SetServices wires the services the commands use.
func SetServices(s *Services) {
	if s == nil {
		backfillService = nil
		historyService = nil
		configStore = nil
		cleanupFn = nil
		return
	}
	backfillService = s.Backfill
	historyService = s.History
	configStore = s.Config
	cleanupFn = s.Cleanup
}

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "benchrange",
	Short: "Run a benchmark command across a calendar date range",
	Long: `benchrange walks a calendar date range and invokes an external
benchmark command once per day, recording each day's outcome so that
benchmark history can be inspected and compared later.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"print verbose diagnostics to stderr")
}

// Execute runs the root command and releases wired resources afterwards.
func Execute() error {
	defer func() {
		if cleanupFn != nil {
			cleanupFn()
		}
	}()
	return rootCmd.Execute()
}
