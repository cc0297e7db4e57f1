// benchrange runs an external benchmark command once per day across a
// calendar date range and records each day's outcome.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/benchrange-cli/internal/adapters/driven/command"
	configfile "github.com/custodia-labs/benchrange-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/benchrange-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/benchrange-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/benchrange-cli/internal/benchparse"
	"github.com/custodia-labs/benchrange-cli/internal/core/services"
	"github.com/custodia-labs/benchrange-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// BENCHRANGE_CONFIG_DIR overrides ~/.benchrange, mainly for tests
	// and sandboxed installs.
	configStore, err := configfile.NewConfigStore(os.Getenv("BENCHRANGE_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	store, err := sqlite.NewStore(configStore.DataDir())
	if err != nil {
		return fmt.Errorf("opening result store: %w", err)
	}

	resultStore := store.ResultStore()
	runner := command.NewRunner()
	parser := benchparse.New()

	cli.SetServices(&cli.Services{
		Backfill: services.NewBackfill(runner, parser, resultStore),
		History:  services.NewHistory(resultStore),
		Config:   configStore,
		Cleanup: func() {
			if err := store.Close(); err != nil {
				logger.Warn("closing result store: %v", err)
			}
		},
	})

	return cli.Execute()
}
