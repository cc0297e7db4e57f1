package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/benchrange-cli/internal/core/domain"
	"github.com/custodia-labs/benchrange-cli/internal/core/ports/driving"
)

var (
	runStart    string
	runEnd      string
	runCommand  string
	runFailFast bool
	runDryRun   bool
	runNoStore  bool
)

var runCmd = &cobra.Command{
	Use:   "run [-- benchmark-args...]",
	Short: "Run the benchmark once per day across a date range",
	Long: `Walks the date range from --start (inclusive) to --end (exclusive),
invoking the benchmark command once per day with "--date YYYY-MM-DD"
appended. Arguments after -- are passed to the benchmark unchanged.

Dates accept absolute ISO-8601 form (2022-08-01) and relative
expressions: today, yesterday, tomorrow, "-7 days", "2 days ago".

Failed days are recorded and the walk continues to the end of the range;
use --fail-fast to stop at the first failure instead. The run exits
non-zero when any day failed.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runStart, "start", "s", "", "start date (inclusive), e.g. 2022-08-01 or '-7 days'")
	runCmd.Flags().StringVarP(&runEnd, "end", "e", "", "end date (exclusive), defaults to today")
	runCmd.Flags().StringVarP(&runCommand, "command", "c", "", "benchmark command to invoke (defaults to the configured one)")
	runCmd.Flags().BoolVar(&runFailFast, "fail-fast", false, "stop at the first failed day")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "list the days without invoking the benchmark")
	runCmd.Flags().BoolVar(&runNoStore, "no-store", false, "skip recording results")
	_ = runCmd.MarkFlagRequired("start")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	now := time.Now()

	start, err := domain.NormaliseDay(runStart, now)
	if err != nil {
		return fmt.Errorf("start date: %w", err)
	}

	endExpr := runEnd
	if endExpr == "" {
		endExpr = "today"
	}
	end, err := domain.NormaliseDay(endExpr, now)
	if err != nil {
		return fmt.Errorf("end date: %w", err)
	}

	dateRange := domain.NewDateRange(start, end)
	cmd.Printf("Running from %s to %s (%d days)\n", start, end, dateRange.Len())

	if runDryRun {
		it := dateRange.Iter()
		for day, ok := it.Next(); ok; day, ok = it.Next() {
			cmd.Printf("  %s\n", day)
		}
		return nil
	}

	if backfillService == nil {
		return errors.New("backfill service not configured")
	}

	benchCommand, err := resolveCommand(args)
	if err != nil {
		return err
	}

	opts := driving.BackfillOptions{
		Range:    dateRange,
		Command:  benchCommand,
		FailFast: runFailFast,
		NoStore:  runNoStore,
		Progress: func(o domain.DayOutcome) {
			if o.Failed() {
				cmd.Printf("  %s: FAILED (%s)\n", o.Day, o.Error)
				return
			}
			cmd.Printf("  %s: ok (%d benchmarks, %s)\n",
				o.Day, len(o.Benchmarks), o.Duration.Round(time.Millisecond))
		},
	}

	summary, err := backfillService.Backfill(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("backfill failed: %w", err)
	}

	if failed := summary.FailedDays(); failed > 0 {
		return fmt.Errorf("%d of %d days failed: %w",
			failed, len(summary.Outcomes), domain.ErrBenchmarkFailed)
	}

	if runNoStore {
		cmd.Printf("Completed %d days.\n", len(summary.Outcomes))
	} else {
		cmd.Printf("Completed %d days, recorded as run %s.\n",
			len(summary.Outcomes), summary.Run.ID)
	}
	return nil
}

// resolveCommand builds the benchmark command line from the --command
// flag or the configured default, appending any passthrough args.
func resolveCommand(extraArgs []string) ([]string, error) {
	var benchCommand []string
	if runCommand != "" {
		benchCommand = strings.Fields(runCommand)
	} else if configStore != nil {
		benchCommand = configStore.BenchmarkCommand()
	}

	if len(benchCommand) == 0 {
		return nil, errors.New("no benchmark command configured; pass --command or set one with 'benchrange config set-command'")
	}
	return append(benchCommand, extraArgs...), nil
}
