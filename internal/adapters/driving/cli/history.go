package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List recorded backfill runs",
	Long: `Lists recorded backfill runs, most recent first.
With a run ID, shows that run's per-day outcomes instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	ctx := cmd.Context()

	if len(args) > 0 {
		return showRunDetail(cmd, args[0])
	}

	runs, err := historyService.ListRuns(ctx)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	cmd.Println("Recorded runs:")
	for i := range runs {
		cmd.Printf("  %s  %s  %s  (started %s)\n",
			runs[i].ID, runs[i].Range, runs[i].Command,
			runs[i].StartedAt.Format(time.RFC3339))
	}
	return nil
}

func showRunDetail(cmd *cobra.Command, runID string) error {
	detail, err := historyService.RunDetail(cmd.Context(), runID)
	if err != nil {
		return fmt.Errorf("loading run: %w", err)
	}

	cmd.Printf("Run %s: %s over %s\n", detail.Run.ID, detail.Run.Command, detail.Run.Range)
	for i := range detail.Outcomes {
		o := &detail.Outcomes[i]
		if o.Failed() {
			cmd.Printf("  %s  FAILED  %s\n", o.Day, o.Error)
			continue
		}
		cmd.Printf("  %s  exit %d  %s  %d benchmarks\n",
			o.Day, o.ExitCode, o.Duration.Round(time.Millisecond), len(o.Benchmarks))
	}
	if failed := detail.FailedDays(); failed > 0 {
		cmd.Printf("%d of %d days failed.\n", failed, len(detail.Outcomes))
	}
	return nil
}
