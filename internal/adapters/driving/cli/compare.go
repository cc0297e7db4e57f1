package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [run-a] [run-b]",
	Short: "Compare benchmark results between two runs",
	Long: `Aligns the benchmarks of two recorded runs by name and reports the
ns/iter change from the first run to the second. Each run contributes
its most recent measurement per benchmark.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	cmp, err := historyService.Compare(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("compare failed: %w", err)
	}

	if len(cmp.Deltas) == 0 && len(cmp.OnlyA) == 0 && len(cmp.OnlyB) == 0 {
		cmd.Println("No benchmarks recorded in either run.")
		return nil
	}

	cmd.Printf("Comparing %s -> %s\n", cmp.RunA.ID, cmp.RunB.ID)
	if len(cmp.Deltas) > 0 {
		cmd.Printf("  %-48s %14s %14s %8s\n", "benchmark", "before ns", "after ns", "change")
		for _, d := range cmp.Deltas {
			cmd.Printf("  %-48s %14d %14d %+7.1f%%\n", d.Name, d.Before, d.After, d.Pct())
		}
	}

	if len(cmp.OnlyA) > 0 {
		cmd.Printf("Only in %s: %s\n", cmp.RunA.ID, strings.Join(cmp.OnlyA, ", "))
	}
	if len(cmp.OnlyB) > 0 {
		cmd.Printf("Only in %s: %s\n", cmp.RunB.ID, strings.Join(cmp.OnlyB, ", "))
	}
	return nil
}
