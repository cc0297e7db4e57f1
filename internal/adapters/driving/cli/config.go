package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage benchrange configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if configStore == nil {
			return errors.New("config store not configured")
		}

		cmd.Printf("Config file: %s\n", configStore.Path())
		if command := configStore.BenchmarkCommand(); len(command) > 0 {
			cmd.Printf("Benchmark command: %s\n", strings.Join(command, " "))
		} else {
			cmd.Println("Benchmark command: (not set)")
		}
		if dir := configStore.DataDir(); dir != "" {
			cmd.Printf("Data directory: %s\n", dir)
		}
		return nil
	},
}

var configSetCommandCmd = &cobra.Command{
	Use:   "set-command [program] [args...]",
	Short: "Set the default benchmark command",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if configStore == nil {
			return errors.New("config store not configured")
		}

		if err := configStore.SetBenchmarkCommand(args); err != nil {
			return fmt.Errorf("saving benchmark command: %w", err)
		}
		cmd.Printf("Benchmark command set to: %s\n", strings.Join(args, " "))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCommandCmd)
	rootCmd.AddCommand(configCmd)
}
