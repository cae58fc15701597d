package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Output formats accepted by --format.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var (
	// Global flags that apply to all commands
	logLevel string
	format   string
)

var rootCmd = &cobra.Command{
	Use:   "spmatrix",
	Short: "Sparse N-dimensional matrix playground",
	Long: `spmatrix drives the sparse matrix package: only cells that differ from
the default value are stored, and every other cell reads as the default.

Examples:
  # Print the 10x10 diagonal demo, its size and stored cells
  spmatrix demo

  # Same matrix, a 4x4 window and YAML output
  spmatrix demo --from 3 --to 6 --format yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch format {
		case formatTable, formatJSON, formatYAML:
		default:
			return fmt.Errorf("unknown output format %q (want table|json|yaml)", format)
		}
		return initLogging(cmd.ErrOrStderr(), logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", formatTable, "Output format: table|json|yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug|info|warn|error")

	rootCmd.AddCommand(demoCmd)
}
