// Package cmd implements the boardgen command-line interface.
package cmd

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  = charmlog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "boardgen",
	Short: "Generate KiCad board layouts from schematics",
	Long: `boardgen reads a KiCad schematic, groups its components by function,
computes a deterministic placement, and writes a complete .kicad_pcb
board file ready for routing.

Examples:
  boardgen info softstart.kicad_sch               # Extraction summary
  boardgen gen softstart.kicad_sch -o out.kicad_pcb
  boardgen gen softstart.kicad_sch --compact      # 160x100mm 4-layer`,
	Version:      "0.1.0",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := charmlog.InfoLevel
		if verbose {
			level = charmlog.DebugLevel
		}
		logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		})
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
