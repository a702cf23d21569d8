package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/opengridlab/boardgen/pkg/kicad/schematic"
	"github.com/opengridlab/boardgen/pkg/layout"
)

var infoCmd = &cobra.Command{
	Use:   "info <schematic_file>",
	Short: "Show extraction and classification summary",
	Long: `Parse a KiCad schematic and report the components that would be
placed, grouped by function, without generating a board.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	comps, err := schematic.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("parsing schematic: %w", err)
	}

	fmt.Printf("Schematic: %s\n", args[0])
	fmt.Printf("Components with footprints: %d\n\n", len(comps))

	parts := layout.GroupComponents(comps)
	green := color.New(color.FgGreen)
	for _, g := range layout.AllGroups {
		group := parts[g]
		if len(group) == 0 {
			continue
		}
		green.Printf("%s (%d):\n", g, len(group))
		for _, c := range group {
			fmt.Printf("  %-8s %-20s %s\n", c.Ref, c.Value, c.Footprint)
		}
		fmt.Println()
	}
	return nil
}
