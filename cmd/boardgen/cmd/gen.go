package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/opengridlab/boardgen/pkg/kicad/board"
	"github.com/opengridlab/boardgen/pkg/kicad/schematic"
	"github.com/opengridlab/boardgen/pkg/layout"
)

var (
	genCompact bool
	genOutput  string
	genWidth   float64
	genHeight  float64
	genLayers  int
	genPolicy  string
	genTitle   string
)

var genCmd = &cobra.Command{
	Use:   "gen <schematic_file>",
	Short: "Generate a board layout from a schematic",
	Long: `Parse a KiCad schematic, place its components under a layout policy,
and write a complete .kicad_pcb file.

The board dimensions and layer count default to the policy's values
(standard: 200x120mm 2-layer, compact: 160x100mm 4-layer) and can be
overridden individually. Generation is all-or-nothing: on a parse
failure or placement invariant violation no output file is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runGen,
}

func init() {
	rootCmd.AddCommand(genCmd)
	genCmd.Flags().BoolVarP(&genCompact, "compact", "c", false, "use the compact 4-layer layout (160x100mm)")
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "output board filename (default: schematic name with .kicad_pcb)")
	genCmd.Flags().Float64Var(&genWidth, "width", 0, "board width in mm (default: policy value)")
	genCmd.Flags().Float64Var(&genHeight, "height", 0, "board height in mm (default: policy value)")
	genCmd.Flags().IntVar(&genLayers, "layers", 0, "copper layer count, 2 or 4 (default: policy value)")
	genCmd.Flags().StringVar(&genPolicy, "policy", "", "layout policy TOML file")
	genCmd.Flags().StringVar(&genTitle, "title", "Generated Board", "title block title")
}

func runGen(cmd *cobra.Command, args []string) error {
	schPath := args[0]

	policy := layout.Standard
	if genCompact {
		policy = layout.Compact
	}
	if genPolicy != "" {
		p, err := layout.LoadPolicy(genPolicy)
		if err != nil {
			return fmt.Errorf("loading policy: %w", err)
		}
		policy = p
	}

	spec := board.Spec{Width: policy.Width, Height: policy.Height, Layers: policy.Layers}
	if cmd.Flags().Changed("width") {
		spec.Width = genWidth
	}
	if cmd.Flags().Changed("height") {
		spec.Height = genHeight
	}
	if cmd.Flags().Changed("layers") {
		spec.Layers = genLayers
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	logger.Debugf("policy %s: %gx%gmm, %d layers", policy.Name, spec.Width, spec.Height, spec.Layers)

	comps, err := schematic.ParseFile(schPath)
	if err != nil {
		return fmt.Errorf("parsing schematic: %w", err)
	}
	logger.Infof("extracted %d components", len(comps))

	parts := layout.GroupComponents(comps)
	if err := layout.Place(parts, policy, spec.Width, spec.Height); err != nil {
		return fmt.Errorf("placing components: %w", err)
	}

	ser := board.Serializer{
		Spec:  spec,
		IDs:   board.UUIDs(),
		Title: genTitle,
		Date:  time.Now().Format("2006-01"),
	}
	out, err := ser.Serialize(parts.Flatten())
	if err != nil {
		return fmt.Errorf("serializing board: %w", err)
	}

	outPath := genOutput
	if outPath == "" {
		outPath = strings.TrimSuffix(schPath, ".kicad_sch") + ".kicad_pcb"
	}
	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing board file: %w", err)
	}

	reportGroups(parts)
	bold := color.New(color.Bold)
	bold.Printf("Wrote %s (%d bytes)\n", outPath, len(out))
	return nil
}

func reportGroups(parts layout.Partition) {
	green := color.New(color.FgGreen)
	fmt.Printf("Placed %d components:\n", parts.Total())
	for _, g := range layout.AllGroups {
		if len(parts[g]) == 0 {
			continue
		}
		green.Printf("  %-14s", g)
		fmt.Printf("%d\n", len(parts[g]))
	}
}
