package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/opengridlab/boardgen/pkg/kicad/schematic"
	"github.com/opengridlab/boardgen/pkg/kicad/sexp"
)

// ErrUnplaced means a component reached the serializer without having
// been positioned by the layout engine. Output is all-or-nothing, so
// the check runs over every component before anything is emitted.
var ErrUnplaced = errors.New("component has no position")

// File format version emitted in the header.
const formatVersion = 20241229

// The net table is fixed: real net assignments happen later, when the
// board is updated from the schematic inside the EDA tool.
var nets = []struct {
	num  int
	name string
}{
	{0, ""},
	{1, "GND"},
	{2, "+3.3V"},
	{3, "AC_L"},
	{4, "AC_N"},
	{5, "SC_POS"},
	{6, "SC_NEG"},
}

// Corner inset of the four M3 mounting holes, in mm.
const mountInset = 4.0

// Serializer renders a positioned component set as a complete board
// document that round-trips through the sexp parser.
//
// No validation is performed on footprint names; resolving them
// against real libraries is the EDA tool's job.
type Serializer struct {
	Spec  Spec
	IDs   IDGenerator // nil means UUIDs()
	Title string
	Date  string
	Rev   string
}

// Serialize emits the board document: header and title block, layer
// table, setup block, net table, board outline, mounting holes, and
// one footprint block per component in input order.
func (s *Serializer) Serialize(comps []*schematic.Component) (string, error) {
	if err := s.Spec.Validate(); err != nil {
		return "", err
	}
	for _, c := range comps {
		if !c.Placed() {
			return "", fmt.Errorf("%w: %s", ErrUnplaced, c.Ref)
		}
	}

	ids := s.IDs
	if ids == nil {
		ids = UUIDs()
	}

	var b strings.Builder
	s.writeHeader(&b)
	s.writeLayers(&b)
	s.writeSetup(&b)
	writeNets(&b)
	s.writeOutline(&b, ids)
	s.writeMountingHoles(&b, ids)
	for _, c := range comps {
		writeFootprint(&b, c, ids)
	}
	b.WriteString(")\n")
	return b.String(), nil
}

func (s *Serializer) writeHeader(b *strings.Builder) {
	title := s.Title
	if title == "" {
		title = "Generated Board"
	}
	rev := s.Rev
	if rev == "" {
		rev = "A"
	}

	fmt.Fprintf(b, "(kicad_pcb\n")
	fmt.Fprintf(b, "  (version %d)\n", formatVersion)
	fmt.Fprintf(b, "  (generator \"boardgen\")\n")
	fmt.Fprintf(b, "  (generator_version \"1.0\")\n")
	fmt.Fprintf(b, "  (general\n")
	fmt.Fprintf(b, "    (thickness 1.6)\n")
	fmt.Fprintf(b, "    (legacy_teardrops no)\n")
	fmt.Fprintf(b, "  )\n")
	fmt.Fprintf(b, "  (paper \"A4\")\n")
	fmt.Fprintf(b, "  (title_block\n")
	fmt.Fprintf(b, "    (title %s)\n", sexp.Quote(title))
	fmt.Fprintf(b, "    (date %s)\n", sexp.Quote(s.Date))
	fmt.Fprintf(b, "    (rev %s)\n", sexp.Quote(rev))
	fmt.Fprintf(b, "    (comment 1 \"Supercapacitor Power Assist\")\n")
	fmt.Fprintf(b, "    (comment 2 %s)\n", sexp.Quote(s.stackupComment()))
	fmt.Fprintf(b, "  )\n")
}

func (s *Serializer) stackupComment() string {
	if s.Spec.Layers == 4 {
		return fmt.Sprintf("%.0fx%.0fmm 4-layer: F.Cu/GND/PWR/B.Cu", s.Spec.Width, s.Spec.Height)
	}
	return fmt.Sprintf("%.0fx%.0fmm 2-layer PCB", s.Spec.Width, s.Spec.Height)
}

// writeLayers emits the layer table. The 4-layer stack adds the two
// internal copper layers; everything else is identical.
func (s *Serializer) writeLayers(b *strings.Builder) {
	b.WriteString("  (layers\n")
	b.WriteString("    (0 \"F.Cu\" signal)\n")
	if s.Spec.Layers == 4 {
		b.WriteString("    (1 \"In1.Cu\" signal)\n")
		b.WriteString("    (2 \"In2.Cu\" signal)\n")
	}
	b.WriteString("    (31 \"B.Cu\" signal)\n")
	b.WriteString("    (32 \"B.Adhes\" user \"B.Adhesive\")\n")
	b.WriteString("    (33 \"F.Adhes\" user \"F.Adhesive\")\n")
	b.WriteString("    (34 \"B.Paste\" user)\n")
	b.WriteString("    (35 \"F.Paste\" user)\n")
	b.WriteString("    (36 \"B.SilkS\" user \"B.Silkscreen\")\n")
	b.WriteString("    (37 \"F.SilkS\" user \"F.Silkscreen\")\n")
	b.WriteString("    (38 \"B.Mask\" user)\n")
	b.WriteString("    (39 \"F.Mask\" user)\n")
	b.WriteString("    (40 \"Dwgs.User\" user \"User.Drawings\")\n")
	b.WriteString("    (41 \"Cmts.User\" user \"User.Comments\")\n")
	b.WriteString("    (44 \"Edge.Cuts\" user)\n")
	b.WriteString("    (46 \"B.CrtYd\" user \"B.Courtyard\")\n")
	b.WriteString("    (47 \"F.CrtYd\" user \"F.Courtyard\")\n")
	b.WriteString("    (48 \"B.Fab\" user)\n")
	b.WriteString("    (49 \"F.Fab\" user)\n")
	b.WriteString("  )\n")
}

func (s *Serializer) writeSetup(b *strings.Builder) {
	b.WriteString("  (setup\n")
	b.WriteString("    (pad_to_mask_clearance 0.05)\n")
	b.WriteString("    (allow_soldermask_bridges_in_footprints no)\n")
	b.WriteString("    (pcbplotparams\n")
	b.WriteString("      (layerselection 0x00010fc_ffffffff)\n")
	b.WriteString("      (plot_on_all_layers_selection 0x0000000_00000000)\n")
	b.WriteString("    )\n")
	b.WriteString("  )\n")
}

func writeNets(b *strings.Builder) {
	for _, n := range nets {
		fmt.Fprintf(b, "  (net %d %s)\n", n.num, sexp.Quote(n.name))
	}
}

// writeOutline emits the rectangular board edge on Edge.Cuts,
// spanning (0,0) to (width,height).
func (s *Serializer) writeOutline(b *strings.Builder, ids IDGenerator) {
	fmt.Fprintf(b, "  (gr_rect\n")
	fmt.Fprintf(b, "    (start 0 0)\n")
	fmt.Fprintf(b, "    (end %s %s)\n", FormatCoord(s.Spec.Width), FormatCoord(s.Spec.Height))
	fmt.Fprintf(b, "    (stroke\n")
	fmt.Fprintf(b, "      (width 0.15)\n")
	fmt.Fprintf(b, "      (type solid)\n")
	fmt.Fprintf(b, "    )\n")
	fmt.Fprintf(b, "    (fill none)\n")
	fmt.Fprintf(b, "    (layer \"Edge.Cuts\")\n")
	fmt.Fprintf(b, "    (uuid %s)\n", sexp.Quote(ids.Next()))
	fmt.Fprintf(b, "  )\n")
}

func (s *Serializer) writeMountingHoles(b *strings.Builder, ids IDGenerator) {
	positions := [4][2]float64{
		{mountInset, mountInset},
		{s.Spec.Width - mountInset, mountInset},
		{mountInset, s.Spec.Height - mountInset},
		{s.Spec.Width - mountInset, s.Spec.Height - mountInset},
	}
	for i, pos := range positions {
		fmt.Fprintf(b, "  (footprint \"MountingHole:MountingHole_3.2mm_M3\"\n")
		fmt.Fprintf(b, "    (layer \"F.Cu\")\n")
		fmt.Fprintf(b, "    (uuid %s)\n", sexp.Quote(ids.Next()))
		fmt.Fprintf(b, "    (at %s %s)\n", FormatCoord(pos[0]), FormatCoord(pos[1]))
		writeProperty(b, "Reference", fmt.Sprintf("H%d", i+1), "0 -3 0", "F.SilkS", false, ids)
		writeProperty(b, "Value", "MountingHole", "0 3 0", "F.Fab", false, ids)
		writeProperty(b, "Footprint", "MountingHole:MountingHole_3.2mm_M3", "0 0 0", "F.Fab", true, ids)
		fmt.Fprintf(b, "    (pad \"1\" thru_hole circle\n")
		fmt.Fprintf(b, "      (at 0 0)\n")
		fmt.Fprintf(b, "      (size 6.4 6.4)\n")
		fmt.Fprintf(b, "      (drill 3.2)\n")
		fmt.Fprintf(b, "      (layers \"*.Cu\" \"*.Mask\")\n")
		fmt.Fprintf(b, "      (remove_unused_layers no)\n")
		fmt.Fprintf(b, "      (uuid %s)\n", sexp.Quote(ids.Next()))
		fmt.Fprintf(b, "    )\n")
		fmt.Fprintf(b, "  )\n")
	}
}

func writeFootprint(b *strings.Builder, c *schematic.Component, ids IDGenerator) {
	fmt.Fprintf(b, "  (footprint %s\n", sexp.Quote(c.Footprint))
	fmt.Fprintf(b, "    (layer %s)\n", sexp.Quote(c.Layer))
	fmt.Fprintf(b, "    (uuid %s)\n", sexp.Quote(ids.Next()))
	fmt.Fprintf(b, "    (at %s %s %d)\n", FormatCoord(c.X), FormatCoord(c.Y), c.Rotation)
	writeProperty(b, "Reference", c.Ref, "0 -2 0", "F.SilkS", false, ids)
	writeProperty(b, "Value", c.Value, "0 2 0", "F.Fab", false, ids)
	writeProperty(b, "Footprint", c.Footprint, "0 0 0", "F.Fab", true, ids)
	fmt.Fprintf(b, "  )\n")
}

func writeProperty(b *strings.Builder, name, value, at, layer string, hide bool, ids IDGenerator) {
	fmt.Fprintf(b, "    (property %s %s\n", sexp.Quote(name), sexp.Quote(value))
	fmt.Fprintf(b, "      (at %s)\n", at)
	fmt.Fprintf(b, "      (layer %s)\n", sexp.Quote(layer))
	if hide {
		fmt.Fprintf(b, "      (hide yes)\n")
	}
	fmt.Fprintf(b, "      (uuid %s)\n", sexp.Quote(ids.Next()))
	if hide {
		fmt.Fprintf(b, "      (effects (font (size 1 1) (thickness 0.15)))\n")
	} else {
		fmt.Fprintf(b, "      (effects (font (size 0.8 0.8) (thickness 0.12)))\n")
	}
	fmt.Fprintf(b, "    )\n")
}
