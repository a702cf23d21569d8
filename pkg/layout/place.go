package layout

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/opengridlab/boardgen/pkg/kicad/schematic"
)

// Supercap banks are always 10 columns wide regardless of policy.
const bankCols = 10

// Place assigns a position and rotation to every component in the
// partition. The result is a pure function of the partition contents,
// the board dimensions, and the policy constants: re-running on equal
// input produces identical coordinates.
func Place(parts Partition, p *Policy, width, height float64) error {
	for g := range parts {
		if !knownGroup(g) {
			// Partition keys come from the classifier, which is
			// total over the nine groups. Anything else is a
			// programmer error.
			panic(fmt.Sprintf("layout: unknown group %q", g))
		}
	}

	r := resolver{p: p, w: width, h: height}

	scX, err := r.x(p.SupercapOrigin.X)
	if err != nil {
		return err
	}
	scPosY, err := r.y(p.SupercapOrigin.Y)
	if err != nil {
		return err
	}
	negY := scPosY + float64(p.BankRows)*p.SupercapPitch + p.BankGap
	r.ctrlY = negY + float64(p.BankRows)*p.SupercapPitch + p.ControlGap

	placeBank(parts[SupercapPos], scX, scPosY, p.SupercapPitch)
	placeBank(parts[SupercapNeg], scX, negY, p.SupercapPitch)

	// Everything after the banks may anchor on the MCU, so resolve
	// that point before the remaining groups.
	mcuX, err := r.x(p.MCU.X)
	if err != nil {
		return err
	}
	mcuY, err := r.y(p.MCU.Y)
	if err != nil {
		return err
	}
	r.mcuX, r.mcuY = mcuX, mcuY
	for _, c := range parts[MCU] {
		c.Place(mcuX, mcuY, 0)
	}

	if err := r.placeLine(parts[Connectors], p.Connectors); err != nil {
		return err
	}
	if err := r.placeLine(parts[Discharge], p.Discharge); err != nil {
		return err
	}
	if err := r.placeLine(parts[Sensing], p.Sensing); err != nil {
		return err
	}
	if err := r.placePoint(parts[Power], p.Power); err != nil {
		return err
	}
	if err := r.placeGrid(parts[Charging], p.Charging); err != nil {
		return err
	}
	if err := r.placeGrid(parts[Passives], p.Passives); err != nil {
		return err
	}
	return nil
}

// placeBank fills a fixed 10-column grid in ascending reference-number
// order. The partition slice itself keeps extraction order; only the
// index assignment sorts.
func placeBank(comps []*schematic.Component, x0, y0, pitch float64) {
	sorted := make([]*schematic.Component, len(comps))
	copy(sorted, comps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return refNumber(sorted[i].Ref) < refNumber(sorted[j].Ref)
	})
	for i, c := range sorted {
		col := i % bankCols
		row := i / bankCols
		c.Place(x0+float64(col)*pitch, y0+float64(row)*pitch, 0)
	}
}

// refNumber returns the numeric suffix of a reference designator
// ("C131" -> 131). References without a numeric suffix sort first.
func refNumber(ref string) int {
	i := 0
	for i < len(ref) && (ref[i] < '0' || ref[i] > '9') {
		i++
	}
	n, err := strconv.Atoi(ref[i:])
	if err != nil {
		return 0
	}
	return n
}

func knownGroup(g Group) bool {
	for _, k := range AllGroups {
		if g == k {
			return true
		}
	}
	return false
}

// resolver turns anchored policy coordinates into absolute board
// positions for one placement run.
type resolver struct {
	p          *Policy
	w, h       float64
	ctrlY      float64
	mcuX, mcuY float64
}

func (r *resolver) x(c Coord) (float64, error) {
	switch c.Anchor {
	case AnchorLeft:
		return r.p.Margin + c.Offset, nil
	case AnchorRight:
		return r.w - r.p.Margin + c.Offset, nil
	case AnchorCenter:
		return r.w/2 + c.Offset, nil
	case AnchorMCU:
		return r.mcuX + c.Offset, nil
	}
	return 0, fmt.Errorf("%w: unknown horizontal anchor %q", ErrBadPolicy, c.Anchor)
}

func (r *resolver) y(c Coord) (float64, error) {
	switch c.Anchor {
	case AnchorTop:
		return r.p.Margin + c.Offset, nil
	case AnchorMiddle:
		return r.h/2 + c.Offset, nil
	case AnchorControl:
		return r.ctrlY + c.Offset, nil
	case AnchorMCU:
		return r.mcuY + c.Offset, nil
	}
	return 0, fmt.Errorf("%w: unknown vertical anchor %q", ErrBadPolicy, c.Anchor)
}

func (r *resolver) origin(pt Point) (float64, float64, error) {
	x, err := r.x(pt.X)
	if err != nil {
		return 0, 0, err
	}
	y, err := r.y(pt.Y)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func (r *resolver) placeLine(comps []*schematic.Component, l Line) error {
	x0, y0, err := r.origin(l.Origin)
	if err != nil {
		return err
	}
	for i, c := range comps {
		c.Place(x0+float64(i)*l.StepX, y0+float64(i)*l.StepY, l.Rotation)
	}
	return nil
}

func (r *resolver) placePoint(comps []*schematic.Component, pt Point) error {
	x, y, err := r.origin(pt)
	if err != nil {
		return err
	}
	for _, c := range comps {
		c.Place(x, y, 0)
	}
	return nil
}

func (r *resolver) placeGrid(comps []*schematic.Component, g Grid) error {
	x0, y0, err := r.origin(g.Origin)
	if err != nil {
		return err
	}
	for i, c := range comps {
		col := i % g.Cols
		row := i / g.Cols
		c.Place(x0+float64(col)*g.PitchX, y0+float64(row)*g.PitchY, 0)
	}
	return nil
}
