// Package schematic extracts placed components from KiCad schematic
// files (.kicad_sch).
package schematic

// Component is one placed part pulled out of a schematic: its
// reference designator, value, footprint, and (once the layout engine
// has run) its board position.
type Component struct {
	Ref       string // reference designator, e.g. "C101", "U1"
	Value     string
	Footprint string // library-qualified footprint name
	LibID     string // schematic library id, e.g. "Device:R"

	X, Y     float64 // board position in mm
	Rotation int     // degrees, one of 0/90/180/270
	Layer    string  // copper layer

	placed bool
}

// Place assigns the board position. The layout engine calls this
// exactly once per component; afterwards the component is read-only.
func (c *Component) Place(x, y float64, rotation int) {
	c.X = x
	c.Y = y
	c.Rotation = rotation
	c.placed = true
}

// Placed reports whether the layout engine has positioned the
// component.
func (c *Component) Placed() bool {
	return c.placed
}
