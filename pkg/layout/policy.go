package layout

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// The two built-in layout strategies share one placement algorithm;
// they differ only in the numeric constants below. A third strategy
// is a TOML file loaded with LoadPolicy, not new code.

// Anchor names the board feature an offset is measured from.
type Anchor string

const (
	AnchorLeft    Anchor = "left"    // left margin line
	AnchorRight   Anchor = "right"   // right margin line
	AnchorCenter  Anchor = "center"  // horizontal board center
	AnchorTop     Anchor = "top"     // top margin line
	AnchorMiddle  Anchor = "middle"  // vertical board center
	AnchorControl Anchor = "control" // top of the control section below the supercap banks
	AnchorMCU     Anchor = "mcu"     // resolved MCU position
)

// Coord is an offset in mm from a named anchor, resolved against the
// board dimensions at placement time.
type Coord struct {
	Anchor Anchor  `toml:"anchor"`
	Offset float64 `toml:"offset"`
}

// Point is an anchored origin.
type Point struct {
	X Coord `toml:"x"`
	Y Coord `toml:"y"`
}

// Line places each component one step vector further from the origin.
type Line struct {
	Origin   Point   `toml:"origin"`
	StepX    float64 `toml:"step_x"`
	StepY    float64 `toml:"step_y"`
	Rotation int     `toml:"rotation"`
}

// Grid wraps components into fixed-pitch columns.
type Grid struct {
	Origin Point   `toml:"origin"`
	Cols   int     `toml:"cols"`
	PitchX float64 `toml:"pitch_x"`
	PitchY float64 `toml:"pitch_y"`
}

// Policy is the complete numeric configuration of one layout
// strategy, plus the board defaults it was designed for.
type Policy struct {
	Name   string  `toml:"name"`
	Width  float64 `toml:"width"`  // default board width in mm
	Height float64 `toml:"height"` // default board height in mm
	Layers int     `toml:"layers"` // default copper layer count
	Margin float64 `toml:"margin"`

	// Supercap banks: fixed 10-column grids, positive bank at the
	// origin, negative bank BankGap below it. The control section
	// starts ControlGap below the negative bank.
	SupercapOrigin Point   `toml:"supercap_origin"`
	SupercapPitch  float64 `toml:"supercap_pitch"`
	BankRows       int     `toml:"bank_rows"`
	BankGap        float64 `toml:"bank_gap"`
	ControlGap     float64 `toml:"control_gap"`

	Connectors Line  `toml:"connectors"`
	Discharge  Line  `toml:"discharge"`
	MCU        Point `toml:"mcu"`
	Sensing    Line  `toml:"sensing"`
	Power      Point `toml:"power"`
	Charging   Grid  `toml:"charging"`
	Passives   Grid  `toml:"passives"`
}

// Standard is the generous 2-layer layout: supercap banks on the
// left, control electronics on the right.
var Standard = &Policy{
	Name:   "standard",
	Width:  200,
	Height: 120,
	Layers: 2,
	Margin: 5,

	SupercapOrigin: Point{X: Coord{AnchorLeft, 25}, Y: Coord{AnchorTop, 15}},
	SupercapPitch:  12,
	BankRows:       3,
	BankGap:        10,
	ControlGap:     0,

	Connectors: Line{Origin: Point{X: Coord{AnchorLeft, 8}, Y: Coord{AnchorTop, 20}}, StepY: 18},
	Discharge:  Line{Origin: Point{X: Coord{AnchorRight, -12}, Y: Coord{AnchorMiddle, -10}}, StepY: 20, Rotation: 270},
	MCU:        Point{X: Coord{AnchorRight, -40}, Y: Coord{AnchorTop, 20}},
	Sensing:    Line{Origin: Point{X: Coord{AnchorRight, -50}, Y: Coord{AnchorTop, 45}}, StepY: 12},
	Power:      Point{X: Coord{AnchorMCU, -18}, Y: Coord{AnchorMCU, 0}},
	Charging:   Grid{Origin: Point{X: Coord{AnchorRight, -70}, Y: Coord{AnchorMiddle, 10}}, Cols: 2, PitchX: 12, PitchY: 10},
	Passives:   Grid{Origin: Point{X: Coord{AnchorRight, -55}, Y: Coord{AnchorTop, 75}}, Cols: 5, PitchX: 7, PitchY: 5},
}

// Compact is the tight 4-layer layout: supercap banks across the top
// half, control electronics below them.
var Compact = &Policy{
	Name:   "compact",
	Width:  160,
	Height: 100,
	Layers: 4,
	Margin: 4,

	SupercapOrigin: Point{X: Coord{AnchorLeft, 8}, Y: Coord{AnchorTop, 8}},
	SupercapPitch:  11,
	BankRows:       3,
	BankGap:        4,
	ControlGap:     8,

	Connectors: Line{Origin: Point{X: Coord{AnchorLeft, 8}, Y: Coord{AnchorControl, 5}}, StepX: 15},
	Discharge:  Line{Origin: Point{X: Coord{AnchorRight, -10}, Y: Coord{AnchorControl, 10}}, StepY: 15, Rotation: 270},
	MCU:        Point{X: Coord{AnchorCenter, 0}, Y: Coord{AnchorControl, 8}},
	Sensing:    Line{Origin: Point{X: Coord{AnchorMCU, 25}, Y: Coord{AnchorMCU, 0}}, StepY: 10},
	Power:      Point{X: Coord{AnchorMCU, -15}, Y: Coord{AnchorMCU, 0}},
	Charging:   Grid{Origin: Point{X: Coord{AnchorRight, -45}, Y: Coord{AnchorControl, 5}}, Cols: 2, PitchX: 10, PitchY: 8},
	Passives:   Grid{Origin: Point{X: Coord{AnchorMCU, -25}, Y: Coord{AnchorControl, 20}}, Cols: 6, PitchX: 6, PitchY: 5},
}

var ErrBadPolicy = errors.New("invalid layout policy")

// LoadPolicy reads a layout policy from a TOML file.
func LoadPolicy(path string) (*Policy, error) {
	var p Policy
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("decoding policy file: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the constraints the placement algorithm relies on.
func (p *Policy) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: board defaults must be positive, got %gx%g", ErrBadPolicy, p.Width, p.Height)
	}
	if p.Layers != 2 && p.Layers != 4 {
		return fmt.Errorf("%w: layer count must be 2 or 4, got %d", ErrBadPolicy, p.Layers)
	}
	if p.SupercapPitch <= 0 {
		return fmt.Errorf("%w: supercap pitch must be positive", ErrBadPolicy)
	}
	if p.BankRows <= 0 {
		return fmt.Errorf("%w: bank rows must be positive", ErrBadPolicy)
	}
	if p.Charging.Cols <= 0 || p.Passives.Cols <= 0 {
		return fmt.Errorf("%w: grid column counts must be positive", ErrBadPolicy)
	}
	for _, rot := range []int{p.Connectors.Rotation, p.Discharge.Rotation} {
		switch rot {
		case 0, 90, 180, 270:
		default:
			return fmt.Errorf("%w: rotation must be one of 0/90/180/270, got %d", ErrBadPolicy, rot)
		}
	}
	for _, c := range []Coord{
		p.SupercapOrigin.X, p.Connectors.Origin.X, p.Discharge.Origin.X,
		p.MCU.X, p.Sensing.Origin.X, p.Power.X, p.Charging.Origin.X, p.Passives.Origin.X,
	} {
		if err := validAnchorX(c.Anchor); err != nil {
			return err
		}
	}
	for _, c := range []Coord{
		p.SupercapOrigin.Y, p.Connectors.Origin.Y, p.Discharge.Origin.Y,
		p.MCU.Y, p.Sensing.Origin.Y, p.Power.Y, p.Charging.Origin.Y, p.Passives.Origin.Y,
	} {
		if err := validAnchorY(c.Anchor); err != nil {
			return err
		}
	}
	// The MCU origin seeds the "mcu" anchor and cannot use it itself.
	if p.MCU.X.Anchor == AnchorMCU || p.MCU.Y.Anchor == AnchorMCU {
		return fmt.Errorf("%w: mcu origin cannot anchor on itself", ErrBadPolicy)
	}
	// The supercap origin seeds the "control" anchor.
	if p.SupercapOrigin.Y.Anchor == AnchorControl || p.SupercapOrigin.Y.Anchor == AnchorMCU {
		return fmt.Errorf("%w: supercap origin must anchor on the board, not on %q", ErrBadPolicy, p.SupercapOrigin.Y.Anchor)
	}
	return nil
}

func validAnchorX(a Anchor) error {
	switch a {
	case AnchorLeft, AnchorRight, AnchorCenter, AnchorMCU:
		return nil
	}
	return fmt.Errorf("%w: unknown horizontal anchor %q", ErrBadPolicy, a)
}

func validAnchorY(a Anchor) error {
	switch a {
	case AnchorTop, AnchorMiddle, AnchorControl, AnchorMCU:
		return nil
	}
	return fmt.Errorf("%w: unknown vertical anchor %q", ErrBadPolicy, a)
}
