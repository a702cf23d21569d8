// Package board serializes positioned components into complete KiCad
// board files (.kicad_pcb).
package board

import (
	"errors"
	"fmt"
)

var (
	ErrBadDimensions = errors.New("board width and height must be positive")
	ErrBadLayerCount = errors.New("layer count must be 2 or 4")
)

// Spec fixes the board parameters for one generation run. It is
// immutable once validated.
type Spec struct {
	Width  float64 // mm
	Height float64 // mm
	Layers int     // copper layer count, 2 or 4
}

// Validate checks the spec. Callers run this before any pipeline work
// so bad configuration fails up front.
func (s Spec) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: got %gx%g", ErrBadDimensions, s.Width, s.Height)
	}
	if s.Layers != 2 && s.Layers != 4 {
		return fmt.Errorf("%w: got %d", ErrBadLayerCount, s.Layers)
	}
	return nil
}
