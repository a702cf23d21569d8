package board

import "strconv"

// FormatCoord renders a millimeter coordinate at the fixed 4-decimal
// precision used throughout board files.
func FormatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
