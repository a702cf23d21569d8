// Package layout classifies schematic components into functional
// groups and computes a deterministic board placement for them.
package layout

import (
	"github.com/opengridlab/boardgen/pkg/kicad/schematic"
)

// Group names one of the nine functional placement buckets.
type Group string

const (
	SupercapPos Group = "supercap_pos"
	SupercapNeg Group = "supercap_neg"
	Connectors  Group = "connectors"
	MCU         Group = "mcu"
	Sensing     Group = "sensing"
	Discharge   Group = "discharge"
	Charging    Group = "charging"
	Power       Group = "power"
	Passives    Group = "passives"
)

// AllGroups lists every group in placement and report order.
var AllGroups = []Group{
	SupercapPos,
	SupercapNeg,
	Connectors,
	MCU,
	Sensing,
	Discharge,
	Charging,
	Power,
	Passives,
}

// Partition maps every group to its components. The nine groups
// partition the classified components exactly: every component lands
// in one group and no group shares a component with another. Within a
// group the components keep their extraction order.
type Partition map[Group][]*schematic.Component

// Total returns the number of components across all groups.
func (p Partition) Total() int {
	n := 0
	for _, comps := range p {
		n += len(comps)
	}
	return n
}

// Flatten returns all components in group order, extraction order
// within each group. This is the order the serializer emits.
func (p Partition) Flatten() []*schematic.Component {
	out := make([]*schematic.Component, 0, p.Total())
	for _, g := range AllGroups {
		out = append(out, p[g]...)
	}
	return out
}
