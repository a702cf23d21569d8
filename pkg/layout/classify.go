package layout

import (
	"strconv"
	"strings"

	"github.com/opengridlab/boardgen/pkg/kicad/schematic"
)

// rule pairs a reference-designator predicate with the group it
// selects. Rules are tried in order; the first match wins.
type rule struct {
	match func(ref string) bool
	group Group
}

// The rule table is total: the trailing catch-all guarantees every
// reference lands in exactly one group.
var rules = []rule{
	{capRange(101, 130), SupercapPos}, // positive supercap bank
	{capRange(131, 160), SupercapNeg}, // negative supercap bank
	{prefix("J"), Connectors},
	{exact("U1"), MCU},     // microcontroller
	{exact("U2"), Sensing}, // zero-crossing detector
	{exact("U3"), Power},   // LDO regulator
	{exact("U4"), Sensing}, // current sense amplifier
	{anyOf("Q1", "Q2"), Discharge},
	{anyOf("Q3", "Q4", "R11", "R12"), Charging},
	{prefix("RV"), Connectors}, // varistor sits with the AC connectors
	{prefix("LED"), Passives},
	{prefix("D"), Passives},
	{func(string) bool { return true }, Passives},
}

// capRange matches C<N> references with lo <= N <= hi.
func capRange(lo, hi int) func(string) bool {
	return func(ref string) bool {
		if !strings.HasPrefix(ref, "C") || len(ref) < 2 {
			return false
		}
		n, err := strconv.Atoi(ref[1:])
		if err != nil {
			return false
		}
		return n >= lo && n <= hi
	}
}

func prefix(p string) func(string) bool {
	return func(ref string) bool { return strings.HasPrefix(ref, p) }
}

func exact(want string) func(string) bool {
	return func(ref string) bool { return ref == want }
}

func anyOf(refs ...string) func(string) bool {
	return func(ref string) bool {
		for _, r := range refs {
			if ref == r {
				return true
			}
		}
		return false
	}
}

// Classify returns the functional group for a reference designator.
func Classify(ref string) Group {
	for _, r := range rules {
		if r.match(ref) {
			return r.group
		}
	}
	// Unreachable: the rule table ends with a catch-all.
	panic("layout: classifier rule table is not total")
}

// GroupComponents buckets components by functional group, preserving
// input order within each group. All nine groups are present in the
// result even when empty.
func GroupComponents(comps []*schematic.Component) Partition {
	p := make(Partition, len(AllGroups))
	for _, g := range AllGroups {
		p[g] = nil
	}
	for _, c := range comps {
		g := Classify(c.Ref)
		p[g] = append(p[g], c)
	}
	return p
}
