package layout

import (
	"testing"

	"github.com/opengridlab/boardgen/pkg/kicad/schematic"
)

func TestClassifyRules(t *testing.T) {
	tests := []struct {
		ref  string
		want Group
	}{
		{"C101", SupercapPos},
		{"C115", SupercapPos},
		{"C131", SupercapNeg},
		{"C160", SupercapNeg},
		{"C100", Passives}, // below the positive bank range
		{"C161", Passives}, // above the negative bank range
		{"C5", Passives},
		{"J1", Connectors},
		{"J12", Connectors},
		{"U1", MCU},
		{"U2", Sensing},
		{"U3", Power},
		{"U4", Sensing},
		{"U5", Passives}, // no dedicated rule
		{"Q1", Discharge},
		{"Q2", Discharge},
		{"Q3", Charging},
		{"Q4", Charging},
		{"Q5", Passives},
		{"R11", Charging},
		{"R12", Charging},
		{"R1", Passives},
		{"RV1", Connectors},
		{"D3", Passives},
		{"LED1", Passives},
		{"X1", Passives}, // catch-all
	}

	for _, tt := range tests {
		if got := Classify(tt.ref); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}

// The positive/negative bank split is an exact boundary at C130/C131.
func TestClassifySupercapBoundary(t *testing.T) {
	if got := Classify("C130"); got != SupercapPos {
		t.Errorf("C130 must be positive bank, got %q", got)
	}
	if got := Classify("C131"); got != SupercapNeg {
		t.Errorf("C131 must be negative bank, got %q", got)
	}
}

func TestGroupComponentsPartitions(t *testing.T) {
	refs := []string{"C101", "C131", "J1", "U1", "U2", "U3", "U4", "Q1", "Q3", "R11", "RV1", "D1", "R5", "C1"}
	comps := make([]*schematic.Component, len(refs))
	for i, ref := range refs {
		comps[i] = &schematic.Component{Ref: ref}
	}

	parts := GroupComponents(comps)

	if len(parts) != len(AllGroups) {
		t.Errorf("Expected all %d groups present, got %d", len(AllGroups), len(parts))
	}
	if parts.Total() != len(comps) {
		t.Errorf("Group sizes sum to %d, want %d", parts.Total(), len(comps))
	}

	// No component in two groups.
	seen := make(map[string]Group)
	for g, members := range parts {
		for _, c := range members {
			if prev, dup := seen[c.Ref]; dup {
				t.Errorf("%s appears in both %q and %q", c.Ref, prev, g)
			}
			seen[c.Ref] = g
		}
	}
}

func TestGroupComponentsIdempotent(t *testing.T) {
	comps := []*schematic.Component{
		{Ref: "C101"}, {Ref: "R1"}, {Ref: "J2"},
	}

	first := GroupComponents(comps)
	second := GroupComponents(comps)

	for _, g := range AllGroups {
		if len(first[g]) != len(second[g]) {
			t.Errorf("Group %q changed size between runs: %d vs %d", g, len(first[g]), len(second[g]))
		}
		for i := range first[g] {
			if first[g][i] != second[g][i] {
				t.Errorf("Group %q reordered between runs", g)
			}
		}
	}
}

func TestGroupComponentsPreservesOrder(t *testing.T) {
	comps := []*schematic.Component{
		{Ref: "R5"}, {Ref: "D1"}, {Ref: "R1"},
	}
	parts := GroupComponents(comps)
	passives := parts[Passives]
	if len(passives) != 3 {
		t.Fatalf("Expected 3 passives, got %d", len(passives))
	}
	want := []string{"R5", "D1", "R1"}
	for i, ref := range want {
		if passives[i].Ref != ref {
			t.Errorf("Position %d: expected %q, got %q", i, ref, passives[i].Ref)
		}
	}
}
