package sexp

import "testing"

func TestQuoteRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"plain",
		"Resistor_SMD:R_0805_2012Metric",
		`with"quote`,
		`back\slash`,
		"tab\there",
		"new\nline",
		"spaces and (parens)",
	}

	for _, want := range tests {
		exprs, err := Parse("(value " + Quote(want) + ")")
		if err != nil {
			t.Fatalf("Parse of Quote(%q) failed: %v", want, err)
		}
		got, ok := exprs[0].(*List).FirstAtom()
		if !ok || got != want {
			t.Errorf("Quote round trip: want %q, got %q", want, got)
		}
	}
}

// Quoted atoms re-serialize to the identical quoted text: the lexer
// unescapes exactly what Quote escapes.
func TestQuotedTextStable(t *testing.T) {
	quoted := `"a\"b\\c"`
	exprs, err := Parse("(value " + quoted + ")")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	val, _ := exprs[0].(*List).FirstAtom()
	if got := Quote(val); got != quoted {
		t.Errorf("Expected re-quoted text %s, got %s", quoted, got)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	input := `(footprint "R_0805" (layer "F.Cu") (at 12.5000 30.0000 270))`
	exprs, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	text := Format(exprs[0])
	again, err := Parse(text)
	if err != nil {
		t.Fatalf("Re-parse of %q failed: %v", text, err)
	}

	a := exprs[0].(*List)
	b := again[0].(*List)
	if Format(a) != Format(b) {
		t.Errorf("Format not stable: %q vs %q", Format(a), Format(b))
	}
	if b.Tag != "footprint" {
		t.Errorf("Expected tag 'footprint', got %q", b.Tag)
	}
	if name, _ := b.FirstAtom(); name != "R_0805" {
		t.Errorf("Expected footprint name 'R_0805', got %q", name)
	}
}
