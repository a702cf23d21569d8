package schematic

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/opengridlab/boardgen/pkg/kicad/sexp"
)

// ParseFile reads and extracts components from a KiCad schematic file.
func ParseFile(filename string) ([]*Component, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads a KiCad schematic from r and extracts its components.
func Parse(r io.Reader) ([]*Component, error) {
	exprs, err := sexp.ParseReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse s-expression: %w", err)
	}
	if len(exprs) == 0 {
		return nil, fmt.Errorf("empty file or no valid s-expressions found")
	}

	root, ok := exprs[0].(*sexp.List)
	if !ok || root.Tag != "kicad_sch" {
		return nil, fmt.Errorf("not a KiCad schematic file: expected a 'kicad_sch' form")
	}

	return Extract(root), nil
}

// Extract walks a parsed schematic document and returns its placed
// components, in source order.
//
// Library definitions nested under lib_symbols are never visited, so
// a definition that looks like a placement cannot leak through. A
// top-level symbol counts as a placed instance only if it carries a
// non-empty lib_id; power symbols (lib_id "power:...") are excluded.
// Symbols without both a Reference and a Footprint property are
// silently dropped, which is expected for virtual parts.
func Extract(doc *sexp.List) []*Component {
	var comps []*Component
	for _, child := range doc.Children {
		sym, ok := child.(*sexp.List)
		if !ok || sym.Tag != "symbol" {
			continue
		}

		libNode, ok := sym.Child("lib_id")
		if !ok {
			continue
		}
		libID, ok := libNode.FirstAtom()
		if !ok || libID == "" {
			continue
		}
		if strings.HasPrefix(libID, "power:") {
			continue
		}

		// A property's first two atoms are (name, value). On
		// duplicate names the last occurrence wins.
		var ref, value, footprint string
		for _, prop := range sym.ChildrenByTag("property") {
			atoms := prop.Atoms()
			if len(atoms) < 2 {
				continue
			}
			switch atoms[0] {
			case "Reference":
				ref = atoms[1]
			case "Value":
				value = atoms[1]
			case "Footprint":
				footprint = atoms[1]
			}
		}

		if ref == "" || footprint == "" {
			continue
		}
		comps = append(comps, &Component{
			Ref:       ref,
			Value:     value,
			Footprint: footprint,
			LibID:     libID,
			Layer:     "F.Cu",
		})
	}
	return comps
}
