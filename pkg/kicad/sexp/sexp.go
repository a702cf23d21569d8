// Package sexp implements the s-expression grammar shared by KiCad
// schematic and board files: parenthesized forms with a leading tag,
// quoted strings, and bare atoms.
//
// A parsed document is a strict tree of Expr values. Each node is
// either an Atom (a leaf value) or a *List (a tagged form with ordered
// children); the two roles never mix.
package sexp

// Expr is a node in a parsed s-expression tree.
type Expr interface {
	isExpr()
}

// Atom is a leaf value: a bare token, or the unescaped content of a
// quoted string.
type Atom string

func (Atom) isExpr() {}

// List is a parenthesized form. The first token after '(' is the tag;
// everything up to the matching ')' becomes an ordered child.
type List struct {
	Tag      string
	Children []Expr
}

func (*List) isExpr() {}

// Child returns the first child list with the given tag.
func (l *List) Child(tag string) (*List, bool) {
	for _, c := range l.Children {
		if sub, ok := c.(*List); ok && sub.Tag == tag {
			return sub, true
		}
	}
	return nil, false
}

// ChildrenByTag returns all child lists with the given tag, in
// document order.
func (l *List) ChildrenByTag(tag string) []*List {
	var out []*List
	for _, c := range l.Children {
		if sub, ok := c.(*List); ok && sub.Tag == tag {
			out = append(out, sub)
		}
	}
	return out
}

// Atoms returns the values of all direct atom children, in order.
func (l *List) Atoms() []string {
	var out []string
	for _, c := range l.Children {
		if a, ok := c.(Atom); ok {
			out = append(out, string(a))
		}
	}
	return out
}

// FirstAtom returns the first direct atom child value.
func (l *List) FirstAtom() (string, bool) {
	for _, c := range l.Children {
		if a, ok := c.(Atom); ok {
			return string(a), true
		}
	}
	return "", false
}

// AtomAt returns the i-th direct atom child value, counting from 0.
func (l *List) AtomAt(i int) (string, bool) {
	atoms := l.Atoms()
	if i < 0 || i >= len(atoms) {
		return "", false
	}
	return atoms[i], true
}
