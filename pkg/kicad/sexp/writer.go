package sexp

import "strings"

// Quote renders s as a quoted string token, escaping exactly the
// characters the lexer unescapes. For any string s,
// parsing Quote(s) yields s again.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Format renders an expression tree back into the grammar on a single
// line. Atoms that contain delimiter characters, or that are empty,
// come out quoted; the result re-parses to an equal tree.
func Format(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

func writeExpr(b *strings.Builder, e Expr) {
	switch v := e.(type) {
	case Atom:
		b.WriteString(formatAtom(string(v)))
	case *List:
		b.WriteByte('(')
		b.WriteString(formatAtom(v.Tag))
		for _, c := range v.Children {
			b.WriteByte(' ')
			writeExpr(b, c)
		}
		b.WriteByte(')')
	}
}

func formatAtom(s string) string {
	if s == "" || strings.ContainsAny(s, "()\" \t\n\r\\") {
		return Quote(s)
	}
	return s
}
