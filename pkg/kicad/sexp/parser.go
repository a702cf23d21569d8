package sexp

import "io"

// Parse parses every top-level form in src. Structural problems
// (unbalanced parentheses, a form without a tag, an unterminated
// string) fail with a ParseError carrying the byte offset; partial
// trees are never returned.
func Parse(src string) ([]Expr, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	var out []Expr
	for p.pos < len(p.toks) {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// ParseReader reads r to the end and parses it.
func ParseReader(r io.Reader) ([]Expr, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// parser is a recursive-descent tree builder over the token stream.
type parser struct {
	toks []token
	pos  int
}

func (p *parser) parseExpr() (Expr, error) {
	t := p.toks[p.pos]
	switch t.kind {
	case tokLParen:
		return p.parseList()
	case tokRParen:
		return nil, parseErr(t.off, ErrUnexpectedRParen)
	default:
		p.pos++
		return Atom(t.text), nil
	}
}

func (p *parser) parseList() (Expr, error) {
	open := p.toks[p.pos]
	p.pos++
	if p.pos >= len(p.toks) {
		return nil, parseErr(open.off, ErrUnexpectedEOF)
	}
	tag := p.toks[p.pos]
	if tag.kind != tokAtom && tag.kind != tokString {
		return nil, parseErr(tag.off, ErrMissingTag)
	}
	p.pos++

	l := &List{Tag: tag.text}
	for {
		if p.pos >= len(p.toks) {
			return nil, parseErr(open.off, ErrUnexpectedEOF)
		}
		t := p.toks[p.pos]
		if t.kind == tokRParen {
			p.pos++
			return l, nil
		}
		child, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		l.Children = append(l.Children, child)
	}
}
