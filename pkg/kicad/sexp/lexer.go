package sexp

import "strings"

type tokenKind int

const (
	tokLParen tokenKind = iota
	tokRParen
	tokAtom   // bare run of non-delimiter characters
	tokString // quoted string, stored unescaped
)

// token is transient lexer output; it carries the byte offset of its
// first character for error reporting.
type token struct {
	kind tokenKind
	text string
	off  int
}

// tokenize scans src into a flat token stream. Whitespace separates
// tokens and is discarded. An unterminated quoted string is a
// ParseError rather than a silent scan to end of input.
func tokenize(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == '(':
			toks = append(toks, token{tokLParen, "(", i})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")", i})
			i++
		case c == '"':
			tok, next, err := scanString(src, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = next
		case isSpace(c):
			i++
		default:
			start := i
			for i < len(src) && !isDelimiter(src[i]) {
				i++
			}
			toks = append(toks, token{tokAtom, src[start:i], start})
		}
	}
	return toks, nil
}

// scanString reads a quoted string starting at the opening quote.
// Escapes are decoded here and re-applied by Quote, so quoted values
// round-trip through the writer unchanged.
func scanString(src string, start int) (token, int, error) {
	var b strings.Builder
	i := start + 1
	for {
		if i >= len(src) {
			return token{}, 0, parseErr(start, ErrUnterminatedString)
		}
		c := src[i]
		if c == '"' {
			return token{tokString, b.String(), start}, i + 1, nil
		}
		if c == '\\' {
			if i+1 >= len(src) {
				return token{}, 0, parseErr(start, ErrUnterminatedString)
			}
			b.WriteByte(unescape(src[i+1]))
			i += 2
			continue
		}
		b.WriteByte(c)
		i++
	}
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		// '"', '\\', and anything unrecognized copy through
		return c
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDelimiter(c byte) bool {
	return isSpace(c) || c == '(' || c == ')' || c == '"'
}
