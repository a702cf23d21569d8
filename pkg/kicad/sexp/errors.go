package sexp

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedString = errors.New("unterminated quoted string")
	ErrUnexpectedRParen   = errors.New("unexpected ')'")
	ErrUnexpectedEOF      = errors.New("unexpected end of input")
	ErrMissingTag         = errors.New("form has no tag")
)

// ParseError reports a malformed document together with the byte
// offset where the problem was detected.
type ParseError struct {
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at byte offset %d", e.Err, e.Offset)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErr(off int, err error) *ParseError {
	return &ParseError{Offset: off, Err: err}
}
