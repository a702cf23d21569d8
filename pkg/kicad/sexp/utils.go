package sexp

import (
	"fmt"
	"strconv"
)

// Typed value extraction helpers over direct atom children.

// AtomFloat parses the i-th atom child as a float64.
func AtomFloat(l *List, i int) (float64, error) {
	s, ok := l.AtomAt(i)
	if !ok {
		return 0, fmt.Errorf("(%s): no atom at index %d", l.Tag, i)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("(%s): parsing float %q: %w", l.Tag, s, err)
	}
	return v, nil
}

// AtomInt parses the i-th atom child as an int.
func AtomInt(l *List, i int) (int, error) {
	s, ok := l.AtomAt(i)
	if !ok {
		return 0, fmt.Errorf("(%s): no atom at index %d", l.Tag, i)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("(%s): parsing int %q: %w", l.Tag, s, err)
	}
	return v, nil
}
