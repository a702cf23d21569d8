package board

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator produces the unique identifiers attached to every
// emitted board element. Identifiers are opaque: nothing reuses or
// compares them. The generator is the only nondeterministic part of
// serialization, so tests inject Sequence instead.
type IDGenerator interface {
	Next() string
}

// UUIDs returns the production generator, backed by random version 4
// UUIDs.
func UUIDs() IDGenerator {
	return uuidGen{}
}

type uuidGen struct{}

func (uuidGen) Next() string {
	return uuid.NewString()
}

// Sequence returns a deterministic generator for golden comparisons:
// id-000001, id-000002, ...
func Sequence() IDGenerator {
	return &seqGen{}
}

type seqGen struct {
	n int
}

func (g *seqGen) Next() string {
	g.n++
	return fmt.Sprintf("id-%06d", g.n)
}
