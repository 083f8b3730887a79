package store

import (
	"github.com/aleksaelezovic/rdfterm/pkg/rdf"
)

// Comparator is the total order an index keeps its terms in.
type Comparator interface {
	Compare(a, b *rdf.Term) int
	Less(a, b *rdf.Term) bool
	LessEq(a, b *rdf.Term) bool
	Equal(a, b *rdf.Term) bool
	GreaterEq(a, b *rdf.Term) bool
	Greater(a, b *rdf.Term) bool
}

// TermEncoder turns terms into keys and values for Storage.
type TermEncoder interface {
	// EncodeTerm returns the storage form of a term.
	EncodeTerm(t *rdf.Term) []byte

	// SortKey returns a key whose byte order refines the Comparator.
	SortKey(t *rdf.Term) []byte

	// GroupPrefix returns the sort key prefix of all terms compatible with id.
	GroupPrefix(id rdf.TypeID) []byte

	// TermKey returns a fixed-size identity key for a term.
	TermKey(t *rdf.Term) [16]byte
}

// TermDecoder rebuilds terms from the output of TermEncoder.EncodeTerm.
type TermDecoder interface {
	DecodeTerm(data []byte) (*rdf.Term, error)
}
