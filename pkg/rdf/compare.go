package rdf

import "github.com/aleksaelezovic/rdfterm/internal/collate"

// StringComparer orders the lexical forms of text terms. Implementations
// must return 0 only for byte-identical input.
type StringComparer interface {
	CompareBytes(a, b []byte) int
}

// Ordering is the total order over terms used for indexes and ORDER BY.
// The zero value collates text with the process default locale.
type Ordering struct {
	Strings StringComparer
}

// NewOrdering returns an ordering that compares text with s.
func NewOrdering(s StringComparer) Ordering {
	return Ordering{Strings: s}
}

// Compare returns -1, 0 or 1 as a sorts before, equal to or after b.
//
// Terms of incompatible types are ordered by type id. Numeric terms are
// ordered by value (NaN compares greater than everything, including
// itself), date/time terms by epoch seconds and then by whether they carry a
// timezone. Text terms are ordered by type id first, except that simple
// literals and xsd:string literals rank the same, and then by collation of
// their lexical forms.
func (o Ordering) Compare(a, b *Term) int {
	if !Compatible(a.typeID, b.typeID) {
		return compareIDs(a.typeID, b.typeID)
	}

	switch StorageClassOf(a.typeID) {
	case StorageNumeric:
		return compareNumbers(a, b)
	case StorageDateTime:
		return compareTemporals(a, b)
	}

	if a.typeID != b.typeID && !stringRanked(a.typeID, b.typeID) {
		return compareIDs(a.typeID, b.typeID)
	}
	return sign(o.strings().CompareBytes([]byte(a.text), []byte(b.text)))
}

func (o Ordering) Less(a, b *Term) bool      { return o.Compare(a, b) < 0 }
func (o Ordering) LessEq(a, b *Term) bool    { return o.Compare(a, b) <= 0 }
func (o Ordering) Equal(a, b *Term) bool     { return o.Compare(a, b) == 0 }
func (o Ordering) GreaterEq(a, b *Term) bool { return o.Compare(a, b) >= 0 }
func (o Ordering) Greater(a, b *Term) bool   { return o.Compare(a, b) > 0 }

func (o Ordering) strings() StringComparer {
	if o.Strings == nil {
		return collate.Locale{}
	}
	return o.Strings
}

// Compare orders two terms with the default Ordering.
func Compare(a, b *Term) int {
	return Ordering{}.Compare(a, b)
}

// stringRanked reports whether the pair is a simple literal and an
// xsd:string literal, which order as plain strings.
func stringRanked(a, b TypeID) bool {
	return (a == TypeSimpleLiteral && b == TypeString) ||
		(a == TypeString && b == TypeSimpleLiteral)
}

func compareIDs(a, b TypeID) int {
	if a < b {
		return -1
	}
	return 1
}

// compareNumbers uses plain float comparison; a NaN on either side makes the
// result 1.
func compareNumbers(a, b *Term) int {
	x, _ := a.Number()
	y, _ := b.Number()
	if x < y {
		return -1
	} else if x == y {
		return 0
	}
	return 1
}

func compareTemporals(a, b *Term) int {
	x, _ := a.Temporal()
	y, _ := b.Temporal()
	switch {
	case x.Seconds < y.Seconds:
		return -1
	case x.Seconds > y.Seconds:
		return 1
	case x.HasTimezone == y.HasTimezone:
		return 0
	case !x.HasTimezone:
		return -1
	default:
		return 1
	}
}

func sign(r int) int {
	switch {
	case r < 0:
		return -1
	case r > 0:
		return 1
	}
	return 0
}
