package rdf

import (
	"bytes"
	"math"
	"sort"
	"testing"

	"github.com/aleksaelezovic/rdfterm/internal/collate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, id TypeID, text string) *Term {
	t.Helper()
	term, err := ParseString(id, text)
	require.NoError(t, err)
	return term
}

func TestCompareIncompatibleByTypeID(t *testing.T) {
	iri := NewIRI("http://example.org/z")
	num := mustParse(t, typeInteger, "1")
	boolean := NewBoolean(false)
	date := mustParse(t, TypeDate, "2020-01-01")
	unknown := mustParse(t, TypeUnknownBase, "a")

	ordered := []*Term{iri, num, boolean, date, unknown}
	for i := range ordered {
		for j := range ordered {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			assert.Equal(t, want, Compare(ordered[i], ordered[j]), "compare(%s, %s)", ordered[i], ordered[j])
		}
	}
}

func TestCompareNumeric(t *testing.T) {
	two := mustParse(t, typeInteger, "2")
	ten := mustParse(t, typeInteger, "10")
	assert.Equal(t, -1, Compare(two, ten))
	assert.Equal(t, 1, Compare(ten, two))

	// Compatible numeric types compare by value only.
	one := mustParse(t, 0x1001, "1")
	oneDotZero := mustParse(t, 0x1002, "1.0")
	assert.Equal(t, 0, Compare(one, oneDotZero))

	// Value beats lexical order.
	assert.Equal(t, -1, Compare(mustParse(t, typeInteger, "9"), mustParse(t, typeInteger, "10")))
}

func TestCompareNaNIsNotTotal(t *testing.T) {
	nan := mustParse(t, typeInteger, "NaN")
	one := mustParse(t, typeInteger, "1")
	assert.Equal(t, 1, Compare(nan, one))
	assert.Equal(t, 1, Compare(one, nan))
	assert.Equal(t, 1, Compare(nan, nan))
}

func TestCompareDateTime(t *testing.T) {
	local := mustParse(t, TypeDateTime, "2020-01-01T00:00:00")
	utc := mustParse(t, TypeDateTime, "2020-01-01T00:00:00Z")
	offset := mustParse(t, TypeDateTime, "2020-01-01T00:00:00+05:00")
	later := mustParse(t, TypeDateTime, "2020-01-01T00:00:01")

	assert.Equal(t, -1, Compare(local, utc), "no timezone sorts first for equal instants")
	assert.Equal(t, 1, Compare(utc, local))
	assert.Equal(t, 0, Compare(utc, offset), "the offset itself is not kept")
	assert.Equal(t, -1, Compare(utc, later))
	assert.Equal(t, 1, Compare(later, utc))
}

func TestCompareText(t *testing.T) {
	iri := NewIRI("http://example.org/a")
	simple := NewSimpleLiteral("a")
	plain := mustParse(t, 0x0003, "a")

	assert.Equal(t, -1, Compare(iri, simple), "resources before literals")
	assert.Equal(t, -1, Compare(simple, plain))
	assert.Equal(t, 1, Compare(plain, NewStringLiteral("z")))

	assert.Equal(t, 0, Compare(NewSimpleLiteral("x"), NewStringLiteral("x")))
	assert.Equal(t, 0, Compare(NewStringLiteral("x"), NewSimpleLiteral("x")))
	assert.Equal(t, -1, Compare(NewSimpleLiteral("a"), NewStringLiteral("b")))
	assert.Equal(t, 1, Compare(NewStringLiteral("b"), NewSimpleLiteral("a")))

	// Compatible unknown datatypes are ordered by id, not by text.
	assert.Equal(t, -1, Compare(mustParse(t, 0x4001, "z"), mustParse(t, 0x4002, "a")))
}

func TestCompareTextUsesCollation(t *testing.T) {
	apple := NewSimpleLiteral("apple")
	banana := NewSimpleLiteral("Banana")
	assert.Equal(t, -1, Compare(apple, banana), "collation ignores case at the primary level")

	byteOrder := NewOrdering(bytewise{})
	assert.Equal(t, 1, byteOrder.Compare(apple, banana))
	assert.True(t, byteOrder.Less(banana, apple))
}

func TestCompareCollationEqualText(t *testing.T) {
	decomposed := NewStringLiteral("e\u0301")
	composed := NewSimpleLiteral("\u00e9")
	assert.Equal(t, -1, Compare(decomposed, composed), "equal collation falls back to bytes")
	assert.Equal(t, 1, Compare(composed, decomposed))
}

func TestZeroOrderingFollowsDefaultLocale(t *testing.T) {
	defer collate.SetDefault("en")

	ae, z := NewSimpleLiteral("ä"), NewSimpleLiteral("z")
	var order Ordering
	assert.Equal(t, -1, order.Compare(ae, z))

	collate.SetDefault("sv")
	assert.Equal(t, 1, order.Compare(ae, z))
	assert.Equal(t, 1, Compare(ae, z))
}

type bytewise struct{}

func (bytewise) CompareBytes(a, b []byte) int { return bytes.Compare(a, b) }

func TestOrderingPredicates(t *testing.T) {
	var o Ordering
	a := mustParse(t, typeInteger, "1")
	b := mustParse(t, typeInteger, "2")

	assert.True(t, o.Less(a, b))
	assert.True(t, o.LessEq(a, b))
	assert.True(t, o.LessEq(a, a))
	assert.True(t, o.Equal(a, a))
	assert.False(t, o.Equal(a, b))
	assert.True(t, o.GreaterEq(b, a))
	assert.True(t, o.Greater(b, a))
	assert.False(t, o.Greater(a, a))
}

func TestCompareIsATotalOrder(t *testing.T) {
	terms := []*Term{
		NewIRI("http://example.org/b"),
		NewIRI("http://example.org/a"),
		NewBlankNode("x"),
		NewSimpleLiteral("beta"),
		NewStringLiteral("alpha"),
		NewSimpleLiteral("Alpha"),
		NewStringLiteral("beta"),
		mustParse(t, 0x0007, "hallo"),
		mustParse(t, typeInteger, "3"),
		mustParse(t, 0x1001, "-1"),
		mustParse(t, typeInteger, "2.5"),
		mustParse(t, 0x1100, "1"),
		NewBoolean(true),
		NewBoolean(false),
		mustParse(t, TypeDateTime, "2020-01-01T00:00:00Z"),
		mustParse(t, TypeDateTime, "2020-01-01T00:00:00"),
		mustParse(t, TypeDateTime, "1999-12-31T23:59:59"),
		mustParse(t, TypeDate, "2020-01-01"),
		mustParse(t, TypeTime, "12:00:00"),
		mustParse(t, 0x4000, "opaque"),
		mustParse(t, 0x4001, "opaque"),
	}

	for _, a := range terms {
		for _, b := range terms {
			assert.Equal(t, Compare(a, b), -Compare(b, a), "antisymmetry of %s and %s", a, b)
		}
	}

	sorted := append([]*Term(nil), terms...)
	sort.SliceStable(sorted, func(i, j int) bool { return Compare(sorted[i], sorted[j]) < 0 })
	for i := range sorted {
		for j := i + 1; j < len(sorted); j++ {
			assert.LessOrEqual(t, Compare(sorted[i], sorted[j]), 0, "%s must not sort after %s", sorted[i], sorted[j])
		}
	}
}

func TestHashConsistentWithCompare(t *testing.T) {
	pairs := [][2]*Term{
		{NewSimpleLiteral("x"), NewStringLiteral("x")},
		{NewIRI("http://example.org/"), NewIRI("http://example.org/")},
		{mustParse(t, 0x1001, "1"), mustParse(t, 0x1002, "1.0")},
		{mustParse(t, TypeDateTime, "2020-01-01T00:00:00Z"), mustParse(t, TypeDateTime, "2020-01-01T00:00:00+02:00")},
		{mustParse(t, 0x4000, "a"), mustParse(t, 0x4000, "a")},
	}
	for _, p := range pairs {
		require.Equal(t, 0, Compare(p[0], p[1]))
		assert.Equal(t, Hash(p[0]), Hash(p[1]), "hash of %s and %s", p[0], p[1])
	}
}

func TestHashSignedZeroCaveat(t *testing.T) {
	pos := mustParse(t, typeInteger, "0")
	neg := mustParse(t, typeInteger, "-0")
	require.Equal(t, 0, Compare(pos, neg))

	f, _ := neg.Number()
	require.True(t, math.Signbit(f))
	assert.NotEqual(t, Hash(pos), Hash(neg), "float bits are hashed as they are")
}

func TestHashDiffersForDifferentText(t *testing.T) {
	assert.NotEqual(t, Hash(NewSimpleLiteral("a")), Hash(NewSimpleLiteral("b")))
}
