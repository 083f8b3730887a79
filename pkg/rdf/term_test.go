package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceChecks(t *testing.T) {
	iri := NewIRI("http://example.org/alice")
	bnode := NewBlankNode("b1")
	lit := NewSimpleLiteral("bnode:not-a-node")

	assert.True(t, iri.IsResource())
	assert.True(t, iri.IsURI())
	assert.False(t, iri.IsBlankNode())
	assert.False(t, iri.IsLiteral())

	assert.Equal(t, "bnode:b1", bnode.Text())
	assert.True(t, bnode.IsResource())
	assert.True(t, bnode.IsBlankNode())
	assert.False(t, bnode.IsURI())

	assert.False(t, lit.IsResource())
	assert.False(t, lit.IsBlankNode())
	assert.True(t, lit.IsLiteral())
}

func TestPayloadFollowsStorageClass(t *testing.T) {
	num, err := ParseString(0x1000, "42")
	require.NoError(t, err)
	f, ok := num.Number()
	require.True(t, ok)
	assert.Equal(t, 42.0, f)
	_, ok = num.Temporal()
	assert.False(t, ok)

	dt, err := ParseString(TypeDateTime, "1970-01-02T00:00:00")
	require.NoError(t, err)
	tm, ok := dt.Temporal()
	require.True(t, ok)
	assert.Equal(t, Temporal{Seconds: 86400}, tm)

	txt := NewSimpleLiteral("x")
	assert.Nil(t, txt.Payload())
	_, ok = txt.Number()
	assert.False(t, ok)
}

func TestDatatypeAndLanguageIDs(t *testing.T) {
	tests := []struct {
		id       TypeID
		datatype bool
		language bool
	}{
		{TypeIRI, false, false},
		{TypeSimpleLiteral, false, false},
		{TypeString, false, false},
		{0x0003, false, true},
		{0x0fff, false, true},
		{0x1000, true, false},
		{TypeBoolean, true, false},
		{TypeDateTime, true, false},
		{0x4abc, true, false},
	}
	for _, tt := range tests {
		term := newTerm(tt.id, nil, "")
		id, ok := term.DatatypeID()
		assert.Equal(t, tt.datatype, ok, "datatype id of %s", tt.id)
		if ok {
			assert.Equal(t, tt.id, id)
		}
		id, ok = term.LanguageID()
		assert.Equal(t, tt.language, ok, "language id of %s", tt.id)
		if ok {
			assert.Equal(t, tt.id, id)
		}
	}
}

func TestTermEqualsAndString(t *testing.T) {
	a := NewSimpleLiteral("x")
	b := NewStringLiteral("x")
	assert.False(t, a.Equals(b))
	assert.True(t, a.Equals(NewSimpleLiteral("x")))
	assert.Equal(t, "'x'^^2", b.String())
	assert.Equal(t, "'true'^^2000", NewBoolean(true).String())
}

func TestBytesIsACopy(t *testing.T) {
	term := NewSimpleLiteral("abc")
	b := term.Bytes()
	b[0] = 'z'
	assert.Equal(t, "abc", term.Text())
}
