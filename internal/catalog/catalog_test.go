package catalog

import (
	"testing"

	"github.com/aleksaelezovic/rdfterm/internal/storage"
	"github.com/aleksaelezovic/rdfterm/pkg/rdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltins(t *testing.T) {
	c := New()
	for name, want := range map[string]rdf.TypeID{
		"string":   rdf.TypeString,
		"integer":  TypeInteger,
		"double":   TypeDouble,
		"boolean":  rdf.TypeBoolean,
		"dateTime": rdf.TypeDateTime,
		"date":     rdf.TypeDate,
		"time":     rdf.TypeTime,
	} {
		id, err := c.DatatypeID(XSD + name)
		require.NoError(t, err)
		assert.Equal(t, want, id, name)
	}

	assert.True(t, rdf.IsNumeric(TypePositiveInteger))
	assert.True(t, rdf.Compatible(TypeDouble, TypeUnsignedByte))
	assert.Less(t, TypeDouble, TypeInteger, "double wins arithmetic promotion")
}

func TestUnknownDatatypes(t *testing.T) {
	c := New()
	a, err := c.DatatypeID("http://example.org/a")
	require.NoError(t, err)
	b, err := c.DatatypeID("http://example.org/b")
	require.NoError(t, err)
	again, err := c.DatatypeID("http://example.org/a")
	require.NoError(t, err)

	assert.Equal(t, rdf.TypeUnknownBase, a)
	assert.Equal(t, rdf.TypeID(0x4100), b)
	assert.Equal(t, a, again)
	assert.False(t, rdf.Compatible(a, b))
	assert.True(t, a.IsUnknown())
}

func TestLanguages(t *testing.T) {
	c := New()
	en, err := c.LanguageID("en")
	require.NoError(t, err)
	de, err := c.LanguageID("de-CH")
	require.NoError(t, err)
	upper, err := c.LanguageID("EN")
	require.NoError(t, err)

	assert.Equal(t, rdf.TypeID(3), en)
	assert.Equal(t, rdf.TypeID(4), de)
	assert.Equal(t, en, upper)
}

func TestLanguagesFull(t *testing.T) {
	c := New()
	c.nextLanguage = rdf.LanguageMax
	_, err := c.LanguageID("last")
	require.NoError(t, err)
	_, err = c.LanguageID("one-too-many")
	assert.ErrorIs(t, err, ErrFull)
}

func TestLiteralAndFormat(t *testing.T) {
	c := New()

	lit, err := c.Literal("42", "", XSD+"integer")
	require.NoError(t, err)
	assert.Equal(t, TypeInteger, lit.TypeID())
	assert.Equal(t, `"42"^^<http://www.w3.org/2001/XMLSchema#integer>`, c.Format(lit))

	lit, err = c.Literal("chat", "fr", "")
	require.NoError(t, err)
	assert.Equal(t, `"chat"@fr`, c.Format(lit))

	lit, err = c.Literal("plain", "", "")
	require.NoError(t, err)
	assert.Equal(t, `"plain"`, c.Format(lit))

	assert.Equal(t, "<http://example.org/>", c.Format(rdf.NewIRI("http://example.org/")))
	assert.Equal(t, "_:b0", c.Format(rdf.NewBlankNode("b0")))
	assert.Equal(t, `"x"^^<http://www.w3.org/2001/XMLSchema#string>`, c.Format(rdf.NewStringLiteral("x")))

	raw, err := rdf.ParseString(0x4200, "opaque")
	require.NoError(t, err)
	assert.Equal(t, `"opaque"^^4200`, c.Format(raw))

	_, err = c.Literal("x", "en", XSD+"string")
	assert.Error(t, err)
	_, err = c.Literal("abc", "", XSD+"integer")
	assert.ErrorIs(t, err, rdf.ErrRejected)
}

func TestPersistence(t *testing.T) {
	dir := t.TempDir()
	s, err := storage.NewBadgerStorage(dir)
	require.NoError(t, err)

	c, err := Open(s)
	require.NoError(t, err)
	_, err = c.LanguageID("en")
	require.NoError(t, err)
	_, err = c.LanguageID("fr")
	require.NoError(t, err)
	_, err = c.DatatypeID("http://example.org/t")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = storage.NewBadgerStorage(dir)
	require.NoError(t, err)
	defer s.Close()
	c, err = Open(s)
	require.NoError(t, err)

	fr, err := c.LanguageID("fr")
	require.NoError(t, err)
	assert.Equal(t, rdf.TypeID(4), fr)

	next, err := c.LanguageID("de")
	require.NoError(t, err)
	assert.Equal(t, rdf.TypeID(5), next)

	dt, err := c.DatatypeID("http://example.org/u")
	require.NoError(t, err)
	assert.Equal(t, rdf.TypeID(0x4100), dt)
}

func TestEntries(t *testing.T) {
	c := New()
	_, err := c.LanguageID("en")
	require.NoError(t, err)

	entries := c.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, rdf.TypeString, entries[0].ID)
	assert.Equal(t, XSD+"string", entries[0].Datatype)
	assert.Equal(t, Entry{ID: 3, Language: "en"}, entries[1])
	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i-1].ID, entries[i].ID)
	}
}

func TestParseTerm(t *testing.T) {
	c := New()
	tests := []struct {
		in   string
		id   rdf.TypeID
		text string
	}{
		{"<http://example.org/a>", rdf.TypeIRI, "http://example.org/a"},
		{"_:b0", rdf.TypeIRI, "bnode:b0"},
		{`"hello"`, rdf.TypeSimpleLiteral, "hello"},
		{`"tab\there"`, rdf.TypeSimpleLiteral, "tab\there"},
		{`"chat"@fr`, 3, "chat"},
		{`"42"^^<http://www.w3.org/2001/XMLSchema#integer>`, TypeInteger, "42"},
		{`"2.5"^^xsd:double`, TypeDouble, "2.5"},
		{`"x"^^xsd:string`, rdf.TypeString, "x"},
		{"'7'^^1003", TypeInteger, "7"},
		{`  "padded"  `, rdf.TypeSimpleLiteral, "padded"},
	}
	for _, tt := range tests {
		term, err := c.ParseTerm(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.id, term.TypeID(), tt.in)
		assert.Equal(t, tt.text, term.Text(), tt.in)
	}

	for _, in := range []string{"", "plain", `"open`, `"x"@`, `"x"^^`, `"x"junk`, `"abc"^^xsd:integer`} {
		_, err := c.ParseTerm(in)
		assert.Error(t, err, in)
	}
}
