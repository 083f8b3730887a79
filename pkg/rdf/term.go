package rdf

import (
	"fmt"
	"strings"
)

// BlankNodePrefix marks resources that are blank nodes rather than IRIs.
const BlankNodePrefix = "bnode:"

// Payload is the typed value carried next to a term's lexical form.
// The concrete type is fixed by the storage class of the term's type id:
// text terms carry no payload, numeric terms a Number and date/time terms a
// Temporal.
type Payload interface {
	storageClass() StorageClass
}

// Number is the payload of numeric terms.
type Number float64

func (Number) storageClass() StorageClass { return StorageNumeric }

// Temporal is the payload of date/time terms: seconds since the Unix epoch
// of the wall-clock fields, and whether a timezone was given. The offset of
// the timezone itself is not kept.
type Temporal struct {
	Seconds     int64
	HasTimezone bool
}

func (Temporal) storageClass() StorageClass { return StorageDateTime }

// Term is an RDF term value: a type id, an optional payload and the original
// lexical form. Terms are immutable; every operation returns a new Term.
type Term struct {
	typeID  TypeID
	payload Payload
	text    string
}

func newTerm(id TypeID, payload Payload, text string) *Term {
	return &Term{typeID: id, payload: payload, text: text}
}

// TypeID returns the term's type id.
func (t *Term) TypeID() TypeID { return t.typeID }

// StorageClass returns the storage class of the term's type id.
func (t *Term) StorageClass() StorageClass { return StorageClassOf(t.typeID) }

// Text returns the lexical form exactly as it was parsed.
func (t *Term) Text() string { return t.text }

// Bytes returns a copy of the lexical form.
func (t *Term) Bytes() []byte { return []byte(t.text) }

// Len returns the length of the lexical form in bytes.
func (t *Term) Len() int { return len(t.text) }

// Payload returns the typed value, or nil for text terms.
func (t *Term) Payload() Payload { return t.payload }

// Number returns the numeric payload. ok is false for non-numeric terms.
func (t *Term) Number() (f float64, ok bool) {
	n, ok := t.payload.(Number)
	return float64(n), ok
}

// Temporal returns the date/time payload. ok is false for other terms.
func (t *Term) Temporal() (tm Temporal, ok bool) {
	tm, ok = t.payload.(Temporal)
	return tm, ok
}

// IsResource reports whether the term is an IRI or a blank node.
func (t *Term) IsResource() bool {
	return t.typeID == TypeIRI
}

// IsBlankNode reports whether the term is a blank node resource.
func (t *Term) IsBlankNode() bool {
	return t.IsResource() && strings.HasPrefix(t.text, BlankNodePrefix)
}

// IsURI reports whether the term is a resource that is not a blank node.
func (t *Term) IsURI() bool {
	return t.IsResource() && !strings.HasPrefix(t.text, BlankNodePrefix)
}

// IsLiteral reports whether the term is any kind of literal.
func (t *Term) IsLiteral() bool {
	return !t.IsResource()
}

// DatatypeID returns the type id if it denotes a datatype, i.e. if the host
// should have a datatype URI for it.
func (t *Term) DatatypeID() (TypeID, bool) {
	if t.typeID <= LanguageMax {
		return 0, false
	}
	return t.typeID, true
}

// LanguageID returns the type id if it denotes a plain literal, i.e. if the
// host should have a language tag for it.
func (t *Term) LanguageID() (TypeID, bool) {
	if t.typeID <= TypeString || t.typeID > LanguageMax {
		return 0, false
	}
	return t.typeID, true
}

// Equals reports whether two terms have the same type id and lexical form.
// This is identity, not the value equality defined by Compare.
func (t *Term) Equals(other *Term) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.typeID == other.typeID && t.text == other.text
}

func (t *Term) String() string {
	return fmt.Sprintf("'%s'^^%s", t.text, t.typeID)
}

// NewBoolean returns the boolean term for flag.
func NewBoolean(flag bool) *Term {
	if flag {
		return newTerm(TypeBoolean, nil, "true")
	}
	return newTerm(TypeBoolean, nil, "false")
}

// NewIRI returns a resource term for an IRI.
func NewIRI(iri string) *Term {
	return newTerm(TypeIRI, nil, iri)
}

// NewBlankNode returns a resource term for the blank node label.
func NewBlankNode(label string) *Term {
	return newTerm(TypeIRI, nil, BlankNodePrefix+label)
}

// NewSimpleLiteral returns a literal without language and datatype.
func NewSimpleLiteral(value string) *Term {
	return newTerm(TypeSimpleLiteral, nil, value)
}

// NewStringLiteral returns a literal of type xsd:string.
func NewStringLiteral(value string) *Term {
	return newTerm(TypeString, nil, value)
}
