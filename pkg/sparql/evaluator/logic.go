package evaluator

import (
	"math"

	"github.com/aleksaelezovic/rdfterm/pkg/rdf"
)

// EffectiveBooleanValue converts a term to a truth value. Numbers are true
// unless zero (NaN is true), booleans are true iff their text is "true", and
// everything else is true iff its text is not empty.
func EffectiveBooleanValue(t *rdf.Term) bool {
	if f, ok := t.Number(); ok {
		return math.IsNaN(f) || f != 0
	}
	if t.TypeID() == rdf.TypeBoolean {
		return t.Text() == "true"
	}
	return t.Len() > 0
}

// Not negates the effective boolean value of t.
func Not(t *rdf.Term) (*rdf.Term, error) {
	v, err := NotRaw(t)
	if err != nil {
		return nil, err
	}
	return rdf.NewBoolean(v), nil
}

// NotRaw is Not without wrapping the result in a term.
func NotRaw(t *rdf.Term) (bool, error) {
	if t == nil {
		return false, ErrUnbound
	}
	return !EffectiveBooleanValue(t), nil
}

// And combines the effective boolean values of a and b.
func And(a, b *rdf.Term) (*rdf.Term, error) {
	if a == nil || b == nil {
		return nil, ErrUnbound
	}
	return rdf.NewBoolean(EffectiveBooleanValue(a) && EffectiveBooleanValue(b)), nil
}

// Or combines the effective boolean values of a and b.
func Or(a, b *rdf.Term) (*rdf.Term, error) {
	if a == nil || b == nil {
		return nil, ErrUnbound
	}
	return rdf.NewBoolean(EffectiveBooleanValue(a) || EffectiveBooleanValue(b)), nil
}

// Bound reports whether an operand is present. It never fails.
func Bound(t *rdf.Term) *rdf.Term {
	return rdf.NewBoolean(t != nil)
}

// IsURI reports whether t is an IRI.
func IsURI(t *rdf.Term) (*rdf.Term, error) {
	if t == nil {
		return nil, ErrUnbound
	}
	return rdf.NewBoolean(t.IsURI()), nil
}

// IsBlank reports whether t is a blank node.
func IsBlank(t *rdf.Term) (*rdf.Term, error) {
	if t == nil {
		return nil, ErrUnbound
	}
	return rdf.NewBoolean(t.IsBlankNode()), nil
}

// IsLiteral reports whether t is a literal.
func IsLiteral(t *rdf.Term) (*rdf.Term, error) {
	if t == nil {
		return nil, ErrUnbound
	}
	return rdf.NewBoolean(t.IsLiteral()), nil
}
