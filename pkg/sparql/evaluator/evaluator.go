// Package evaluator implements the SPARQL operators over term values.
// Results that are absent in SPARQL are returned as a nil term with an
// error: ErrTypeError, ErrUnbound, or an rdf.ErrRejected when a computed
// value has no valid lexical form.
package evaluator

import (
	"github.com/aleksaelezovic/rdfterm/pkg/rdf"
	"github.com/pkg/errors"
)

// Evaluator applies operators under one term ordering.
type Evaluator struct {
	order rdf.Ordering
}

// NewEvaluator creates an evaluator that compares terms with order.
func NewEvaluator(order rdf.Ordering) *Evaluator {
	return &Evaluator{order: order}
}

// Apply evaluates op on args. Only Bound accepts nil arguments.
func (e *Evaluator) Apply(op Operator, args ...*rdf.Term) (*rdf.Term, error) {
	if want := op.Arity(); len(args) != want {
		return nil, errors.Errorf("%s takes %d arguments, got %d", op, want, len(args))
	}

	switch op {
	case OpBound:
		return Bound(args[0]), nil
	case OpNot:
		return Not(args[0])
	case OpAnd:
		return And(args[0], args[1])
	case OpOr:
		return Or(args[0], args[1])
	case OpIsURI:
		return IsURI(args[0])
	case OpIsBlank:
		return IsBlank(args[0])
	case OpIsLiteral:
		return IsLiteral(args[0])

	case OpAdd:
		return Add(args[0], args[1])
	case OpSubtract:
		return Subtract(args[0], args[1])
	case OpMultiply:
		return Multiply(args[0], args[1])
	case OpDivide:
		return Divide(args[0], args[1])
	case OpNegate:
		return Negate(args[0])
	case OpPlus:
		return Plus(args[0])

	case OpLangMatches:
		return LangMatches(args[0], args[1])

	case OpEqual:
		return e.Equal(args[0], args[1])
	case OpNotEqual:
		return e.NotEqual(args[0], args[1])
	case OpLess:
		return e.Less(args[0], args[1])
	case OpLessEq:
		return e.LessEq(args[0], args[1])
	case OpGreater:
		return e.Greater(args[0], args[1])
	case OpGreaterEq:
		return e.GreaterEq(args[0], args[1])

	default:
		return nil, errors.Errorf("unsupported operator: %v", op)
	}
}

// CheckCompatible returns true if a and b may be compared. Incompatible
// types, and unequal values of an unknown datatype, are a type error.
func (e *Evaluator) CheckCompatible(a, b *rdf.Term) (bool, error) {
	if err := e.typeCheck(a, b); err != nil {
		return false, err
	}
	return true, nil
}

// CheckIncompatible is the negated form of CheckCompatible: it returns false
// where CheckCompatible returns true and fails where it fails.
func (e *Evaluator) CheckIncompatible(a, b *rdf.Term) (bool, error) {
	if err := e.typeCheck(a, b); err != nil {
		return false, err
	}
	return false, nil
}

func (e *Evaluator) typeCheck(a, b *rdf.Term) error {
	if a == nil || b == nil {
		return ErrUnbound
	}
	if !rdf.Compatible(a.TypeID(), b.TypeID()) {
		return typeError("incompatible types %s and %s", a.TypeID(), b.TypeID())
	}
	// Two values of a datatype we know nothing about can only be told
	// equal or not.
	if a.TypeID().IsUnknown() && e.order.Compare(a, b) != 0 {
		return typeError("cannot compare distinct values of unknown type %s", a.TypeID())
	}
	return nil
}

func (e *Evaluator) compare(a, b *rdf.Term, pred func(c int) bool) (*rdf.Term, error) {
	if err := e.typeCheck(a, b); err != nil {
		return nil, err
	}
	return rdf.NewBoolean(pred(e.order.Compare(a, b))), nil
}

// Equal returns whether a = b.
func (e *Evaluator) Equal(a, b *rdf.Term) (*rdf.Term, error) {
	return e.compare(a, b, func(c int) bool { return c == 0 })
}

// NotEqual returns whether a != b.
func (e *Evaluator) NotEqual(a, b *rdf.Term) (*rdf.Term, error) {
	return e.compare(a, b, func(c int) bool { return c != 0 })
}

// Less returns whether a < b.
func (e *Evaluator) Less(a, b *rdf.Term) (*rdf.Term, error) {
	return e.compare(a, b, func(c int) bool { return c < 0 })
}

// LessEq returns whether a <= b.
func (e *Evaluator) LessEq(a, b *rdf.Term) (*rdf.Term, error) {
	return e.compare(a, b, func(c int) bool { return c <= 0 })
}

// Greater returns whether a > b.
func (e *Evaluator) Greater(a, b *rdf.Term) (*rdf.Term, error) {
	return e.compare(a, b, func(c int) bool { return c > 0 })
}

// GreaterEq returns whether a >= b.
func (e *Evaluator) GreaterEq(a, b *rdf.Term) (*rdf.Term, error) {
	return e.compare(a, b, func(c int) bool { return c >= 0 })
}
