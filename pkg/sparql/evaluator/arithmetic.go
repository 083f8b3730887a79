package evaluator

import (
	"github.com/aleksaelezovic/rdfterm/pkg/rdf"
)

// resultType returns the type of an arithmetic result. Both operands must be
// numeric and compatible; the lower id wins, which approximates numeric type
// promotion.
func resultType(a, b *rdf.Term) (rdf.TypeID, error) {
	if a == nil || b == nil {
		return 0, ErrUnbound
	}
	x, y := a.TypeID(), b.TypeID()
	if !rdf.Compatible(x, y) {
		return 0, typeError("incompatible types %s and %s", x, y)
	}
	if !rdf.IsNumeric(x) || !rdf.IsNumeric(y) {
		return 0, typeError("non-numeric operand of type %s", x)
	}
	return min(x, y), nil
}

func arithmetic(a, b *rdf.Term, op func(x, y float64) float64) (*rdf.Term, error) {
	id, err := resultType(a, b)
	if err != nil {
		return nil, err
	}
	x, _ := a.Number()
	y, _ := b.Number()
	return rdf.FromNumber(id, op(x, y))
}

// Add returns a + b. The result fails with rdf.ErrRejected if its text
// would be too long.
func Add(a, b *rdf.Term) (*rdf.Term, error) {
	return arithmetic(a, b, func(x, y float64) float64 { return x + y })
}

// Subtract returns a - b.
func Subtract(a, b *rdf.Term) (*rdf.Term, error) {
	return arithmetic(a, b, func(x, y float64) float64 { return x - y })
}

// Multiply returns a * b.
func Multiply(a, b *rdf.Term) (*rdf.Term, error) {
	return arithmetic(a, b, func(x, y float64) float64 { return x * y })
}

// Divide returns a / b in floating point, also for integer types. Division
// by zero yields an infinity or NaN.
func Divide(a, b *rdf.Term) (*rdf.Term, error) {
	return arithmetic(a, b, func(x, y float64) float64 { return x / y })
}

// Negate returns -t.
func Negate(t *rdf.Term) (*rdf.Term, error) {
	if t == nil {
		return nil, ErrUnbound
	}
	f, ok := t.Number()
	if !ok {
		return nil, typeError("non-numeric operand of type %s", t.TypeID())
	}
	return rdf.FromNumber(t.TypeID(), -f)
}

// Plus returns t itself if it is numeric.
func Plus(t *rdf.Term) (*rdf.Term, error) {
	if t == nil {
		return nil, ErrUnbound
	}
	if !rdf.IsNumeric(t.TypeID()) {
		return nil, typeError("non-numeric operand of type %s", t.TypeID())
	}
	return t, nil
}
