package evaluator

import "github.com/pkg/errors"

var (
	// ErrTypeError is returned when operands cannot be combined or compared.
	// Like an unbound operand it makes the result absent rather than false.
	ErrTypeError = errors.New("type error")

	// ErrUnbound is returned when an operand is missing.
	ErrUnbound = errors.New("unbound operand")
)

func typeError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrTypeError, format, args...)
}
