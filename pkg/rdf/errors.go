package rdf

import "github.com/pkg/errors"

var (
	// ErrRejected is returned for lexical input that does not denote a valid
	// value of the requested type. All other parse errors wrap it.
	ErrRejected = errors.New("rdf: rejected lexical form")

	ErrTooLong         = rejection("lexical form too long")
	ErrSyntax          = rejection("invalid syntax")
	ErrUnsupportedType = rejection("unsupported date/time type")
	ErrOutOfRange      = rejection("value out of range")
)

// rejectionError is a cause that is also an ErrRejected.
type rejectionError struct {
	msg string
}

func rejection(msg string) error {
	return &rejectionError{msg: msg}
}

func (e *rejectionError) Error() string { return "rdf: " + e.msg }

func (e *rejectionError) Is(target error) bool { return target == ErrRejected }

func reject(cause error, id TypeID, text string) error {
	return errors.Wrapf(cause, "type %s, text %q", id, text)
}
