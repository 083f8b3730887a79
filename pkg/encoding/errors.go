package encoding

import "github.com/pkg/errors"

var (
	// ErrMalformed is returned for input that is not a textual literal.
	ErrMalformed = errors.New("encoding: malformed literal")

	// ErrTruncated is returned when binary input ends inside a term.
	ErrTruncated = errors.New("encoding: truncated term")

	// ErrTrailingData is returned when binary input continues after a term.
	ErrTrailingData = errors.New("encoding: trailing data after term")
)
