package rdf

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxNumericLen is the longest lexical form accepted for numeric literals.
const MaxNumericLen = 12

// Parse validates text as a lexical form of the given type and returns the
// resulting term. Numeric and date/time forms are converted into their
// payload; all other types are taken verbatim. Malformed input yields an
// error wrapping ErrRejected.
func Parse(id TypeID, text []byte) (*Term, error) {
	return ParseString(id, string(text))
}

// ParseString is Parse for string input.
func ParseString(id TypeID, text string) (*Term, error) {
	switch StorageClassOf(id) {
	case StorageNumeric:
		return parseNumber(id, text)
	case StorageDateTime:
		return parseDateTime(id, text)
	default:
		return parseText(id, text)
	}
}

// Cast re-parses the lexical form of t as a value of another type.
func Cast(id TypeID, t *Term) (*Term, error) {
	return ParseString(id, t.text)
}

func parseText(id TypeID, text string) (*Term, error) {
	if id == TypeBoolean && text != "true" && text != "false" {
		return nil, reject(ErrSyntax, id, text)
	}
	return newTerm(id, nil, text), nil
}

func parseNumber(id TypeID, text string) (*Term, error) {
	if len(text) > MaxNumericLen {
		return nil, reject(ErrTooLong, id, text)
	}
	f, err := scanFloat(text)
	if err != nil {
		return nil, reject(err, id, text)
	}
	return newTerm(id, Number(f), text), nil
}

// scanFloat parses a complete floating point literal. Leading blanks are
// skipped like a scanf conversion would, anything left over is an error.
func scanFloat(text string) (float64, error) {
	s := strings.TrimLeft(text, " \t\n\v\f\r")
	if s == "" || strings.ContainsRune(s, '_') {
		return 0, ErrSyntax
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			// Overflow saturates to ±Inf, underflow to ±0.
			return f, nil
		}
		return 0, ErrSyntax
	}
	return f, nil
}

// FromNumber builds a numeric term from a float64, rendering the shortest
// decimal text that parses back to the same value. Values that need
// MaxNumericLen or more characters are rejected.
func FromNumber(id TypeID, f float64) (*Term, error) {
	if !IsNumeric(id) {
		return nil, reject(ErrUnsupportedType, id, "")
	}
	text := formatShortest(f)
	if len(text) >= MaxNumericLen {
		return nil, reject(ErrTooLong, id, text)
	}
	return newTerm(id, Number(f), text), nil
}

// NewNumber builds a numeric term for a payload read back from an encoding.
// Unlike FromNumber it keeps any length of text, since the value was valid
// when it was encoded.
func NewNumber(id TypeID, f float64) (*Term, error) {
	if !IsNumeric(id) {
		return nil, reject(ErrUnsupportedType, id, "")
	}
	return newTerm(id, Number(f), formatShortest(f)), nil
}

func formatShortest(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}
	best := strconv.FormatFloat(f, 'g', -1, 64)
	for _, format := range []byte{'f', 'e'} {
		if s := strconv.FormatFloat(f, format, -1, 64); len(s) < len(best) {
			best = s
		}
	}
	return best
}
