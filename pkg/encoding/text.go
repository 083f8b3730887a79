package encoding

import (
	"strconv"
	"strings"

	"github.com/aleksaelezovic/rdfterm/pkg/rdf"
	"github.com/pkg/errors"
)

// FormatText renders a term in the textual literal syntax
//
//	'<text>'^^<hex type id>
//
// The lexical form is written as is; quotes inside it are not escaped.
func FormatText(t *rdf.Term) string {
	var b strings.Builder
	b.Grow(t.Len() + 4 + 8)
	b.WriteByte('\'')
	b.WriteString(t.Text())
	b.WriteString("'^^")
	b.WriteString(t.TypeID().String())
	return b.String()
}

// ParseText reads a term in the textual literal syntax and validates it with
// rdf.ParseString. Leading and trailing blanks are ignored; the text ends at
// the first quote after the opening one.
func ParseText(s string) (*rdf.Term, error) {
	rest := strings.TrimLeft(s, " \t")
	if !strings.HasPrefix(rest, "'") {
		return nil, errors.Wrap(ErrMalformed, "missing opening quote")
	}
	rest = rest[1:]

	end := strings.IndexByte(rest, '\'')
	if end < 0 {
		return nil, errors.Wrap(ErrMalformed, "missing closing quote")
	}
	text := rest[:end]
	rest = rest[end+1:]

	if !strings.HasPrefix(rest, "^^") {
		return nil, errors.Wrap(ErrMalformed, "missing type separator")
	}
	id, err := parseTypeID(strings.TrimRight(rest[2:], " \t"))
	if err != nil {
		return nil, err
	}
	return rdf.ParseString(id, text)
}

// parseTypeID reads a hex type id with an optional 0x prefix.
func parseTypeID(s string) (rdf.TypeID, error) {
	digits := s
	if len(digits) > 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return 0, errors.Wrapf(ErrMalformed, "invalid type id %q", s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformed, "invalid type id %q", s)
	}
	return rdf.TypeID(v), nil
}
