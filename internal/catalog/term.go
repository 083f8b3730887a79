package catalog

import (
	"strconv"
	"strings"

	"github.com/aleksaelezovic/rdfterm/pkg/encoding"
	"github.com/aleksaelezovic/rdfterm/pkg/rdf"
	"github.com/pkg/errors"
)

// ParseTerm reads a term written as
//
//	<http://example.org/>       IRI
//	_:b0                        blank node
//	"chat"@fr                   plain literal
//	"42"^^<http://...#integer>  typed literal, also "42"^^xsd:integer
//	"text"                      simple literal
//	'42'^^1001                  raw type id in the textual literal syntax
//
// Double quoted lexical forms use Go string escapes.
func (c *Catalog) ParseTerm(s string) (*rdf.Term, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">"):
		return rdf.NewIRI(s[1 : len(s)-1]), nil
	case strings.HasPrefix(s, "_:"):
		return rdf.NewBlankNode(s[2:]), nil
	case strings.HasPrefix(s, "'"):
		return encoding.ParseText(s)
	case strings.HasPrefix(s, `"`):
		return c.parseQuoted(s)
	}
	return nil, errors.Errorf("cannot parse term %q", s)
}

func (c *Catalog) parseQuoted(s string) (*rdf.Term, error) {
	quoted, err := strconv.QuotedPrefix(s)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing literal %s", s)
	}
	lexical, err := strconv.Unquote(quoted)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing literal %s", s)
	}

	rest := s[len(quoted):]
	switch {
	case rest == "":
		return c.Literal(lexical, "", "")
	case strings.HasPrefix(rest, "@") && len(rest) > 1:
		return c.Literal(lexical, rest[1:], "")
	case strings.HasPrefix(rest, "^^<") && strings.HasSuffix(rest, ">"):
		return c.Literal(lexical, "", rest[3:len(rest)-1])
	case strings.HasPrefix(rest, "^^xsd:"):
		return c.Literal(lexical, "", XSD+rest[len("^^xsd:"):])
	}
	return nil, errors.Errorf("cannot parse literal suffix %q", rest)
}
