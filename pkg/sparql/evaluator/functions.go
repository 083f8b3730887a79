package evaluator

import (
	"strings"

	"github.com/aleksaelezovic/rdfterm/pkg/rdf"
)

// LangMatches matches a language tag against a pattern. Both must be simple
// literals. "*" matches every non-empty tag; any other pattern matches the
// tags it is a case-insensitive prefix of.
func LangMatches(tag, pattern *rdf.Term) (*rdf.Term, error) {
	if tag == nil || pattern == nil {
		return nil, ErrUnbound
	}
	if tag.TypeID() != rdf.TypeSimpleLiteral || pattern.TypeID() != rdf.TypeSimpleLiteral {
		return nil, typeError("langMatches needs simple literals, got %s and %s", tag.TypeID(), pattern.TypeID())
	}

	t, p := tag.Text(), pattern.Text()
	if p == "*" {
		return rdf.NewBoolean(t != ""), nil
	}
	return rdf.NewBoolean(len(t) >= len(p) && strings.EqualFold(t[:len(p)], p)), nil
}

// StartsWith reports whether the lexical form of t begins with prefix.
func StartsWith(t *rdf.Term, prefix []byte) bool {
	return strings.HasPrefix(t.Text(), string(prefix))
}

// Str returns the lexical form of t without its type.
func Str(t *rdf.Term) string {
	return t.Text()
}

// TypeIDOf returns the type id of t.
func TypeIDOf(t *rdf.Term) rdf.TypeID {
	return t.TypeID()
}

// DatatypeID returns the id the host maps to a datatype URI, if t has one.
func DatatypeID(t *rdf.Term) (rdf.TypeID, bool) {
	return t.DatatypeID()
}

// LanguageID returns the id the host maps to a language tag, if t has one.
func LanguageID(t *rdf.Term) (rdf.TypeID, bool) {
	return t.LanguageID()
}
