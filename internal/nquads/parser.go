// Package nquads reads N-Triples and N-Quads documents into terms.
package nquads

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aleksaelezovic/rdfterm/pkg/rdf"
	"github.com/pkg/errors"
)

// Resolver maps literal language tags and datatype IRIs to type ids.
type Resolver interface {
	Literal(text, lang, datatype string) (*rdf.Term, error)
}

// Quad is one statement. Graph is nil for statements in the default graph.
type Quad struct {
	Subject, Predicate, Object, Graph *rdf.Term
}

// Terms returns the terms of the statement in position order.
func (q Quad) Terms() []*rdf.Term {
	if q.Graph == nil {
		return []*rdf.Term{q.Subject, q.Predicate, q.Object}
	}
	return []*rdf.Term{q.Subject, q.Predicate, q.Object, q.Graph}
}

// Parser is an N-Quads parser. N-Triples documents are N-Quads documents
// without graph labels.
type Parser struct {
	input    string
	pos      int
	length   int
	line     int
	resolver Resolver
}

// NewParser creates a parser for input that resolves literals with r.
func NewParser(input string, r Resolver) *Parser {
	return &Parser{
		input:    input,
		length:   len(input),
		line:     1,
		resolver: r,
	}
}

// Parse parses the document and returns its statements.
func (p *Parser) Parse() ([]Quad, error) {
	var quads []Quad
	for {
		p.skipWhitespaceAndComments()
		if p.pos >= p.length {
			return quads, nil
		}
		quad, err := p.parseQuad()
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", p.line)
		}
		quads = append(quads, quad)
	}
}

// skipWhitespaceAndComments skips whitespace and comments
func (p *Parser) skipWhitespaceAndComments() {
	for p.pos < p.length {
		ch := p.input[p.pos]
		switch ch {
		case '\n':
			p.line++
			p.pos++
		case ' ', '\t', '\r':
			p.pos++
		case '#':
			for p.pos < p.length && p.input[p.pos] != '\n' {
				p.pos++
			}
		default:
			return
		}
	}
}

// parseQuad parses subject predicate object [graph] .
func (p *Parser) parseQuad() (Quad, error) {
	var q Quad
	var err error

	if q.Subject, err = p.parseResource(); err != nil {
		return q, errors.Wrap(err, "subject")
	}
	p.skipWhitespaceAndComments()
	if p.peek() != '<' {
		return q, errors.New("predicate: expected IRI")
	}
	if q.Predicate, err = p.parseResource(); err != nil {
		return q, errors.Wrap(err, "predicate")
	}
	p.skipWhitespaceAndComments()
	if q.Object, err = p.parseTerm(); err != nil {
		return q, errors.Wrap(err, "object")
	}
	p.skipWhitespaceAndComments()

	if ch := p.peek(); ch == '<' || ch == '_' {
		if q.Graph, err = p.parseResource(); err != nil {
			return q, errors.Wrap(err, "graph")
		}
		p.skipWhitespaceAndComments()
	}

	if p.peek() != '.' {
		return q, errors.New("expected '.' at end of statement")
	}
	p.pos++
	return q, nil
}

func (p *Parser) peek() byte {
	if p.pos >= p.length {
		return 0
	}
	return p.input[p.pos]
}

// parseTerm parses an IRI, blank node or literal.
func (p *Parser) parseTerm() (*rdf.Term, error) {
	if p.peek() == '"' {
		return p.parseLiteral()
	}
	return p.parseResource()
}

func (p *Parser) parseResource() (*rdf.Term, error) {
	switch p.peek() {
	case '<':
		iri, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		return rdf.NewIRI(iri), nil
	case '_':
		return p.parseBlankNode()
	case 0:
		return nil, errors.New("unexpected end of input")
	}
	return nil, errors.Errorf("unexpected character %q", p.peek())
}

// parseIRI parses an IRI enclosed in < >
func (p *Parser) parseIRI() (string, error) {
	if p.peek() != '<' {
		return "", errors.New("expected '<' at start of IRI")
	}
	p.pos++

	var iri strings.Builder
	for p.pos < p.length && p.input[p.pos] != '>' {
		switch ch := p.input[p.pos]; ch {
		case '\\':
			if err := p.parseUnicodeEscape(&iri); err != nil {
				return "", err
			}
		case ' ', '\t', '\n', '\r':
			return "", errors.New("whitespace in IRI")
		default:
			iri.WriteByte(ch)
			p.pos++
		}
	}
	if p.pos >= p.length {
		return "", errors.New("unclosed IRI")
	}
	p.pos++
	return iri.String(), nil
}

func (p *Parser) parseBlankNode() (*rdf.Term, error) {
	if !strings.HasPrefix(p.input[p.pos:], "_:") {
		return nil, errors.New("expected '_:' at start of blank node")
	}
	p.pos += 2

	start := p.pos
	for p.pos < p.length {
		ch := p.input[p.pos]
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '<' || ch == '"' {
			break
		}
		p.pos++
	}
	// A label may contain dots but cannot end with one.
	for p.pos > start && p.input[p.pos-1] == '.' {
		p.pos--
	}
	if p.pos == start {
		return nil, errors.New("empty blank node label")
	}
	return rdf.NewBlankNode(p.input[start:p.pos]), nil
}

func (p *Parser) parseLiteral() (*rdf.Term, error) {
	p.pos++

	var value strings.Builder
	for {
		if p.pos >= p.length {
			return nil, errors.New("unclosed string literal")
		}
		ch := p.input[p.pos]
		if ch == '"' {
			p.pos++
			break
		}
		if ch == '\n' || ch == '\r' {
			return nil, errors.New("line break in string literal")
		}
		if ch != '\\' {
			value.WriteByte(ch)
			p.pos++
			continue
		}
		if err := p.parseEscape(&value); err != nil {
			return nil, err
		}
	}

	switch {
	case p.peek() == '@':
		p.pos++
		start := p.pos
		for p.pos < p.length && isLangChar(p.input[p.pos]) {
			p.pos++
		}
		if p.pos == start {
			return nil, errors.New("empty language tag")
		}
		return p.resolver.Literal(value.String(), p.input[start:p.pos], "")
	case strings.HasPrefix(p.input[p.pos:], "^^"):
		p.pos += 2
		datatype, err := p.parseIRI()
		if err != nil {
			return nil, errors.Wrap(err, "datatype")
		}
		return p.resolver.Literal(value.String(), "", datatype)
	}
	return rdf.NewSimpleLiteral(value.String()), nil
}

func isLangChar(ch byte) bool {
	return ch == '-' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
}

// parseEscape decodes the escape sequence at the current position.
func (p *Parser) parseEscape(dst *strings.Builder) error {
	if p.pos+1 >= p.length {
		return errors.New("unexpected end of input in escape sequence")
	}
	var b byte
	switch p.input[p.pos+1] {
	case 't':
		b = '\t'
	case 'b':
		b = '\b'
	case 'n':
		b = '\n'
	case 'r':
		b = '\r'
	case 'f':
		b = '\f'
	case '"':
		b = '"'
	case '\'':
		b = '\''
	case '\\':
		b = '\\'
	case 'u', 'U':
		return p.parseUnicodeEscape(dst)
	default:
		return errors.Errorf("invalid escape sequence \\%c", p.input[p.pos+1])
	}
	dst.WriteByte(b)
	p.pos += 2
	return nil
}

// parseUnicodeEscape decodes \uXXXX or \UXXXXXXXX.
func (p *Parser) parseUnicodeEscape(dst *strings.Builder) error {
	if p.pos+1 >= p.length {
		return errors.New("unexpected end of input in escape sequence")
	}
	n := 0
	switch p.input[p.pos+1] {
	case 'u':
		n = 4
	case 'U':
		n = 8
	default:
		return errors.Errorf("invalid escape sequence \\%c", p.input[p.pos+1])
	}
	start := p.pos + 2
	if start+n > p.length {
		return errors.New("truncated unicode escape")
	}
	code, err := strconv.ParseUint(p.input[start:start+n], 16, 32)
	if err != nil || !utf8.ValidRune(rune(code)) {
		return errors.Errorf("invalid unicode escape %q", p.input[p.pos:start+n])
	}
	dst.WriteRune(rune(code))
	p.pos = start + n
	return nil
}
