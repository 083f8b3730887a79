// Package rdfio selects a statement parser by content type.
package rdfio

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/aleksaelezovic/rdfterm/internal/nquads"
	"github.com/pkg/errors"
)

const (
	ContentTypeNTriples = "application/n-triples"
	ContentTypeNQuads   = "application/n-quads"
)

// RDFParser parses statements from a reader.
type RDFParser interface {
	Parse(reader io.Reader, r nquads.Resolver) ([]nquads.Quad, error)

	// ContentType returns the MIME type this parser handles
	ContentType() string
}

// NewParser creates a parser based on the content type. Parameters such as
// charset are ignored.
func NewParser(contentType string) (RDFParser, error) {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}

	switch ct {
	case ContentTypeNTriples, "text/plain":
		return &NTriplesParser{}, nil
	case ContentTypeNQuads:
		return &NQuadsParser{}, nil
	default:
		return nil, errors.Errorf("unsupported content type: %s", contentType)
	}
}

// ContentTypeForFile guesses the content type from a file extension.
func ContentTypeForFile(name string) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".nt":
		return ContentTypeNTriples, nil
	case ".nq":
		return ContentTypeNQuads, nil
	}
	return "", errors.Errorf("cannot tell the format of %s", name)
}

// NTriplesParser parses N-Triples. Graph labels are rejected.
type NTriplesParser struct{}

func (p *NTriplesParser) ContentType() string {
	return ContentTypeNTriples
}

func (p *NTriplesParser) Parse(reader io.Reader, r nquads.Resolver) ([]nquads.Quad, error) {
	quads, err := parseAll(reader, r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing N-Triples")
	}
	for i, q := range quads {
		if q.Graph != nil {
			return nil, errors.Errorf("parsing N-Triples: statement %d has a graph label", i+1)
		}
	}
	return quads, nil
}

// NQuadsParser parses N-Quads.
type NQuadsParser struct{}

func (p *NQuadsParser) ContentType() string {
	return ContentTypeNQuads
}

func (p *NQuadsParser) Parse(reader io.Reader, r nquads.Resolver) ([]nquads.Quad, error) {
	quads, err := parseAll(reader, r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing N-Quads")
	}
	return quads, nil
}

func parseAll(reader io.Reader, r nquads.Resolver) ([]nquads.Quad, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return nquads.NewParser(string(data), r).Parse()
}

// GetSupportedContentTypes returns the content types NewParser accepts.
func GetSupportedContentTypes() []string {
	return []string{ContentTypeNTriples, ContentTypeNQuads}
}
