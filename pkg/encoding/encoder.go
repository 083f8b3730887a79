package encoding

import (
	"encoding/binary"

	"github.com/aleksaelezovic/rdfterm/internal/collate"
	"github.com/aleksaelezovic/rdfterm/pkg/rdf"
	"github.com/aleksaelezovic/rdfterm/pkg/store"
	"github.com/pkg/errors"
	"github.com/zeebo/xxh3"
)

// TermKeySize is the size of a term identity key.
const TermKeySize = 16

var (
	_ store.TermEncoder = (*TermEncoder)(nil)
	_ store.TermDecoder = (*TermDecoder)(nil)
)

// TermEncoder turns terms into the byte strings an index stores: the
// storage form as value, an order-preserving sort key and a fixed-size
// identity key.
type TermEncoder struct {
	locale collate.Locale
}

// NewTermEncoder returns an encoder whose sort keys collate text under lang.
// An empty lang selects the process default locale.
func NewTermEncoder(lang string) *TermEncoder {
	return &TermEncoder{locale: collate.ForLocale(lang)}
}

// EncodeTerm returns the storage form of t. It is the wire layout with the
// text branch used for every type, so numeric terms keep their lexical form
// and decode to an identical term.
func (e *TermEncoder) EncodeTerm(t *rdf.Term) []byte {
	buf := make([]byte, 0, typeIDSize+lengthSize+t.Len())
	buf = binary.BigEndian.AppendUint32(buf, uint32(t.TypeID()))
	buf = binary.BigEndian.AppendUint32(buf, uint32(t.Len()))
	return append(buf, t.Text()...)
}

// SortKey returns a key whose byte order matches rdf.Compare under the
// encoder's locale.
func (e *TermEncoder) SortKey(t *rdf.Term) []byte {
	return appendSortKey(make([]byte, 0, 32+2*t.Len()), t, e.locale)
}

// GroupPrefix returns the sort key prefix shared by every term compatible
// with id.
func (e *TermEncoder) GroupPrefix(id rdf.TypeID) []byte {
	return binary.BigEndian.AppendUint32(nil, id.Group())
}

// TermKey returns the 128-bit xxh3 hash of the type id and text of t. Two
// terms have the same key iff they are identical (barring collisions).
func (e *TermEncoder) TermKey(t *rdf.Term) [TermKeySize]byte {
	return TermKey(t)
}

// TermKey is TermEncoder.TermKey; it does not depend on the locale.
func TermKey(t *rdf.Term) [TermKeySize]byte {
	buf := make([]byte, 0, typeIDSize+t.Len())
	buf = binary.BigEndian.AppendUint32(buf, uint32(t.TypeID()))
	buf = append(buf, t.Text()...)

	hash := xxh3.Hash128(buf)
	var result [TermKeySize]byte
	binary.BigEndian.PutUint64(result[0:8], hash.Hi)
	binary.BigEndian.PutUint64(result[8:16], hash.Lo)
	return result
}

// TermDecoder rebuilds terms from their storage form.
type TermDecoder struct{}

// NewTermDecoder creates a new term decoder.
func NewTermDecoder() *TermDecoder {
	return &TermDecoder{}
}

// DecodeTerm decodes a term stored by TermEncoder.EncodeTerm. The lexical
// form is validated again.
func (d *TermDecoder) DecodeTerm(data []byte) (*rdf.Term, error) {
	if len(data) < typeIDSize+lengthSize {
		return nil, errors.Wrap(ErrTruncated, "reading record header")
	}
	id := rdf.TypeID(binary.BigEndian.Uint32(data))
	n := uint64(binary.BigEndian.Uint32(data[typeIDSize:]))
	text := data[typeIDSize+lengthSize:]
	switch {
	case uint64(len(text)) < n:
		return nil, errors.Wrapf(ErrTruncated, "reading %d bytes of text", n)
	case uint64(len(text)) > n:
		return nil, errors.Wrapf(ErrTrailingData, "%d bytes", uint64(len(text))-n)
	}
	return rdf.Parse(id, text)
}
