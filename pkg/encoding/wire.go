package encoding

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/aleksaelezovic/rdfterm/pkg/rdf"
	"github.com/pkg/errors"
)

// Wire layout, all integers big endian:
//
//	numeric types:  [type id u32][float64 bits u64]
//	all others:     [type id u32][text length u32][text]
//
// Date/time terms travel as text so the decoder rebuilds both the original
// lexical form and the timezone flag. Numeric terms lose their lexical form;
// the decoder renders the shortest text for the value instead.
const (
	typeIDSize = 4
	lengthSize = 4
	numberSize = 8
)

// MarshalBinary returns the wire form of t.
func MarshalBinary(t *rdf.Term) []byte {
	size := typeIDSize + numberSize
	if !rdf.IsNumeric(t.TypeID()) {
		size = typeIDSize + lengthSize + t.Len()
	}
	return AppendBinary(make([]byte, 0, size), t)
}

// AppendBinary appends the wire form of t to dst.
func AppendBinary(dst []byte, t *rdf.Term) []byte {
	dst = binary.BigEndian.AppendUint32(dst, uint32(t.TypeID()))
	if rdf.IsNumeric(t.TypeID()) {
		f, _ := t.Number()
		return binary.BigEndian.AppendUint64(dst, math.Float64bits(f))
	}
	dst = binary.BigEndian.AppendUint32(dst, uint32(t.Len()))
	return append(dst, t.Text()...)
}

// UnmarshalBinary decodes exactly one term from data. The term does not
// reference data after the call returns.
func UnmarshalBinary(data []byte) (*rdf.Term, error) {
	t, n, err := DecodeBinary(data)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, errors.Wrapf(ErrTrailingData, "%d bytes", len(data)-n)
	}
	return t, nil
}

// DecodeBinary decodes the term at the start of data and returns it along
// with the number of bytes consumed.
func DecodeBinary(data []byte) (*rdf.Term, int, error) {
	if len(data) < typeIDSize {
		return nil, 0, errors.Wrap(ErrTruncated, "reading type id")
	}
	id := rdf.TypeID(binary.BigEndian.Uint32(data))
	pos := typeIDSize

	if rdf.IsNumeric(id) {
		if len(data)-pos < numberSize {
			return nil, 0, errors.Wrap(ErrTruncated, "reading number")
		}
		f := math.Float64frombits(binary.BigEndian.Uint64(data[pos:]))
		t, err := rdf.NewNumber(id, f)
		if err != nil {
			return nil, 0, err
		}
		return t, pos + numberSize, nil
	}

	if len(data)-pos < lengthSize {
		return nil, 0, errors.Wrap(ErrTruncated, "reading text length")
	}
	n := uint64(binary.BigEndian.Uint32(data[pos:]))
	pos += lengthSize
	if uint64(len(data)-pos) < n {
		return nil, 0, errors.Wrapf(ErrTruncated, "reading %d bytes of text", n)
	}
	end := pos + int(n)
	t, err := rdf.ParseString(id, string(data[pos:end]))
	if err != nil {
		return nil, 0, err
	}
	return t, end, nil
}

// WriteTerm writes the wire form of t to w.
func WriteTerm(w io.Writer, t *rdf.Term) error {
	_, err := w.Write(MarshalBinary(t))
	return errors.Wrap(err, "writing term")
}

// ReadTerm reads one term in wire form from r. It returns io.EOF if r is
// exhausted before the first byte of a term, and ErrTruncated if it ends
// inside one.
func ReadTerm(r io.Reader) (*rdf.Term, error) {
	var head [typeIDSize]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, readError(err, "reading type id")
	}
	id := rdf.TypeID(binary.BigEndian.Uint32(head[:]))

	if rdf.IsNumeric(id) {
		var buf [numberSize]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, readError(err, "reading number")
		}
		return rdf.NewNumber(id, math.Float64frombits(binary.BigEndian.Uint64(buf[:])))
	}

	var buf [lengthSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, readError(err, "reading text length")
	}
	n := int64(binary.BigEndian.Uint32(buf[:]))

	// Grow with the data actually read rather than trusting the length.
	text, err := io.ReadAll(io.LimitReader(r, n))
	if err != nil {
		return nil, errors.Wrap(err, "reading text")
	}
	if int64(len(text)) != n {
		return nil, errors.Wrapf(ErrTruncated, "reading %d bytes of text", n)
	}
	return rdf.ParseString(id, string(text))
}

func readError(err error, msg string) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.Wrap(ErrTruncated, msg)
	}
	return errors.Wrap(err, msg)
}
