package encoding

import (
	"encoding/binary"
	"math"

	"github.com/aleksaelezovic/rdfterm/internal/collate"
	"github.com/aleksaelezovic/rdfterm/pkg/rdf"
)

// appendSortKey appends a key for t whose byte order refines rdf.Compare:
// if Compare(a, b) < 0 then the key of a sorts before the key of b. Terms
// that compare equal but differ in type id or text still get distinct keys.
//
//	[group u32][class part][type id u32][escaped text]     numbers, date/time
//	[group u32][rank u32][escaped collation key][escaped text][type id u32]
//
// The class part is the order-preserving float bits for numbers and the
// sign-flipped seconds and a timezone byte for date/time values. Text of
// equal rank orders by collation and then by bytes before the type id, so a
// simple literal and an xsd:string whose texts only collate equal keep the
// order Compare gives them. NaNs sort outside [-Inf, +Inf], on the side
// their sign bit selects.
func appendSortKey(dst []byte, t *rdf.Term, locale collate.Locale) []byte {
	id := t.TypeID()
	dst = binary.BigEndian.AppendUint32(dst, id.Group())

	switch p := t.Payload().(type) {
	case rdf.Number:
		dst = binary.BigEndian.AppendUint64(dst, orderedFloat(float64(p)))
	case rdf.Temporal:
		dst = binary.BigEndian.AppendUint64(dst, uint64(p.Seconds)^(1<<63))
		if p.HasTimezone {
			dst = append(dst, 1)
		} else {
			dst = append(dst, 0)
		}
	default:
		dst = binary.BigEndian.AppendUint32(dst, uint32(textRank(id)))
		dst = appendEscaped(dst, locale.Key(nil, []byte(t.Text())))
		dst = appendEscaped(dst, []byte(t.Text()))
		return binary.BigEndian.AppendUint32(dst, uint32(id))
	}

	dst = binary.BigEndian.AppendUint32(dst, uint32(id))
	return appendEscaped(dst, []byte(t.Text()))
}

// textRank is the type id text terms are ordered by; simple literals and
// xsd:string literals share a rank.
func textRank(id rdf.TypeID) rdf.TypeID {
	if id == rdf.TypeString {
		return rdf.TypeSimpleLiteral
	}
	return id
}

// orderedFloat maps float bits so that unsigned comparison matches float
// comparison: negative values have all bits flipped, positive values only
// the sign bit.
func orderedFloat(f float64) uint64 {
	bits := math.Float64bits(f)
	if bits&(1<<63) != 0 {
		return ^bits
	}
	return bits | 1<<63
}

// appendEscaped appends b so that no encoded value is a prefix of another:
// 0x00 is written as 0x00 0xff and the value ends with 0x00 0x01.
func appendEscaped(dst, b []byte) []byte {
	for _, c := range b {
		if c == 0 {
			dst = append(dst, 0, 0xff)
			continue
		}
		dst = append(dst, c)
	}
	return append(dst, 0, 1)
}
