package rdf

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"
)

// Hash returns a hash consistent with Compare: all compatible type ids share
// the type part of the hash, and terms that compare equal hash equally.
//
// Numeric terms hash their float64 bits, which are not canonical: +0 and -0
// compare equal but hash differently, as do NaNs with different bits.
func Hash(t *Term) uint64 {
	var idBuf [4]byte
	binary.BigEndian.PutUint32(idBuf[:], t.typeID.Group())
	h := xxh3.Hash(idBuf[:])

	switch p := t.payload.(type) {
	case Number:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(float64(p)))
		h |= xxh3.Hash(buf[:])
	case Temporal:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(p.Seconds))
		h |= xxh3.Hash(buf[:])
	default:
		h |= xxh3.HashString(t.text)
	}
	return h
}
