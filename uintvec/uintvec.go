// Package uintvec encodes vectors of unsigned integers in a compact
// fixed-width form.
//
// Layout:
//
//	header  varint64: count<<3 | (width-1)
//	words   count little-endian words of width bytes each
//
// The encoder picks the smallest width in [1,8] that holds the largest
// element, so vectors of small values cost one byte per element plus a
// short header. Decoders accept any header width, including one wider
// than the elements need.
package uintvec

import (
	"errors"
	"io"
	"math/bits"

	"github.com/unkn0wn-root/encint"
)

// ErrCorrupt reports a vector header that cannot be honored.
var ErrCorrupt = errors.New("uintvec: corrupt vector header")

// MaxLen bounds the element count a decoder will honor. A header promising
// more is treated as corruption, not as an allocation request.
const MaxLen = 1 << 48

// preallocLimit caps the slice capacity reserved up front while decoding,
// so a large count in the header cannot force a huge allocation before a
// single word has been read.
const preallocLimit = 4096

// WordWidth returns the smallest word size in [1,8] that holds every
// element of values. Empty and all-zero vectors take width 1.
func WordWidth(values []uint64) int {
	var max uint64
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	w := (bits.Len64(max) + 7) / 8
	if w == 0 {
		w = 1
	}
	return w
}

// EncodedLen returns the exact number of bytes Encode emits for values.
func EncodedLen(values []uint64) int {
	width := WordWidth(values)
	return encint.VarintLen64(header(len(values), width)) + len(values)*width
}

func header(n, width int) uint64 {
	return uint64(n)<<3 | uint64(width-1)
}

// Encode writes values to w as a header varint followed by fixed-width
// words. Only sink failures can make it fail.
func Encode(w io.ByteWriter, values []uint64) error {
	width := WordWidth(values)
	if err := encint.WriteVarint64(w, header(len(values), width)); err != nil {
		return err
	}
	for _, v := range values {
		if err := encint.EncodeUintWithLength(w, v, width); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads one vector from r. A source with nothing left returns
// io.EOF; one that ends inside the vector returns io.ErrUnexpectedEOF.
func Decode(r io.ByteReader) ([]uint64, error) {
	hdr, err := encint.ReadVarint64(r)
	if err != nil {
		return nil, err
	}
	n := hdr >> 3
	if n > MaxLen {
		return nil, ErrCorrupt
	}
	width := int(hdr&0x07) + 1

	alloc := n
	if alloc > preallocLimit {
		alloc = preallocLimit
	}
	out := make([]uint64, 0, alloc)
	for i := uint64(0); i < n; i++ {
		v, err := encint.DecodeUintWithLength(r, width)
		if err != nil {
			// the header promised more words, so running dry here is a
			// truncation even at a word boundary
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
