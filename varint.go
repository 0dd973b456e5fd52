package encint

import "io"

// MaxVarintLen64 is the largest number of bytes WriteVarint64 emits for one
// value: ceil(64/7).
const MaxVarintLen64 = 10

// WriteVarint64 writes v to w as a base-128 varint: seven value bits per byte,
// least-significant group first, high bit set on every byte except the last.
// Zero encodes as a single 0x00 byte and the encoding is always minimal.
// Sink errors are returned as-is; a failed write is never retried.
func WriteVarint64(w io.ByteWriter, v uint64) error {
	for v >= 0x80 {
		if err := w.WriteByte(byte(v) | 0x80); err != nil {
			return err
		}
		v >>= 7
	}
	return w.WriteByte(byte(v))
}

// ReadVarint64 reads a base-128 varint from r. Group i lands at bit 7*i; the
// first byte with a clear high bit terminates the value. In the tenth group
// only the low bit is meaningful and any higher bits fall out of the 64-bit
// accumulator, matching what WriteVarint64 can produce.
//
// Errors: io.EOF if the stream was empty, io.ErrUnexpectedEOF if it ended
// mid-value, ErrMalformedVarint if ten groups pass without a terminator, and
// any other source error verbatim.
func ReadVarint64(r io.ByteReader) (uint64, error) {
	var v uint64
	for shift := uint(0); shift < 64; shift += 7 {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && shift > 0 {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		v |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return v, nil
		}
	}
	return 0, ErrMalformedVarint
}

// VarintLen64 returns the number of bytes WriteVarint64 emits for v.
func VarintLen64(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}
