package encint

import "io"

// EncodeUintWithLength writes v to w as exactly bytesPerWord little-endian
// bytes. Unlike the varint form there is no terminator, so the consumer must
// know the width out of band; the two encodings are not interchangeable.
//
// bytesPerWord outside [1,8] returns a *WidthError. A v that needs more than
// bytesPerWord bytes returns an *OverflowError before anything is written.
func EncodeUintWithLength(w io.ByteWriter, v uint64, bytesPerWord int) error {
	if bytesPerWord < 1 || bytesPerWord > 8 {
		return &WidthError{Width: bytesPerWord}
	}
	if v>>(8*uint(bytesPerWord)) != 0 {
		return &OverflowError{Value: v, Width: bytesPerWord}
	}
	for i := 0; i < bytesPerWord; i++ {
		if err := w.WriteByte(byte(v)); err != nil {
			return err
		}
		v >>= 8
	}
	return nil
}

// DecodeUintWithLength reads exactly bytesPerWord little-endian bytes from r
// and returns them as a uint64. Byte i lands at bit 8*i.
//
// bytesPerWord outside [1,8] returns a *WidthError (a wider word cannot fit
// the 64-bit result; use a wider accumulator elsewhere). Exhaustion before
// bytesPerWord bytes is io.EOF when nothing was read, io.ErrUnexpectedEOF
// mid-word; other source errors pass through verbatim.
func DecodeUintWithLength(r io.ByteReader, bytesPerWord int) (uint64, error) {
	if bytesPerWord < 1 || bytesPerWord > 8 {
		return 0, &WidthError{Width: bytesPerWord}
	}
	var v uint64
	for i := 0; i < bytesPerWord; i++ {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && i > 0 {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		v |= uint64(b) << (8 * uint(i))
	}
	return v, nil
}
