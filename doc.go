// Package encint implements the compact integer encodings used when persisting
// and transmitting geometric identifiers (point ids, cell indices, counts):
// base-128 varints for unsigned 64-bit magnitudes, zigzag mapping between the
// signed and unsigned domains, and fixed-width little-endian words.
//
// Components:
//   - Varint: self-terminating 7-bits-per-byte encoding, at most 10 bytes per value.
//   - ZigZag: bijective signed<->unsigned remap so small negatives stay short varints.
//   - Fixed width: exactly bytesPerWord little-endian bytes, for fixed-size records.
//
// Varint and fixed-width output are not wire-compatible; never mix them on one field.
//
// Wire layout:
//
//	varint  b0 b1 ... bk    - byte i carries magnitude bits [7i,7i+6]; high bit set = more follow
//	fixed   b0 b1 ... bw-1  - least-significant byte first, no terminator, unsigned only
//
// The byte source/sink is the caller's io.ByteReader / io.ByteWriter. One encode
// or decode call makes a single forward pass and never buffers, retries, or
// closes the stream. All functions are stateless; independent streams may be
// used concurrently, a single stream may not.
//
// Decode failures are io.EOF (nothing read), io.ErrUnexpectedEOF (value cut
// short), ErrMalformedVarint, or the stream's own error passed through verbatim.
//
// Signed round trip:
//
//	_ = encint.WriteVarint64(w, encint.EncodeZigZag64(n)) // n int64
//	u, err := encint.ReadVarint64(r)
//	n = encint.DecodeZigZag64(u)
package encint
