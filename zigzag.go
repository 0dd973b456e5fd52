package encint

// ZigZag interleaves signed magnitudes onto the unsigned line so small
// negatives stay small: 0, -1, 1, -2, ... map to 0, 1, 2, 3, ... Without it a
// negative value sign-extends to 64 bits and always costs a 10-byte varint.
//
// Encode shifts the signed operand right arithmetically (sign fills in);
// decode shifts the unsigned operand right logically (zero fills in). The
// operand types pin those semantics down.

// EncodeZigZag32 maps a signed 32-bit value to its zigzag form.
func EncodeZigZag32(n int32) uint32 {
	return uint32(n<<1) ^ uint32(n>>31)
}

// DecodeZigZag32 is the exact inverse of EncodeZigZag32 over the full int32
// range, including math.MinInt32.
func DecodeZigZag32(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1)
}

// EncodeZigZag64 maps a signed 64-bit value to its zigzag form.
func EncodeZigZag64(n int64) uint64 {
	return uint64(n<<1) ^ uint64(n>>63)
}

// DecodeZigZag64 is the exact inverse of EncodeZigZag64 over the full int64
// range, including math.MinInt64.
func DecodeZigZag64(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}
