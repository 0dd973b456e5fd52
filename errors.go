package encint

import (
	"errors"
	"fmt"
)

// ErrMalformedVarint is returned by ReadVarint64 when ten continuation-marked
// groups go by without a terminating byte. No 64-bit value encodes that way,
// so the stream cannot have been produced by WriteVarint64.
var ErrMalformedVarint = errors.New("encint: malformed varint")

// WidthError reports a word width outside the supported 1..8 byte range.
type WidthError struct {
	Width int
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("encint: word width %d out of range [1,8]", e.Width)
}

// OverflowError reports a value that does not fit in the requested word width.
// EncodeUintWithLength fails this check before emitting any byte; high-order
// bits are never silently dropped.
type OverflowError struct {
	Value uint64
	Width int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("encint: value %#x does not fit in a %d-byte word", e.Value, e.Width)
}
