package encint

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"
)

func mustEncodeUint(t *testing.T, v uint64, width int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := EncodeUintWithLength(&buf, v, width); err != nil {
		t.Fatalf("EncodeUintWithLength(%#x, %d): %v", v, width, err)
	}
	return buf.Bytes()
}

func mustDecodeUint(t *testing.T, b []byte, width int) uint64 {
	t.Helper()
	v, err := DecodeUintWithLength(bytes.NewReader(b), width)
	if err != nil {
		t.Fatalf("DecodeUintWithLength(% x, %d): %v", b, width, err)
	}
	return v
}

func TestEncodeUintWithLengthByteOrder(t *testing.T) {
	cases := []struct {
		v     uint64
		width int
		want  []byte
	}{
		{0x0102, 2, []byte{0x02, 0x01}},
		{0, 1, []byte{0x00}},
		{0xFF, 1, []byte{0xFF}},
		{0xA1B2C3D4, 4, []byte{0xD4, 0xC3, 0xB2, 0xA1}},
		{5, 3, []byte{0x05, 0x00, 0x00}},
		{0x0807060504030201, 8, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}},
	}
	for _, tc := range cases {
		if got := mustEncodeUint(t, tc.v, tc.width); !bytes.Equal(got, tc.want) {
			t.Errorf("EncodeUintWithLength(%#x, %d) = % x, want % x", tc.v, tc.width, got, tc.want)
		}
	}
}

func TestFixedWidthRoundTrip(t *testing.T) {
	for width := 1; width <= 8; width++ {
		maxv := uint64(math.MaxUint64)
		if width < 8 {
			maxv = 1<<(8*uint(width)) - 1
		}
		values := []uint64{0, 1, maxv, maxv - 1, maxv >> 1, 0x0102030405060708 & maxv}
		for _, v := range values {
			enc := mustEncodeUint(t, v, width)
			if len(enc) != width {
				t.Fatalf("width %d: emitted %d bytes", width, len(enc))
			}
			if got := mustDecodeUint(t, enc, width); got != v {
				t.Errorf("width %d round trip of %#x: got %#x", width, v, got)
			}
		}
	}
}

func TestEncodeUintWithLengthOverflow(t *testing.T) {
	cases := []struct {
		v     uint64
		width int
	}{
		{256, 1},
		{1 << 16, 2},
		{1 << 24, 3},
		{math.MaxUint64, 7},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		err := EncodeUintWithLength(&buf, tc.v, tc.width)
		var oe *OverflowError
		if !errors.As(err, &oe) {
			t.Fatalf("EncodeUintWithLength(%#x, %d): got %v, want OverflowError", tc.v, tc.width, err)
		}
		if oe.Value != tc.v || oe.Width != tc.width {
			t.Errorf("OverflowError carries (%#x, %d), want (%#x, %d)", oe.Value, oe.Width, tc.v, tc.width)
		}
		if buf.Len() != 0 {
			t.Errorf("overflow wrote %d bytes, want none", buf.Len())
		}
	}
	// the widest word holds everything
	if got := mustDecodeUint(t, mustEncodeUint(t, math.MaxUint64, 8), 8); got != math.MaxUint64 {
		t.Fatalf("width 8 round trip of MaxUint64: got %#x", got)
	}
}

func TestFixedWidthRejectsBadWidth(t *testing.T) {
	for _, width := range []int{-1, 0, 9, 64} {
		var buf bytes.Buffer
		err := EncodeUintWithLength(&buf, 1, width)
		var we *WidthError
		if !errors.As(err, &we) {
			t.Fatalf("encode width %d: got %v, want WidthError", width, err)
		}
		if we.Width != width {
			t.Errorf("encode WidthError carries %d, want %d", we.Width, width)
		}
		if buf.Len() != 0 {
			t.Errorf("encode width %d wrote %d bytes, want none", width, buf.Len())
		}
		if _, err := DecodeUintWithLength(bytes.NewReader([]byte{0x01}), width); !errors.As(err, &we) {
			t.Errorf("decode width %d: got %v, want WidthError", width, err)
		}
	}
}

func TestDecodeUintWithLengthTruncated(t *testing.T) {
	cases := []struct {
		in    []byte
		width int
		want  error
	}{
		{nil, 4, io.EOF},
		{[]byte{0x01}, 2, io.ErrUnexpectedEOF},
		{[]byte{0x01, 0x02, 0x03}, 4, io.ErrUnexpectedEOF},
	}
	for _, tc := range cases {
		if _, err := DecodeUintWithLength(bytes.NewReader(tc.in), tc.width); !errors.Is(err, tc.want) {
			t.Errorf("DecodeUintWithLength(% x, %d): got %v, want %v", tc.in, tc.width, err, tc.want)
		}
	}
}

func TestFixedWidthStreamErrorPassthrough(t *testing.T) {
	sinkErr := errors.New("sink is full")
	if err := EncodeUintWithLength(errWriter{err: sinkErr}, 1, 2); !errors.Is(err, sinkErr) {
		t.Fatalf("encode: got %v, want %v", err, sinkErr)
	}
	w := &stopAfterWriter{n: 2, err: sinkErr}
	if err := EncodeUintWithLength(w, 0x010203, 3); !errors.Is(err, sinkErr) {
		t.Fatalf("mid-word encode: got %v, want %v", err, sinkErr)
	}
	if w.buf.Len() != 2 {
		t.Fatalf("wrote %d bytes before failing, want 2", w.buf.Len())
	}
	srcErr := errors.New("transport reset")
	if _, err := DecodeUintWithLength(errReader{err: srcErr}, 4); !errors.Is(err, srcErr) {
		t.Fatalf("decode: got %v, want %v", err, srcErr)
	}
}
