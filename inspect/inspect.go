// Package inspect walks streams of encoded integers and reports what it
// finds, record by record. It exists for the moments the codec itself
// stays quiet about: a store hands back bytes that no longer decode, and
// somebody has to say at which offset they went bad.
package inspect

import (
	"fmt"
	"io"

	"github.com/unkn0wn-root/encint"
)

// Format selects how the scanned stream was encoded.
type Format int

const (
	// Varint reads unsigned base-128 varints.
	Varint Format = iota
	// ZigZag reads varints and maps each value back to a signed integer.
	ZigZag
	// Fixed reads little-endian words of Options.Width bytes.
	Fixed
)

func (f Format) String() string {
	switch f {
	case Varint:
		return "varint"
	case ZigZag:
		return "zigzag"
	case Fixed:
		return "fixed"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// Options configures a scan.
type Options struct {
	// Format of the records in the stream.
	Format Format

	// Width is the word size for Fixed streams. Ignored otherwise.
	Width int

	// Limit stops the scan after this many records. Zero scans to the end.
	Limit int

	// Logger receives per-record debug events and scan failures.
	// Nil disables logging.
	Logger encint.Logger
}

// Record is one decoded value and where it sat in the stream.
type Record struct {
	Offset int64  // byte offset of the first encoded byte
	Len    int    // encoded length in bytes
	Value  uint64 // decoded value, before any sign mapping
	Signed int64  // sign-mapped value, set for ZigZag scans
}

// Report is the outcome of a scan.
type Report struct {
	// Records decoded before the stream ended or failed.
	Records []Record

	// Complete is true when the scan stopped at a clean record boundary,
	// either end of stream or Options.Limit.
	Complete bool

	// Err is the failure that stopped the scan: io.ErrUnexpectedEOF for a
	// stream cut inside a record, encint.ErrMalformedVarint for an
	// overlong varint, or whatever the source itself returned.
	Err error

	// ErrOffset is the offset of the record Err was hit in.
	ErrOffset int64
}

// countingReader tracks how many bytes the decoder has consumed so records
// can be attributed to offsets.
type countingReader struct {
	r io.ByteReader
	n int64
}

func (c *countingReader) ReadByte() (byte, error) {
	b, err := c.r.ReadByte()
	if err == nil {
		c.n++
	}
	return b, err
}

// Scan decodes records from r until the stream ends, fails, or Limit is
// reached. Stream problems land in the Report; only unusable Options make
// Scan itself return an error.
func Scan(r io.ByteReader, opts Options) (*Report, error) {
	switch opts.Format {
	case Varint, ZigZag:
	case Fixed:
		if opts.Width < 1 || opts.Width > 8 {
			return nil, fmt.Errorf("inspect: fixed scan needs a width in [1,8], got %d", opts.Width)
		}
	default:
		return nil, fmt.Errorf("inspect: unknown format %d", int(opts.Format))
	}
	log := opts.Logger
	if log == nil {
		log = encint.NopLogger{}
	}

	cr := &countingReader{r: r}
	rep := &Report{}
	for opts.Limit <= 0 || len(rep.Records) < opts.Limit {
		start := cr.n

		var (
			v   uint64
			err error
		)
		if opts.Format == Fixed {
			v, err = encint.DecodeUintWithLength(cr, opts.Width)
		} else {
			v, err = encint.ReadVarint64(cr)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			rep.Err = err
			rep.ErrOffset = start
			log.Error("scan stopped", encint.Fields{
				"format": opts.Format.String(),
				"offset": start,
				"err":    err.Error(),
			})
			return rep, nil
		}

		rec := Record{Offset: start, Len: int(cr.n - start), Value: v}
		if opts.Format == ZigZag {
			rec.Signed = encint.DecodeZigZag64(v)
		}
		rep.Records = append(rep.Records, rec)

		if opts.Format != Fixed && rec.Len > encint.VarintLen64(v) {
			log.Warn("non-minimal varint", encint.Fields{
				"offset": rec.Offset,
				"len":    rec.Len,
				"value":  v,
			})
		}
		log.Debug("record", encint.Fields{
			"offset": rec.Offset,
			"len":    rec.Len,
			"value":  v,
		})
	}

	rep.Complete = true
	log.Info("scan complete", encint.Fields{
		"format":  opts.Format.String(),
		"records": len(rep.Records),
		"bytes":   cr.n,
	})
	return rep, nil
}
