package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/unkn0wn-root/encint"
	"github.com/unkn0wn-root/encint/inspect"
	logzap "github.com/unkn0wn-root/encint/log/zap"
)

var (
	formatFlag = cli.StringFlag{
		Name:  "format, f",
		Usage: "record format, varint|zigzag|fixed",
		Value: "varint",
	}
	widthFlag = cli.IntFlag{
		Name:  "width, w",
		Usage: "word width in bytes for the fixed format",
	}

	cmdDump = cli.Command{
		Name:      "dump",
		Usage:     "decode a stream and print one record per line",
		ArgsUsage: "[FILE]",
		Description: "Reads FILE, or stdin when FILE is omitted or -. Each line shows\n" +
			"   the record offset, its bytes and the decoded value. A stream that\n" +
			"   ends inside a record makes the command fail after printing the\n" +
			"   records before the damage.",
		Flags: []cli.Flag{
			formatFlag,
			widthFlag,
			cli.BoolFlag{
				Name:  "hex, x",
				Usage: "treat input as hex text instead of raw bytes",
			},
			cli.IntFlag{
				Name:  "limit, n",
				Usage: "stop after this many records",
			},
			cli.BoolFlag{
				Name:  "verbose, v",
				Usage: "log per-record scan events to stderr",
			},
		},
		Action: func(c *cli.Context) error {
			format, err := parseFormat(c.String("format"))
			if err != nil {
				return err
			}
			data, err := readInput(c)
			if err != nil {
				return err
			}

			var logger encint.Logger = encint.NopLogger{}
			if c.Bool("verbose") {
				zl, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				defer func() { _ = zl.Sync() }()
				logger = logzap.ZapLogger{L: zl}
			}

			rep, err := inspect.Scan(bytes.NewReader(data), inspect.Options{
				Format: format,
				Width:  c.Int("width"),
				Limit:  c.Int("limit"),
				Logger: logger,
			})
			if err != nil {
				return err
			}

			for _, rec := range rep.Records {
				val := strconv.FormatUint(rec.Value, 10)
				if format == inspect.ZigZag {
					val = strconv.FormatInt(rec.Signed, 10)
				}
				raw := data[rec.Offset : rec.Offset+int64(rec.Len)]
				fmt.Printf("%8d  %-30s %s\n", rec.Offset, fmt.Sprintf("% x", raw), val)
			}
			if rep.Err != nil {
				return fmt.Errorf("stream broken at offset %d: %v", rep.ErrOffset, rep.Err)
			}
			return nil
		},
	}

	cmdEncode = cli.Command{
		Name:      "encode",
		Usage:     "encode values and print the bytes",
		ArgsUsage: "VALUE...",
		Description: "Encodes each VALUE in order and prints the concatenated bytes as\n" +
			"   hex, or writes them raw with --raw. Negative zigzag values need a\n" +
			"   -- separator before them.",
		Flags: []cli.Flag{
			formatFlag,
			widthFlag,
			cli.BoolFlag{
				Name:  "raw, r",
				Usage: "write raw bytes to stdout instead of hex",
			},
		},
		Action: func(c *cli.Context) error {
			format, err := parseFormat(c.String("format"))
			if err != nil {
				return err
			}
			out, err := encodeValues(format, c.Int("width"), c.Args())
			if err != nil {
				return err
			}
			if c.Bool("raw") {
				_, err := os.Stdout.Write(out)
				return err
			}
			fmt.Printf("%x\n", out)
			return nil
		},
	}

	cmdLen = cli.Command{
		Name:      "len",
		Usage:     "print the encoded size of each value in bytes",
		ArgsUsage: "VALUE...",
		Flags: []cli.Flag{
			cli.BoolFlag{
				Name:  "zigzag, z",
				Usage: "treat values as signed and map them first",
			},
		},
		Action: func(c *cli.Context) error {
			if len(c.Args()) == 0 {
				return fmt.Errorf("no values given")
			}
			for _, arg := range c.Args() {
				u, err := parseValue(arg, c.Bool("zigzag"))
				if err != nil {
					return err
				}
				fmt.Printf("%s\t%d\n", arg, encint.VarintLen64(u))
			}
			return nil
		},
	}
)

func parseFormat(s string) (inspect.Format, error) {
	switch s {
	case "varint":
		return inspect.Varint, nil
	case "zigzag":
		return inspect.ZigZag, nil
	case "fixed":
		return inspect.Fixed, nil
	default:
		return 0, fmt.Errorf("unknown format %q, want varint, zigzag or fixed", s)
	}
}

// parseValue turns a command line argument into the unsigned value the
// codec writes. Base prefixes like 0x are honored.
func parseValue(arg string, zigzag bool) (uint64, error) {
	if zigzag {
		n, err := strconv.ParseInt(arg, 0, 64)
		if err != nil {
			return 0, fmt.Errorf("bad signed value %q: %v", arg, err)
		}
		return encint.EncodeZigZag64(n), nil
	}
	u, err := strconv.ParseUint(arg, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("bad value %q: %v", arg, err)
	}
	return u, nil
}

func encodeValues(format inspect.Format, width int, args []string) ([]byte, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no values given")
	}
	var buf bytes.Buffer
	for _, arg := range args {
		u, err := parseValue(arg, format == inspect.ZigZag)
		if err != nil {
			return nil, err
		}
		if format == inspect.Fixed {
			err = encint.EncodeUintWithLength(&buf, u, width)
		} else {
			err = encint.WriteVarint64(&buf, u)
		}
		if err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func readInput(c *cli.Context) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path := c.Args().First(); path != "" && path != "-" {
		data, err = os.ReadFile(path)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, err
	}
	if c.Bool("hex") {
		return decodeHexText(data)
	}
	return data, nil
}

// decodeHexText accepts hex with any amount of whitespace mixed in, so
// both "ac02" and dump's own "ac 02" column paste back cleanly.
func decodeHexText(in []byte) ([]byte, error) {
	compact := make([]byte, 0, len(in))
	for _, b := range in {
		switch b {
		case ' ', '\t', '\n', '\r':
		default:
			compact = append(compact, b)
		}
	}
	out := make([]byte, hex.DecodedLen(len(compact)))
	if _, err := hex.Decode(out, compact); err != nil {
		return nil, fmt.Errorf("bad hex input: %v", err)
	}
	return out, nil
}
