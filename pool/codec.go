package pool

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// MaxLineSize is the longest accepted pool line in bytes.
const MaxLineSize = 1 << 20

var (
	// ErrInvalidLine is returned for a line that cannot be decoded.
	ErrInvalidLine = errors.New("invalid pool line")

	// ErrUnencodable is returned when an identifier cannot be written in the chosen format.
	ErrUnencodable = errors.New("identifier cannot be encoded")
)

var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
)

// Format defines how a line maps to an identifier.
type Format uint8

const (
	// FormatLines uses the trimmed line bytes as the identifier.
	FormatLines Format = iota
	// FormatHex hex-decodes the trimmed line.
	FormatHex
)

func (f Format) String() string {
	switch f {
	case FormatLines:
		return "lines"
	case FormatHex:
		return "hex"
	default:
		return fmt.Sprintf("unknown(%d)", f)
	}
}

// ParseFormat resolves a name as returned by Format.String.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "lines", "":
		return FormatLines, nil
	case "hex":
		return FormatHex, nil
	default:
		return 0, fmt.Errorf("unknown pool format %q", name)
	}
}

// Compression defines the compression algorithm used when writing a pool.
type Compression uint8

const (
	// CompressionNone writes plain text.
	CompressionNone Compression = iota
	// CompressionZSTD writes a zstd stream (better ratio, good for large pools).
	CompressionZSTD
	// CompressionLZ4 writes an lz4 frame (fast).
	CompressionLZ4
)

// Decode reads a pool from r. Compressed input is detected automatically.
func Decode(r io.Reader, format Format) ([][]byte, error) {
	rc, err := decompress(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	var ids [][]byte
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		switch format {
		case FormatLines:
			ids = append(ids, bytes.Clone(line))
		case FormatHex:
			id := make([]byte, hex.DecodedLen(len(line)))
			if _, err := hex.Decode(id, line); err != nil {
				return nil, fmt.Errorf("%w %d: %w", ErrInvalidLine, lineNo, err)
			}
			ids = append(ids, id)
		default:
			return nil, fmt.Errorf("unknown pool format %d", format)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// Encode writes ids to w in the given format and compression.
// The compressor is closed on every return, including errors.
func Encode(w io.Writer, ids [][]byte, format Format, compression Compression) (err error) {
	cw, err := compress(w, compression)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := cw.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(cw)
	for i, id := range ids {
		switch format {
		case FormatLines:
			if !encodableLine(id) {
				return fmt.Errorf("%w: id %d as %v", ErrUnencodable, i, format)
			}
			_, _ = bw.Write(id)
		case FormatHex:
			if len(id) == 0 {
				return fmt.Errorf("%w: id %d is empty", ErrUnencodable, i)
			}
			_, _ = bw.WriteString(hex.EncodeToString(id))
		default:
			return fmt.Errorf("unknown pool format %d", format)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// encodableLine reports whether id survives a FormatLines round trip.
func encodableLine(id []byte) bool {
	if len(id) == 0 || id[0] == '#' {
		return false
	}
	if bytes.ContainsAny(id, "\r\n") {
		return false
	}
	return len(bytes.TrimSpace(id)) == len(id)
}

func decompress(br *bufio.Reader) (io.ReadCloser, error) {
	head, err := br.Peek(4)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	switch {
	case bytes.Equal(head, zstdMagic):
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case bytes.Equal(head, lz4Magic):
		return io.NopCloser(lz4.NewReader(br)), nil
	default:
		return io.NopCloser(br), nil
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func compress(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionZSTD:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown compression %d", c)
	}
}
