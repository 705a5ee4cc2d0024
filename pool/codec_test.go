package pool

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLines(t *testing.T) {
	input := "# validators\r\npeer1\r\n\n  peer2  \npeer3"

	ids, err := Decode(strings.NewReader(input), FormatLines)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("peer1"), []byte("peer2"), []byte("peer3")}, ids)
}

func TestDecodeHex(t *testing.T) {
	input := "00ff\n# comment\nDEADbeef\n"

	ids, err := Decode(strings.NewReader(input), FormatHex)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{{0x00, 0xFF}, {0xDE, 0xAD, 0xBE, 0xEF}}, ids)

	_, err = Decode(strings.NewReader("00ff\nxyz\n"), FormatHex)
	assert.ErrorIs(t, err, ErrInvalidLine)
	assert.Contains(t, err.Error(), "line 2")
}

func TestDecodeEmpty(t *testing.T) {
	ids, err := Decode(strings.NewReader(""), FormatLines)
	require.NoError(t, err)
	assert.Empty(t, ids)

	ids, err = Decode(strings.NewReader("# nothing\n\n"), FormatHex)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestEncodeRoundTrip(t *testing.T) {
	lines := [][]byte{[]byte("peer1"), []byte("peer two"), []byte("p#3")}
	binary := [][]byte{{0x00}, {0x0A, 0x0D}, {0xFF, 0x23, 0x20}}

	for _, c := range []Compression{CompressionNone, CompressionZSTD, CompressionLZ4} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, lines, FormatLines, c))
		got, err := Decode(&buf, FormatLines)
		require.NoError(t, err)
		assert.Equal(t, lines, got, "compression %d", c)

		buf.Reset()
		require.NoError(t, Encode(&buf, binary, FormatHex, c))
		got, err = Decode(&buf, FormatHex)
		require.NoError(t, err)
		assert.Equal(t, binary, got, "compression %d", c)
	}
}

func TestEncodeCompressedMagic(t *testing.T) {
	ids := [][]byte{[]byte("a")}

	var z bytes.Buffer
	require.NoError(t, Encode(&z, ids, FormatLines, CompressionZSTD))
	assert.Equal(t, zstdMagic, z.Bytes()[:4])

	var l bytes.Buffer
	require.NoError(t, Encode(&l, ids, FormatLines, CompressionLZ4))
	assert.Equal(t, lz4Magic, l.Bytes()[:4])
}

func TestEncodeRejects(t *testing.T) {
	tests := []struct {
		name   string
		id     []byte
		format Format
	}{
		{"Empty", []byte{}, FormatLines},
		{"Newline", []byte("a\nb"), FormatLines},
		{"Comment", []byte("#a"), FormatLines},
		{"Padded", []byte(" a"), FormatLines},
		{"EmptyHex", []byte{}, FormatHex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Encode(&bytes.Buffer{}, [][]byte{tt.id}, tt.format, CompressionNone)
			assert.ErrorIs(t, err, ErrUnencodable)
		})
	}

	assert.Error(t, Encode(&bytes.Buffer{}, nil, FormatLines, Compression(9)))
}

func TestEncodeClosesCompressorOnError(t *testing.T) {
	ids := make([][]byte, 0, 5001)
	for i := range 5000 {
		ids = append(ids, []byte(fmt.Sprintf("peer%04d", i)))
	}
	ids = append(ids, []byte("#bad"))

	var buf bytes.Buffer
	err := Encode(&buf, ids, FormatLines, CompressionZSTD)
	require.ErrorIs(t, err, ErrUnencodable)

	// Everything handed to the encoder before the failure is framed and readable.
	require.NotEmpty(t, buf.Bytes())
	assert.Equal(t, zstdMagic, buf.Bytes()[:4])
	got, err := Decode(&buf, FormatLines)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, ids[0], got[0])
}

func TestFormat(t *testing.T) {
	for _, f := range []Format{FormatLines, FormatHex} {
		got, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseFormat("csv")
	assert.Error(t, err)
	assert.Equal(t, "unknown(7)", Format(7).String())
}
