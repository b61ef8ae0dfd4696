package compress

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/pierrec/lz4/v4"
	"github.com/strainstack/catread/errs"
	"github.com/strainstack/catread/format"
	"github.com/stretchr/testify/require"
	"github.com/valyala/gozstd"
)

func testPayload() []byte {
	// Long enough that every algorithm emits a real compressed stream.
	payload := make([]byte, 4096)
	for i := range payload {
		payload[i] = byte(i % 7)
	}

	return payload
}

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func lz4Framed(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func s2Stream(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := s2.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func TestDetect(t *testing.T) {
	payload := testPayload()

	tests := []struct {
		name string
		data []byte
		want format.ArchiveType
	}{
		{"plain catman file", []byte{0x94, 0x13, 0x00, 0x00, 0x00, 0x00}, format.ArchiveNone},
		{"empty", nil, format.ArchiveNone},
		{"gzip", gzipped(t, payload), format.ArchiveGzip},
		{"zstd", gozstd.Compress(nil, payload), format.ArchiveZstd},
		{"lz4 frame", lz4Framed(t, payload), format.ArchiveLZ4},
		{"s2 stream", s2Stream(t, payload), format.ArchiveS2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Detect(tt.data))
		})
	}
}

func TestUnwrap(t *testing.T) {
	payload := testPayload()

	tests := []struct {
		name    string
		data    []byte
		archive format.ArchiveType
	}{
		{"gzip", gzipped(t, payload), format.ArchiveGzip},
		{"zstd", gozstd.Compress(nil, payload), format.ArchiveZstd},
		{"lz4", lz4Framed(t, payload), format.ArchiveLZ4},
		{"s2", s2Stream(t, payload), format.ArchiveS2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, archive, err := Unwrap(tt.data)
			require.NoError(t, err)
			require.Equal(t, tt.archive, archive)
			require.Equal(t, payload, raw)
		})
	}

	t.Run("plain passthrough", func(t *testing.T) {
		raw, archive, err := Unwrap(payload)
		require.NoError(t, err)
		require.Equal(t, format.ArchiveNone, archive)
		require.Equal(t, payload, raw)
	})

	t.Run("corrupt archive", func(t *testing.T) {
		data := gzipped(t, payload)
		data = data[:len(data)/2]

		_, _, err := Unwrap(data)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrUnsupportedArchive)
	})
}

func TestGetDecompressor(t *testing.T) {
	for _, at := range []format.ArchiveType{
		format.ArchiveNone, format.ArchiveGzip, format.ArchiveZstd, format.ArchiveLZ4, format.ArchiveS2,
	} {
		d, err := GetDecompressor(at)
		require.NoError(t, err)
		require.NotNil(t, d)
	}

	_, err := GetDecompressor(format.ArchiveType(99))
	require.ErrorIs(t, err, errs.ErrUnsupportedArchive)
}
