// Package compress opens archived catman recordings.
//
// Measurement files are often archived after acquisition (gzip, Zstandard,
// LZ4 frame or S2 stream). This package sniffs the archive magic and unwraps
// the original byte stream before decoding; it is strictly input-side and
// never produces archives of measurement data.
package compress

import (
	"bytes"
	"fmt"

	"github.com/strainstack/catread/errs"
	"github.com/strainstack/catread/format"
)

// Decompressor unwraps one archive algorithm.
//
// The returned slice is newly allocated and owned by the caller; the input is
// never modified. Implementations are stateless and safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Archive magic numbers. S2 and framed Snappy share the skippable stream
// identifier chunk, differing only in the embedded name.
var (
	gzipMagic   = []byte{0x1F, 0x8B}
	zstdMagic   = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic    = []byte{0x04, 0x22, 0x4D, 0x18}
	s2ChunkID   = []byte{0xFF, 0x06, 0x00, 0x00}
	s2Name      = []byte("S2sTwO")
	snappyName  = []byte("sNaPpY")
	s2NameStart = 4
)

// Detect returns the archive type of data, or ArchiveNone when the stream
// does not start with a known archive magic (a plain catman file, whose magic
// never collides with these).
func Detect(data []byte) format.ArchiveType {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return format.ArchiveGzip
	case bytes.HasPrefix(data, zstdMagic):
		return format.ArchiveZstd
	case bytes.HasPrefix(data, lz4Magic):
		return format.ArchiveLZ4
	case bytes.HasPrefix(data, s2ChunkID) && hasStreamName(data):
		return format.ArchiveS2
	default:
		return format.ArchiveNone
	}
}

func hasStreamName(data []byte) bool {
	if len(data) < s2NameStart+len(s2Name) {
		return false
	}
	name := data[s2NameStart : s2NameStart+len(s2Name)]

	return bytes.Equal(name, s2Name) || bytes.Equal(name, snappyName)
}

var builtinDecompressors = map[format.ArchiveType]Decompressor{
	format.ArchiveNone: NewNoOpDecompressor(),
	format.ArchiveGzip: NewGzipDecompressor(),
	format.ArchiveZstd: NewZstdDecompressor(),
	format.ArchiveLZ4:  NewLZ4Decompressor(),
	format.ArchiveS2:   NewS2Decompressor(),
}

// GetDecompressor retrieves the built-in Decompressor for an archive type.
func GetDecompressor(t format.ArchiveType) (Decompressor, error) {
	if d, ok := builtinDecompressors[t]; ok {
		return d, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedArchive, t)
}

// Unwrap sniffs data and, when archived, decompresses it. Plain data passes
// through untouched.
func Unwrap(data []byte) ([]byte, format.ArchiveType, error) {
	archive := Detect(data)
	d, err := GetDecompressor(archive)
	if err != nil {
		return nil, archive, err
	}

	raw, err := d.Decompress(data)
	if err != nil {
		return nil, archive, fmt.Errorf("%w: %s archive: %v", errs.ErrUnsupportedArchive, archive, err)
	}

	return raw, archive, nil
}
