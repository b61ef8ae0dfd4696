package compress

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
)

type LZ4Decompressor struct{}

var _ Decompressor = (*LZ4Decompressor)(nil)

// NewLZ4Decompressor creates a new LZ4 frame decompressor.
func NewLZ4Decompressor() LZ4Decompressor {
	return LZ4Decompressor{}
}

// Decompress unwraps an LZ4 frame stream (the format produced by the lz4
// command line tool).
func (d LZ4Decompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
}
