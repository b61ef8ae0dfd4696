package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

type GzipDecompressor struct{}

var _ Decompressor = (*GzipDecompressor)(nil)

// NewGzipDecompressor creates a new gzip archive decompressor.
func NewGzipDecompressor() GzipDecompressor {
	return GzipDecompressor{}
}

// Decompress unwraps a gzip member stream.
func (d GzipDecompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
