package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/s2"
)

type S2Decompressor struct{}

var _ Decompressor = (*S2Decompressor)(nil)

// NewS2Decompressor creates a new S2 stream decompressor. It also reads
// framed Snappy streams, which share the container format.
func NewS2Decompressor() S2Decompressor {
	return S2Decompressor{}
}

// Decompress unwraps an S2 (or framed Snappy) stream.
func (d S2Decompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return io.ReadAll(s2.NewReader(bytes.NewReader(data)))
}
