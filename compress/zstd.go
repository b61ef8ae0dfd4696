package compress

import (
	"github.com/valyala/gozstd"
)

type ZstdDecompressor struct{}

var _ Decompressor = (*ZstdDecompressor)(nil)

// NewZstdDecompressor creates a new Zstandard decompressor.
func NewZstdDecompressor() ZstdDecompressor {
	return ZstdDecompressor{}
}

// Decompress unwraps a Zstandard frame.
func (d ZstdDecompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
