package compress

// NoOpDecompressor passes plain, unarchived data through unchanged.
type NoOpDecompressor struct{}

var _ Decompressor = (*NoOpDecompressor)(nil)

// NewNoOpDecompressor creates a pass-through decompressor.
func NewNoOpDecompressor() NoOpDecompressor {
	return NoOpDecompressor{}
}

// Decompress returns the input slice as-is, without copying.
func (d NoOpDecompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
