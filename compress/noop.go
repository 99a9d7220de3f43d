package compress

import "io"

// NoOpDecompressor passes data through unchanged.
//
// Used for plain, uncompressed input files; keeps the reader stack uniform
// so the CSV layer never cares whether the input was compressed.
type NoOpDecompressor struct{}

var _ Decompressor = (*NoOpDecompressor)(nil)

// NewNoOpDecompressor creates a new pass-through decompressor.
func NewNoOpDecompressor() NoOpDecompressor {
	return NoOpDecompressor{}
}

// OpenReader returns r unchanged, with a no-op Close.
func (NoOpDecompressor) OpenReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}
