package compress

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// S2Decompressor reads S2 streams (s2 is also backward compatible with
// Snappy stream framing).
type S2Decompressor struct{}

var _ Decompressor = (*S2Decompressor)(nil)

// NewS2Decompressor creates a new S2 stream decompressor.
func NewS2Decompressor() S2Decompressor {
	return S2Decompressor{}
}

// OpenReader wraps r with an S2 stream reader.
func (S2Decompressor) OpenReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(s2.NewReader(r)), nil
}
