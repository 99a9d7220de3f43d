package compress

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipDecompressor reads gzip members, the most common wrapping for
// exported CSV files.
type GzipDecompressor struct{}

var _ Decompressor = (*GzipDecompressor)(nil)

// NewGzipDecompressor creates a new gzip decompressor.
func NewGzipDecompressor() GzipDecompressor {
	return GzipDecompressor{}
}

// OpenReader wraps r with a gzip reader.
//
// Unlike the frame codecs, gzip validates its header eagerly, so a
// mislabeled file fails here rather than on first read.
func (GzipDecompressor) OpenReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}
