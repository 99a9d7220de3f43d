package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4Decompressor reads LZ4 frame streams (the format produced by the lz4
// command-line tool for .lz4 files).
type LZ4Decompressor struct{}

var _ Decompressor = (*LZ4Decompressor)(nil)

// NewLZ4Decompressor creates a new LZ4 frame decompressor.
func NewLZ4Decompressor() LZ4Decompressor {
	return LZ4Decompressor{}
}

// OpenReader wraps r with an LZ4 frame reader.
//
// Frame validation is lazy: a corrupted or non-LZ4 stream surfaces as a
// read error, not here.
func (LZ4Decompressor) OpenReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}
