//go:build !cgo

package compress

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// OpenReader wraps r with a pure-Go zstd streaming reader.
func (ZstdDecompressor) OpenReader(r io.Reader) (io.ReadCloser, error) {
	decoder, err := zstd.NewReader(r,
		zstd.WithDecoderConcurrency(1), // Single-threaded for predictable performance
		zstd.WithDecoderLowmem(false),  // Use more memory for better performance
	)
	if err != nil {
		return nil, err
	}

	return &releaseReader{Reader: decoder, release: decoder.Close}, nil
}
