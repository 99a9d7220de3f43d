//go:build cgo

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

// OpenReader wraps r with a libzstd streaming reader.
func (ZstdDecompressor) OpenReader(r io.Reader) (io.ReadCloser, error) {
	zr := gozstd.NewReader(r)

	return &releaseReader{Reader: zr, release: zr.Release}, nil
}
