package compress

import (
	"fmt"
	"io"
	"os"

	"github.com/arloliu/sensorcrunch/errs"
	"github.com/arloliu/sensorcrunch/format"
)

// Decompressor wraps an input stream with a decompressing reader.
//
// Sensor exports arrive either as plain CSV or as the same CSV wrapped in
// a general-purpose compression frame. Each Decompressor handles one frame
// format; the reader layered on top sees the original delimited text.
//
// Thread safety: implementations are stateless and safe to share; the
// readers they return are not safe for concurrent use.
type Decompressor interface {
	// OpenReader wraps r with a decompressing reader.
	//
	// Closing the returned ReadCloser releases decoder resources only; it
	// does not close r.
	OpenReader(r io.Reader) (io.ReadCloser, error)
}

var builtinDecompressors = map[format.CompressionType]Decompressor{
	format.CompressionNone: NewNoOpDecompressor(),
	format.CompressionZstd: NewZstdDecompressor(),
	format.CompressionS2:   NewS2Decompressor(),
	format.CompressionLZ4:  NewLZ4Decompressor(),
	format.CompressionGzip: NewGzipDecompressor(),
}

// GetDecompressor retrieves the built-in Decompressor for the specified
// compression type.
func GetDecompressor(compressionType format.CompressionType) (Decompressor, error) {
	if d, ok := builtinDecompressors[compressionType]; ok {
		return d, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

// OpenFile opens the file at path, detects its compression codec from the
// file extension, and returns a reader over the decompressed content.
//
// Closing the returned ReadCloser closes both the decoder and the
// underlying file.
func OpenFile(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", errs.ErrOpenInput, path, err)
	}

	decompressor, err := GetDecompressor(format.Detect(path))
	if err != nil {
		file.Close()
		return nil, err
	}

	reader, err := decompressor.OpenReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("%w: %q: %w", errs.ErrOpenInput, path, err)
	}

	return &fileReader{reader: reader, file: file}, nil
}

// fileReader couples a decompressing reader with the file it drains, so a
// single Close releases both.
type fileReader struct {
	reader io.ReadCloser
	file   *os.File
}

func (fr *fileReader) Read(p []byte) (int, error) {
	return fr.reader.Read(p)
}

func (fr *fileReader) Close() error {
	err := fr.reader.Close()
	if cerr := fr.file.Close(); err == nil {
		err = cerr
	}

	return err
}

// releaseReader adapts a decoder whose close path returns nothing to
// io.ReadCloser.
type releaseReader struct {
	io.Reader
	release func()
}

func (r *releaseReader) Close() error {
	r.release()
	return nil
}
