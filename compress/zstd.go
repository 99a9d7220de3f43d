package compress

// ZstdDecompressor reads Zstandard frames.
//
// Two implementations exist behind build tags: a cgo binding to libzstd
// (valyala/gozstd) when cgo is available, and a pure-Go decoder
// (klauspost/compress/zstd) otherwise. Both accept standard zstd frames,
// so files are interchangeable between builds.
type ZstdDecompressor struct{}

var _ Decompressor = (*ZstdDecompressor)(nil)

// NewZstdDecompressor creates a new Zstd decompressor.
func NewZstdDecompressor() ZstdDecompressor {
	return ZstdDecompressor{}
}
