package format

// CompressionType identifies the compression codec wrapping an input file.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents a plain, uncompressed file.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents a Zstandard frame.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents an S2 stream.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents an LZ4 frame.
	CompressionGzip CompressionType = 0x5 // CompressionGzip represents a gzip member.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionGzip:
		return "Gzip"
	default:
		return "Unknown"
	}
}

// Detect maps a file path to the compression codec implied by its
// extension. Unknown extensions are treated as plain files; the CSV layer
// will reject anything that is not actually delimited text.
func Detect(path string) CompressionType {
	switch {
	case hasSuffixFold(path, ".zst"), hasSuffixFold(path, ".zstd"):
		return CompressionZstd
	case hasSuffixFold(path, ".s2"):
		return CompressionS2
	case hasSuffixFold(path, ".lz4"):
		return CompressionLZ4
	case hasSuffixFold(path, ".gz"):
		return CompressionGzip
	default:
		return CompressionNone
	}
}

// hasSuffixFold is a case-insensitive strings.HasSuffix for ASCII
// extensions, avoiding an allocation for the common lowercase case.
func hasSuffixFold(s, suffix string) bool {
	if len(s) < len(suffix) {
		return false
	}
	tail := s[len(s)-len(suffix):]
	for i := 0; i < len(suffix); i++ {
		a, b := tail[i], suffix[i]
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if a != b {
			return false
		}
	}

	return true
}
