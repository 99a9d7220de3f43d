package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		path string
		want CompressionType
	}{
		{"readings.csv", CompressionNone},
		{"readings.csv.zst", CompressionZstd},
		{"readings.csv.zstd", CompressionZstd},
		{"readings.csv.ZST", CompressionZstd},
		{"readings.csv.s2", CompressionS2},
		{"readings.csv.lz4", CompressionLZ4},
		{"readings.csv.gz", CompressionGzip},
		{"readings.csv.GZ", CompressionGzip},
		{"readings.txt", CompressionNone},
		{"", CompressionNone},
		{"gz", CompressionNone},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Detect(tt.path), "path %q", tt.path)
	}
}

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Gzip", CompressionGzip.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
}
