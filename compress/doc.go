// Package compress provides transparent decompression of sensor CSV input
// files.
//
// # Overview
//
// Exported sensor data is routinely shipped compressed. This package lets
// the record reader accept the same CSV file wrapped in any of the common
// general-purpose codecs, selected by file extension:
//
//	None  plain file (any unrecognized extension)
//	Zstd  .zst / .zstd  Zstandard frame
//	S2    .s2           S2 stream
//	LZ4   .lz4          LZ4 frame
//	Gzip  .gz           gzip member
//
// # Usage
//
// The typical entry point is OpenFile, which opens the file, sniffs the
// codec from the path, and returns a reader over the decompressed bytes:
//
//	r, err := compress.OpenFile("readings.csv.zst")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
// For a reader you already hold, pick a codec explicitly:
//
//	d, _ := compress.GetDecompressor(format.CompressionLZ4)
//	rc, err := d.OpenReader(file)
//
// # Algorithm Selection Guide
//
// The choice belongs to whoever produced the file; all codecs decode to
// identical statistics. As a rule of thumb for producers:
//
//	| Priority                 | Recommended | Reason                    |
//	|--------------------------|-------------|---------------------------|
//	| Smallest file            | Zstd        | Best compression ratio    |
//	| Fastest ingest           | LZ4 or S2   | Fastest decompression     |
//	| Interop with other tools | Gzip        | Universally supported     |
//
// # Thread Safety
//
// Decompressor values are stateless and safe to share. The readers they
// return are single-use and not safe for concurrent use.
package compress
