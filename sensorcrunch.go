// Package sensorcrunch computes aggregate statistics over large CSV files
// of timestamped sensor readings using data-parallel execution.
//
// The pipeline parses the input into typed records, filters them by a
// strict numeric threshold (value > threshold), and reduces the survivors
// into a global average plus, on request, per-sensor counts and averages.
//
// # Core Features
//
//   - Header-driven CSV parsing: columns matched by name in any order,
//     fields trimmed of surrounding whitespace
//   - Transparent input decompression (Zstd, S2, LZ4, Gzip) by extension
//   - Lock-free parallel fold/reduce for the global aggregate
//   - Sharded, mutex-guarded grouped aggregation keyed by sensor ID
//   - All-or-nothing failure: a single bad row fails the whole batch
//
// # Basic Usage
//
//	stats, err := sensorcrunch.Process("readings.csv", 50.0, true)
//	if err != nil {
//	    return err
//	}
//
//	fmt.Printf("rows=%d filtered=%d\n", stats.TotalRows, stats.FilteredRows)
//	if stats.Average != nil {
//	    fmt.Printf("average=%.6f\n", *stats.Average)
//	}
//	for _, s := range stats.PerSensor {
//	    fmt.Printf("%s: count=%d avg=%.6f\n", s.SensorID, s.Count, s.Average)
//	}
//
// Errors wrap the sentinels in the errs package; classify with
// errs.IsIO and errs.IsParse.
//
// # Package Structure
//
// This package is a thin facade over the record and aggregate packages,
// which can be used directly for finer-grained control (e.g. reusing a
// parsed record slice across several thresholds).
package sensorcrunch

import (
	"github.com/arloliu/sensorcrunch/aggregate"
	"github.com/arloliu/sensorcrunch/record"
)

// ProcessingStats is the terminal artifact of one Process call.
type ProcessingStats struct {
	// TotalRows is the number of data rows read (header excluded).
	TotalRows uint64

	// FilteredRows is the number of rows with Value > threshold.
	// Always <= TotalRows.
	FilteredRows uint64

	// Average is the mean of the filtered values, nil iff FilteredRows
	// is zero.
	Average *float64

	// PerSensor holds per-sensor statistics over the filtered rows,
	// sorted ascending by sensor ID with no duplicate keys. Nil unless
	// per-sensor detail was requested. When present, the entry counts
	// sum to FilteredRows.
	PerSensor []aggregate.SensorStats
}

// Process reads the sensor CSV file at path, filters readings with value
// strictly greater than threshold, and returns the aggregate statistics.
// When verbose is true the result also carries per-sensor statistics.
//
// Processing either completes fully or fails with no partial result.
// Failures are I/O errors (input unreadable) or parse errors (missing
// column, malformed row, non-numeric value) carrying row context; see the
// errs package.
//
// The same file and threshold always yield identical statistics: the
// parallel reduction is order-insensitive by construction, and only
// floating-point summation order may vary across runs with different
// worker counts (compare averages with a tolerance, not bit-exactly).
func Process(path string, threshold float64, verbose bool) (*ProcessingStats, error) {
	records, err := record.ReadFile(path)
	if err != nil {
		return nil, err
	}

	global := aggregate.Global(records, threshold)

	stats := &ProcessingStats{
		TotalRows:    uint64(len(records)),
		FilteredRows: global.Count,
	}
	if avg, ok := global.Average(); ok {
		stats.Average = &avg
	}
	if verbose {
		stats.PerSensor = aggregate.PerSensor(records, threshold)
	}

	return stats, nil
}

// Workers reports the size of the worker pool used for parallel
// aggregation.
func Workers() int {
	return aggregate.Workers()
}
