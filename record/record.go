// Package record defines the sensor reading type and the CSV reader that
// materializes readings from an input file.
package record

// Record is a single sensor reading parsed from one input row.
//
// Records are created once at parse time and never mutated afterwards, so
// a []Record can be shared across aggregation workers without
// synchronization.
type Record struct {
	// Timestamp is the reading's timestamp column, preserved verbatim.
	// Aggregation never interprets it.
	Timestamp string

	// SensorID identifies the sensor that produced the reading; it is the
	// grouping key for per-sensor statistics.
	SensorID string

	// Value is the measured value, the subject of filtering and averaging.
	Value float64
}
