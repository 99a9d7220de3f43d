package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/sensorcrunch/compress"
	"github.com/arloliu/sensorcrunch/errs"
)

// Header column names. Matching is case-insensitive and order-independent;
// extra columns are ignored and the first match wins on duplicates.
const (
	ColumnTimestamp = "Timestamp"
	ColumnSensorID  = "SensorID"
	ColumnValue     = "Value"
)

// ReadFile parses the CSV file at path into records, in file order, with
// the header row excluded. Compressed inputs (.zst, .lz4, .s2, .gz) are
// decompressed transparently based on the file extension.
//
// Every field is trimmed of surrounding whitespace before interpretation.
// The three required columns are located by header name, not position.
//
// Failure is all-or-nothing: any unreadable file, missing column, or
// uncoercible value aborts the read with no partial result. Errors wrap
// the errs sentinels, so callers can classify with errs.IsIO and
// errs.IsParse.
func ReadFile(path string) ([]Record, error) {
	input, err := compress.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer input.Close()

	records, err := readAll(input)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	return records, nil
}

// columnLayout maps the required columns to their header positions.
type columnLayout struct {
	timestamp int
	sensorID  int
	value     int
}

func readAll(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // column presence is checked per row against the header layout
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input, no header row", errs.ErrMissingColumn)
		}

		return nil, fmt.Errorf("%w: header: %w", errs.ErrMalformedRow, err)
	}

	layout, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var records []Record
	for row := 1; ; row++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", errs.ErrMalformedRow, row, err)
		}

		rec, err := parseRow(fields, layout, row)
		if err != nil {
			return nil, err
		}

		records = append(records, rec)
	}

	return records, nil
}

// resolveColumns locates the required columns in the header, matching by
// trimmed, case-insensitive name.
func resolveColumns(header []string) (columnLayout, error) {
	layout := columnLayout{timestamp: -1, sensorID: -1, value: -1}

	for i, name := range header {
		switch {
		case layout.timestamp < 0 && strings.EqualFold(strings.TrimSpace(name), ColumnTimestamp):
			layout.timestamp = i
		case layout.sensorID < 0 && strings.EqualFold(strings.TrimSpace(name), ColumnSensorID):
			layout.sensorID = i
		case layout.value < 0 && strings.EqualFold(strings.TrimSpace(name), ColumnValue):
			layout.value = i
		}
	}

	switch {
	case layout.timestamp < 0:
		return layout, fmt.Errorf("%w: %q", errs.ErrMissingColumn, ColumnTimestamp)
	case layout.sensorID < 0:
		return layout, fmt.Errorf("%w: %q", errs.ErrMissingColumn, ColumnSensorID)
	case layout.value < 0:
		return layout, fmt.Errorf("%w: %q", errs.ErrMissingColumn, ColumnValue)
	}

	return layout, nil
}

// parseRow converts one data row into a Record. row is the 1-based data
// row number (header excluded), used for error context.
func parseRow(fields []string, layout columnLayout, row int) (Record, error) {
	width := max(layout.timestamp, layout.sensorID, layout.value) + 1
	if len(fields) < width {
		return Record{}, fmt.Errorf("%w: row %d: has %d fields, need %d", errs.ErrMalformedRow, row, len(fields), width)
	}

	raw := strings.TrimSpace(fields[layout.value])
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: row %d: column %q: %q", errs.ErrInvalidValue, row, ColumnValue, raw)
	}

	// ReuseRecord aliases fields into the csv reader's buffer; clone the
	// strings that outlive this row.
	return Record{
		Timestamp: strings.Clone(strings.TrimSpace(fields[layout.timestamp])),
		SensorID:  strings.Clone(strings.TrimSpace(fields[layout.sensorID])),
		Value:     value,
	}, nil
}
