// Package errs defines the sentinel errors returned by sensorcrunch.
//
// Errors fall into two classes mirroring how callers react to them:
//
//   - I/O errors: the input could not be opened or read. Retrying the same
//     call cannot help; the caller should report the path and give up.
//   - Parse errors: the input was readable but is not a valid sensor CSV.
//     The wrapping message carries row/column context for diagnosis.
//
// Failure sites wrap a sentinel with fmt.Errorf("%w: ...") so callers can
// match with errors.Is while still seeing the offending row or column.
package errs

import "errors"

var (
	// ErrOpenInput indicates the input file could not be opened or read.
	ErrOpenInput = errors.New("cannot open input file")

	// ErrMissingColumn indicates a required header column is absent.
	ErrMissingColumn = errors.New("missing required column")

	// ErrMalformedRow indicates a data row the CSV layer rejected,
	// e.g. a bare quote or a truncated record.
	ErrMalformedRow = errors.New("malformed row")

	// ErrInvalidValue indicates a value field that cannot be coerced to a
	// 64-bit float.
	ErrInvalidValue = errors.New("invalid value field")

	// ErrUnsupportedCompression indicates the input's extension names a
	// compression codec this build cannot decode.
	ErrUnsupportedCompression = errors.New("unsupported compression")
)

// ioErrors and parseErrors partition the sentinels into the two classes
// callers distinguish. A sentinel appears in exactly one list.
var (
	ioErrors    = []error{ErrOpenInput}
	parseErrors = []error{ErrMissingColumn, ErrMalformedRow, ErrInvalidValue, ErrUnsupportedCompression}
)

// IsIO reports whether err is an I/O-class failure (input unreadable).
func IsIO(err error) bool {
	return matchesAny(err, ioErrors)
}

// IsParse reports whether err is a parse-class failure (input readable but
// not a valid sensor CSV).
func IsParse(err error) bool {
	return matchesAny(err, parseErrors)
}

func matchesAny(err error, sentinels []error) bool {
	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}
