package tablecsv

import "fmt"

// ErrorCode identifies the exact reason a parse or extraction call failed.
// Every fallible operation in this package reports one of these codes, either
// directly or wrapped in a ParseError or ConvertError.
type ErrorCode uint8

const (
	// NoError is the zero value and never escapes a successful call.
	NoError ErrorCode = iota
	// ErrNoFilename is returned when Parse is given an empty path.
	ErrNoFilename
	// ErrFileOpen is returned when the source file or reader cannot be read.
	ErrFileOpen
	// ErrEmptyFile is returned for zero-length input, which has no defined
	// row or column structure.
	ErrEmptyFile
	// ErrColumnCountOverflow is returned when the first record holds more
	// columns than a uint32 can count.
	ErrColumnCountOverflow
	// ErrRowCountOverflow is returned when the document holds more records
	// than a uint32 can count.
	ErrRowCountOverflow
	// ErrFieldLengthOverflow is returned when a field length counter wraps.
	// The scratch buffer cap makes this unreachable in practice; the code is
	// kept so callers can diagnose which limit was hit.
	ErrFieldLengthOverflow
	// ErrScratchOverflow is returned when a single decoded field exceeds the
	// per-field scratch buffer capacity.
	ErrScratchOverflow
	// ErrNilTable is returned when a method is invoked on a nil Table.
	ErrNilTable
	// ErrOutOfBounds is returned for a row or column index outside the table.
	ErrOutOfBounds
	// ErrMissingData is returned when typed extraction meets an empty cell.
	ErrMissingData
	// ErrNoDigits is returned when no numeric prefix could be parsed at all.
	ErrNoDigits
	// ErrRangeOverflow is returned when a cell value exceeds the target type.
	ErrRangeOverflow
	// ErrRangeUnderflow is returned when a cell value falls below the target
	// type, or is too small in magnitude to represent.
	ErrRangeUnderflow
	// ErrTrailingGarbage is returned when a valid numeric prefix is followed
	// by unconsumed characters.
	ErrTrailingGarbage
	// ErrInvalidBase is returned for an integer base outside 0 and 2..36.
	ErrInvalidBase
	// ErrInternal is returned when a post-build invariant does not hold.
	ErrInternal
)

var errorText = map[ErrorCode]string{
	NoError:                "no error",
	ErrNoFilename:          "filename is empty",
	ErrFileOpen:            "cannot open or read input",
	ErrEmptyFile:           "input is empty",
	ErrColumnCountOverflow: "column count exceeds uint32 range",
	ErrRowCountOverflow:    "row count exceeds uint32 range",
	ErrFieldLengthOverflow: "field length counter overflow",
	ErrScratchOverflow:     "field exceeds scratch buffer capacity",
	ErrNilTable:            "table is nil",
	ErrOutOfBounds:         "index out of bounds",
	ErrMissingData:         "cell is empty",
	ErrNoDigits:            "no digits consumed",
	ErrRangeOverflow:       "value overflows target type",
	ErrRangeUnderflow:      "value underflows target type",
	ErrTrailingGarbage:     "trailing characters after numeric value",
	ErrInvalidBase:         "invalid numeric base",
	ErrInternal:            "internal invariant violated",
}

// Describe returns the descriptive message for code. Unrecognized codes map
// to a generic fallback rather than panicking.
func Describe(code ErrorCode) string {
	if msg, ok := errorText[code]; ok {
		return msg
	}
	return "unknown error code"
}

// Error implements the error interface so codes can be returned and matched
// with errors.Is directly.
func (code ErrorCode) Error() string {
	return "tablecsv: " + Describe(code)
}

// ParseError wraps an ErrorCode with the path of the document that failed to
// parse.
type ParseError struct {
	Path string
	Err  error
}

// Error formats the parse error message with the stored path and Err values.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("tablecsv: parse %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying Err so ParseError participates in errors.Is.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConvertError wraps an ErrorCode with the coordinates of the cell that
// failed typed extraction.
type ConvertError struct {
	Row    uint32
	Column uint32
	Err    error
}

// Error formats the conversion error message with the stored coordinates.
func (e *ConvertError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("tablecsv: convert cell at row %d, column %d: %v", e.Row, e.Column, e.Err)
}

// Unwrap returns the underlying Err so ConvertError participates in errors.Is.
func (e *ConvertError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
