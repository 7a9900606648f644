package tablecsv

import (
	"errors"
	"math"
	"strconv"
)

// RowInts converts row i to a slice of signed integers parsed in the given
// base (0 or 2..36, as understood by strconv.ParseInt). Every cell must parse
// completely: an empty cell, a cell with no digits, trailing characters, or a
// value outside int64 all abort the call with a distinct error.
func (t *Table) RowInts(i uint32, base int) ([]int64, error) {
	if err := t.checkRow(i); err != nil {
		return nil, err
	}
	if err := checkBase(base); err != nil {
		return nil, err
	}
	out := make([]int64, t.cols)
	for c := range out {
		v, code := parseIntCell(t.data[i][c], base)
		if code != NoError {
			return nil, &ConvertError{Row: i, Column: uint32(c), Err: code}
		}
		out[c] = v
	}
	return out, nil
}

// ColumnInts converts column j to a slice of signed integers. See RowInts.
func (t *Table) ColumnInts(j uint32, base int) ([]int64, error) {
	if err := t.checkColumn(j); err != nil {
		return nil, err
	}
	if err := checkBase(base); err != nil {
		return nil, err
	}
	out := make([]int64, t.rows)
	for r := range out {
		v, code := parseIntCell(t.data[r][j], base)
		if code != NoError {
			return nil, &ConvertError{Row: uint32(r), Column: j, Err: code}
		}
		out[r] = v
	}
	return out, nil
}

// RowFloats converts row i to a slice of float64 values under the same
// whole-cell rules as RowInts.
func (t *Table) RowFloats(i uint32) ([]float64, error) {
	if err := t.checkRow(i); err != nil {
		return nil, err
	}
	out := make([]float64, t.cols)
	for c := range out {
		v, code := parseFloatCell(t.data[i][c])
		if code != NoError {
			return nil, &ConvertError{Row: i, Column: uint32(c), Err: code}
		}
		out[c] = v
	}
	return out, nil
}

// ColumnFloats converts column j to a slice of float64 values. See RowFloats.
func (t *Table) ColumnFloats(j uint32) ([]float64, error) {
	if err := t.checkColumn(j); err != nil {
		return nil, err
	}
	out := make([]float64, t.rows)
	for r := range out {
		v, code := parseFloatCell(t.data[r][j])
		if code != NoError {
			return nil, &ConvertError{Row: uint32(r), Column: j, Err: code}
		}
		out[r] = v
	}
	return out, nil
}

// RowChars converts row i to a slice holding the first byte of each cell. No
// numeric parsing occurs; an empty cell is still a missing-data error.
func (t *Table) RowChars(i uint32) ([]byte, error) {
	if err := t.checkRow(i); err != nil {
		return nil, err
	}
	out := make([]byte, t.cols)
	for c := range out {
		cell := t.data[i][c]
		if len(cell) == 0 {
			return nil, &ConvertError{Row: i, Column: uint32(c), Err: ErrMissingData}
		}
		out[c] = cell[0]
	}
	return out, nil
}

// ColumnChars converts column j to a slice holding the first byte of each
// cell. See RowChars.
func (t *Table) ColumnChars(j uint32) ([]byte, error) {
	if err := t.checkColumn(j); err != nil {
		return nil, err
	}
	out := make([]byte, t.rows)
	for r := range out {
		cell := t.data[r][j]
		if len(cell) == 0 {
			return nil, &ConvertError{Row: uint32(r), Column: j, Err: ErrMissingData}
		}
		out[r] = cell[0]
	}
	return out, nil
}

// checkRow validates the receiver and row index before any allocation.
func (t *Table) checkRow(i uint32) error {
	if t == nil {
		return ErrNilTable
	}
	if i >= t.rows {
		return ErrOutOfBounds
	}
	return nil
}

// checkColumn validates the receiver and column index before any allocation.
func (t *Table) checkColumn(j uint32) error {
	if t == nil {
		return ErrNilTable
	}
	if j >= t.cols {
		return ErrOutOfBounds
	}
	return nil
}

// checkBase rejects bases strconv.ParseInt cannot handle.
func checkBase(base int) error {
	if base != 0 && (base < 2 || base > 36) {
		return ErrInvalidBase
	}
	return nil
}

// parseIntCell parses a whole cell as int64, mapping strconv failures onto
// the error taxonomy. A range failure keeps the sign of the clamped value to
// distinguish overflow from underflow.
func parseIntCell(s string, base int) (int64, ErrorCode) {
	if len(s) == 0 {
		return 0, ErrMissingData
	}
	v, err := strconv.ParseInt(s, base, 64)
	if err == nil {
		return v, NoError
	}
	if errors.Is(err, strconv.ErrRange) {
		if v < 0 {
			return 0, ErrRangeUnderflow
		}
		return 0, ErrRangeOverflow
	}
	if hasParsablePrefix(s, func(prefix string) bool {
		_, err := strconv.ParseInt(prefix, base, 64)
		return err == nil || errors.Is(err, strconv.ErrRange)
	}) {
		return 0, ErrTrailingGarbage
	}
	return 0, ErrNoDigits
}

// parseFloatCell parses a whole cell as float64. Overflow clamps to an
// infinity whose sign selects the range error; anything else out of range is
// too small to represent.
func parseFloatCell(s string) (float64, ErrorCode) {
	if len(s) == 0 {
		return 0, ErrMissingData
	}
	v, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return v, NoError
	}
	if errors.Is(err, strconv.ErrRange) {
		if math.IsInf(v, 1) {
			return 0, ErrRangeOverflow
		}
		return 0, ErrRangeUnderflow
	}
	if hasParsablePrefix(s, func(prefix string) bool {
		_, err := strconv.ParseFloat(prefix, 64)
		return err == nil || errors.Is(err, strconv.ErrRange)
	}) {
		return 0, ErrTrailingGarbage
	}
	return 0, ErrNoDigits
}

// hasParsablePrefix reports whether any proper prefix of s parses, which
// separates "valid value followed by garbage" from "no value at all" once the
// full-string parse has already failed. Cells are capped at the scratch
// buffer size, so the quadratic scan is bounded.
func hasParsablePrefix(s string, ok func(string) bool) bool {
	for end := len(s) - 1; end > 0; end-- {
		if ok(s[:end]) {
			return true
		}
	}
	return false
}
