package tablecsv

import (
	"io"
	"os"
)

// Table is a fully materialized CSV document. It is immutable once built:
// every accessor either returns a value or a fresh copy, so a completed Table
// is safe for concurrent readers.
type Table struct {
	rows    uint32
	cols    uint32
	missing uint64
	total   uint64
	header  []string
	data    [][]string
}

// Parse reads the RFC 4180 document at path into a Table. When hasHeader is
// set, the first record becomes the column names and is excluded from the row
// count. On failure no Table is returned and the error wraps the ErrorCode
// identifying the cause.
func Parse(path string, hasHeader bool) (*Table, error) {
	if path == "" {
		return nil, ErrNoFilename
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: ErrFileOpen}
	}
	t, err := ParseBytes(data, hasHeader)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return t, nil
}

// ParseReader drains r and parses its content. The reader is consumed whole
// before any scanning begins.
func ParseReader(r io.Reader, hasHeader bool) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrFileOpen
	}
	return ParseBytes(data, hasHeader)
}

// ParseBytes parses an in-memory RFC 4180 document. The dimension scan runs
// first so the table shell is allocated to exactly the discovered size, then
// the tokenizer fills the header and the data grid field by field. Zero-length
// data fields are stored as empty strings and tallied in Missing.
func ParseBytes(data []byte, hasHeader bool) (*Table, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	rows, cols, code := scanDimensions(data)
	if code != NoError {
		return nil, code
	}
	if hasHeader {
		// The header is a record but not a data row.
		rows--
	}

	t := &Table{
		rows:  rows,
		cols:  cols,
		total: uint64(rows) * uint64(cols),
	}
	tok := &tokenizer{data: data}

	if hasHeader {
		t.header = make([]string, cols)
		for c := range t.header {
			field, _, code := tok.next()
			if code != NoError {
				return nil, code
			}
			t.header[c] = field
		}
	}

	t.data = make([][]string, rows)
	for r := range t.data {
		row := make([]string, cols)
		for c := range row {
			field, _, code := tok.next()
			if code != NoError {
				return nil, code
			}
			if len(field) == 0 {
				t.missing++
			}
			row[c] = field
		}
		t.data[r] = row
	}

	// A table where every field is missing means nothing was actually read.
	if t.missing >= t.total {
		return nil, ErrInternal
	}
	return t, nil
}

// Rows returns the number of data rows, excluding any header record.
func (t *Table) Rows() uint32 {
	if t == nil {
		return 0
	}
	return t.rows
}

// Columns returns the number of columns.
func (t *Table) Columns() uint32 {
	if t == nil {
		return 0
	}
	return t.cols
}

// Missing returns the count of zero-length fields in the data grid.
func (t *Table) Missing() uint64 {
	if t == nil {
		return 0
	}
	return t.missing
}

// Total returns Rows multiplied by Columns, computed in 64 bits.
func (t *Table) Total() uint64 {
	if t == nil {
		return 0
	}
	return t.total
}

// Header returns a copy of the column names, or nil when the table was parsed
// without a header. The nil return is meaningful: it distinguishes "no header
// requested" from an empty header.
func (t *Table) Header() []string {
	if t == nil || t.header == nil {
		return nil
	}
	out := make([]string, len(t.header))
	copy(out, t.header)
	return out
}

// Field returns the cell at the given row and column.
func (t *Table) Field(row, col uint32) (string, error) {
	if t == nil {
		return "", ErrNilTable
	}
	if row >= t.rows || col >= t.cols {
		return "", ErrOutOfBounds
	}
	return t.data[row][col], nil
}

// Row returns a copy of row i.
func (t *Table) Row(i uint32) ([]string, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if i >= t.rows {
		return nil, ErrOutOfBounds
	}
	out := make([]string, t.cols)
	copy(out, t.data[i])
	return out, nil
}

// Column returns a copy of column j.
func (t *Table) Column(j uint32) ([]string, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if j >= t.cols {
		return nil, ErrOutOfBounds
	}
	out := make([]string, t.rows)
	for i := range out {
		out[i] = t.data[i][j]
	}
	return out, nil
}
