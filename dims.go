package tablecsv

// scanDimensions makes one forward pass over the document and reports the
// column count of the first record plus the total number of records,
// allocating no field storage. The caller guarantees data is non-empty and is
// responsible for discounting a header record.
//
// Columns come from the first record alone: RFC 4180 fixes the width of every
// record, so each top-level comma adds a column. Quoted regions are skipped
// wholesale to the next raw quote; rule 7 guarantees quotes close in pairs,
// so an escaped quote is consumed as two single-byte skips.
//
// Rows are counted from record terminators over the remainder. A terminator
// followed by more bytes starts a new record; a trailing terminator does not
// (RFC 4180 rule 2 allows both endings for the final record). The final,
// possibly unterminated record is counted by the post-loop increment.
func scanDimensions(data []byte) (rows, cols uint32, code ErrorCode) {
	cols = 1
	i := 0
	sawTerminator := false

first:
	for i < len(data) {
		b := data[i]
		i++
		switch b {
		case ',':
			cols++
			if cols == 0 {
				return 0, 0, ErrColumnCountOverflow
			}
		case '\n':
			sawTerminator = true
			break first
		case '"':
			for i < len(data) && data[i] != '"' {
				i++
			}
			i++
		}
	}

	if !sawTerminator || i >= len(data) {
		// Single record, with or without a trailing terminator.
		return 1, cols, NoError
	}

	rows = 1
	for i < len(data) {
		b := data[i]
		i++
		switch b {
		case '\n':
			if i >= len(data) {
				break
			}
			rows++
			if rows == 0 {
				return 0, 0, ErrRowCountOverflow
			}
		case '"':
			for i < len(data) && data[i] != '"' {
				i++
			}
			i++
		}
	}

	// The final record, whether terminated or not.
	rows++
	if rows == 0 {
		return 0, 0, ErrRowCountOverflow
	}
	return rows, cols, NoError
}
