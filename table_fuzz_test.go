package tablecsv

import (
	"bytes"
	"errors"
	"testing"
)

func FuzzParseConsistency(f *testing.F) {
	seeds := []string{
		"a,b,c\n",
		"a,b,c\n1,2,3\n4,,6",
		"a,\"b,b\",c\n",
		"a,\"b\nc\",d\n",
		"\"he said \"\"hi\"\"\",2\n",
		"one\r\ntwo\r\n",
		"trailing,newline\n",
		",,\nx,y,z\n",
		"solo",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 1<<12 {
			t.Skip()
		}

		tbl, err := ParseBytes([]byte(input), false)
		if err != nil {
			if tbl != nil {
				t.Fatalf("failed parse returned a table: input=%q", truncateForMessage(input))
			}
			return
		}

		// Structural invariants of every successful parse.
		if tbl.Total() != uint64(tbl.Rows())*uint64(tbl.Columns()) {
			t.Fatalf("total %d != rows %d * cols %d", tbl.Total(), tbl.Rows(), tbl.Columns())
		}
		if tbl.Missing() >= tbl.Total() {
			t.Fatalf("missing %d >= total %d escaped the build", tbl.Missing(), tbl.Total())
		}
		if tbl.Header() != nil {
			t.Fatalf("header present without being requested")
		}

		// Parsing the same bytes twice yields an identical table.
		again, err := ParseBytes([]byte(input), false)
		if err != nil {
			t.Fatalf("second parse failed: %v input=%q", err, truncateForMessage(input))
		}
		if !tablesEqual(tbl, again) {
			t.Fatalf("parse is not idempotent: input=%q", truncateForMessage(input))
		}

		// Serializing and reparsing reproduces the table exactly.
		var buf bytes.Buffer
		if err := tbl.Write(&buf); err != nil {
			t.Fatalf("write failed: %v input=%q", err, truncateForMessage(input))
		}
		reparsed, err := ParseBytes(buf.Bytes(), false)
		if err != nil {
			t.Fatalf("reparse failed: %v written=%q", err, truncateForMessage(buf.String()))
		}
		if !tablesEqual(tbl, reparsed) {
			t.Fatalf("write/reparse changed the table: input=%q written=%q",
				truncateForMessage(input), truncateForMessage(buf.String()))
		}

		// A header parse of the same bytes drops exactly one row when it
		// succeeds; an all-missing or single-record document may fail instead.
		withHeader, err := ParseBytes([]byte(input), true)
		if err != nil {
			if !errors.Is(err, ErrInternal) {
				t.Fatalf("header parse failed unexpectedly: %v input=%q", err, truncateForMessage(input))
			}
			return
		}
		if withHeader.Rows() != tbl.Rows()-1 {
			t.Fatalf("header parse rows = %d, want %d", withHeader.Rows(), tbl.Rows()-1)
		}
		if uint32(len(withHeader.Header())) != withHeader.Columns() {
			t.Fatalf("header length %d != columns %d", len(withHeader.Header()), withHeader.Columns())
		}
	})
}

func tablesEqual(a, b *Table) bool {
	if a.Rows() != b.Rows() || a.Columns() != b.Columns() {
		return false
	}
	if a.Missing() != b.Missing() || a.Total() != b.Total() {
		return false
	}
	for r := uint32(0); r < a.Rows(); r++ {
		rowA, errA := a.Row(r)
		rowB, errB := b.Row(r)
		if errA != nil || errB != nil {
			return false
		}
		for c := range rowA {
			if rowA[c] != rowB[c] {
				return false
			}
		}
	}
	return true
}

func truncateForMessage(s string) string {
	const max = 256
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
