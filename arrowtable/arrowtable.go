// Package arrowtable bridges parsed CSV tables into Apache Arrow structures
// so downstream consumers can hand them to Arrow-native tooling (Parquet
// writers, compute kernels, IPC) without re-walking the string grid.
package arrowtable

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/oleg578/tablecsv"
)

// Record converts t into an Arrow record with one nullable UTF-8 column per
// CSV column. Missing fields become nulls, so the record's per-column null
// counts sum to the table's missing count. Column names come from the header
// when present, otherwise col0..colN. The caller owns the returned record and
// should Release it.
func Record(t *tablecsv.Table) (arrow.Record, error) {
	if t == nil {
		return nil, tablecsv.ErrNilTable
	}

	pool := memory.NewGoAllocator()
	cols := int(t.Columns())

	fields := make([]arrow.Field, cols)
	names := t.Header()
	for j := range fields {
		name := fmt.Sprintf("col%d", j)
		if names != nil {
			name = names[j]
		}
		fields[j] = arrow.Field{Name: name, Type: arrow.BinaryTypes.String, Nullable: true}
	}
	schema := arrow.NewSchema(fields, nil)

	arrays := make([]arrow.Array, cols)
	for j := 0; j < cols; j++ {
		b := array.NewStringBuilder(pool)
		values, err := t.Column(uint32(j))
		if err != nil {
			b.Release()
			return nil, err
		}
		for _, v := range values {
			if v == "" {
				b.AppendNull()
				continue
			}
			b.Append(v)
		}
		arrays[j] = b.NewStringArray()
		b.Release()
	}

	rec := array.NewRecord(schema, arrays, int64(t.Rows()))
	for _, arr := range arrays {
		arr.Release()
	}
	return rec, nil
}

// Int64Column extracts column j as an Arrow int64 array via the table's typed
// extractor, with the same whole-cell parsing rules and error taxonomy.
func Int64Column(t *tablecsv.Table, j uint32, base int) (*array.Int64, error) {
	values, err := t.ColumnInts(j, base)
	if err != nil {
		return nil, err
	}
	b := array.NewInt64Builder(memory.NewGoAllocator())
	defer b.Release()
	b.AppendValues(values, nil)
	return b.NewInt64Array(), nil
}

// Float64Column extracts column j as an Arrow float64 array. See Int64Column.
func Float64Column(t *tablecsv.Table, j uint32) (*array.Float64, error) {
	values, err := t.ColumnFloats(j)
	if err != nil {
		return nil, err
	}
	b := array.NewFloat64Builder(memory.NewGoAllocator())
	defer b.Release()
	b.AppendValues(values, nil)
	return b.NewFloat64Array(), nil
}
