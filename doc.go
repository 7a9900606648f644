// # TableCSV: An In-Memory RFC 4180 Table Library for Go
//
// TableCSV parses an RFC 4180 CSV document into a fully materialized in-memory table, then offers typed extraction of rows and columns into homogeneous arrays. It adheres to RFC 4180, performs a dimension-discovery pass before allocating any field storage, and exposes precise error codes for every failure.
//
// # Features
//
// - Two-pass parser: a dimension scan sizes the table exactly, then field extraction decodes each cell including doubled-quote escapes.
// - Immutable `Table` with row, column, missing and total counts plus an optional header record.
// - Typed accessors converting any row or column to `[]int64`, `[]float64`, or `[]byte`, with distinct errors for missing cells, unparsable text, range overflow, and trailing garbage.
// - Full error taxonomy via `ErrorCode` and `Describe`, with `ParseError` and `ConvertError` carrying location context.
// - RFC 4180 writer for serializing a table back to CSV text.
// - Benchmarks, fuzz targets, and table-driven unit tests for regression protection.
//
// # Getting Started
//
// The module path is `github.com/oleg578/tablecsv`. Call `Parse` with a file path, or `ParseBytes`/`ParseReader` when the document is already in hand.
package tablecsv
