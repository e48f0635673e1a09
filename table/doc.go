// Package table provides an in-memory, mutable, sparsely growable table of
// optional text cells, addressable by position or by row/column title.
//
// A Table composes three parts:
//
//	columns  keyindex.Index   - declared column titles (+ effective width)
//	rows     keyindex.Index   - declared row titles (independent of row count)
//	data     matrix.Growable  - the cells
//
// Rows are dense and append-only: row N exists iff N < RowCount(). Columns
// are positions; a position may carry a declared title or be an implicit
// ("pseudo") column created by writing a value past the declared titles.
// Columns() lists declared columns, EffectiveColumns() lists every position
// ever written or declared.
//
// Views:
//
//	Row, Column and Cell are small values holding only the owning *Table and
//	their position(s). They store no data and always read through, so a view
//	taken before a mutation observes it afterwards. Rows() and every derived
//	table are materialized copies.
//
// Derived operations (As()):
//
//	Map, Group, IndexOfColumn  → read-only maps / indexes
//	UniqueRows, Filtered, SortedBy → new tables with the same declared titles
//	Join().UsingColumn(..).With(t).UsingColumn(..).Inner() → equality join
//
// Rows whose key is absent are left out of keyed results (group, sort, join).
//
// Errors:
//
//	ErrOutOfBounds     - read outside the current extent.
//	ErrNotFound        - unknown row or column title.
//	ErrInvalidArgument - negative position on a write.
//
// Writes never report ErrOutOfBounds; they grow the table instead.
//
// Concurrency: a Table is not safe for concurrent use. Serialize access
// externally (single writer or an external lock).
package table
