// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only facade over the table: counts, titles, cell reads and views.
// Policy:
//   - No mutation here; see methods_rows.go / methods_columns.go.
//   - Reads outside the extent return ErrOutOfBounds; unknown titles ErrNotFound.

package table

import (
	"fmt"
	"iter"
)

// RowCount returns the number of rows.
// Complexity: O(1).
func (t *Table) RowCount() int {
	return t.data.Rows()
}

// Width returns the current column extent of the cell store, which is also
// the Len() of every row.
func (t *Table) Width() int {
	return t.data.Cols()
}

// ColumnTitles returns the declared column titles in order.
func (t *Table) ColumnTitles() []string {
	return t.columns.Keys()
}

// ColumnTitle returns the declared title at pos, or false for implicit or
// out-of-range positions.
func (t *Table) ColumnTitle(pos int) (string, bool) {
	return t.columns.EffectiveKey(pos)
}

// EffectiveColumnTitles returns one title per effective column; implicit
// columns report "".
func (t *Table) EffectiveColumnTitles() []string {
	out := make([]string, t.columns.EffectiveLen())
	for i := range out {
		out[i], _ = t.columns.EffectiveKey(i)
	}

	return out
}

// RowTitles returns the declared row titles in order.
func (t *Table) RowTitles() []string {
	return t.rows.Keys()
}

// RowTitle returns the declared row title at pos.
// Returns ErrOutOfBounds if pos has no declared title.
func (t *Table) RowTitle(pos int) (string, error) {
	title, err := t.rows.Key(pos)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOutOfBounds, err)
	}

	return title, nil
}

// Value returns the text at (row, col); absent cells read as "".
// Returns ErrOutOfBounds outside the extent.
// Complexity: O(1).
func (t *Table) Value(row, col int) (string, error) {
	v, err := t.data.At(row, col)
	if err != nil {
		return "", err
	}

	return v.Text, nil
}

// NullableValue is Value preserving the absent/present distinction.
func (t *Table) NullableValue(row, col int) (Value, error) {
	return t.data.At(row, col)
}

// ValueByTitle resolves both titles and reads the cell.
//
// Errors:
//   - ErrNotFound if either title is unknown.
//   - ErrOutOfBounds if the resolved position lies outside the extent.
func (t *Table) ValueByTitle(rowTitle, columnTitle string) (string, error) {
	row, err := t.rows.Position(rowTitle)
	if err != nil {
		return "", fmt.Errorf("ValueByTitle: row: %w", err)
	}
	col, err := t.columns.Position(columnTitle)
	if err != nil {
		return "", fmt.Errorf("ValueByTitle: column: %w", err)
	}

	return t.Value(row, col)
}

// Row returns a live view of row pos.
// Returns ErrOutOfBounds if pos ∉ [0, RowCount()).
func (t *Table) Row(pos int) (Row, error) {
	if pos < 0 || pos >= t.data.Rows() {
		return Row{}, fmt.Errorf("Row(%d): %w", pos, ErrOutOfBounds)
	}

	return Row{t: t, pos: pos}, nil
}

// Rows materializes one view per row, in order.
// Complexity: O(RowCount()).
func (t *Table) Rows() []Row {
	out := make([]Row, t.data.Rows())
	for i := range out {
		out[i] = Row{t: t, pos: i}
	}

	return out
}

// All iterates rows in order. Rows appended during iteration are visited.
func (t *Table) All() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i := 0; i < t.data.Rows(); i++ {
			if !yield(i, Row{t: t, pos: i}) {
				return
			}
		}
	}
}

// Columns returns one view per declared column title.
func (t *Table) Columns() []Column {
	return t.columnViews(t.columns.Len())
}

// EffectiveColumns returns one view per effective column, including
// implicit columns created by positional writes.
func (t *Table) EffectiveColumns() []Column {
	return t.columnViews(t.columns.EffectiveLen())
}

// Column returns the view of the column titled title.
func (t *Table) Column(title string) (Column, bool) {
	pos, ok := t.columns.Lookup(title)
	if !ok {
		return Column{}, false
	}

	return Column{t: t, pos: pos}, true
}

// ColumnAt returns a view of column pos. The view is valid for any
// non-negative pos; cells beyond the extent read as absent.
func (t *Table) ColumnAt(pos int) Column {
	return Column{t: t, pos: pos}
}

// Cell returns a view of cell (row, col).
// Returns ErrOutOfBounds if row ∉ [0, RowCount()); columns grow on write.
func (t *Table) Cell(row, col int) (Cell, error) {
	r, err := t.Row(row)
	if err != nil {
		return Cell{}, err
	}

	return r.Cell(col), nil
}

// As returns the translator for derived views of this table.
func (t *Table) As() Translator {
	return Translator{t: t}
}

// Load returns the loader that appends rows from record sequences.
func (t *Table) Load() Loader {
	return Loader{t: t}
}

// Join starts an equality join with this table on the left side.
func (t *Table) Join() Joiner {
	return Joiner{left: t}
}

func (t *Table) columnViews(n int) []Column {
	out := make([]Column, n)
	for i := range out {
		out[i] = Column{t: t, pos: i}
	}

	return out
}
