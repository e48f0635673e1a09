// SPDX-License-Identifier: MIT
//
// File: translate.go
// Role: Read-only products of a table: maps, groups and column indexes.
// Determinism:
//   - Group value slices follow row order.
//   - Map keeps the value of the last row for a repeated key.

package table

import "fmt"

// Translator exposes derived views of a table. Obtain it with Table.As.
type Translator struct {
	t *Table
}

// Map associates each row's first value with its second value.
// Rows without a first value are skipped; a missing second value maps to "".
// On a repeated key the last row wins.
func (tr Translator) Map() map[string]string {
	return MapBy[string, string](tr.t, Row.FirstValue, TextOf(Row.SecondValue))
}

// MapBy is Map with caller-supplied key and value functions.
func (tr Translator) MapBy(key KeyFunc[string], val func(Row) string) map[string]string {
	return MapBy(tr.t, key, val)
}

// Group associates each present key with the values of all rows sharing
// it, in row order.
func (tr Translator) Group(key KeyFunc[string], val func(Row) string) map[string][]string {
	return GroupBy(tr.t, key, val)
}

// IndexOfColumn indexes rows by their value in the column titled title.
// Returns ErrNotFound for an unknown title.
func (tr Translator) IndexOfColumn(title string) (*ColumnIndex, error) {
	if !tr.t.columns.Has(title) {
		return nil, fmt.Errorf("IndexOfColumn(%q): %w", title, ErrNotFound)
	}
	groups := GroupBy(tr.t, ColumnKey(title), func(r Row) Row { return r })

	return &ColumnIndex{title: title, rows: groups}, nil
}

// MapBy builds key→value over all rows with a present key; last row wins.
// Keys that cannot be hashed count as absent.
// Complexity: O(RowCount()).
func MapBy[K comparable, V any](t *Table, key KeyFunc[K], val func(Row) V) map[K]V {
	key = hashable(key)
	out := make(map[K]V)
	for _, r := range t.All() {
		k, ok := key(r)
		if !ok {
			continue
		}
		out[k] = val(r)
	}

	return out
}

// GroupBy builds key→[]value over all rows with a present key, values in
// row order. Keys that cannot be hashed count as absent.
// Complexity: O(RowCount()).
func GroupBy[K comparable, V any](t *Table, key KeyFunc[K], val func(Row) V) map[K][]V {
	key = hashable(key)
	out := make(map[K][]V)
	for _, r := range t.All() {
		k, ok := key(r)
		if !ok {
			continue
		}
		out[k] = append(out[k], val(r))
	}

	return out
}

// ColumnIndex is a lookup of rows by the value of one column.
// It is built once; later table mutations are not reflected.
type ColumnIndex struct {
	title string
	rows  map[string][]Row
}

// Title returns the indexed column title.
func (ix *ColumnIndex) Title() string { return ix.title }

// RowByValue returns the first row holding v.
func (ix *ColumnIndex) RowByValue(v string) (Row, bool) {
	rows := ix.rows[v]
	if len(rows) == 0 {
		return Row{}, false
	}

	return rows[0], true
}

// RowsByValue returns every row holding v in row order; empty when none.
func (ix *ColumnIndex) RowsByValue(v string) []Row {
	rows := ix.rows[v]
	out := make([]Row, len(rows))
	copy(out, rows)

	return out
}

// Contains reports whether any row holds v.
func (ix *ColumnIndex) Contains(v string) bool {
	return len(ix.rows[v]) > 0
}
