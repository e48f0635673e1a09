// SPDX-License-Identifier: MIT
//
// File: methods_rows.go
// Role: Row creation. Rows are append-only; there is no insertion or removal.

package table

import (
	"iter"
	"maps"
	"slices"
)

// NewRow declares one additional row and returns its view.
// Column titles are not required.
// Complexity: O(1) amortized.
func (t *Table) NewRow() Row {
	pos := t.data.Rows()
	_ = t.data.SetRowCount(pos + 1) // pos+1 > 0, cannot fail

	return Row{t: t, pos: pos}
}

// AddRow creates a row and appends values left to right, each at the first
// unwritten position of the row, growing columns implicitly.
func (t *Table) AddRow(values ...string) *Table {
	t.NewRow().AddValues(values...)
	return t
}

// AddRowValues creates a row and writes values[i] at position i.
// Absent values leave their cell unwritten but still extend the column extent.
func (t *Table) AddRowValues(values ...Value) *Table {
	row := t.NewRow()
	for i, v := range values {
		_ = t.write(row.pos, i, v) // i >= 0, cannot fail
	}

	return t
}

// AddRecord creates a row from an ordered name→value association.
// Names not yet known become new column titles in field order; every other
// declared column stays absent in the new row.
func (t *Table) AddRecord(rec Record) *Table {
	row := t.NewRow()
	for _, f := range rec {
		_ = t.write(row.pos, t.columnFor(f.Name), Of(f.Value))
	}

	return t
}

// AddRowMap creates a row from a name→value map. Unknown names become
// column titles in sorted order so the result does not depend on map
// iteration order.
func (t *Table) AddRowMap(m map[string]string) *Table {
	rec := make(Record, 0, len(m))
	for _, name := range slices.Sorted(maps.Keys(m)) {
		rec = append(rec, Field{Name: name, Value: m[name]})
	}

	return t.AddRecord(rec)
}

// AddRowsFrom creates one row per element of seq and lets fill initialize it.
func AddRowsFrom[E any](t *Table, seq iter.Seq[E], fill func(E, Row)) *Table {
	if seq == nil {
		return t
	}
	for e := range seq {
		fill(e, t.NewRow())
	}

	return t
}
