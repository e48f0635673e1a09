// SPDX-License-Identifier: MIT
//
// File: methods_columns.go
// Role: Column and row title declarations.
// Titles never touch the cell store: declaring a title does not widen rows,
// and row titles may lead or lag the actual row count.

package table

// AddColumnTitle appends a declared column title.
// A duplicate title shadows earlier ones for title lookups.
// Complexity: O(1) amortized.
func (t *Table) AddColumnTitle(title string) *Table {
	t.columns.Add(title)
	return t
}

// AddColumnTitles appends titles in order.
func (t *Table) AddColumnTitles(titles ...string) *Table {
	for _, title := range titles {
		t.columns.Add(title)
	}

	return t
}

// DeclareColumnTitles appends each title not yet declared, in order.
// Repeats within titles are declared once. Codecs use it for header lines.
func (t *Table) DeclareColumnTitles(titles ...string) *Table {
	for _, title := range titles {
		t.columnFor(title)
	}

	return t
}

// AddRowTitle appends a declared row title.
func (t *Table) AddRowTitle(title string) *Table {
	t.rows.Add(title)
	return t
}

// AddRowTitles appends row titles in order.
func (t *Table) AddRowTitles(titles ...string) *Table {
	for _, title := range titles {
		t.rows.Add(title)
	}

	return t
}

// columnFor resolves title to a position, declaring it when unknown.
func (t *Table) columnFor(title string) int {
	if pos, ok := t.columns.Lookup(title); ok {
		return pos
	}
	t.columns.Add(title)

	return t.columns.Len() - 1
}
