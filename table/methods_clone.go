// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copy, structural equality and text rendering.

package table

import (
	"fmt"
	"strings"
)

var _ fmt.Stringer = (*Table)(nil)

// Clone returns an independent deep copy sharing only the logger and factory.
// Complexity: O(raw cell capacity).
func (t *Table) Clone() *Table {
	return &Table{
		columns: t.columns.Clone(),
		rows:    t.rows.Clone(),
		data:    t.data.Clone(),
		log:     t.log,
		factory: t.factory,
	}
}

// Equal reports whether both tables declare the same column and row titles
// and hold the same values over the same extent. Raw capacity, logger and
// factory are not compared.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}

	return t.columns.Equal(other.columns) &&
		t.rows.Equal(other.rows) &&
		t.data.Equal(other.data)
}

// String renders the column titles on the first line followed by one line
// per row, e.g.
//
//	[c1 c2]
//	[a, <nil>]
func (t *Table) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v\n", t.columns.Keys())
	sb.WriteString(t.data.String())

	return sb.String()
}
