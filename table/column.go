// SPDX-License-Identifier: MIT

package table

// Column is a live view of one column position.
type Column struct {
	t   *Table
	pos int
}

// Index returns the column position.
func (c Column) Index() int { return c.pos }

// Title returns the declared title, or false for an implicit column.
func (c Column) Title() (string, bool) {
	return c.t.columns.EffectiveKey(c.pos)
}

// Cells returns one cell view per row.
func (c Column) Cells() []Cell {
	out := make([]Cell, c.t.data.Rows())
	for i := range out {
		out[i] = Cell{t: c.t, row: i, col: c.pos}
	}

	return out
}

// Values returns a snapshot of the column, one value per row.
func (c Column) Values() []Value {
	out := make([]Value, c.t.data.Rows())
	for i := range out {
		out[i], _ = c.t.data.At(i, c.pos) // Null beyond the extent
	}

	return out
}

// Contains reports whether any row holds the present text v in this column.
func (c Column) Contains(v string) bool {
	for _, val := range c.Values() {
		if val.Valid && val.Text == v {
			return true
		}
	}

	return false
}
