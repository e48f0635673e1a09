// SPDX-License-Identifier: MIT

package table

import "strings"

// Cell is a value-type accessor bound to (row, column) of a table.
type Cell struct {
	t        *Table
	row, col int
}

// Position returns the cell coordinates.
func (c Cell) Position() (row, col int) { return c.row, c.col }

// Value returns the text and whether it is present. Coordinates outside the
// extent are absent.
func (c Cell) Value() (string, bool) {
	v, err := c.t.data.At(c.row, c.col)
	if err != nil {
		return "", false
	}

	return v.Get()
}

// Text returns the text, "" when absent.
func (c Cell) Text() string {
	s, _ := c.Value()
	return s
}

// Set writes v into the cell, widening the table if needed.
// Returns ErrInvalidArgument for a negative column.
func (c Cell) Set(v string) error {
	return c.t.write(c.row, c.col, Of(v))
}

// Clear makes the cell absent again.
func (c Cell) Clear() error {
	return c.t.write(c.row, c.col, Null)
}

// IsEmpty reports whether the value is absent or "".
func (c Cell) IsEmpty() bool {
	return c.Text() == ""
}

// IsBlank reports whether the value is absent, "" or whitespace only.
func (c Cell) IsBlank() bool {
	return strings.TrimSpace(c.Text()) == ""
}

// As returns a typed accessor, or false when the cell is absent.
func (c Cell) As() (Accessor, bool) {
	s, ok := c.Value()
	if !ok {
		return Accessor{}, false
	}

	return Accessor{text: s}, true
}

// Row returns the owning row view.
func (c Cell) Row() Row { return Row{t: c.t, pos: c.row} }

// Column returns the owning column view.
func (c Cell) Column() Column { return Column{t: c.t, pos: c.col} }
