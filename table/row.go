// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"strconv"
)

// Row is a live view of one row position. It holds no data; every call
// reads the current table state.
type Row struct {
	t   *Table
	pos int
}

// Index returns the row position.
func (r Row) Index() int { return r.pos }

// Table returns the owning table.
func (r Row) Table() *Table { return r.t }

// Len returns the table's current column extent. It grows with the table,
// also after the view was obtained.
func (r Row) Len() int { return r.t.data.Cols() }

// Value returns the text at column i; absent cells read as "".
// Returns ErrOutOfBounds if i ∉ [0, Len()).
func (r Row) Value(i int) (string, error) {
	v, err := r.t.data.At(r.pos, i)
	if err != nil {
		return "", err
	}

	return v.Text, nil
}

// OptionalValue returns the text at column i and whether it is present.
// Never fails: out-of-range positions are absent.
func (r Row) OptionalValue(i int) (string, bool) {
	return r.NullableValue(i).Get()
}

// NullableValue returns the Value at column i, Null when out of range.
func (r Row) NullableValue(i int) Value {
	v, err := r.t.data.At(r.pos, i)
	if err != nil {
		return Null
	}

	return v
}

// ValueOf returns the text in the column titled title.
// Returns ErrNotFound for an unknown title. A declared column with no cells
// yet reads as "".
func (r Row) ValueOf(title string) (string, error) {
	pos, err := r.t.columns.Position(title)
	if err != nil {
		return "", fmt.Errorf("Row.ValueOf: %w", err)
	}
	s, _ := r.OptionalValue(pos)

	return s, nil
}

// OptionalValueOf returns the text in the column titled title and whether
// it is present. Unknown titles are absent.
func (r Row) OptionalValueOf(title string) (string, bool) {
	pos, ok := r.t.columns.Lookup(title)
	if !ok {
		return "", false
	}

	return r.OptionalValue(pos)
}

// ValueAs returns a typed accessor for the column titled title, or false
// when the title is unknown or the cell is absent.
func (r Row) ValueAs(title string) (Accessor, bool) {
	s, ok := r.OptionalValueOf(title)
	if !ok {
		return Accessor{}, false
	}

	return Accessor{text: s}, true
}

// FirstValue returns the value at column 0.
func (r Row) FirstValue() (string, bool) { return r.OptionalValue(0) }

// SecondValue returns the value at column 1.
func (r Row) SecondValue() (string, bool) { return r.OptionalValue(1) }

// Values returns a snapshot of every cell in [0, Len()).
func (r Row) Values() []Value {
	vals, err := r.t.data.Row(r.pos)
	if err != nil {
		return nil
	}

	return vals
}

// Strings returns a snapshot of the row texts; absent cells are "".
func (r Row) Strings() []string {
	vals := r.Values()
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.Text
	}

	return out
}

// AsMap returns title→text for every present cell. Implicit columns are
// keyed by their decimal position.
func (r Row) AsMap() map[string]string {
	out := make(map[string]string, r.Len())
	for i, v := range r.Values() {
		if v.Valid {
			out[r.fieldName(i)] = v.Text
		}
	}

	return out
}

// Record returns the present cells as an ordered record, named like AsMap.
func (r Row) Record() Record {
	vals := r.Values()
	out := make(Record, 0, len(vals))
	for i, v := range vals {
		if v.Valid {
			out = append(out, Field{Name: r.fieldName(i), Value: v.Text})
		}
	}

	return out
}

// AddValue writes v at the first position whose value is absent, scanning
// left to right. When every position in [0, Len()) is written, the value
// lands at Len() and widens the table. Explicitly written empty strings are
// not absent and are never overwritten.
func (r Row) AddValue(v string) Row {
	pos := 0
	for pos < r.Len() && !r.NullableValue(pos).IsNull() {
		pos++
	}
	_ = r.t.write(r.pos, pos, Of(v)) // pos >= 0, cannot fail

	return r
}

// AddValues calls AddValue for each value in order.
func (r Row) AddValues(values ...string) Row {
	for _, v := range values {
		r.AddValue(v)
	}

	return r
}

// SetValue writes v at column i, widening the table if needed.
// Returns ErrInvalidArgument if i < 0.
func (r Row) SetValue(i int, v string) error {
	return r.SetNullableValue(i, Of(v))
}

// SetNullableValue writes v (possibly Null) at column i.
// Returns ErrInvalidArgument if i < 0.
func (r Row) SetNullableValue(i int, v Value) error {
	return r.t.write(r.pos, i, v)
}

// SetValueOf writes v in the column titled title.
// Returns ErrNotFound for an unknown title.
func (r Row) SetValueOf(title, v string) error {
	pos, err := r.t.columns.Position(title)
	if err != nil {
		return fmt.Errorf("Row.SetValueOf: %w", err)
	}

	return r.SetValue(pos, v)
}

// Cell returns a view of column i of this row.
func (r Row) Cell(i int) Cell {
	return Cell{t: r.t, row: r.pos, col: i}
}

// CellOf returns a view of the cell in the column titled title.
// Returns ErrNotFound for an unknown title.
func (r Row) CellOf(title string) (Cell, error) {
	pos, err := r.t.columns.Position(title)
	if err != nil {
		return Cell{}, fmt.Errorf("Row.CellOf: %w", err)
	}

	return r.Cell(pos), nil
}

// CellOrNew returns the cell in the column titled title, declaring the
// column first when the title is unknown.
func (r Row) CellOrNew(title string) Cell {
	return r.Cell(r.t.columnFor(title))
}

// FirstCell returns the cell at column 0.
func (r Row) FirstCell() Cell { return r.Cell(0) }

// Cells returns one cell view per column in [0, Len()).
func (r Row) Cells() []Cell {
	out := make([]Cell, r.Len())
	for i := range out {
		out[i] = r.Cell(i)
	}

	return out
}

// String implements fmt.Stringer.
func (r Row) String() string {
	return fmt.Sprintf("Row[%d]%v", r.pos, r.Values())
}

func (r Row) fieldName(i int) string {
	if title, ok := r.t.columns.EffectiveKey(i); ok {
		return title
	}

	return strconv.Itoa(i)
}
