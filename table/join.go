// SPDX-License-Identifier: MIT
//
// File: join.go
// Role: Inner equality join between two tables.
// Determinism:
//   - Output rows follow left row order; matches of one left row follow
//     right row order.
// Layout of the result:
//   - Titled columns: left declared titles, then right declared titles not
//     already declared on the left. Each title sits over its own value.
//   - Implicit columns follow untitled: the left's, then the right's.
//   - Keys that cannot be hashed (slices, maps, nil) never match.

package table

import "fmt"

// Joiner selects the left key of a join. Obtain it with Table.Join.
type Joiner struct {
	left *Table
}

// UsingColumn keys left rows by their present value in the column titled title.
// An unknown title surfaces as ErrNotFound from Inner.
func (j Joiner) UsingColumn(title string) LeftJoin {
	return LeftJoin{left: j.left, key: AnyKey(ColumnKey(title)), err: requireColumn(j.left, title)}
}

// UsingRowIndex keys left rows by position.
func (j Joiner) UsingRowIndex() LeftJoin {
	return LeftJoin{left: j.left, key: AnyKey[int](RowIndexKey)}
}

// UsingKey keys left rows by key. Keys must be comparable values; keys of
// different dynamic types never match.
func (j Joiner) UsingKey(key KeyFunc[any]) LeftJoin {
	return LeftJoin{left: j.left, key: key}
}

// LeftJoin is a join with its left side fully specified.
type LeftJoin struct {
	left *Table
	key  KeyFunc[any]
	err  error
}

// With names the right table.
func (l LeftJoin) With(right *Table) RightJoin {
	return RightJoin{l: l, right: right}
}

// RightJoin selects the right key of a join.
type RightJoin struct {
	l     LeftJoin
	right *Table
}

// UsingColumn keys right rows by their present value in the column titled title.
func (r RightJoin) UsingColumn(title string) PreparedJoin {
	return PreparedJoin{l: r.l, right: r.right, key: AnyKey(ColumnKey(title)), err: requireColumn(r.right, title)}
}

// UsingRowIndex keys right rows by position.
func (r RightJoin) UsingRowIndex() PreparedJoin {
	return PreparedJoin{l: r.l, right: r.right, key: AnyKey[int](RowIndexKey)}
}

// UsingKey keys right rows by key.
func (r RightJoin) UsingKey(key KeyFunc[any]) PreparedJoin {
	return PreparedJoin{l: r.l, right: r.right, key: key}
}

// PreparedJoin is a fully specified join.
type PreparedJoin struct {
	l     LeftJoin
	right *Table
	key   KeyFunc[any]
	err   error
}

// Inner runs the equality join and returns a new table with one row per
// (left, right) pair whose keys are present and equal.
//
// Errors:
//   - ErrNotFound if a key column title is unknown on its side.
//   - ErrInvalidArgument if the right table or a key function is nil.
func (p PreparedJoin) Inner() (*Table, error) {
	if p.l.err != nil {
		return nil, fmt.Errorf("Join.Inner: left: %w", p.l.err)
	}
	if p.err != nil {
		return nil, fmt.Errorf("Join.Inner: right: %w", p.err)
	}
	if p.right == nil || p.l.key == nil || p.key == nil {
		return nil, fmt.Errorf("Join.Inner: incomplete join: %w", ErrInvalidArgument)
	}

	return InnerJoin(p.l.left, p.right, p.l.key, p.key), nil
}

// InnerJoin joins left and right on equal, present keys.
// Complexity: O(L + R + output), L and R the row counts.
func InnerJoin[K comparable](left, right *Table, leftKey, rightKey KeyFunc[K]) *Table {
	matches := GroupBy(right, rightKey, func(r Row) Row { return r })
	leftKey = hashable(leftKey)
	layout := joinLayout(left, right)

	out := left.derive()
	for _, c := range layout {
		if !c.titled {
			break
		}
		src := left
		if c.right {
			src = right
		}
		title, _ := src.columns.EffectiveKey(c.pos)
		out.AddColumnTitle(title)
	}

	for _, l := range left.All() {
		k, ok := leftKey(l)
		if !ok {
			continue
		}
		for _, r := range matches[k] {
			vals := make([]Value, len(layout))
			for i, c := range layout {
				if c.right {
					vals[i] = r.NullableValue(c.pos)
				} else {
					vals[i] = l.NullableValue(c.pos)
				}
			}
			out.AddRowValues(vals...)
		}
	}
	left.logDerived(opJoin, out)

	return out
}

// joinColumn names the source of one output column.
type joinColumn struct {
	right  bool // taken from the right row
	pos    int  // position in the source row
	titled bool
}

// joinLayout orders the output columns: left declared, right declared
// minus titles declared on the left, left implicit, right implicit.
func joinLayout(left, right *Table) []joinColumn {
	ln, le := left.columns.Len(), left.columns.EffectiveLen()
	rn, re := right.columns.Len(), right.columns.EffectiveLen()
	layout := make([]joinColumn, 0, le+re)

	for pos := 0; pos < ln; pos++ {
		layout = append(layout, joinColumn{pos: pos, titled: true})
	}
	for pos := 0; pos < rn; pos++ {
		if title, _ := right.columns.EffectiveKey(pos); left.columns.Has(title) {
			continue
		}
		layout = append(layout, joinColumn{right: true, pos: pos, titled: true})
	}
	for pos := ln; pos < le; pos++ {
		layout = append(layout, joinColumn{pos: pos})
	}
	for pos := rn; pos < re; pos++ {
		layout = append(layout, joinColumn{right: true, pos: pos})
	}

	return layout
}

func requireColumn(t *Table, title string) error {
	if t == nil {
		return ErrInvalidArgument
	}
	if _, err := t.columns.Position(title); err != nil {
		return fmt.Errorf("column: %w", err)
	}

	return nil
}
