// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Derived tables: unique rows, filtered rows, sorted rows.
// Determinism:
//   - Every result keeps source order except where sorting reorders it.
//   - Sorting is stable in both directions.
// Policy:
//   - The source is never mutated; results come from Table.derive and carry
//     the source's declared column titles (row titles are not carried).
//   - Rows whose key is absent are excluded from SortedBy.

package table

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

const (
	opUnique   = "unique"
	opFilter   = "filter"
	opSort     = "sort"
	opJoin     = "join"
	nullMarker = "~"
	keySep     = ","
)

// UniqueRows returns a table holding the distinct rows of the source, first
// occurrence wins, in source order. Two rows are equal when their value
// lists over [0, Width()) are equal, absent cells included.
// Complexity: O(RowCount()*Width()).
func (tr Translator) UniqueRows() *Table {
	out := tr.t.deriveWithTitles()
	seen := make(map[string]struct{}, tr.t.RowCount())
	for _, r := range tr.t.All() {
		vals := r.Values()
		k := rowKey(vals)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out.AddRowValues(vals...)
	}
	tr.t.logDerived(opUnique, out)

	return out
}

// Filtered returns a table of the rows for which keep holds, in source
// order. A nil keep matches every row.
// Complexity: O(RowCount()*Width()).
func (tr Translator) Filtered(keep func(Row) bool) *Table {
	out := tr.t.deriveWithTitles()
	for _, r := range tr.t.All() {
		if keep == nil || keep(r) {
			out.AddRowValues(r.Values()...)
		}
	}
	tr.t.logDerived(opFilter, out)

	return out
}

// SortedBy returns the rows ordered by their string key.
func (tr Translator) SortedBy(key KeyFunc[string], order SortOrder) *Table {
	return SortBy(tr.t, key, order)
}

// SortBy returns a table of the source rows stably ordered by key.
// Rows with an absent key are left out.
// Complexity: O(n log n) comparisons, n = RowCount().
func SortBy[K cmp.Ordered](t *Table, key KeyFunc[K], order SortOrder) *Table {
	type keyed struct {
		key K
		row Row
	}
	rows := make([]keyed, 0, t.RowCount())
	for _, r := range t.All() {
		if k, ok := key(r); ok {
			rows = append(rows, keyed{key: k, row: r})
		}
	}
	slices.SortStableFunc(rows, func(a, b keyed) int {
		if order == Descending {
			return cmp.Compare(b.key, a.key)
		}
		return cmp.Compare(a.key, b.key)
	})

	out := t.deriveWithTitles()
	for _, kr := range rows {
		out.AddRowValues(kr.row.Values()...)
	}
	t.logDerived(opSort, out)

	return out
}

// deriveWithTitles returns an empty derived table with the same declared
// column titles as t.
func (t *Table) deriveWithTitles() *Table {
	return t.derive().AddColumnTitles(t.columns.Keys()...)
}

func (t *Table) logDerived(op string, out *Table) {
	t.log.Debug("table: derived",
		"op", op,
		"rows_in", t.RowCount(),
		"rows_out", out.RowCount(),
	)
}

// rowKey encodes a value list so that distinct lists map to distinct keys.
func rowKey(vals []Value) string {
	var sb strings.Builder
	for i, v := range vals {
		if i > 0 {
			sb.WriteString(keySep)
		}
		if !v.Valid {
			sb.WriteString(nullMarker)
			continue
		}
		sb.WriteString(strconv.Quote(v.Text))
	}

	return sb.String()
}
