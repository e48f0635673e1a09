// SPDX-License-Identifier: MIT

package table

import "iter"

// Loader appends rows from record sequences produced by external codecs.
// Each element is added with AddRecord / AddRowMap semantics: unknown names
// become columns.
type Loader struct {
	t *Table
}

// FromRecords appends one row per record. A nil sequence is a no-op.
func (l Loader) FromRecords(seq iter.Seq[Record]) *Table {
	if seq == nil {
		return l.t
	}
	for rec := range seq {
		l.t.AddRecord(rec)
	}

	return l.t
}

// FromMaps appends one row per map. A nil sequence is a no-op.
func (l Loader) FromMaps(seq iter.Seq[map[string]string]) *Table {
	if seq == nil {
		return l.t
	}
	for m := range seq {
		l.t.AddRowMap(m)
	}

	return l.t
}
