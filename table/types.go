// SPDX-License-Identifier: MIT

package table

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/lvtable/keyindex"
	"github.com/katalvlaran/lvtable/matrix"
)

// Value is an optional cell text; the zero Value is absent.
type Value = matrix.Value

// Null is the absent Value.
var Null = matrix.Null

// Of returns a present Value holding s.
func Of(s string) Value { return matrix.Of(s) }

// Field is one named value of a Record.
type Field struct {
	Name  string
	Value string
}

// Record is an ordered name→value association describing one row.
// Field order decides the order in which unknown names become columns.
type Record []Field

// Get returns the value of the last field named name.
func (r Record) Get(name string) (string, bool) {
	for i := len(r) - 1; i >= 0; i-- {
		if r[i].Name == name {
			return r[i].Value, true
		}
	}

	return "", false
}

// SortOrder selects ascending or descending order for SortedBy.
type SortOrder int

const (
	// Ascending orders keys from smallest to largest.
	Ascending SortOrder = iota
	// Descending orders keys from largest to smallest.
	Descending
)

// Factory constructs the empty tables that derived operations fill.
type Factory func() *Table

// Option configures a Table at construction.
type Option func(t *Table)

// WithLogger routes debug records of derived operations to l.
// A nil logger keeps the default (discarding) logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Table) {
		if l != nil {
			t.log = l
		}
	}
}

// WithFactory sets the constructor used for derived tables
// (UniqueRows, Filtered, SortedBy, joins). Default: New with the same logger.
func WithFactory(f Factory) Option {
	return func(t *Table) { t.factory = f }
}

// WithInitialCapacity pre-allocates cell storage for rows×cols cells.
// Panics if rows <= 0 or cols <= 0.
func WithInitialCapacity(rows, cols int) Option {
	opt := matrix.WithInitialCapacity(rows, cols)
	return func(t *Table) { t.matrixOpts = append(t.matrixOpts, opt) }
}

// Table is the composition root: one column index, one row index, one cell store.
type Table struct {
	columns *keyindex.Index  // declared column titles + effective width
	rows    *keyindex.Index  // declared row titles
	data    *matrix.Growable // cells

	log        *slog.Logger
	factory    Factory
	matrixOpts []matrix.Option // consumed by New
}

// New creates an empty table (0 rows, 0 columns).
// Complexity: O(1).
func New(opts ...Option) *Table {
	t := &Table{
		columns: keyindex.New(),
		rows:    keyindex.New(),
		log:     discardLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	t.data = matrix.NewGrowable(t.matrixOpts...)
	t.matrixOpts = nil

	return t
}

// derive returns a fresh empty table for a derived operation.
func (t *Table) derive() *Table {
	if t.factory != nil {
		return t.factory()
	}

	return New(WithLogger(t.log))
}

// write stores v at (row, col) and records the positional write on the
// column index so the effective width tracks implicit columns.
func (t *Table) write(row, col int, v Value) error {
	if err := t.data.Set(row, col, v); err != nil {
		return err
	}
	t.columns.NotifyPositionalWrite(col)

	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
