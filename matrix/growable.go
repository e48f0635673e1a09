// SPDX-License-Identifier: MIT

// Package matrix - Growable storage (row-major) & safe accessors.
//
// Purpose:
//   - Keep a flat row-major buffer of Values with offset formula i*rawCols + j.
//   - Separate the declared extent (rows, cols) from the raw extent (rawRows, rawCols).
//   - Reads are bounds-checked against the declared extent; writes grow it.
//
// Complexity quicksheet:
//   - NewGrowable: O(initRows*initCols); At: O(1); Set: O(1) amortized;
//     Row: O(cols); Clone: O(rawRows*rawCols).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt          = "At"
	ctxSet         = "Set"
	ctxRow         = "Row"
	ctxSetRowCount = "SetRowCount"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Growable is a mutable 2-D store of optional text that only ever grows.
//   - rows, cols: declared extent, observed by callers.
//   - rawRows, rawCols: allocated extent, always >= declared extent.
//   - data: flat buffer of length rawRows*rawCols in row-major order.
type Growable struct {
	rows, cols       int     // declared extent (monotonic)
	rawRows, rawCols int     // allocated extent (powers-of-two multiples of the initial capacity)
	data             []Value // row-major storage; len == rawRows*rawCols
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Growable)(nil)

// NewGrowable creates an empty (0×0 declared) store.
// Raw capacity defaults to 1×1; override with WithInitialCapacity.
// Complexity: O(initRows*initCols).
func NewGrowable(opts ...Option) *Growable {
	o := gatherOptions(opts...)

	return &Growable{
		rawRows: o.initRows,
		rawCols: o.initCols,
		data:    make([]Value, o.initRows*o.initCols),
	}
}

// Rows returns the declared number of rows.
func (m *Growable) Rows() int { return m.rows }

// Cols returns the declared number of columns.
func (m *Growable) Cols() int { return m.cols }

// RawRows returns the allocated row capacity.
func (m *Growable) RawRows() int { return m.rawRows }

// RawCols returns the allocated column capacity.
func (m *Growable) RawCols() int { return m.rawCols }

// At returns the value at (row, col).
// Cells inside the declared extent that were never written are Null.
//
// Errors:
//   - ErrOutOfRange if row ∉ [0, Rows()) or col ∉ [0, Cols()).
//
// Complexity: O(1).
func (m *Growable) At(row, col int) (Value, error) {
	if err := ValidateReadIndex(row, m.rows); err != nil {
		return Null, growableErrorf(ctxAt, row, col, err)
	}
	if err := ValidateReadIndex(col, m.cols); err != nil {
		return Null, growableErrorf(ctxAt, row, col, err)
	}

	return m.data[row*m.rawCols+col], nil
}

// Set stores v at (row, col), growing the declared extent to include the cell
// and doubling raw storage in each overflowing dimension as needed.
// Storing Null still extends the declared extent.
//
// Implementation:
//   - Stage 1: reject negative coordinates.
//   - Stage 2: declared extent = max(extent, coordinate+1).
//   - Stage 3: reallocate if the declared extent exceeds raw capacity.
//   - Stage 4: store.
//
// Errors:
//   - ErrInvalidIndex if row < 0 or col < 0.
//
// Complexity: O(1) amortized; O(rawRows*rawCols) on reallocation.
func (m *Growable) Set(row, col int, v Value) error {
	if err := ValidateWriteIndex(row); err != nil {
		return growableErrorf(ctxSet, row, col, err)
	}
	if err := ValidateWriteIndex(col); err != nil {
		return growableErrorf(ctxSet, row, col, err)
	}

	m.rows = max(m.rows, row+1)
	m.cols = max(m.cols, col+1)
	m.ensureRaw()
	m.data[row*m.rawCols+col] = v

	return nil
}

// SetRowCount declares at least n rows without touching the column extent.
// A smaller n is a no-op (the declared extent never shrinks).
//
// Errors:
//   - ErrInvalidIndex if n < 0.
//
// Complexity: O(1) amortized.
func (m *Growable) SetRowCount(n int) error {
	if n < 0 {
		return growableErrorf(ctxSetRowCount, n, m.cols, ErrInvalidIndex)
	}
	m.rows = max(m.rows, n)
	m.ensureRaw()

	return nil
}

// Row returns a copy of the values of row r for every column in [0, Cols()).
//
// Errors:
//   - ErrOutOfRange if r ∉ [0, Rows()).
//
// Complexity: O(Cols()).
func (m *Growable) Row(r int) ([]Value, error) {
	if err := ValidateReadIndex(r, m.rows); err != nil {
		return nil, growableErrorf(ctxRow, r, 0, err)
	}
	out := make([]Value, m.cols)
	copy(out, m.data[r*m.rawCols:r*m.rawCols+m.cols])

	return out, nil
}

// Clone returns a deep copy with identical declared and raw extents.
// Complexity: O(rawRows*rawCols).
func (m *Growable) Clone() *Growable {
	data := make([]Value, len(m.data))
	copy(data, m.data)

	return &Growable{
		rows:    m.rows,
		cols:    m.cols,
		rawRows: m.rawRows,
		rawCols: m.rawCols,
		data:    data,
	}
}

// Equal reports whether both stores have the same declared extent and the
// same values inside it. Raw capacity is not compared.
// Complexity: O(Rows()*Cols()).
func (m *Growable) Equal(other *Growable) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			if m.data[i*m.rawCols+j] != other.data[i*other.rawCols+j] {
				return false
			}
		}
	}

	return true
}

// String renders the declared extent one row per line, e.g. "[a, <nil>]\n".
func (m *Growable) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.cols; j++ {
			sb.WriteString(m.data[i*m.rawCols+j].String())
			if j < m.cols-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// ensureRaw grows raw storage until it covers the declared extent.
// Each overflowing dimension doubles independently; cells are copied into the
// new layout and new cells are Null.
func (m *Growable) ensureRaw() {
	newRows, newCols := m.rawRows, m.rawCols
	for newRows < m.rows {
		newRows *= growthFactor
	}
	for newCols < m.cols {
		newCols *= growthFactor
	}
	if newRows == m.rawRows && newCols == m.rawCols {
		return
	}

	data := make([]Value, newRows*newCols)
	if newCols == m.rawCols {
		// Row-only growth keeps the row-major layout; one bulk copy suffices.
		copy(data, m.data)
	} else {
		var i int
		for i = 0; i < m.rawRows; i++ {
			copy(data[i*newCols:i*newCols+m.rawCols], m.data[i*m.rawCols:(i+1)*m.rawCols])
		}
	}
	m.data = data
	m.rawRows, m.rawCols = newRows, newCols
}
