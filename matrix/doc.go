// Package matrix offers the growable backing store for lvtable tables.
//
// The matrix package provides:
//
//   - Value, an optional text cell (present text or absent).
//   - Growable, a row-major 2-D store of Values with a declared extent
//     (what callers observe) and a raw extent (what is allocated).
//   - Sentinel errors (ErrOutOfRange, ErrInvalidIndex) matched via errors.Is.
//
// Reads outside the declared extent fail with ErrOutOfRange. Writes never fail
// for non-negative coordinates: the declared extent grows to include the
// written cell and raw storage doubles the overflowing dimension until it
// fits, preserving every previously written cell. Rows and columns double
// independently, so a wide-but-short table does not pay for unused rows.
//
// Complexity:
//
//   - At, Set (no growth): O(1).
//   - Set with growth: O(rawRows×rawCols) copy, amortized O(1) per write.
//   - Row snapshot: O(cols).
//
// Growable carries no locks. Callers sharing one instance across goroutines
// must serialize access themselves.
package matrix
