// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for coordinate checks used by Growable.
//   - Return plain sentinel errors; call sites wrap them with coordinates.
//
// All checks are pure and allocate nothing.

package matrix

import "fmt"

// growableErrorf wraps a sentinel with method context and coordinates.
func growableErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Growable.%s(%d,%d): %w", method, row, col, err)
}

// ValidateReadIndex reports ErrOutOfRange unless 0 <= i < limit.
// Complexity: O(1).
func ValidateReadIndex(i, limit int) error {
	if i < 0 || i >= limit {
		return ErrOutOfRange
	}

	return nil
}

// ValidateWriteIndex reports ErrInvalidIndex for negative coordinates.
// Any non-negative coordinate is writable because writes grow the store.
// Complexity: O(1).
func ValidateWriteIndex(i int) error {
	if i < 0 {
		return ErrInvalidIndex
	}

	return nil
}
