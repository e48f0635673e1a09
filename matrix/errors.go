// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All public accessors return these sentinels (possibly wrapped with call-site
// coordinates); tests check them via errors.Is. No accessor panics on
// user-triggered conditions.

package matrix

import "errors"

var (
	// ErrOutOfRange indicates that a read addressed a row or column outside
	// the declared extent.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidIndex indicates a structurally invalid coordinate (negative)
	// on a write or sizing call, where growth cannot apply.
	ErrInvalidIndex = errors.New("matrix: invalid index")
)
