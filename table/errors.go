// SPDX-License-Identifier: MIT

package table

import (
	"github.com/katalvlaran/lvtable/keyindex"
	"github.com/katalvlaran/lvtable/matrix"
)

// The table sentinels are the storage-layer sentinels themselves, so
// errors.Is matches regardless of which layer detected the condition.
var (
	// ErrOutOfBounds indicates a read outside the current extent.
	ErrOutOfBounds = matrix.ErrOutOfRange

	// ErrNotFound indicates an unknown row or column title.
	ErrNotFound = keyindex.ErrKeyNotFound

	// ErrInvalidArgument indicates a structurally invalid position (negative)
	// where growth cannot apply.
	ErrInvalidArgument = matrix.ErrInvalidIndex
)
