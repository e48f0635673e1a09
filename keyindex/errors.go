// SPDX-License-Identifier: MIT

package keyindex

import "errors"

var (
	// ErrKeyNotFound indicates a name lookup for a name that was never added.
	ErrKeyNotFound = errors.New("keyindex: key not found")

	// ErrOutOfRange indicates a position outside the declared names.
	ErrOutOfRange = errors.New("keyindex: position out of range")
)
