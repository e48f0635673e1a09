// SPDX-License-Identifier: MIT

package keyindex

import (
	"fmt"
	"slices"
)

// Index is an ordered, name-addressable list of keys with effective-size
// tracking. The zero value is not usable; call New.
type Index struct {
	keys       []string       // names in insertion order
	positions  map[string]int // name → last position holding it
	maxWritten int            // highest position written or declared; -1 when empty
}

// New returns an empty Index.
// Complexity: O(1).
func New() *Index {
	return &Index{
		positions:  make(map[string]int),
		maxWritten: -1,
	}
}

// Add appends key and makes it resolvable by name. A duplicate key
// shadows its earlier occurrences for name lookup.
// Complexity: O(1) amortized.
func (ix *Index) Add(key string) *Index {
	ix.keys = append(ix.keys, key)
	pos := len(ix.keys) - 1
	ix.positions[key] = pos
	ix.maxWritten = max(ix.maxWritten, pos)

	return ix
}

// Position returns the position of key.
// Returns ErrKeyNotFound if key was never added.
// Complexity: O(1).
func (ix *Index) Position(key string) (int, error) {
	pos, ok := ix.positions[key]
	if !ok {
		return 0, fmt.Errorf("Position(%q): %w", key, ErrKeyNotFound)
	}

	return pos, nil
}

// Lookup is the comma-ok form of Position.
func (ix *Index) Lookup(key string) (int, bool) {
	pos, ok := ix.positions[key]
	return pos, ok
}

// Has reports whether key was added.
func (ix *Index) Has(key string) bool {
	_, ok := ix.positions[key]
	return ok
}

// Key returns the name declared at pos.
// Returns ErrOutOfRange if pos ∉ [0, Len()).
// Complexity: O(1).
func (ix *Index) Key(pos int) (string, error) {
	if pos < 0 || pos >= len(ix.keys) {
		return "", fmt.Errorf("Key(%d): %w", pos, ErrOutOfRange)
	}

	return ix.keys[pos], nil
}

// EffectiveKey returns the name at pos, or false when pos has no declared
// name (including implicit positions beyond Len). It never fails.
func (ix *Index) EffectiveKey(pos int) (string, bool) {
	if pos < 0 || pos >= len(ix.keys) {
		return "", false
	}

	return ix.keys[pos], true
}

// Keys returns a copy of the declared names in order.
func (ix *Index) Keys() []string {
	return slices.Clone(ix.keys)
}

// Len returns the number of declared names.
func (ix *Index) Len() int {
	return len(ix.keys)
}

// EffectiveLen returns the count of positions including implicit ones:
// 1 + the highest position ever declared or written.
func (ix *Index) EffectiveLen() int {
	return ix.maxWritten + 1
}

// NotifyPositionalWrite records that a value was written at pos without
// necessarily declaring a name there. Negative positions are ignored.
func (ix *Index) NotifyPositionalWrite(pos int) {
	ix.maxWritten = max(ix.maxWritten, pos)
}

// Clone returns an independent copy.
// Complexity: O(Len()).
func (ix *Index) Clone() *Index {
	positions := make(map[string]int, len(ix.positions))
	for k, v := range ix.positions {
		positions[k] = v
	}

	return &Index{
		keys:       slices.Clone(ix.keys),
		positions:  positions,
		maxWritten: ix.maxWritten,
	}
}

// Equal reports whether both indexes declare the same names in the same order.
// Effective size is not compared.
func (ix *Index) Equal(other *Index) bool {
	if ix == nil || other == nil {
		return ix == other
	}

	return slices.Equal(ix.keys, other.keys)
}

// String implements fmt.Stringer.
func (ix *Index) String() string {
	return fmt.Sprintf("keyindex%q", ix.keys)
}
