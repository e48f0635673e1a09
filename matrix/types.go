// SPDX-License-Identifier: MIT

// Package matrix: domain types stored in the growable matrix.
package matrix

// Value is an optional text cell. The zero Value is absent.
// Present values may carry an empty Text; absence and emptiness are distinct.
type Value struct {
	Text  string // cell text, meaningful only when Valid
	Valid bool   // true once a text has been stored
}

// Null is the absent Value.
var Null = Value{}

// Of returns a present Value holding s.
func Of(s string) Value {
	return Value{Text: s, Valid: true}
}

// Get returns the text and whether it is present.
func (v Value) Get() (string, bool) {
	return v.Text, v.Valid
}

// IsNull reports whether the value is absent.
func (v Value) IsNull() bool {
	return !v.Valid
}

// String returns the text, or "<nil>" for an absent value.
func (v Value) String() string {
	if !v.Valid {
		return nullLiteral
	}

	return v.Text
}

// Strings converts present texts into Values, preserving order.
func Strings(texts ...string) []Value {
	out := make([]Value, len(texts))
	for i, s := range texts {
		out[i] = Of(s)
	}

	return out
}

const nullLiteral = "<nil>"
