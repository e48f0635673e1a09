// SPDX-License-Identifier: MIT

package table

import "reflect"

// KeyFunc derives a key from a row. Returning false marks the key absent;
// keyed operations then leave the row out.
//
// Row.FirstValue and Row.SecondValue are KeyFunc[string] method expressions:
//
//	t.As().SortedBy(table.Row.FirstValue, table.Ascending)
type KeyFunc[K any] func(Row) (K, bool)

// ColumnKey keys rows by their present value in the column titled title.
// Rows of a table without that title are all absent.
func ColumnKey(title string) KeyFunc[string] {
	return func(r Row) (string, bool) { return r.OptionalValueOf(title) }
}

// RowIndexKey keys rows by their position.
func RowIndexKey(r Row) (int, bool) {
	return r.pos, true
}

// AnyKey widens a typed key function for use with Joiner.UsingKey.
func AnyKey[K comparable](key KeyFunc[K]) KeyFunc[any] {
	return func(r Row) (any, bool) {
		k, ok := key(r)
		if !ok {
			return nil, false
		}

		return k, true
	}
}

// TextOf adapts a KeyFunc[string] into a value function, absent → "".
func TextOf(key KeyFunc[string]) func(Row) string {
	return func(r Row) string {
		s, _ := key(r)
		return s
	}
}

// hashable narrows key to values usable as map keys. With an interface K,
// a dynamic key that is not comparable (a slice, a map, a func) is absent.
// Concrete comparable K is returned unchanged.
func hashable[K comparable](key KeyFunc[K]) KeyFunc[K] {
	if reflect.TypeFor[K]().Kind() != reflect.Interface {
		return key
	}

	return func(r Row) (K, bool) {
		k, ok := key(r)
		if !ok || !reflect.ValueOf(k).Comparable() {
			var zero K
			return zero, false
		}

		return k, true
	}
}
