// Package bean converts between table rows and Go structs.
//
// Struct fields map to column titles by their `table` tag, or by field name
// when untagged:
//
//	type Person struct {
//		Name string        `table:"name"`
//		Age  int           `table:"age"`
//		TTL  time.Duration `table:"ttl,omitempty"`
//		Skip string        `table:"-"`
//	}
//
// Decoding reads a row's present values (Row.AsMap) through
// github.com/go-viper/mapstructure/v2 with weakly typed input, so "42"
// fills an int, "true" a bool, "1m" a time.Duration and RFC 3339 text a
// time.Time. Absent cells leave the field at its zero value.
//
// Encoding renders every exported field in declaration order; embedded
// structs contribute their fields inline.
package bean
