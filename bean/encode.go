package bean

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"

	"github.com/katalvlaran/lvtable/table"
)

// Record renders v, a struct or pointer to one, as an ordered record.
// Nil pointer fields and zero fields tagged omitempty are left out.
func Record(v any) (table.Record, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("Record(%T): %w", v, ErrNotStruct)
	}
	var rec table.Record
	appendFields(&rec, rv)

	return rec, nil
}

// AddBeans appends one row per bean with table.AddRecord semantics.
func AddBeans[T any](t *table.Table, beans ...T) (*table.Table, error) {
	for i, b := range beans {
		rec, err := Record(b)
		if err != nil {
			return t, fmt.Errorf("AddBeans[%d]: %w", i, err)
		}
		t.AddRecord(rec)
	}

	return t, nil
}

func appendFields(rec *table.Record, rv reflect.Value) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, omitEmpty, skip := parseTag(sf)
		if skip {
			continue
		}
		fv := rv.Field(i)
		if sf.Anonymous && fv.Kind() == reflect.Struct && sf.Tag.Get(TagName) == "" {
			appendFields(rec, fv)
			continue
		}
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}
		if omitEmpty && fv.IsZero() {
			continue
		}
		*rec = append(*rec, table.Field{Name: name, Value: format(fv)})
	}
}

func parseTag(sf reflect.StructField) (name string, omitEmpty, skip bool) {
	tag := sf.Tag.Get(TagName)
	if tag == "-" {
		return "", false, true
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = sf.Name
	}

	return name, opts == "omitempty", false
}

func format(fv reflect.Value) string {
	if fv.CanInterface() {
		switch x := fv.Interface().(type) {
		case encoding.TextMarshaler:
			if b, err := x.MarshalText(); err == nil {
				return string(b)
			}
		case fmt.Stringer:
			return x.String()
		}
	}

	return fmt.Sprint(fv.Interface())
}
