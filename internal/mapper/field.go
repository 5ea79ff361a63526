// Package mapper caches the exported fields of struct types as seen
// through `miniconf` struct tags.
package mapper

import (
	"reflect"
	"strings"
	"sync"
)

// TagName is the struct tag read by Fields.
const TagName = "miniconf"

// Field is an exported struct field that takes part in encoding.
type Field struct {
	Name      string // key name: the tag name, else the Go field name
	Index     []int
	OmitEmpty bool
}

var fieldCache sync.Map // map[reflect.Type][]Field

// Fields returns the fields of struct type t in declaration order. It skips
// unexported and embedded fields and fields tagged `miniconf:"-"`.
func Fields(t reflect.Type) []Field {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]Field)
	}

	var fields []Field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous || !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get(TagName)
		if tag == "-" {
			continue
		}

		f := Field{Index: sf.Index}
		name, opts, _ := strings.Cut(tag, ",")
		f.Name = name
		if f.Name == "" {
			f.Name = sf.Name
		}

		for opts != "" {
			var opt string
			opt, opts, _ = strings.Cut(opts, ",")
			if opt == "omitempty" {
				f.OmitEmpty = true
			}
		}
		fields = append(fields, f)
	}

	f, _ := fieldCache.LoadOrStore(t, fields)
	return f.([]Field)
}

// IsEmpty reports whether v is the zero value for omitempty purposes:
// false, 0, a nil pointer or interface, and any empty array, slice, map or
// string.
func IsEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}
