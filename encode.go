package miniconf

import (
	"fmt"
	"io"
	"math"
	"reflect"
	"slices"
	"time"

	"github.com/KimNorgaard/go-miniconf/internal/mapper"
)

// Marshaler is the interface implemented by types that can write
// themselves as a single MiniConf value literal.
type Marshaler interface {
	MarshalMiniConf() ([]byte, error)
}

// Marshal returns the MiniConf encoding of v, which must be a struct or a
// map with string keys (or a pointer to one).
//
// Fields and map entries holding a struct or a string-keyed map become
// sections; everything else is an entry of the root section. Deeper structs
// and maps are written as object literals. Struct fields are named by the
// `miniconf` tag, else by the Go field name, and `omitempty` skips zero
// values. A time.Duration is written as a string such as "1m30s" and a
// time.Time as an RFC 3339 string. The output is the canonical form of
// Document.WriteTo, so Unmarshal reads it back.
func Marshal(v any, opts ...Option) ([]byte, error) {
	doc, err := marshalDocument(v, opts)
	if err != nil {
		return nil, err
	}
	return []byte(doc.String()), nil
}

// Encoder writes MiniConf documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the MiniConf encoding of v to the stream. See Marshal.
func (e *Encoder) Encode(v any) error {
	doc, err := marshalDocument(v, e.opts)
	if err != nil {
		return err
	}
	_, err = doc.WriteTo(e.w)
	return err
}

var (
	durationType = reflect.TypeFor[time.Duration]()
	timeType     = reflect.TypeFor[time.Time]()
)

type encodeState struct {
	depth    int
	maxDepth int
}

func marshalDocument(v any, opts []Option) (*Document, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	rv := indirect(reflect.ValueOf(v))
	if !isSection(rv) {
		return nil, fmt.Errorf("miniconf: Marshal(%T): want a struct or a map with string keys", v)
	}

	es := &encodeState{maxDepth: o.maxDepth}
	doc := newDocument(o.root)
	err = es.eachField(rv, func(key string, fv reflect.Value) error {
		if s := indirect(fv); isSection(s) && !isMarshaler(fv) {
			return es.addSection(doc, key, s)
		}
		return es.addEntry(doc.Root(), key, fv)
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (es *encodeState) addSection(doc *Document, name string, v reflect.Value) error {
	if !IsIdent(name) {
		return fmt.Errorf("miniconf: section name %q is not an identifier", name)
	}
	s, _ := doc.ensureSection(name)
	return es.eachField(v, func(key string, fv reflect.Value) error {
		return es.addEntry(s, key, fv)
	})
}

func (es *encodeState) addEntry(s *Section, key string, v reflect.Value) error {
	if !IsIdent(key) {
		return fmt.Errorf("miniconf: key %q in [%s] is not an identifier", key, s.name)
	}
	if s.has(key) {
		return fmt.Errorf("miniconf: key %q already defined in [%s]", key, s.name)
	}
	val, err := es.marshalValue(v)
	if err != nil {
		return fmt.Errorf("miniconf: key %q in [%s]: %w", key, s.name, err)
	}
	s.add(Entry{Key: key, Value: val})
	return nil
}

// eachField calls fn for every encoded field of a struct, or every entry of
// a string-keyed map in key order.
func (es *encodeState) eachField(v reflect.Value, fn func(string, reflect.Value) error) error {
	if v.Kind() == reflect.Map {
		keys := v.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			switch {
			case a.String() < b.String():
				return -1
			case a.String() > b.String():
				return 1
			}
			return 0
		})
		for _, k := range keys {
			if err := fn(k.String(), v.MapIndex(k)); err != nil {
				return err
			}
		}
		return nil
	}
	for _, f := range mapper.Fields(v.Type()) {
		fv := v.FieldByIndex(f.Index)
		if f.OmitEmpty && mapper.IsEmpty(fv) {
			continue
		}
		if err := fn(f.Name, fv); err != nil {
			return err
		}
	}
	return nil
}

func (es *encodeState) marshalValue(v reflect.Value) (Value, error) {
	for v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	if !v.IsValid() || (v.Kind() == reflect.Interface && v.IsNil()) {
		return Null{}, nil
	}

	if u, ok := marshaler(v); ok {
		return es.marshalCustom(v, u)
	}

	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return Null{}, nil
		}
		v = v.Elem()
	}

	switch v.Type() {
	case durationType:
		return String(time.Duration(v.Int()).String()), nil
	case timeType:
		return String(v.Interface().(time.Time).Format(time.RFC3339Nano)), nil
	}

	switch v.Kind() {
	case reflect.String:
		return String(v.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("unsupported number %v", f)
		}
		return Number(f), nil
	case reflect.Bool:
		return Bool(v.Bool()), nil
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return Null{}, nil
		}
		if err := es.enter(); err != nil {
			return nil, err
		}
		defer es.leave()
		out := make(Array, v.Len())
		for i := range v.Len() {
			el, err := es.marshalValue(v.Index(i))
			if err != nil {
				return nil, err
			}
			out[i] = el
		}
		return out, nil
	case reflect.Map, reflect.Struct:
		if v.Kind() == reflect.Map {
			if v.IsNil() {
				return Null{}, nil
			}
			if v.Type().Key().Kind() != reflect.String {
				return nil, fmt.Errorf("map key type must be a string, got %s", v.Type().Key())
			}
		}
		if err := es.enter(); err != nil {
			return nil, err
		}
		defer es.leave()
		out := make(Object)
		err := es.eachField(v, func(key string, fv reflect.Value) error {
			el, err := es.marshalValue(fv)
			if err != nil {
				return err
			}
			out[key] = el
			return nil
		})
		if err != nil {
			return nil, err
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported type %s", v.Type())
}

// marshalCustom parses the literal written by a Marshaler.
func (es *encodeState) marshalCustom(v reflect.Value, u Marshaler) (Value, error) {
	b, err := u.MarshalMiniConf()
	if err != nil {
		return nil, &MarshalerError{Type: v.Type(), Err: err}
	}
	doc, err := Parse("value = "+string(b), MaxDepth(es.maxDepth))
	if err != nil {
		return nil, &MarshalerError{Type: v.Type(), Err: fmt.Errorf("invalid MiniConf value %q: %w", b, err)}
	}
	if doc.Len() != 1 || doc.Root().Len() != 1 {
		return nil, &MarshalerError{Type: v.Type(), Err: fmt.Errorf("expected a single value, got %q", b)}
	}
	return doc.Root().Value("value"), nil
}

func (es *encodeState) enter() error {
	es.depth++
	if es.depth > es.maxDepth {
		return fmt.Errorf("exceeds the maximum nesting depth of %d", es.maxDepth)
	}
	return nil
}

func (es *encodeState) leave() { es.depth-- }

// marshaler finds a Marshaler on v or, for addressable values, on &v.
func marshaler(v reflect.Value) (Marshaler, bool) {
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, false
	}
	if v.CanInterface() {
		if u, ok := v.Interface().(Marshaler); ok {
			return u, true
		}
	}
	if v.Kind() != reflect.Pointer && v.CanAddr() && v.Addr().CanInterface() {
		if u, ok := v.Addr().Interface().(Marshaler); ok {
			return u, true
		}
	}
	return nil, false
}

func isMarshaler(v reflect.Value) bool {
	_, ok := marshaler(v)
	return ok
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isSection(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Struct:
		return v.Type() != timeType
	case reflect.Map:
		return v.Type().Key().Kind() == reflect.String
	}
	return false
}
