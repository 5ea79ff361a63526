package miniconf

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/KimNorgaard/go-miniconf/internal/mapper"
)

// TagName is the struct tag consulted by Unmarshal and the Decode methods.
const TagName = mapper.TagName

// Unmarshal parses data and stores the result in the value pointed to by v.
// See Document.Decode for how the document maps onto v.
func Unmarshal(data []byte, v any, opts ...Option) error {
	doc, err := ParseBytes(data, opts...)
	if err != nil {
		return err
	}
	return doc.Decode(v)
}

// Decode stores the document in the value pointed to by v, which is usually
// a struct or a map[string]any. Root entries become top-level fields and every
// other section a nested value under its own name.
//
// Fields are matched by the `miniconf` tag, else case-insensitively by name.
// Numbers convert to any numeric field, strings like "90s" to
// time.Duration, RFC 3339 strings to time.Time and comma separated strings
// to slices.
func (d *Document) Decode(v any) error {
	in := d.Root().Map()
	for name, s := range d.sections {
		if name == d.root {
			continue
		}
		if _, clash := in[name]; clash {
			return fmt.Errorf("miniconf: key %q in [%s] collides with section [%s]", name, d.root, name)
		}
		in[name] = s.Map()
	}
	return decodeMap(in, v)
}

// DecodeSection stores the named section in the value pointed to by v.
func (d *Document) DecodeSection(name string, v any) error {
	s, ok := d.Section(name)
	if !ok {
		return fmt.Errorf("miniconf: no section [%s]", name)
	}
	if err := decodeMap(s.Map(), v); err != nil {
		return fmt.Errorf("miniconf: section [%s]: %w", name, err)
	}
	return nil
}

func decodeMap(in map[string]any, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("miniconf: Decode(non-pointer %T or nil)", v)
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           v,
		TagName:          TagName,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("miniconf: decoder creation failed: %w", err)
	}
	return decoder.Decode(in)
}
