package render

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/KimNorgaard/go-miniconf"
)

// YAML writes doc as a mapping of section name to a mapping of key to value.
// Both levels keep document order; object values are written key-sorted.
func YAML(w io.Writer, doc *miniconf.Document, opts ...Option) error {
	o := newOptions(opts)
	out := make(yaml.MapSlice, 0, doc.Len())
	for name, s := range doc.All() {
		entries := make(yaml.MapSlice, 0, s.Len())
		for e := range s.All() {
			entries = append(entries, yaml.MapItem{Key: e.Key, Value: yamlValue(e.Value)})
		}
		out = append(out, yaml.MapItem{Key: name, Value: entries})
	}
	indent := o.indent
	if indent <= 0 {
		indent = defaultIndent
	}
	b, err := yaml.MarshalWithOptions(out, yaml.Indent(indent))
	if err != nil {
		return fmt.Errorf("render: yaml: %w", err)
	}
	_, err = w.Write(b)
	return err
}

func yamlValue(v miniconf.Value) any {
	switch v := v.(type) {
	case miniconf.Array:
		out := make([]any, len(v))
		for i, el := range v {
			out[i] = yamlValue(el)
		}
		return out
	case miniconf.Object:
		out := make(yaml.MapSlice, 0, len(v))
		for _, k := range v.Keys() {
			out = append(out, yaml.MapItem{Key: k, Value: yamlValue(v[k])})
		}
		return out
	}
	return plain(v)
}
