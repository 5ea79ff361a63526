package render

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/KimNorgaard/go-miniconf"
)

// TOML writes doc as a TOML document: root entries as top-level keys and
// every other section as a table. TOML has no null, so a null anywhere in
// the document is an error, as is a root key named like a section.
func TOML(w io.Writer, doc *miniconf.Document) error {
	out := make(map[string]any, doc.Len())
	for e := range doc.Root().All() {
		v, err := tomlValue(e.Value)
		if err != nil {
			return fmt.Errorf("render: toml: key %q in [%s]: %w", e.Key, doc.RootName(), err)
		}
		out[e.Key] = v
	}
	for name, s := range doc.All() {
		if name == doc.RootName() {
			continue
		}
		if _, clash := out[name]; clash {
			return fmt.Errorf("render: toml: key %q in [%s] collides with section [%s]", name, doc.RootName(), name)
		}
		table := make(map[string]any, s.Len())
		for e := range s.All() {
			v, err := tomlValue(e.Value)
			if err != nil {
				return fmt.Errorf("render: toml: key %q in [%s]: %w", e.Key, name, err)
			}
			table[e.Key] = v
		}
		out[name] = table
	}
	return toml.NewEncoder(w).Encode(out)
}

func tomlValue(v miniconf.Value) (any, error) {
	switch v := v.(type) {
	case miniconf.Null:
		return nil, fmt.Errorf("null has no TOML representation")
	case miniconf.Array:
		out := make([]any, len(v))
		for i, el := range v {
			tv, err := tomlValue(el)
			if err != nil {
				return nil, err
			}
			out[i] = tv
		}
		return out, nil
	case miniconf.Object:
		out := make(map[string]any, len(v))
		for k, el := range v {
			tv, err := tomlValue(el)
			if err != nil {
				return nil, err
			}
			out[k] = tv
		}
		return out, nil
	}
	return plain(v), nil
}
