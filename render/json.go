package render

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/KimNorgaard/go-miniconf"
)

type jsonDocument struct {
	Sections []jsonSection `json:"sections"`
}

type jsonSection struct {
	Name    string      `json:"name"`
	Entries []jsonEntry `json:"entries"`
}

type jsonEntry struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
	Line  int    `json:"line"`
}

// JSON writes doc as a JSON object holding an ordered list of sections,
// each with an ordered list of {key, value, line} entries.
func JSON(w io.Writer, doc *miniconf.Document, opts ...Option) error {
	o := newOptions(opts)
	out := jsonDocument{Sections: make([]jsonSection, 0, doc.Len())}
	for name, s := range doc.All() {
		js := jsonSection{Name: name, Entries: make([]jsonEntry, 0, s.Len())}
		for e := range s.All() {
			js.Entries = append(js.Entries, jsonEntry{Key: e.Key, Value: e.Value.Interface(), Line: e.Line})
		}
		out.Sections = append(out.Sections, js)
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if o.indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", o.indent))
	}
	return enc.Encode(out)
}
