package render

import (
	"io"
	"strings"

	"github.com/KimNorgaard/go-miniconf"
)

// Pretty writes doc as MiniConf source in the canonical layout of
// Document.WriteTo, colored when Colors(true) is given.
func Pretty(w io.Writer, doc *miniconf.Document, opts ...Option) error {
	o := newOptions(opts)
	if !o.colors {
		_, err := doc.WriteTo(w)
		return err
	}
	f := &formatter{p: newPalette(true)}
	f.document(doc)
	_, err := io.WriteString(w, f.buf.String())
	return err
}

// PrettyString is Pretty into a string, without colors.
func PrettyString(doc *miniconf.Document) string {
	return doc.String()
}

// formatter renders the colored form of Document.String into an in-memory
// buffer; Pretty writes it out once.
type formatter struct {
	buf strings.Builder
	p   *palette
}

func (f *formatter) document(doc *miniconf.Document) {
	blocks := 0
	if root := doc.Root(); root.Len() > 0 {
		f.entries(root)
		blocks++
	}
	for name, s := range doc.All() {
		if name == doc.RootName() {
			continue
		}
		if blocks > 0 {
			f.buf.WriteString("\n")
		}
		f.buf.WriteString(f.p.section("[" + name + "]"))
		f.buf.WriteString("\n")
		f.entries(s)
		blocks++
	}
}

func (f *formatter) entries(s *miniconf.Section) {
	for e := range s.All() {
		f.buf.WriteString(f.p.key(e.Key))
		f.buf.WriteString(" " + f.p.punct("=") + " ")
		f.buf.WriteString(f.value(e.Value))
		f.buf.WriteString("\n")
	}
}

func (f *formatter) value(v miniconf.Value) string {
	switch v := v.(type) {
	case miniconf.String:
		return f.p.str(v.String())
	case miniconf.Number:
		return f.p.number(v.String())
	case miniconf.Bool:
		return f.p.boolean(v.String())
	case miniconf.Null:
		return f.p.null(v.String())
	case miniconf.Array:
		elements := make([]string, len(v))
		for i, el := range v {
			elements[i] = f.value(el)
		}
		return f.p.punct("[") + strings.Join(elements, f.p.punct(",")+" ") + f.p.punct("]")
	case miniconf.Object:
		members := make([]string, 0, len(v))
		for _, k := range v.Keys() {
			members = append(members, f.p.key(miniconf.ObjectKey(k))+f.p.punct(":")+" "+f.value(v[k]))
		}
		return f.p.punct("{") + strings.Join(members, f.p.punct(",")+" ") + f.p.punct("}")
	}
	return v.String()
}
