package miniconf

import (
	"io"
	"strings"
)

// WriteTo writes the document in canonical MiniConf form: root entries
// first without a header, then every other section under its header in
// name order, one blank line between blocks. Values are written as by
// Value.String. Parsing the output yields an equal document apart from line
// numbers.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

// String returns the canonical form written by WriteTo.
func (d *Document) String() string {
	var b strings.Builder
	blocks := 0
	if root := d.Root(); root.Len() > 0 {
		writeEntries(&b, root)
		blocks++
	}
	for name, s := range d.All() {
		if name == d.root {
			continue
		}
		if blocks > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("[" + name + "]\n")
		writeEntries(&b, s)
		blocks++
	}
	return b.String()
}

func writeEntries(b *strings.Builder, s *Section) {
	for _, e := range s.entries {
		b.WriteString(e.Key)
		b.WriteString(" = ")
		b.WriteString(e.Value.String())
		b.WriteByte('\n')
	}
}
