package miniconf

import (
	"iter"
	"maps"
	"slices"
)

// DefaultRootSection names the section that holds entries declared before
// any section header.
const DefaultRootSection = "root"

// Document is the result of a successful parse: a set of uniquely named
// sections. It always contains the root section, possibly empty.
//
// A Document is not modified after Parse returns and may be read from
// several goroutines.
type Document struct {
	root     string
	sections map[string]*Section
}

// Section is a named group of entries kept in declaration order.
type Section struct {
	name    string
	entries []Entry
	index   map[string]int
}

// Entry is one key/value assignment and the 1-based line of its key.
type Entry struct {
	Key   string
	Value Value
	Line  int
}

func newDocument(root string) *Document {
	d := &Document{
		root:     root,
		sections: make(map[string]*Section),
	}
	d.ensureSection(root)
	return d
}

// ensureSection returns the named section, creating it when absent.
// The second result reports whether it was created.
func (d *Document) ensureSection(name string) (*Section, bool) {
	if s, ok := d.sections[name]; ok {
		return s, false
	}
	s := &Section{name: name, index: make(map[string]int)}
	d.sections[name] = s
	return s, true
}

// Section looks up a section by name. Names are case-sensitive.
func (d *Document) Section(name string) (*Section, bool) {
	s, ok := d.sections[name]
	return s, ok
}

// Root returns the implicit section for entries outside any header.
func (d *Document) Root() *Section {
	return d.sections[d.root]
}

// RootName returns the name of the implicit section.
func (d *Document) RootName() string {
	return d.root
}

// Len returns the number of sections, root included.
func (d *Document) Len() int {
	return len(d.sections)
}

// Names returns the section names in lexicographic order.
func (d *Document) Names() []string {
	return slices.Sorted(maps.Keys(d.sections))
}

// Sections returns the sections ordered by name, not by declaration.
func (d *Document) Sections() []*Section {
	names := d.Names()
	out := make([]*Section, len(names))
	for i, name := range names {
		out[i] = d.sections[name]
	}
	return out
}

// All iterates over the sections in name order.
func (d *Document) All() iter.Seq2[string, *Section] {
	return func(yield func(string, *Section) bool) {
		for _, name := range d.Names() {
			if !yield(name, d.sections[name]) {
				return
			}
		}
	}
}

// Map returns the document as plain Go data: section name to key to value,
// values converted with Value.Interface.
func (d *Document) Map() map[string]any {
	out := make(map[string]any, len(d.sections))
	for name, s := range d.sections {
		out[name] = s.Map()
	}
	return out
}

// Name returns the section name as written in its header.
func (s *Section) Name() string {
	return s.name
}

// Len returns the number of entries.
func (s *Section) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entries in declaration order.
func (s *Section) Entries() []Entry {
	return slices.Clone(s.entries)
}

// All iterates over the entries in declaration order.
func (s *Section) All() iter.Seq[Entry] {
	return slices.Values(s.entries)
}

// Get returns the entry for key.
func (s *Section) Get(key string) (Entry, bool) {
	i, ok := s.index[key]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Value returns the value for key, or nil when the key is absent.
func (s *Section) Value(key string) Value {
	e, ok := s.Get(key)
	if !ok {
		return nil
	}
	return e.Value
}

// Map returns the entries as a key to plain Go value map.
func (s *Section) Map() map[string]any {
	out := make(map[string]any, len(s.entries))
	for _, e := range s.entries {
		out[e.Key] = e.Value.Interface()
	}
	return out
}

func (s *Section) has(key string) bool {
	_, ok := s.index[key]
	return ok
}

func (s *Section) add(e Entry) {
	s.index[e.Key] = len(s.entries)
	s.entries = append(s.entries, e)
}
