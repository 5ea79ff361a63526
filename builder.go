package miniconf

import (
	"log/slog"

	"github.com/KimNorgaard/go-miniconf/internal/ast"
)

// builder folds a parse tree into a Document, one line at a time.
type builder struct {
	doc     *Document
	current *Section
	ds      decodeState
	log     *slog.Logger
}

func build(file *ast.File, o *options) (*Document, error) {
	b := &builder{
		doc: newDocument(o.root),
		ds:  decodeState{depth: o.maxDepth},
		log: o.logger,
	}
	b.current = b.doc.Root()

	for _, line := range file.Lines {
		switch {
		case line.Section != nil:
			b.enterSection(line.Section)
		case line.Entry != nil:
			if err := b.addEntry(line.Entry); err != nil {
				return nil, err
			}
		}
	}
	b.log.Debug("document built", slog.Int("sections", b.doc.Len()))
	return b.doc, nil
}

// enterSection makes the named section current. A repeated header reopens
// the existing section and keeps its entries.
func (b *builder) enterSection(h *ast.Section) {
	s, created := b.doc.ensureSection(h.Name)
	b.current = s
	if created {
		b.log.Debug("section created", slog.String("section", h.Name), slog.Int("line", h.Pos.Line))
	} else {
		b.log.Debug("section reopened", slog.String("section", h.Name), slog.Int("line", h.Pos.Line))
	}
}

func (b *builder) addEntry(kv *ast.KeyValue) error {
	line := kv.Pos.Line
	b.ds.section, b.ds.key = b.current.name, kv.Key
	v, err := b.ds.decodeValue(kv.Value)
	if err != nil {
		return err
	}
	if b.current.has(kv.Key) {
		return duplicateKeyError(line, b.current.name, kv.Key)
	}
	b.current.add(Entry{Key: kv.Key, Value: v, Line: line})
	b.log.Debug("entry added",
		slog.String("section", b.current.name),
		slog.String("key", kv.Key),
		slog.String("kind", v.Kind().String()),
		slog.Int("line", line))
	return nil
}
