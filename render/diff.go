package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/KimNorgaard/go-miniconf"
)

// Diff writes a line diff of the pretty renderings of from and to: removed
// lines start with "-", added lines with "+" and unchanged ones with a space.
// It reports whether the documents differ.
func Diff(w io.Writer, from, to *miniconf.Document, opts ...Option) (bool, error) {
	p := newPalette(newOptions(opts).colors)

	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(PrettyString(from), PrettyString(to))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	changed := false
	for _, d := range diffs {
		prefix, style := " ", fmt.Sprint
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix, style, changed = "-", p.removed, true
		case diffpatch.DiffInsert:
			prefix, style, changed = "+", p.added, true
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(style(prefix + strings.TrimSuffix(line, "\n")))
			out.WriteString("\n")
		}
	}
	if _, err := io.WriteString(w, out.String()); err != nil {
		return changed, err
	}
	return changed, nil
}

// MergePatch returns the RFC 7386 JSON merge patch that turns the JSON form
// of from (see Document.Map) into that of to.
func MergePatch(from, to *miniconf.Document) ([]byte, error) {
	a, err := json.Marshal(from.Map())
	if err != nil {
		return nil, fmt.Errorf("render: merge patch: %w", err)
	}
	b, err := json.Marshal(to.Map())
	if err != nil {
		return nil, fmt.Errorf("render: merge patch: %w", err)
	}
	patch, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("render: merge patch: %w", err)
	}
	return patch, nil
}
