// Package render writes a miniconf.Document out as MiniConf text, JSON, YAML
// or TOML, and compares two documents.
//
// Every renderer keeps sections in name order. Pretty, JSON and YAML also
// keep entries in declaration order; TOML tables are written key-sorted by
// the TOML encoder.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/KimNorgaard/go-miniconf"
)

// Format selects a renderer.
type Format string

const (
	PrettyFormat Format = "pretty"
	JSONFormat   Format = "json"
	YAMLFormat   Format = "yaml"
	TOMLFormat   Format = "toml"
)

// Formats lists the supported formats.
var Formats = []Format{PrettyFormat, JSONFormat, YAMLFormat, TOMLFormat}

// ParseFormat parses a format name or its one-letter abbreviation.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "pretty", "p", "miniconf", "mc":
		return PrettyFormat, nil
	case "json", "j":
		return JSONFormat, nil
	case "yaml", "y", "yml":
		return YAMLFormat, nil
	case "toml", "t":
		return TOMLFormat, nil
	}
	return "", fmt.Errorf("render: unknown format %q", s)
}

func (f Format) String() string { return string(f) }

// Option configures a renderer.
type Option func(*options)

type options struct {
	colors bool
	indent int
}

const defaultIndent = 2

func newOptions(opts []Option) *options {
	o := &options{indent: defaultIndent}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Colors turns on terminal colors for the pretty renderer and Diff.
func Colors(on bool) Option {
	return func(o *options) { o.colors = on }
}

// Indent sets the indentation width used by the JSON and YAML renderers.
// Zero makes JSON compact.
func Indent(spaces int) Option {
	return func(o *options) {
		if spaces >= 0 {
			o.indent = spaces
		}
	}
}

// Write renders doc to w in format f.
func Write(w io.Writer, doc *miniconf.Document, f Format, opts ...Option) error {
	switch f {
	case PrettyFormat:
		return Pretty(w, doc, opts...)
	case JSONFormat:
		return JSON(w, doc, opts...)
	case YAMLFormat:
		return YAML(w, doc, opts...)
	case TOMLFormat:
		return TOML(w, doc)
	}
	return fmt.Errorf("render: unknown format %q", string(f))
}

// plain converts v for encoders that distinguish integers from floats:
// integral numbers become int64, objects keep their values converted.
func plain(v miniconf.Value) any {
	switch v := v.(type) {
	case miniconf.Number:
		f := float64(v)
		if f == float64(int64(f)) && f > -(1<<53) && f < 1<<53 {
			return int64(f)
		}
		return f
	case miniconf.Array:
		out := make([]any, len(v))
		for i, el := range v {
			out[i] = plain(el)
		}
		return out
	case miniconf.Object:
		out := make(map[string]any, len(v))
		for k, el := range v {
			out[k] = plain(el)
		}
		return out
	}
	return v.Interface()
}
