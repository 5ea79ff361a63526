// Package ast holds the concrete parse tree produced by the MiniConf grammar.
//
// The struct tags are the grammar. Every node records the position of its
// first token, which is how entries get their line numbers.
package ast

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Node is the base interface for all parse tree nodes.
type Node interface {
	// Position returns the location of the node's first token.
	Position() lexer.Position
	// String returns the node as MiniConf source.
	String() string
}

// File is the root node: a sequence of newline terminated lines.
type File struct {
	Pos   lexer.Position
	Lines []*Line `@@*`
}

func (f *File) Position() lexer.Position { return f.Pos }
func (f *File) String() string {
	var out strings.Builder
	for _, l := range f.Lines {
		out.WriteString(l.String())
		out.WriteString("\n")
	}
	return out.String()
}

// Line is one top-level item. Blank and comment-only lines have neither a
// Section nor an Entry.
type Line struct {
	Pos     lexer.Position
	Section *Section  `( @@`
	Entry   *KeyValue `| @@ )? EOL`
}

func (l *Line) Position() lexer.Position { return l.Pos }
func (l *Line) String() string {
	switch {
	case l.Section != nil:
		return l.Section.String()
	case l.Entry != nil:
		return l.Entry.String()
	}
	return ""
}

// Section is a section header such as [database].
type Section struct {
	Pos  lexer.Position
	Name string `"[" @Ident "]"`
}

func (s *Section) Position() lexer.Position { return s.Pos }
func (s *Section) String() string           { return "[" + s.Name + "]" }

// KeyValue is an assignment such as port = 8080.
type KeyValue struct {
	Pos   lexer.Position
	Key   string `@Ident "="`
	Value *Value `@@`
}

func (kv *KeyValue) Position() lexer.Position { return kv.Pos }
func (kv *KeyValue) String() string           { return kv.Key + " = " + kv.Value.String() }

// Value is a literal. Exactly one field is set. Quoted holds the raw token,
// quotes and escapes included; Number and Bool hold their source spelling.
type Value struct {
	Pos    lexer.Position
	Quoted *string `  @String`
	Array  *Array  `| @@`
	Object *Object `| @@`
	Number *string `| @Number`
	Bool   *string `| @( "true" | "false" | "yes" | "no" )`
	Null   bool    `| @"null"`
	Bare   *string `| @Ident`
}

func (v *Value) Position() lexer.Position { return v.Pos }

func (v *Value) String() string {
	switch {
	case v.Quoted != nil:
		return *v.Quoted
	case v.Array != nil:
		return v.Array.String()
	case v.Object != nil:
		return v.Object.String()
	case v.Number != nil:
		return *v.Number
	case v.Bool != nil:
		return *v.Bool
	case v.Null:
		return "null"
	case v.Bare != nil:
		return *v.Bare
	}
	return ""
}

// Array is a bracketed, comma separated list of values.
type Array struct {
	Pos      lexer.Position
	Elements []*Value `"[" EOL* ( @@ EOL* ( "," EOL* @@ EOL* )* )? "]"`
}

func (a *Array) Position() lexer.Position { return a.Pos }
func (a *Array) String() string {
	elements := make([]string, 0, len(a.Elements))
	for _, el := range a.Elements {
		elements = append(elements, el.String())
	}
	return "[" + strings.Join(elements, ", ") + "]"
}

// Object is a braced, comma separated list of key: value members.
type Object struct {
	Pos     lexer.Position
	Members []*Member `"{" EOL* ( @@ EOL* ( "," EOL* @@ EOL* )* )? "}"`
}

func (o *Object) Position() lexer.Position { return o.Pos }
func (o *Object) String() string {
	members := make([]string, 0, len(o.Members))
	for _, m := range o.Members {
		members = append(members, m.String())
	}
	return "{" + strings.Join(members, ", ") + "}"
}

// Member is one key: value pair of an object. The key is either a bare
// identifier or a quoted string (raw, quotes included).
type Member struct {
	Pos    lexer.Position
	Key    *string `( @Ident`
	Quoted *string `| @String ) ":" EOL*`
	Value  *Value  `@@`
}

func (m *Member) Position() lexer.Position { return m.Pos }
func (m *Member) String() string {
	key := ""
	if m.Key != nil {
		key = *m.Key
	} else if m.Quoted != nil {
		key = *m.Quoted
	}
	return key + ": " + m.Value.String()
}
