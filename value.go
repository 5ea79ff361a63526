package miniconf

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/KimNorgaard/go-miniconf/internal/token"
)

// Kind identifies the variant of a Value.
type Kind int

const (
	StringKind Kind = iota + 1
	NumberKind
	BoolKind
	NullKind
	ArrayKind
	ObjectKind
)

var kindNames = map[Kind]string{
	StringKind: "string",
	NumberKind: "number",
	BoolKind:   "bool",
	NullKind:   "null",
	ArrayKind:  "array",
	ObjectKind: "object",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a decoded literal. The set of implementations is closed:
// String, Number, Bool, Null, Array and Object.
type Value interface {
	Kind() Kind
	// Interface returns the value as plain Go data: string, float64, bool,
	// nil, []any or map[string]any.
	Interface() any
	// String returns the value as a MiniConf literal that parses back to an
	// equal value.
	String() string

	value()
}

// String is quoted or bare text.
type String string

// Number is any numeric literal, integral or not.
type Number float64

// Bool is true/yes or false/no.
type Bool bool

// Null is the null literal.
type Null struct{}

// Array is an ordered list of values.
type Array []Value

// Object is a mapping literal. Key order is not preserved.
type Object map[string]Value

func (String) Kind() Kind { return StringKind }
func (Number) Kind() Kind { return NumberKind }
func (Bool) Kind() Kind   { return BoolKind }
func (Null) Kind() Kind   { return NullKind }
func (Array) Kind() Kind  { return ArrayKind }
func (Object) Kind() Kind { return ObjectKind }

func (s String) Interface() any { return string(s) }
func (n Number) Interface() any { return float64(n) }
func (b Bool) Interface() any   { return bool(b) }
func (Null) Interface() any     { return nil }

func (a Array) Interface() any {
	out := make([]any, len(a))
	for i, v := range a {
		out[i] = v.Interface()
	}
	return out
}

func (o Object) Interface() any {
	out := make(map[string]any, len(o))
	for k, v := range o {
		out[k] = v.Interface()
	}
	return out
}

func (s String) String() string {
	if isBare(string(s)) {
		return string(s)
	}
	return Quote(string(s))
}

func (n Number) String() string { return strconv.FormatFloat(float64(n), 'f', -1, 64) }
func (b Bool) String() string   { return strconv.FormatBool(bool(b)) }
func (Null) String() string     { return "null" }

func (a Array) String() string {
	elements := make([]string, len(a))
	for i, v := range a {
		elements[i] = v.String()
	}
	return "[" + strings.Join(elements, ", ") + "]"
}

// String lists members in key order so the output is deterministic.
func (o Object) String() string {
	members := make([]string, 0, len(o))
	for _, k := range o.Keys() {
		members = append(members, ObjectKey(k)+": "+o[k].String())
	}
	return "{" + strings.Join(members, ", ") + "}"
}

// Keys returns the object's keys in lexicographic order.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (String) value() {}
func (Number) value() {}
func (Bool) value()   {}
func (Null) value()   {}
func (Array) value()  {}
func (Object) value() {}

// Quote returns s as a quoted string literal, escaping only what the
// decoder understands. Bytes that are not valid UTF-8 are copied unchanged.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(s[i])
			i++
			continue
		}
		i += size
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// ObjectKey returns k as it must be written in an object literal.
func ObjectKey(k string) string {
	if IsIdent(k) {
		return k
	}
	return Quote(k)
}

// IsIdent reports whether s can be written unquoted as a key or section name.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, ch := range s {
		if i == 0 && !isLetter(ch) {
			return false
		}
		if !isLetter(ch) && !isDigit(ch) && ch != '-' {
			return false
		}
	}
	return true
}

// isBare reports whether s survives a round trip as a bare string.
func isBare(s string) bool {
	return IsIdent(s) && !token.IsKeyword(s)
}

func isLetter(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
