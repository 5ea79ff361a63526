package miniconf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-miniconf/internal/ast"
	"github.com/KimNorgaard/go-miniconf/internal/token"
)

// decodeState converts parse tree literals into Values. section and key
// name the entry being decoded and only feed error messages.
type decodeState struct {
	depth   int
	section string
	key     string
}

func (ds *decodeState) decodeValue(v *ast.Value) (Value, error) {
	switch {
	case v.Quoted != nil:
		return String(unquote(*v.Quoted)), nil
	case v.Bare != nil:
		return String(*v.Bare), nil
	case v.Number != nil:
		return ds.decodeNumber(v)
	case v.Bool != nil:
		return Bool(token.LookupKeyword(*v.Bool) == token.TRUE), nil
	case v.Null:
		return Null{}, nil
	case v.Array != nil:
		return ds.decodeArray(v.Array)
	case v.Object != nil:
		return ds.decodeObject(v.Object)
	}
	// The grammar cannot produce an empty value node.
	panic(fmt.Sprintf("miniconf: empty value node at %s", v.Pos))
}

func (ds *decodeState) decodeNumber(v *ast.Value) (Value, error) {
	f, err := strconv.ParseFloat(*v.Number, 64)
	if err != nil {
		return nil, &SemanticError{
			Kind:    InvalidValue,
			Line:    v.Pos.Line,
			Section: ds.section,
			Key:     ds.key,
			Message: fmt.Sprintf("invalid number %q: %v", *v.Number, err),
		}
	}
	return Number(f), nil
}

// enter accounts for one more level of container nesting.
func (ds *decodeState) enter(line int) (func(), error) {
	ds.depth--
	if ds.depth < 0 {
		ds.depth++
		return nil, &SemanticError{
			Kind:    InvalidValue,
			Line:    line,
			Section: ds.section,
			Key:     ds.key,
			Message: fmt.Sprintf("value of %q exceeds the maximum nesting depth", ds.key),
		}
	}
	return func() { ds.depth++ }, nil
}

func (ds *decodeState) decodeArray(a *ast.Array) (Value, error) {
	leave, err := ds.enter(a.Pos.Line)
	if err != nil {
		return nil, err
	}
	defer leave()

	out := make(Array, 0, len(a.Elements))
	for _, el := range a.Elements {
		v, err := ds.decodeValue(el)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// decodeObject rejects a repeated key the same way the builder rejects a
// repeated entry, rather than letting the last one win.
func (ds *decodeState) decodeObject(o *ast.Object) (Value, error) {
	leave, err := ds.enter(o.Pos.Line)
	if err != nil {
		return nil, err
	}
	defer leave()

	out := make(Object, len(o.Members))
	for _, m := range o.Members {
		var key string
		if m.Key != nil {
			key = *m.Key
		} else {
			key = unquote(*m.Quoted)
		}
		if _, dup := out[key]; dup {
			return nil, &SemanticError{
				Kind:    DuplicateKey,
				Line:    m.Pos.Line,
				Section: ds.section,
				Key:     key,
				Message: fmt.Sprintf("key %q already defined in object value of %q in [%s]", key, ds.key, ds.section),
			}
		}
		v, err := ds.decodeValue(m.Value)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

// unquote strips the surrounding quotes of a string token and resolves
// \" \n \t and \\. Any other escaped character stands for itself, so "\q"
// decodes to "q".
func unquote(raw string) string {
	body := raw[1 : len(raw)-1]
	if !strings.ContainsRune(body, '\\') {
		return body
	}
	var b strings.Builder
	b.Grow(len(body))
	escaped := false
	for _, ch := range body {
		if !escaped {
			if ch == '\\' {
				escaped = true
			} else {
				b.WriteRune(ch)
			}
			continue
		}
		escaped = false
		switch ch {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteRune(ch)
		}
	}
	return b.String()
}
