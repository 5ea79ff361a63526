// Package query evaluates expr-lang expressions against a parsed document.
//
// Every section is bound by name, so `database.port > 1024` reads the port
// entry of [database]. Section names that are not valid expression
// identifiers (such as `server-1`) are reached through section("server-1").
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/KimNorgaard/go-miniconf"
)

// Query is a compiled expression bound to the sections of one document.
type Query struct {
	code    string
	program *vm.Program
	env     map[string]any
}

// Compile compiles code against doc. Unknown section names are compile
// errors.
func Compile(doc *miniconf.Document, code string) (*Query, error) {
	env := doc.Map()
	program, err := expr.Compile(code, exprOpts(doc, env)...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return &Query{code: code, program: program, env: env}, nil
}

// Run evaluates the query.
func (q *Query) Run() (any, error) {
	res, err := expr.Run(q.program, q.env)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return res, nil
}

// String returns the source of the query.
func (q *Query) String() string { return q.code }

// Eval compiles and runs code against doc.
func Eval(doc *miniconf.Document, code string) (any, error) {
	q, err := Compile(doc, code)
	if err != nil {
		return nil, err
	}
	return q.Run()
}

func exprOpts(doc *miniconf.Document, env map[string]any) []expr.Option {
	return []expr.Option{
		expr.Env(env),
		expr.Function("section", func(params ...any) (any, error) {
			name, err := stringParam("section", params, 1, 0)
			if err != nil {
				return nil, err
			}
			s, ok := env[name]
			if !ok {
				return nil, fmt.Errorf("no section [%s]", name)
			}
			return s, nil
		}),
		expr.Function("sections", func(params ...any) (any, error) {
			if len(params) != 0 {
				return nil, fmt.Errorf("sections expects no arguments, got %d", len(params))
			}
			names := doc.Names()
			out := make([]any, len(names))
			for i, name := range names {
				out[i] = name
			}
			return out, nil
		}),
		expr.Function("has", func(params ...any) (any, error) {
			name, err := stringParam("has", params, 2, 0)
			if err != nil {
				return nil, err
			}
			key, err := stringParam("has", params, 2, 1)
			if err != nil {
				return nil, err
			}
			s, ok := doc.Section(name)
			if !ok {
				return false, nil
			}
			_, ok = s.Get(key)
			return ok, nil
		}),
	}
}

func stringParam(fn string, params []any, want, i int) (string, error) {
	if len(params) != want {
		return "", fmt.Errorf("%s expects %d arguments, got %d", fn, want, len(params))
	}
	s, ok := params[i].(string)
	if !ok {
		return "", fmt.Errorf("%s: argument %d must be a string, got %T", fn, i+1, params[i])
	}
	return s, nil
}
