package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	plexer "github.com/alecthomas/participle/v2/lexer"

	"github.com/KimNorgaard/go-miniconf/internal/ast"
	"github.com/KimNorgaard/go-miniconf/internal/lexer"
)

// The grammar is compiled once and shared by every Parse call; a built
// participle parser holds no per-parse state.
var parser = participle.MustBuild[ast.File](
	participle.Lexer(lexer.Definition),
	participle.Elide(lexer.Elided...),
	participle.UseLookahead(2),
)

// Error describes the first position where the input stops matching the
// grammar.
type Error struct {
	Pos        plexer.Position
	Unexpected string // offending token text, or "end of input"
	Expected   string // what the grammar wanted there, when known
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Parse parses src into a concrete parse tree.
//
// Every top-level item must end with a newline; a missing final newline is
// supplied so that the last line of a file does not need one. Errors found
// at or past the supplied newline are reported at the real end of src.
func Parse(filename, src string) (*ast.File, error) {
	input := src
	if src != "" && !strings.HasSuffix(src, "\n") {
		input += "\n"
	}
	file, err := parser.ParseString(filename, input)
	if err != nil {
		e := convertError(err)
		if len(input) > len(src) && e.Pos.Offset >= len(src) {
			e.Pos = endOf(filename, src)
			e.Unexpected = "end of input"
		}
		return nil, e
	}
	return file, nil
}

// endOf returns the position just past the last character of src.
func endOf(filename, src string) plexer.Position {
	line := 1 + strings.Count(src, "\n")
	last := src[strings.LastIndexByte(src, '\n')+1:]
	return plexer.Position{
		Filename: filename,
		Offset:   len(src),
		Line:     line,
		Column:   utf8.RuneCountInString(last) + 1,
	}
}

// EBNF returns the grammar in EBNF notation.
func EBNF() string {
	return parser.String()
}

var expectedRe = regexp.MustCompile(`\(expected (.+)\)$`)

func convertError(err error) *Error {
	var perr participle.Error
	if !errors.As(err, &perr) {
		return &Error{Message: err.Error()}
	}
	e := &Error{
		Pos:     perr.Position(),
		Message: perr.Message(),
	}
	var ute *participle.UnexpectedTokenError
	if errors.As(err, &ute) {
		if ute.Unexpected.EOF() {
			e.Unexpected = "end of input"
		} else {
			e.Unexpected = ute.Unexpected.Value
		}
	}
	if m := expectedRe.FindStringSubmatch(e.Message); m != nil {
		e.Expected = m[1]
	}
	return e
}
