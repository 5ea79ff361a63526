package miniconf

import (
	"errors"
	"fmt"
	"io"

	"github.com/KimNorgaard/go-miniconf/internal/parser"
)

// Parse parses MiniConf source into a Document.
//
// The returned error is a *SyntaxError when the text does not match the
// grammar, or a *SemanticError when it does but a key is repeated or a
// literal cannot be converted. Only the first error is reported and no
// partial Document is returned with it.
//
// Parse keeps no state between calls and is safe for concurrent use.
func Parse(src string, opts ...Option) (*Document, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	file, err := parser.Parse(o.filename, src)
	if err != nil {
		return nil, syntaxError(o.filename, err)
	}
	return build(file, o)
}

// ParseBytes is Parse for a byte slice.
func ParseBytes(data []byte, opts ...Option) (*Document, error) {
	return Parse(string(data), opts...)
}

// ParseReader reads r to the end and parses the result. Input is not
// processed incrementally.
func ParseReader(r io.Reader, opts ...Option) (*Document, error) {
	if r == nil {
		return nil, fmt.Errorf("miniconf: ParseReader(nil reader)")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data), opts...)
}

// Grammar returns the MiniConf grammar in EBNF notation.
func Grammar() string {
	return parser.EBNF()
}

func syntaxError(filename string, err error) error {
	var perr *parser.Error
	if !errors.As(err, &perr) {
		return fmt.Errorf("miniconf: %w", err)
	}
	return &SyntaxError{
		Filename:   filename,
		Line:       perr.Pos.Line,
		Column:     perr.Pos.Column,
		Unexpected: perr.Unexpected,
		Expected:   perr.Expected,
		Message:    perr.Message,
	}
}
