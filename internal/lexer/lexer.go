package lexer

import (
	"slices"

	plexer "github.com/alecthomas/participle/v2/lexer"

	"github.com/KimNorgaard/go-miniconf/internal/token"
)

// Definition is the MiniConf token set. Rules are tried in order at each
// position and the first match wins, so numbers are recognised before
// identifiers and comments before everything else.
var Definition = plexer.MustSimple([]plexer.SimpleRule{
	{Name: string(token.COMMENT), Pattern: `#[^\n]*`},
	{Name: string(token.STRING), Pattern: `"(?:\\[\s\S]|[^"\\])*"`},
	{Name: string(token.NUMBER), Pattern: `-?\d+(?:\.\d+)?`},
	{Name: string(token.IDENT), Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
	{Name: string(token.PUNCT), Pattern: `[][{}=,:]`},
	{Name: string(token.EOL), Pattern: `\n`},
	{Name: string(token.WHITESPACE), Pattern: `[ \t\r]+`},
})

// Elided lists the token types the grammar never sees.
var Elided = []string{string(token.COMMENT), string(token.WHITESPACE)}

var names = func() map[plexer.TokenType]token.Type {
	m := make(map[plexer.TokenType]token.Type)
	for name, typ := range Definition.Symbols() {
		m[typ] = token.Type(name)
	}
	return m
}()

// Tokenize scans src and returns its significant tokens, ending with an EOF
// token. Comments and whitespace are dropped.
func Tokenize(filename, src string) ([]token.Token, error) {
	lex, err := Definition.LexString(filename, src)
	if err != nil {
		return nil, err
	}
	raw, err := plexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}
	toks := make([]token.Token, 0, len(raw))
	for _, t := range raw {
		typ := token.EOF
		if !t.EOF() {
			typ = names[t.Type]
		}
		if slices.Contains(Elided, string(typ)) {
			continue
		}
		toks = append(toks, token.Token{
			Type:    typ,
			Literal: t.Value,
			Line:    t.Pos.Line,
			Column:  t.Pos.Column,
		})
	}
	return toks, nil
}
