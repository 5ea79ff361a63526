package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/repr"
	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-miniconf"
	"github.com/KimNorgaard/go-miniconf/internal/lexer"
	"github.com/KimNorgaard/go-miniconf/internal/parser"
)

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: tree requires 1 file argument, got %d", cli.ErrUsage, len(args))
	}
	return treeFile(cfg, cc.Out, cc.In, args[0])
}

// treeFile prints the parse tree before any literal is decoded, so it also
// works for input that only fails semantic checks.
func treeFile(cfg *TreeConfig, w io.Writer, in io.Reader, path string) error {
	name, d, err := readInput(in, path)
	if err != nil {
		return cfg.report(name, err)
	}
	if cfg.Tokens {
		return tokens(cfg, w, name, string(d))
	}
	file, err := parser.Parse(name, string(d))
	if err != nil {
		return cfg.report(name, err)
	}
	_, err = fmt.Fprintln(w, repr.String(file, repr.Indent("  "), repr.OmitEmpty(true)))
	return err
}

// tokens prints one significant token per line as line:column, type and
// quoted literal.
func tokens(cfg *TreeConfig, w io.Writer, name, src string) error {
	toks, err := lexer.Tokenize(name, src)
	if err != nil {
		return cfg.report(name, err)
	}
	for _, t := range toks {
		if _, err := fmt.Fprintf(w, "%d:%d\t%s\t%q\n", t.Line, t.Column, t.Type, t.Literal); err != nil {
			return err
		}
	}
	return nil
}

func grammar(cfg *GrammarConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Grammar.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: grammar takes no arguments", cli.ErrUsage)
	}
	_, err = fmt.Fprintln(cc.Out, miniconf.Grammar())
	return err
}
