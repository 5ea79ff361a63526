package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-miniconf"
	"github.com/KimNorgaard/go-miniconf/internal/parser"
)

const stdinName = "<stdin>"

func miniconfMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Depth < 0 {
		return fmt.Errorf("%w: -depth must be positive", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// readInput reads path, or stdin when path is "-". It returns the name to
// use in diagnostics.
func readInput(in io.Reader, path string) (string, []byte, error) {
	if path == "-" {
		d, err := io.ReadAll(in)
		if err != nil {
			return stdinName, nil, fmt.Errorf("error reading %s: %w", stdinName, err)
		}
		return stdinName, d, nil
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return path, nil, err
	}
	return path, d, nil
}

func (cfg *MainConfig) load(in io.Reader, path string) (*miniconf.Document, error) {
	name, d, err := readInput(in, path)
	if err != nil {
		return nil, cfg.report(name, err)
	}
	doc, err := miniconf.ParseBytes(d, cfg.parseOpts(name)...)
	if err != nil {
		return nil, cfg.report(name, err)
	}
	return doc, nil
}

// report writes err to cfg.Err as a compiler-style diagnostic and returns
// the error that makes the command exit 1.
func (cfg *MainConfig) report(name string, err error) error {
	var (
		syntaxErr   *miniconf.SyntaxError
		semanticErr *miniconf.SemanticError
		grammarErr  *parser.Error
		scanErr     participle.Error
	)
	switch {
	case errors.As(err, &syntaxErr):
		fmt.Fprintf(cfg.Err, "%s:%d:%d: %s\n", name, syntaxErr.Line, syntaxErr.Column, syntaxErr.Message)
	case errors.As(err, &semanticErr):
		fmt.Fprintf(cfg.Err, "%s:%d: %s: %s\n", name, semanticErr.Line, semanticErr.Kind, semanticErr.Message)
	case errors.As(err, &grammarErr):
		fmt.Fprintf(cfg.Err, "%s:%d:%d: %s\n", name, grammarErr.Pos.Line, grammarErr.Pos.Column, grammarErr.Message)
	case errors.As(err, &scanErr):
		pos := scanErr.Position()
		fmt.Fprintf(cfg.Err, "%s:%d:%d: %s\n", name, pos.Line, pos.Column, scanErr.Message())
	default:
		fmt.Fprintf(cfg.Err, "%s: %v\n", name, err)
	}
	return cli.ExitCodeErr(1)
}
