package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-miniconf/render"
)

func parse(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: parse requires 1 file argument, got %d", cli.ErrUsage, len(args))
	}
	f, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return parseFile(cfg, cc.Out, cc.In, args[0], f)
}

func parseFile(cfg *ParseConfig, w io.Writer, in io.Reader, path string, f render.Format) error {
	doc, err := cfg.load(in, path)
	if err != nil {
		return err
	}
	if err := render.Write(w, doc, f, cfg.renderOpts(w)...); err != nil {
		return cfg.report(path, err)
	}
	return nil
}
