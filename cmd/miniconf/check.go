package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least one file", cli.ErrUsage)
	}
	return checkFiles(cfg, cc.Out, cc.In, args)
}

func checkFiles(cfg *CheckConfig, w io.Writer, in io.Reader, paths []string) error {
	for _, path := range paths {
		if _, err := cfg.load(in, path); err != nil {
			return err
		}
		name := path
		if path == "-" {
			name = stdinName
		}
		fmt.Fprintf(w, "✓ %s is valid\n", name)
	}
	return nil
}
