package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-miniconf"
	"github.com/KimNorgaard/go-miniconf/render"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if args[0] == "-" && args[1] == "-" {
		return fmt.Errorf("%w: at most one side of diff can be stdin", cli.ErrUsage)
	}
	from, err := cfg.load(cc.In, args[0])
	if err != nil {
		return err
	}
	to, err := cfg.load(cc.In, args[1])
	if err != nil {
		return err
	}
	changed, err := diffDocs(cfg, cc.Out, from, to)
	if err != nil {
		return err
	}
	if changed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffDocs writes the difference between from and to and reports whether
// there is one.
func diffDocs(cfg *DiffConfig, w io.Writer, from, to *miniconf.Document) (bool, error) {
	if !cfg.Merge {
		return render.Diff(w, from, to, cfg.renderOpts(w)...)
	}
	patch, err := render.MergePatch(from, to)
	if err != nil {
		return false, err
	}
	if _, err := fmt.Fprintf(w, "%s\n", patch); err != nil {
		return false, err
	}
	return string(patch) != "{}", nil
}
