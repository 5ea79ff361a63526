package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-miniconf"
	"github.com/KimNorgaard/go-miniconf/query"
)

func runQuery(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: query requires an expression and a file, got %v", cli.ErrUsage, args)
	}
	doc, err := cfg.load(cc.In, args[1])
	if err != nil {
		return err
	}
	if err := queryDoc(cc.Out, doc, args[0]); err != nil {
		return fmt.Errorf("error querying %s with %q: %w", args[1], args[0], err)
	}
	return nil
}

func queryDoc(w io.Writer, doc *miniconf.Document, code string) error {
	res, err := query.Eval(doc, code)
	if err != nil {
		return err
	}
	if s, ok := res.(string); ok {
		_, err = fmt.Fprintln(w, s)
		return err
	}
	d, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", d)
	return err
}
