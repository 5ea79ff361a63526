package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := newMainConfig()
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "miniconf").
		WithSynopsis("miniconf [opts] command [opts]").
		WithDescription("miniconf parses, checks and converts MiniConf configuration files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return miniconfMain(cfg, cc, args)
		}).
		WithSubs(
			ParseCommand(cfg),
			CheckCommand(cfg),
			DiffCommand(cfg),
			QueryCommand(cfg),
			TreeCommand(cfg),
			GrammarCommand(cfg))
}

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg, Format: "pretty"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(mainCfg.outOpt, "(filepath)"),
	})
	return cli.NewCommandAt(&cfg.Parse, "parse").
		WithAliases("p").
		WithSynopsis("parse [-f format] [-o file] <file|->").
		WithDescription("parse a file and print the document as pretty/p, json/j, yaml/y or toml/t").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return parse(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check <files...>").
		WithDescription("check that files parse, stopping at the first failure").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [-merge] <a> <b>").
		WithDescription("diff two documents, exiting 1 when they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query <expr> <file|->").
		WithDescription(queryDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return runQuery(cfg, cc, args)
		})
}

const queryDescription = `query evaluates an expr-lang expression against a document.

Every section is a variable holding its entries, so

  miniconf query 'database.port > 1024' app.mc

reads the port entry of [database]. Entries outside any section live in
'root'. Helpers:

  section("name")     the entries of a section whose name is not an identifier
  sections()          the section names in order
  has("name", "key")  whether the section defines key

Strings are printed as they are, anything else as JSON.`

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tree, "tree").
		WithSynopsis("tree [-tokens] <file|->").
		WithDescription("dump the concrete parse tree, or the token stream with -tokens").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tree(cfg, cc, args)
		})
}

func GrammarCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GrammarConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Grammar, "grammar").
		WithSynopsis("grammar").
		WithDescription("print the grammar in EBNF").
		WithRun(func(cc *cli.Context, args []string) error {
			return grammar(cfg, cc, args)
		})
}
