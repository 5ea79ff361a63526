package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-miniconf"
	"github.com/KimNorgaard/go-miniconf/render"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='force colored output'"`
	Verbose bool   `cli:"name=v aliases=verbose desc='log parser steps to stderr'"`
	Root    string `cli:"name=root desc='name of the implicit section (default root)'"`
	Depth   int    `cli:"name=depth desc='maximum nesting of arrays and objects'"`

	Out      string
	CloseOut func() error
	Err      io.Writer

	Main *cli.Command
}

func newMainConfig() *MainConfig {
	return &MainConfig{Err: os.Stderr}
}

func (cfg *MainConfig) logger() *slog.Logger {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cfg.Err, &slog.HandlerOptions{Level: level}))
}

// parseOpts returns the parser options for the input called name.
func (cfg *MainConfig) parseOpts(name string) []miniconf.Option {
	opts := []miniconf.Option{
		miniconf.WithFilename(name),
		miniconf.WithLogger(cfg.logger()),
	}
	if cfg.Root != "" {
		opts = append(opts, miniconf.WithRootSection(cfg.Root))
	}
	if cfg.Depth != 0 {
		opts = append(opts, miniconf.MaxDepth(cfg.Depth))
	}
	return opts
}

func (cfg *MainConfig) renderOpts(w io.Writer) []render.Option {
	return []render.Option{render.Colors(cfg.colors(w))}
}

// colors reports whether output to w is colored: always with -color,
// otherwise only on a terminal and when NO_COLOR is unset.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type ParseConfig struct {
	*MainConfig
	Format string `cli:"name=f aliases=format desc='output format: pretty/p, json/j, yaml/y, toml/t'"`

	Parse *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='print a JSON merge patch instead of a line diff'"`

	Diff *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}

type TreeConfig struct {
	*MainConfig
	Tokens bool `cli:"name=tokens desc='print the token stream instead of the tree'"`

	Tree *cli.Command
}

type GrammarConfig struct {
	*MainConfig

	Grammar *cli.Command
}
