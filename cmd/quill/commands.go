package main

import (
	"fmt"
	"strconv"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "seed",
			Description: "start node ids above this value",
			Type:        cli.NamedFuncOpt(cfg.seedOpt, "(int)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "quill").
		WithSynopsis("quill [opts] command [opts]").
		WithDescription("quill is a tool for working with expression trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return quillMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			DumpCommand(cfg),
			DiffCommand(cfg),
			SpliceCommand(cfg))
}

func (cfg *MainConfig) seedOpt(cc *cli.Context, a string) (any, error) {
	n, err := strconv.ParseInt(a, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad seed %q: %v", cli.ErrUsage, a, err)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: seed must not be negative", cli.ErrUsage)
	}
	cfg.Seed = n
	return n, nil
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [exprs or files]").
		WithDescription("parse expressions and print their trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("dump").
		WithAliases("du").
		WithSynopsis("dump [exprs or files]").
		WithDescription("parse expressions and dump their trees as yaml").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
	cfg.Dump = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff a b").
		WithDescription("diff two expression trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffCmd(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func SpliceCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SpliceConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("splice").
		WithAliases("sp").
		WithSynopsis("splice <host> <id> <replacement>").
		WithDescription("replace the node with the given id and renumber the insert").
		WithRun(func(cc *cli.Context, args []string) error {
			return splice(cfg, cc, args)
		})
	cfg.Splice = cmd
	return cmd
}
