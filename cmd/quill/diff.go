package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/quill-lang/quill/diff"
	"github.com/quill-lang/quill/encode"
	"github.com/quill-lang/quill/ir"
	"github.com/quill-lang/quill/parse"
)

func diffCmd(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %d", cli.ErrUsage, len(args))
	}
	from, err := parseArg(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	to, err := parseArg(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	differs, err := diffTrees(cfg, cc.Out, from, to)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func parseArg(cfg *MainConfig, cc *cli.Context, arg string) (*ir.Expr, error) {
	src, err := readSource(cc, arg)
	if err != nil {
		return nil, err
	}
	e, err := parse.Parse(src, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", arg, err)
	}
	return e, nil
}

func diffTrees(cfg *DiffConfig, w io.Writer, from, to *ir.Expr) (bool, error) {
	encOpts := []encode.EncodeOption{encode.EncodeIDs(!cfg.NoIDs)}
	diffs := diff.Lines(
		encode.MustString(from, encOpts...)+"\n",
		encode.MustString(to, encOpts...)+"\n",
	)
	var out string
	if cfg.useColor(w) {
		out = diff.FormatColor(diffs)
	} else {
		out = diff.Format(diffs)
	}
	if out == "" {
		return false, nil
	}
	if !cfg.Quiet {
		if _, err := io.WriteString(w, out); err != nil {
			return true, err
		}
	}
	return true, nil
}
