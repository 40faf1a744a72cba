package main

import (
	"fmt"
	"strconv"

	"github.com/scott-cotton/cli"

	"github.com/quill-lang/quill/encode"
	"github.com/quill-lang/quill/ids"
	"github.com/quill-lang/quill/parse"
	"github.com/quill-lang/quill/walk"
)

func splice(cfg *SpliceConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Splice.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: splice requires 3 args, got %d", cli.ErrUsage, len(args))
	}
	host, err := parseArg(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	atID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: bad id %q: %v", cli.ErrUsage, args[1], err)
	}
	repl, err := parseArg(cfg.MainConfig, cc, args[2])
	if err != nil {
		return err
	}
	gen := ids.NewStable(walk.MaxID(host))
	res, err := parse.Splice(host, atID, repl, gen)
	if err != nil {
		return err
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}
