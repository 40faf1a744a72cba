package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/quill-lang/quill/encode"
	"github.com/quill-lang/quill/parse"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	return viewArgs(cfg, cc, cc.Out, args)
}

func viewArgs(cfg *ViewConfig, cc *cli.Context, w io.Writer, args []string) error {
	n := len(args)
	opts := cfg.MainConfig.encOpts(w)
	for i, arg := range args {
		src, err := readSource(cc, arg)
		if err != nil {
			return err
		}
		e, err := parse.Parse(src, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error parsing %q: %w", arg, err)
		}
		if err := encode.Encode(e, w, opts...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
		if i < n-1 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return fmt.Errorf("error writing separator %d: %w", i, err)
			}
		}
	}
	return nil
}
