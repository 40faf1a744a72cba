package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/quill-lang/quill/encode"
	"github.com/quill-lang/quill/parse"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='render with color'"`
	NoIDs    bool `cli:"name=no-ids desc='omit node ids from output'"`
	NoMacros bool `cli:"name=no-macros desc='keep macro builtins as plain calls'"`

	Seed int64

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{
		parse.NoMacros(cfg.NoMacros),
	}
	if cfg.Seed != 0 {
		res = append(res, parse.Seed(cfg.Seed))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeIDs(!cfg.NoIDs),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

// useColor reports whether diff output should be colorized, using the
// same explicit-flag-then-tty logic as encOpts.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='suppress output, only set exit status'"`
	Diff  *cli.Command
}

type SpliceConfig struct {
	*MainConfig

	Splice *cli.Command
}
