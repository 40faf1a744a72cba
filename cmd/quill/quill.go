package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

func quillMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// readSource resolves a command line argument to expression source.
// "-" reads cc.In, an existing file is read, and anything else is
// taken as the expression text itself.
func readSource(cc *cli.Context, arg string) (string, error) {
	if arg == "-" {
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(d), nil
	}
	if st, err := os.Stat(arg); err == nil && !st.IsDir() {
		d, err := os.ReadFile(arg)
		if err != nil {
			return "", fmt.Errorf("could not read %q: %w", arg, err)
		}
		return string(d), nil
	}
	return arg, nil
}
