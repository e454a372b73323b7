package main

import (
	"fmt"

	"github.com/signadot/go-cbor/format"
	"github.com/signadot/go-cbor/libdiff"

	"github.com/scott-cotton/cli"
)

func diffMain(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	read := cfg.reader(format.CBORFormat)
	a, err := readDoc(cc, args[0], read)
	if err != nil {
		return err
	}
	b, err := readDoc(cc, args[1], read)
	if err != nil {
		return err
	}
	changes := libdiff.Diff(a, b)
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
	}
	for _, c := range changes {
		fmt.Fprintln(cc.Out, c)
	}
	if len(changes) > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
