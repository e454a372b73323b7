package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-cbor/format"
	"github.com/signadot/go-cbor/ir"

	"github.com/scott-cotton/cli"
)

func cborMain(cfg *MainConfig, cc *cli.Context, args []string) error {
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

// readDoc reads and converts the document at path, "-" meaning standard
// input.
func readDoc(cc *cli.Context, path string, read readFunc) (*ir.Node, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	node, err := read(path, d)
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", path, err)
	}
	return node, nil
}

// eachDoc converts every file named in args, or standard input when there
// are none, writing each with out.
func eachDoc(cc *cli.Context, args []string, read readFunc, out func(*ir.Node) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		node, err := readDoc(cc, file, read)
		if err != nil {
			return err
		}
		if err := out(node); err != nil {
			return err
		}
	}
	return nil
}

// readFunc converts the contents d of the file at path.
type readFunc func(path string, d []byte) (*ir.Node, error)

// reader reads documents in the -I format, else in the format named by the
// file suffix, else in def.
func (cfg *MainConfig) reader(def format.Format) readFunc {
	return func(path string, d []byte) (*ir.Node, error) {
		f := cfg.inFormat(def)
		if pf, ok := format.ForPath(path); ok && cfg.InFormat == nil {
			f = pf
		}
		return f.Read(d, cfg.decodeOpts()...)
	}
}
