package main

import (
	"github.com/signadot/go-cbor/format"
	"github.com/signadot/go-cbor/ir"

	"github.com/scott-cotton/cli"
)

func diagMain(cfg *DiagConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diag.Parse(cc, args)
	if err != nil {
		return err
	}
	wo := &format.WriteOptions{
		Indent: cfg.Indent,
		Colors: cfg.colors(cc.Out),
	}
	return eachDoc(cc, args, cfg.reader(format.CBORFormat), func(node *ir.Node) error {
		return format.DiagFormat.Write(node, cc.Out, wo)
	})
}
