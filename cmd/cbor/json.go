package main

import (
	"github.com/signadot/go-cbor/format"
	"github.com/signadot/go-cbor/ir"

	"github.com/scott-cotton/cli"
)

func jsonMain(cfg *JSONConfig, cc *cli.Context, args []string) error {
	args, err := cfg.JSON.Parse(cc, args)
	if err != nil {
		return err
	}
	wo := &format.WriteOptions{Indent: cfg.Indent}
	return eachDoc(cc, args, cfg.reader(format.CBORFormat), func(node *ir.Node) error {
		return format.JSONFormat.Write(node, cc.Out, wo)
	})
}
