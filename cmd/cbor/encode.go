package main

import (
	"github.com/signadot/go-cbor/encode"
	"github.com/signadot/go-cbor/format"
	"github.com/signadot/go-cbor/ir"
	"github.com/signadot/go-cbor/jsonconv"

	"github.com/scott-cotton/cli"
)

func encodeMain(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	read := cfg.reader(format.JSONFormat)
	if cfg.InFormat == nil {
		read = func(_ string, d []byte) (*ir.Node, error) {
			return jsonconv.Parse(d, jsonconv.AllowComments(cfg.Comments))
		}
	}
	out := format.CBORFormat
	if cfg.Hex {
		out = format.HexFormat
	}
	wo := &format.WriteOptions{
		Encode: []encode.EncodeOption{
			encode.SortKeys(cfg.Sort),
			encode.ShortestFloats(cfg.Shortest),
			encode.ChunkStrings(cfg.Chunk),
		},
	}
	return eachDoc(cc, args, read, func(node *ir.Node) error {
		return out.Write(node, cc.Out, wo)
	})
}
