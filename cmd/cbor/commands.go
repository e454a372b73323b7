package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: cbor/c, hex/x, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "cbor").
		WithSynopsis("cbor [opts] command [opts]").
		WithDescription("cbor is a tool for inspecting and converting CBOR documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cborMain(cfg, cc, args)
		}).
		WithSubs(
			DiagCommand(cfg),
			EncodeCommand(cfg),
			JSONCommand(cfg),
			DiffCommand(cfg))
}

func DiagCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiagConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diag").
		WithAliases("d", "view").
		WithOpts(opts...).
		WithSynopsis("diag [opts] [files]").
		WithDescription("print documents in diagnostic notation").
		WithRun(func(cc *cli.Context, args []string) error {
			return diagMain(cfg, cc, args)
		})
	cfg.Diag = cmd
	return cmd
}

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("encode").
		WithAliases("e", "enc").
		WithOpts(opts...).
		WithSynopsis("encode [opts] [files]").
		WithDescription("encode JSON documents as CBOR").
		WithRun(func(cc *cli.Context, args []string) error {
			return encodeMain(cfg, cc, args)
		})
	cfg.Encode = cmd
	return cmd
}

func JSONCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &JSONConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("json").
		WithAliases("j").
		WithOpts(opts...).
		WithSynopsis("json [opts] [files]").
		WithDescription("convert CBOR documents to JSON").
		WithRun(func(cc *cli.Context, args []string) error {
			return jsonMain(cfg, cc, args)
		})
	cfg.JSON = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("di").
		WithOpts(opts...).
		WithSynopsis("diff [opts] a b").
		WithDescription("report structural differences between two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffMain(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
