package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-cbor/decode"
	"github.com/signadot/go-cbor/diag"
	"github.com/signadot/go-cbor/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='output diagnostic notation in color'"`
	Strict bool `cli:"name=strict desc='reject non-minimal heads when decoding'"`

	InFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) inFormat(def format.Format) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return def
}

func (cfg *MainConfig) decodeOpts() []decode.DecodeOption {
	return []decode.DecodeOption{decode.Strict(cfg.Strict)}
}

// colors returns the colors to write diagnostic notation with to w: those
// requested by -color, or, when -color is not given, colors if w is a
// terminal.
func (cfg *MainConfig) colors(w io.Writer) *diag.Colors {
	if cfg.Color {
		return diag.NewColors()
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return nil
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return diag.NewColors()
	}
	return nil
}

type DiagConfig struct {
	*MainConfig
	Indent int `cli:"name=indent desc='indent containers by this many spaces'"`

	Diag *cli.Command
}

type EncodeConfig struct {
	*MainConfig
	Hex      bool `cli:"name=x desc='write hex instead of binary'"`
	Comments bool `cli:"name=c desc='allow comments and trailing commas in JSON input'"`
	Sort     bool `cli:"name=sort desc='write map keys in deterministic order'"`
	Shortest bool `cli:"name=shortest desc='write floats in the shortest exact width'"`
	Chunk    int  `cli:"name=chunk desc='write strings longer than this as chunked streams'"`

	Encode *cli.Command
}

type JSONConfig struct {
	*MainConfig
	Indent int `cli:"name=indent desc='indent containers by this many spaces'"`

	JSON *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}
