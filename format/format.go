package format

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/go-cbor/decode"
	"github.com/signadot/go-cbor/diag"
	"github.com/signadot/go-cbor/encode"
	"github.com/signadot/go-cbor/ir"
	"github.com/signadot/go-cbor/jsonconv"
)

type Format int

const (
	CBORFormat Format = iota
	HexFormat
	DiagFormat
	JSONFormat
)

var (
	ErrBadFormat  = errors.New("bad format")
	ErrUnreadable = errors.New("format cannot be read")
)

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"c":    CBORFormat,
		"cbor": CBORFormat,
		"x":    HexFormat,
		"hex":  HexFormat,
		"d":    DiagFormat,
		"diag": DiagFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case CBORFormat:
		return []byte("cbor"), nil
	case HexFormat:
		return []byte("hex"), nil
	case DiagFormat:
		return []byte("diag"), nil
	case JSONFormat:
		return []byte("json"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsBinary() bool { return f == CBORFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case CBORFormat:
		return ".cbor"
	case HexFormat:
		return ".hex"
	case DiagFormat:
		return ".diag"
	case JSONFormat:
		return ".json"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{CBORFormat, HexFormat, DiagFormat, JSONFormat}
}

// ForPath returns the format whose suffix ends path.
func ForPath(path string) (Format, bool) {
	for _, f := range AllFormats() {
		if strings.HasSuffix(path, f.Suffix()) {
			return f, true
		}
	}
	return 0, false
}

// Read converts a document in format f to a node.
func (f Format) Read(data []byte, opts ...decode.DecodeOption) (*ir.Node, error) {
	switch f {
	case CBORFormat:
		return decode.Decode(data, opts...)
	case HexFormat:
		raw, err := hex.DecodeString(string(bytes.Join(bytes.Fields(data), nil)))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrUnreadable, f, err)
		}
		return decode.Decode(raw, opts...)
	case JSONFormat:
		return jsonconv.Parse(data, jsonconv.AllowComments(true))
	}
	return nil, fmt.Errorf("%w: %s", ErrUnreadable, f)
}

// WriteOptions configures Write for the text formats.
type WriteOptions struct {
	Indent int
	Colors *diag.Colors
	Encode []encode.EncodeOption
}

// Write writes node to w in format f.
func (f Format) Write(node *ir.Node, w io.Writer, wo *WriteOptions) error {
	if wo == nil {
		wo = &WriteOptions{}
	}
	switch f {
	case CBORFormat, HexFormat:
		d, err := encode.Marshal(node, wo.Encode...)
		if err != nil {
			return err
		}
		if f == HexFormat {
			d = []byte(hex.EncodeToString(d) + "\n")
		}
		_, err = w.Write(d)
		return err
	case DiagFormat:
		opts := []diag.Option{diag.Indent(wo.Indent)}
		if wo.Colors != nil {
			opts = append(opts, diag.EncodeColors(wo.Colors))
		}
		if err := diag.Encode(node, w, opts...); err != nil {
			return err
		}
		if wo.Indent == 0 {
			_, err := io.WriteString(w, "\n")
			return err
		}
		return nil
	case JSONFormat:
		return jsonconv.Encode(node, w, jsonconv.Indent(wo.Indent))
	}
	return fmt.Errorf("%w: %s", ErrBadFormat, f)
}
