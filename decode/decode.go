package decode

import (
	"github.com/signadot/go-cbor/debug"
	"github.com/signadot/go-cbor/ir"
	"github.com/signadot/go-cbor/token"
)

type decoder struct {
	data  []byte
	off   int
	depth int
	opts  decodeOpts
}

// Decode decodes the single data item held in data.
func Decode(data []byte, opts ...DecodeOption) (*ir.Node, error) {
	d := &decoder{
		data: data,
		opts: decodeOpts{maxDepth: defaultMaxDepth},
	}
	for _, opt := range opts {
		opt(&d.opts)
	}
	node, err := d.item()
	if err != nil {
		if debug.Decode() {
			debug.Logf("decode failed: %v\n", err)
		}
		return nil, err
	}
	if d.off != len(data) {
		return nil, d.fail(d.off, ErrTrailingBytes, "%d bytes after item", len(data)-d.off)
	}
	return node, nil
}

func (d *decoder) head() (token.Head, error) {
	start := d.off
	h, err := token.ReadHead(d.data, start)
	if err != nil {
		return h, d.wrap(start, err)
	}
	if d.opts.strict && !h.Minimal() {
		return h, d.fail(start, ErrNonCanonical, "%s argument %d in %d bytes", h.Major, h.Arg, h.Len-1)
	}
	d.off += h.Len
	return h, nil
}

func (d *decoder) item() (*ir.Node, error) {
	start := d.off
	h, err := d.head()
	if err != nil {
		return nil, err
	}
	if h.IsBreak() {
		return nil, d.fail(start, ErrMalformedHeader, "break outside indefinite-length item")
	}
	return d.itemWithHead(start, h)
}

func (d *decoder) itemWithHead(start int, h token.Head) (*ir.Node, error) {
	if debug.Decode() {
		debug.Logf("decode %s info=%d arg=%d at %d\n", h.Major, h.Info, h.Arg, start)
	}
	switch h.Major {
	case token.MajorUint:
		return ir.FromUint(h.Arg), nil
	case token.MajorNegInt:
		return ir.FromNegUint(h.Arg), nil
	case token.MajorBytes:
		if h.Indefinite {
			buf, err := d.stream(start, h.Major)
			if err != nil {
				return nil, err
			}
			return &ir.Node{Type: ir.BytesType, Bytes: buf}, nil
		}
		raw, err := d.payload(start, h)
		if err != nil {
			return nil, err
		}
		return ir.FromBytes(raw), nil
	case token.MajorText:
		var raw []byte
		var err error
		if h.Indefinite {
			raw, err = d.stream(start, h.Major)
		} else {
			raw, err = d.payload(start, h)
		}
		if err != nil {
			return nil, err
		}
		return d.text(start, raw)
	case token.MajorArray:
		return d.array(start, h)
	case token.MajorMap:
		return d.mapping(start, h)
	case token.MajorTag:
		return d.tag(start, h)
	}
	return d.simple(start, h)
}

func (d *decoder) remaining() uint64 {
	return uint64(len(d.data) - d.off)
}

// payload returns the content of a definite length string.
func (d *decoder) payload(start int, h token.Head) ([]byte, error) {
	if h.Arg > d.remaining() {
		return nil, d.fail(start, ErrTruncatedInput, "%s of length %d with %d bytes remaining", h.Major, h.Arg, d.remaining())
	}
	raw := d.data[d.off : d.off+int(h.Arg)]
	d.off += int(h.Arg)
	return raw, nil
}

// stream joins the chunks of an indefinite length string of major type m.
func (d *decoder) stream(start int, m token.Major) ([]byte, error) {
	buf := []byte{}
	for {
		if d.off >= len(d.data) {
			return nil, d.fail(start, ErrTruncatedInput, "unterminated indefinite-length %s", m)
		}
		if d.data[d.off] == token.Break {
			d.off++
			return buf, nil
		}
		cstart := d.off
		ch, err := d.head()
		if err != nil {
			return nil, err
		}
		switch {
		case ch.Major == token.MajorTag:
			return nil, d.fail(cstart, ErrTaggedChunkNotAllowed, "tag %d in %s stream", ch.Arg, m)
		case ch.Major != m:
			return nil, d.fail(cstart, ErrMalformedHeader, "%s chunk in %s stream", ch.Major, m)
		case ch.Indefinite:
			return nil, d.fail(cstart, ErrNestedIndefiniteString, "indefinite-length chunk in %s stream", m)
		}
		raw, err := d.payload(cstart, ch)
		if err != nil {
			return nil, err
		}
		buf = append(buf, raw...)
	}
}

func (d *decoder) enter(start int) error {
	d.depth++
	if d.depth > d.opts.maxDepth {
		return d.fail(start, ErrMaxDepth, "depth %d", d.depth)
	}
	return nil
}

// atBreak consumes a break byte if one is next.
func (d *decoder) atBreak(start int) (bool, error) {
	if d.off >= len(d.data) {
		return false, d.fail(start, ErrTruncatedInput, "unterminated indefinite-length item")
	}
	if d.data[d.off] == token.Break {
		d.off++
		return true, nil
	}
	return false, nil
}

func (d *decoder) array(start int, h token.Head) (*ir.Node, error) {
	if err := d.enter(start); err != nil {
		return nil, err
	}
	defer func() { d.depth-- }()

	if h.Indefinite {
		res := ir.FromSlice(nil)
		for {
			done, err := d.atBreak(start)
			if err != nil {
				return nil, err
			}
			if done {
				return res, nil
			}
			v, err := d.item()
			if err != nil {
				return nil, err
			}
			res.Append(v)
		}
	}
	// every item takes at least one byte
	if h.Arg > d.remaining() {
		return nil, d.fail(start, ErrTruncatedInput, "array of %d items with %d bytes remaining", h.Arg, d.remaining())
	}
	res := &ir.Node{Type: ir.ArrayType, Values: make([]*ir.Node, 0, h.Arg)}
	for range h.Arg {
		v, err := d.item()
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, v)
	}
	return res, nil
}

func (d *decoder) mapping(start int, h token.Head) (*ir.Node, error) {
	if err := d.enter(start); err != nil {
		return nil, err
	}
	defer func() { d.depth-- }()

	res := ir.NewMap()
	entry := func() error {
		k, err := d.item()
		if err != nil {
			return err
		}
		v, err := d.item()
		if err != nil {
			return err
		}
		res.Set(k, v)
		return nil
	}
	if h.Indefinite {
		for {
			done, err := d.atBreak(start)
			if err != nil {
				return nil, err
			}
			if done {
				return res, nil
			}
			if err := entry(); err != nil {
				return nil, err
			}
		}
	}
	if h.Arg > d.remaining()/2 {
		return nil, d.fail(start, ErrTruncatedInput, "map of %d entries with %d bytes remaining", h.Arg, d.remaining())
	}
	for range h.Arg {
		if err := entry(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (d *decoder) tag(start int, h token.Head) (*ir.Node, error) {
	if err := d.enter(start); err != nil {
		return nil, err
	}
	defer func() { d.depth-- }()

	switch h.Arg {
	case token.TagPosBignum, token.TagNegBignum:
		return d.bignum(h.Arg == token.TagNegBignum)
	case token.TagDecimalFrac:
		return d.decimal(start)
	}
	content, err := d.item()
	if err != nil {
		return nil, err
	}
	res, err := ir.FromTagUint(h.Arg, content)
	if err != nil {
		return nil, d.fail(start, ErrMalformedHeader, "%v", err)
	}
	return res, nil
}

func (d *decoder) bignum(neg bool) (*ir.Node, error) {
	cstart := d.off
	content, err := d.item()
	if err != nil {
		return nil, err
	}
	if content.Type != ir.BytesType {
		return nil, d.fail(cstart, ErrInvalidBignum, "content is %s, want Bytes", content.Type)
	}
	return ir.FromBignum(neg, content.Bytes), nil
}

// decimal decodes the content of tag 4, [exponent, mantissa]. The exponent
// must be a plain integer within int64, the mantissa any integer.
func (d *decoder) decimal(start int) (*ir.Node, error) {
	astart := d.off
	h, err := d.head()
	if err != nil {
		return nil, err
	}
	if h.Major != token.MajorArray {
		return nil, d.fail(astart, ErrInvalidDecimalFraction, "content is %s, want array", h.Major)
	}
	if d.off < len(d.data) && token.MajorOf(d.data[d.off]) == token.MajorTag {
		return nil, d.fail(d.off, ErrInvalidDecimalFraction, "tagged exponent")
	}
	content, err := d.array(astart, h)
	if err != nil {
		return nil, err
	}
	if len(content.Values) != 2 {
		return nil, d.fail(astart, ErrInvalidDecimalFraction, "%d elements, want 2", len(content.Values))
	}
	if content.Values[0].Type != ir.IntType {
		return nil, d.fail(astart, ErrInvalidDecimalFraction, "exponent is %s, want Int", content.Values[0].Type)
	}
	if !content.Values[1].IsInteger() {
		return nil, d.fail(astart, ErrInvalidDecimalFraction, "mantissa is %s, want integer", content.Values[1].Type)
	}
	res, err := ir.FromTagUint(token.TagDecimalFrac, content)
	if err != nil {
		return nil, d.fail(astart, ErrInvalidDecimalFraction, "%v", err)
	}
	return res, nil
}

func (d *decoder) simple(start int, h token.Head) (*ir.Node, error) {
	if h.IsFloat() {
		return ir.FromFloat(h.Float()), nil
	}
	n, err := ir.FromSimple(uint8(h.Arg))
	if err != nil {
		return nil, d.fail(start, ErrMalformedHeader, "%v", err)
	}
	return n, nil
}
