package decode

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/signadot/go-cbor/ir"
)

// text validates the joined payload of a text string. Surrogate code points
// encoded directly in UTF-8, as CESU-8 producers write them, are combined
// when they form a pair.
func (d *decoder) text(start int, raw []byte) (*ir.Node, error) {
	if utf8.Valid(raw) {
		return ir.FromText(string(raw)), nil
	}
	var sb strings.Builder
	sb.Grow(len(raw))
	for i := 0; i < len(raw); {
		if hi, ok := surrogateAt(raw, i); ok {
			lo, ok := surrogateAt(raw, i+3)
			if hi >= 0xdc00 || !ok || lo < 0xdc00 {
				return nil, d.fail(start, ErrUnpairedSurrogate, "%#04x at byte %d of text", hi, i)
			}
			sb.WriteRune(utf16.DecodeRune(hi, lo))
			i += 6
			continue
		}
		r, size := utf8.DecodeRune(raw[i:])
		if r == utf8.RuneError && size == 1 {
			return nil, d.fail(start, ErrInvalidUTF8, "byte %#02x at byte %d of text", raw[i], i)
		}
		sb.WriteRune(r)
		i += size
	}
	return ir.FromText(sb.String()), nil
}

// surrogateAt decodes the three byte sequence ED A0..BF 80..BF at raw[i].
func surrogateAt(raw []byte, i int) (rune, bool) {
	if i+3 > len(raw) || raw[i] != 0xed || raw[i+1] < 0xa0 || raw[i+1] > 0xbf || raw[i+2]&0xc0 != 0x80 {
		return 0, false
	}
	return 0xd000 | rune(raw[i+1]&0x3f)<<6 | rune(raw[i+2]&0x3f), true
}
