package ir

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
)

// FromUTF16 returns a text node for the UTF-16 code units us, combining
// surrogate pairs. An unpaired surrogate is an error.
func FromUTF16(us []uint16) (*Node, error) {
	var sb strings.Builder
	sb.Grow(len(us))
	for i := 0; i < len(us); i++ {
		r := rune(us[i])
		if !utf16.IsSurrogate(r) {
			sb.WriteRune(r)
			continue
		}
		if r >= 0xdc00 || i+1 == len(us) {
			return nil, fmt.Errorf("%w: %#04x at code unit %d", ErrUnpairedSurrogate, us[i], i)
		}
		c := utf16.DecodeRune(r, rune(us[i+1]))
		if c == unicode.ReplacementChar {
			return nil, fmt.Errorf("%w: %#04x at code unit %d", ErrUnpairedSurrogate, us[i], i)
		}
		sb.WriteRune(c)
		i++
	}
	return FromText(sb.String()), nil
}

// UTF16 returns the UTF-16 code units of a text node.
func (y *Node) UTF16() []uint16 {
	return utf16.Encode([]rune(y.Text))
}
