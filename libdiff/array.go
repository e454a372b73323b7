package libdiff

import (
	"github.com/signadot/go-cbor/debug"
	"github.com/signadot/go-cbor/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffArray aligns the elements of from and to by equality. A deletion
// directly followed by an insertion at the same index becomes a change of
// that element, which recurses when both sides are containers.
//
// Indices in the resulting paths refer to from for deletions and changes and
// to to for insertions.
func diffArray(p Path, from, to *ir.Node, res *[]Change) {
	classes := &classes{}
	fromRunes := classes.runes(from.Values)
	toRunes := classes.runes(to.Values)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	if debug.Diff() {
		debug.Logf("diff array at %s: %d classes, %d edits\n", p, classes.n, len(diffs))
	}

	fi, ti := 0, 0
	var pending []int
	flush := func() {
		for _, i := range pending {
			*res = append(*res, Change{Op: Delete, Path: p.with(Segment{Index: i}), From: from.Values[i]})
		}
		pending = pending[:0]
	}
	for i := range diffs {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			for range n {
				pending = append(pending, fi)
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				if len(pending) > 0 {
					j := pending[0]
					pending = pending[1:]
					diff(p.with(Segment{Index: j}), from.Values[j], to.Values[ti], res)
				} else {
					*res = append(*res, Change{Op: Insert, Path: p.with(Segment{Index: ti}), To: to.Values[ti]})
				}
				ti++
			}
			flush()
		case diffpatch.DiffEqual:
			flush()
			fi += n
			ti += n
		}
	}
	flush()
}

// classes assigns one rune to each set of equal values.
type classes struct {
	byHash map[uint64][]classEntry
	n      int
}

type classEntry struct {
	node *ir.Node
	r    rune
}

func (c *classes) runes(vs []*ir.Node) []rune {
	if c.byHash == nil {
		c.byHash = map[uint64][]classEntry{}
	}
	rs := make([]rune, len(vs))
	for i, v := range vs {
		rs[i] = c.runeOf(v)
	}
	return rs
}

func (c *classes) runeOf(v *ir.Node) rune {
	h := v.Hash()
	for _, e := range c.byHash[h] {
		if ir.Equal(e.node, v) {
			return e.r
		}
	}
	r := classRune(c.n)
	c.n++
	c.byHash[h] = append(c.byHash[h], classEntry{node: v, r: r})
	return r
}

// classRune maps n to a rune outside the surrogate range so that the diff
// text survives conversion to a string.
func classRune(n int) rune {
	if n >= 0xd800 {
		n += 0x800
	}
	return rune(n)
}
