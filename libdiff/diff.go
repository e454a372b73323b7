package libdiff

import (
	"github.com/signadot/go-cbor/ir"
)

// Diff returns the changes turning from into to, in document order. It
// returns nil when the two values are equal.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	diff(nil, from, to, &res)
	return res
}

func diff(p Path, from, to *ir.Node, res *[]Change) {
	if ir.Equal(from, to) {
		return
	}
	switch {
	case from.Type != to.Type || from.Type.IsLeaf():
	case from.Type == ir.ArrayType:
		diffArray(p, from, to, res)
		return
	case from.Type == ir.MapType:
		diffMap(p, from, to, res)
		return
	case from.Tag.Cmp(to.Tag) == 0:
		diff(p.with(Segment{Tag: from}), from.Content(), to.Content(), res)
		return
	}
	*res = append(*res, Change{Op: Replace, Path: p, From: from, To: to})
}

// diffMap reports deleted and changed entries in from's order, then the
// inserted entries in to's order.
func diffMap(p Path, from, to *ir.Node, res *[]Change) {
	for _, kv := range from.Entries() {
		kp := p.with(Segment{Key: kv.Key})
		tv := to.Get(kv.Key)
		if tv == nil {
			*res = append(*res, Change{Op: Delete, Path: kp, From: kv.Val})
			continue
		}
		diff(kp, kv.Val, tv, res)
	}
	for _, kv := range to.Entries() {
		if from.Get(kv.Key) == nil {
			*res = append(*res, Change{Op: Insert, Path: p.with(Segment{Key: kv.Key}), To: kv.Val})
		}
	}
}
