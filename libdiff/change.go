package libdiff

import (
	"strconv"
	"strings"

	"github.com/signadot/go-cbor/diag"
	"github.com/signadot/go-cbor/ir"
)

type Op int

const (
	Delete Op = iota
	Insert
	Replace
)

func (o Op) String() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	case Replace:
		return "~"
	default:
		return "?"
	}
}

// Change is one difference at Path. From is nil for an insertion and To is
// nil for a deletion.
type Change struct {
	Op   Op
	Path Path
	From *ir.Node
	To   *ir.Node
}

func (c Change) String() string {
	switch c.Op {
	case Delete:
		return "- " + c.Path.String() + ": " + diag.String(c.From)
	case Insert:
		return "+ " + c.Path.String() + ": " + diag.String(c.To)
	default:
		return "~ " + c.Path.String() + ": " + diag.String(c.From) + " -> " + diag.String(c.To)
	}
}

// Segment is one step of a Path: an array index, a map key or the content
// of a tag.
type Segment struct {
	Index int
	Key   *ir.Node
	Tag   *ir.Node
}

// Path locates a value from the root.
type Path []Segment

func (p Path) with(s Segment) Path {
	res := make(Path, len(p), len(p)+1)
	copy(res, p)
	return append(res, s)
}

func (p Path) String() string {
	var sb strings.Builder
	sb.WriteByte('$')
	for _, s := range p {
		switch {
		case s.Key != nil:
			sb.WriteByte('[')
			sb.WriteString(diag.String(s.Key))
			sb.WriteByte(']')
		case s.Tag != nil:
			tag, _ := s.Tag.TagUint64()
			sb.WriteByte('#')
			sb.WriteString(strconv.FormatUint(tag, 10))
		default:
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(s.Index))
			sb.WriteByte(']')
		}
	}
	return sb.String()
}

// Reverse returns the changes which undo changes.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{Path: c.Path, From: c.To, To: c.From}
		switch c.Op {
		case Delete:
			r.Op = Insert
		case Insert:
			r.Op = Delete
		default:
			r.Op = Replace
		}
		res[i] = r
	}
	return res
}
