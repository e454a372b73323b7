package libdiff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/go-cbor/ir"
	"github.com/signadot/go-cbor/jsonconv"
)

func mustJSON(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := jsonconv.Parse([]byte(s))
	if err != nil {
		t.Fatalf("%s: %v", s, err)
	}
	return n
}

func render(changes []Change) string {
	lines := make([]string, len(changes))
	for i, c := range changes {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}

var diffTests = []struct {
	name string
	a, b string
	diff string
}{
	{
		name: "equal",
		a:    `{"a": [1, 2], "b": null}`,
		b:    `{"b": null, "a": [1, 2]}`,
	},
	{
		name: "array delete",
		a:    `[1, 2, 3]`,
		b:    `[1, 3]`,
		diff: `- $[1]: 2`,
	},
	{
		name: "array insert",
		a:    `[1, 2]`,
		b:    `[1, 2, 3]`,
		diff: `+ $[2]: 3`,
	},
	{
		name: "array replace",
		a:    `[1, 2, 3]`,
		b:    `[1, 9, 3]`,
		diff: `~ $[1]: 2 -> 9`,
	},
	{
		name: "map",
		a:    `{"a": 1, "b": 2, "d": true}`,
		b:    `{"a": 1, "b": 3, "c": 4}`,
		diff: `~ $["b"]: 2 -> 3
- $["d"]: true
+ $["c"]: 4`,
	},
	{
		name: "nested",
		a:    `{"x": [1, {"y": 1}]}`,
		b:    `{"x": [1, {"y": 2}]}`,
		diff: `~ $["x"][1]["y"]: 1 -> 2`,
	},
	{
		name: "type change",
		a:    `1`,
		b:    `"1"`,
		diff: `~ $: 1 -> "1"`,
	},
	{
		name: "decimal",
		a:    `[1.5]`,
		b:    `[2.5]`,
		diff: `~ $[0]#4[1]: 15 -> 25`,
	},
}

func TestDiff(t *testing.T) {
	for _, tc := range diffTests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := mustJSON(t, tc.a), mustJSON(t, tc.b)
			changes := Diff(a, b)
			if tc.diff == "" {
				if changes != nil {
					t.Fatalf("got changes\n%s", render(changes))
				}
				return
			}
			if diff := cmp.Diff(tc.diff, render(changes)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			revrev := Reverse(Reverse(changes))
			if diff := cmp.Diff(render(changes), render(revrev)); diff != "" {
				t.Errorf("reverse of reverse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiffTags(t *testing.T) {
	a := ir.MustTagUint(32, ir.FromText("a"))
	b := ir.MustTagUint(32, ir.FromText("b"))
	c := ir.MustTagUint(33, ir.FromText("a"))
	if got, want := render(Diff(a, b)), `~ $#32: "a" -> "b"`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if got, want := render(Diff(a, c)), `~ $: 32("a") -> 33("a")`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestDiffIntegerVariants(t *testing.T) {
	a := ir.FromSlice([]*ir.Node{ir.FromUint(5)})
	b := mustJSON(t, `[5.0]`)
	if changes := Diff(a, b); changes != nil {
		t.Errorf("got changes\n%s", render(changes))
	}
}

func TestReverse(t *testing.T) {
	a := mustJSON(t, `{"a": 1, "b": [1, 2]}`)
	b := mustJSON(t, `{"b": [1], "c": 3}`)
	got := render(Reverse(Diff(a, b)))
	want := `+ $["a"]: 1
+ $["b"][1]: 2
- $["c"]: 3`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffLongArrays(t *testing.T) {
	vs := make([]*ir.Node, 0, 2000)
	for i := range 2000 {
		vs = append(vs, ir.FromInt(int64(i%700)))
	}
	a := ir.FromSlice(vs)
	b := a.Clone()
	b.Values = append(b.Values[:1000:1000], b.Values[1001:]...)
	changes := Diff(a, b)
	if len(changes) != 1 || changes[0].Op != Delete {
		t.Fatalf("got\n%s", render(changes))
	}
}
