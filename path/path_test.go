// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package path_test

import (
	"testing"

	"github.com/creachadair/jsonable/path"
	"github.com/creachadair/jsonable/tree"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [{"x": 1}, {"x": 2}],
  "y": {
    "hello": "there",
    "deep": {"n": 25, "": "blank"}
  },
  "a.b": "dotted",
  "s": "leaf",
  "nil": null
}`

func TestSplit(t *testing.T) {
	tests := []struct {
		input string
		want  path.Path
	}{
		{"", nil},
		{"a", path.Path{"a"}},
		{"a.b.c", path.Path{"a", "b", "c"}},
		{"a..b", path.Path{"a", "", "b"}},
		{".", path.Path{"", ""}},
	}
	for _, tc := range tests {
		got := path.Split(tc.input)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Split %q (-want, +got):\n%s", tc.input, diff)
		}
		if s := got.String(); s != tc.input {
			t.Errorf("String: got %q, want %q", s, tc.input)
		}
	}
}

func TestResolve(t *testing.T) {
	root := tree.MustParse(testJSON).Root()
	tests := []struct {
		path string
		want string // JSON of the result, or "" for no result
	}{
		{"", root.JSON()},
		{"s", `"leaf"`},
		{"y.hello", `"there"`},
		{"y.deep.n", `25`},
		{"y.deep.", `"blank"`},
		{"nil", `null`},
		{"list", `[{"x":1},{"x":2}]`},

		// Missing members and non-object intermediates.
		{"nonesuch", ""},
		{"y.nonesuch", ""},
		{"y.hello.world", ""},
		{"s.x", ""},
		{"nil.x", ""},
		{"list.x", ""},
		{"list.0", ""},
		{"y..hello", ""},

		// Dots in a member name cannot be reached.
		{"a.b", ""},
	}
	for _, tc := range tests {
		got, ok := path.Resolve(root, tc.path)
		if tc.want == "" {
			if ok || got.IsValid() {
				t.Errorf("Resolve %q: got %v, want no result", tc.path, got)
			}
			if path.Has(root, tc.path) {
				t.Errorf("Has %q: got true, want false", tc.path)
			}
			continue
		}
		if !ok {
			t.Errorf("Resolve %q: got no result, want %s", tc.path, tc.want)
		} else if diff := cmp.Diff(tc.want, got.JSON()); diff != "" {
			t.Errorf("Resolve %q (-want, +got):\n%s", tc.path, diff)
		}
		if !path.Has(root, tc.path) {
			t.Errorf("Has %q: got false, want true", tc.path)
		}
	}

	// A zero root resolves nothing, not even the empty path.
	if _, ok := path.Resolve(tree.Node{}, ""); ok {
		t.Error("Resolve on a zero node succeeded")
	}
}

func TestGet(t *testing.T) {
	root := tree.MustParse(testJSON).Root()

	if got := path.String(root, "y.hello", "x"); got != "there" {
		t.Errorf("String y.hello: got %q, want there", got)
	}
	if got := path.String(root, "y.deep.n", "x"); got != "x" {
		t.Errorf("String y.deep.n: got %q, want default", got)
	}
	if got := path.Int64(root, "y.deep.n", -1); got != 25 {
		t.Errorf("Int64 y.deep.n: got %d, want 25", got)
	}
	if got := path.Int64(root, "y.deep.q", -1); got != -1 {
		t.Errorf("Int64 y.deep.q: got %d, want default", got)
	}
	if got := path.Get(root, "y.deep.n", 0.5); got != 25 {
		t.Errorf("Get float64: got %v, want 25", got)
	}
	if got, ok := path.Lookup[bool](root, "nil"); ok || got {
		t.Errorf("Lookup null: got %v, %v; want false", got, ok)
	}
}

func TestElements(t *testing.T) {
	d := tree.MustParse(testJSON)
	root := d.Root()

	var xs []int64
	n := path.Each(root, "list", func(elt tree.Node) {
		v, _ := elt.Get("x").Int64()
		xs = append(xs, v)
	})
	if n != 2 {
		t.Errorf("Each: visited %d, want 2", n)
	}
	if diff := cmp.Diff([]int64{1, 2}, xs); diff != "" {
		t.Errorf("Each (-want, +got):\n%s", diff)
	}

	for _, p := range []string{"y", "s", "nonesuch", "list.x"} {
		if n := path.Each(root, p, func(tree.Node) {}); n != 0 {
			t.Errorf("Each %q: visited %d, want 0", p, n)
		}
	}

	// The iterator resolves its path each time it starts.
	seq := path.Elements(root, "list")
	count := func() (n int) {
		for range seq {
			n++
		}
		return
	}
	if got := count(); got != 2 {
		t.Errorf("Elements: got %d, want 2", got)
	}
	fresh := d.Array()
	d.Append(fresh, d.Int64(9))
	d.Upsert(root, "list", fresh)
	if got := count(); got != 1 {
		t.Errorf("Elements after replace: got %d, want 1", got)
	}
}
