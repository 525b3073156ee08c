// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/creachadair/jsonable/tree"
	"github.com/google/go-cmp/cmp"
)

func TestZeroDocument(t *testing.T) {
	var d tree.Document
	if got, want := d.JSON(), "{}"; got != want {
		t.Errorf("Zero JSON: got %q, want %q", got, want)
	}
	if got := d.Root().Kind(); got != tree.Object {
		t.Errorf("Zero root: got %v, want object", got)
	}
	if got := d.Len(); got != 1 {
		t.Errorf("Zero Len: got %d, want 1", got)
	}
}

func TestZeroNode(t *testing.T) {
	var n tree.Node
	if n.IsValid() || n.Kind() != tree.Invalid {
		t.Errorf("Zero node: got valid %v kind %v", n.IsValid(), n.Kind())
	}
	if _, ok := n.Int64(); ok {
		t.Error("Zero node: Int64 reported ok")
	}
	if n.Has("x") || n.Get("x").IsValid() || n.Index(0).IsValid() || n.Len() != 0 {
		t.Error("Zero node: container access reported a value")
	}
	for range n.Elements() {
		t.Error("Zero node: Elements yielded a value")
	}
	if got := n.JSON(); got != "null" {
		t.Errorf("Zero node JSON: got %q, want null", got)
	}
	if n.Document() != nil || n.Parent().IsValid() {
		t.Error("Zero node: has a document or parent")
	}
}

func TestBuildTree(t *testing.T) {
	d := tree.New()
	root := d.Root()
	list := d.Array()
	if !d.Upsert(root, "list", list) {
		t.Fatal("Upsert list failed")
	}

	// Grow the arena a lot while holding list, which must stay valid.
	for i := range 1000 {
		obj := d.Object()
		d.Upsert(obj, "i", d.Int64(int64(i)))
		if !d.Append(list, obj) {
			t.Fatalf("Append %d failed", i)
		}
	}
	d.Upsert(root, "name", d.String("test"))
	d.Upsert(root, "ok", d.Bool(true))
	d.Upsert(root, "big", d.Uint64(1<<63))

	if got := list.Len(); got != 1000 {
		t.Errorf("list.Len: got %d, want 1000", got)
	}
	if v, ok := list.Index(-1).Get("i").Int64(); !ok || v != 999 {
		t.Errorf("list[-1].i: got %v, %v; want 999", v, ok)
	}
	if got := list.Index(1000); got.IsValid() {
		t.Errorf("list[1000]: got %v, want invalid", got)
	}
	if p := list.Index(3).Parent(); p != list {
		t.Errorf("Parent: got %v, want %v", p, list)
	}
	if got, want := slices.Collect(root.Keys()), []string{"list", "name", "ok", "big"}; !slices.Equal(got, want) {
		t.Errorf("Keys: got %q, want %q", got, want)
	}
	if got, want := d.Len(), 1+1+2000+3; got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}
}

func TestUpsertReplaces(t *testing.T) {
	d := tree.New()
	root := d.Root()
	inner := d.Object()
	d.Upsert(root, "a", d.Int64(1))
	d.Upsert(root, "x", inner)
	d.Upsert(inner, "y", d.Bool(true))
	d.Upsert(root, "b", d.Int64(2))

	before := d.Len()
	if !d.Upsert(root, "x", d.Null()) {
		t.Fatal("Upsert x failed")
	}
	if got, want := d.JSON(), `{"a":1,"x":null,"b":2}`; got != want {
		t.Errorf("JSON: got %#q, want %#q", got, want)
	}
	if got, want := d.Len(), before-1; got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}

	// The old object is gone, and writes through its handle are dropped even
	// after its storage is reused.
	if inner.IsValid() || inner.Kind() != tree.Invalid {
		t.Errorf("Stale handle: got kind %v, want invalid", inner.Kind())
	}
	for range 5 {
		d.Upsert(root, "filler", d.Object())
	}
	if inner.IsValid() {
		t.Error("Stale handle became valid after reuse")
	}
	if d.Upsert(inner, "z", d.Int64(3)) {
		t.Error("Upsert into stale handle succeeded")
	}
	if got, want := d.JSON(), `{"a":1,"x":null,"b":2,"filler":{}}`; got != want {
		t.Errorf("JSON: got %#q, want %#q", got, want)
	}
}

func TestAttachRules(t *testing.T) {
	d := tree.New()
	other := tree.New()
	a, b := d.Array(), d.Array()
	v := d.Int64(1)

	tests := []struct {
		name string
		op   func() bool
		want bool
	}{
		{"AppendChild", func() bool { return d.Append(a, b) }, true},
		{"Cycle", func() bool { return d.Append(b, a) }, false},
		{"Self", func() bool { return d.Append(a, a) }, false},
		{"AppendValue", func() bool { return d.Append(a, v) }, true},
		{"Shared", func() bool { return d.Append(b, v) }, false},
		{"Root", func() bool { return d.Append(b, d.Root()) }, false},
		{"WrongDoc", func() bool { return d.Append(a, other.Int64(2)) }, false},
		{"NotArray", func() bool { return d.Append(v, d.Null()) }, false},
		{"NotObject", func() bool { return d.Upsert(a, "k", d.Null()) }, false},
		{"Zero", func() bool { return d.Append(a, tree.Node{}) }, false},
		{"Attach", func() bool { return d.Upsert(d.Root(), "a", a) }, true},
		{"Twice", func() bool { return d.Upsert(d.Root(), "b", a) }, false},
	}
	for _, tc := range tests {
		if got := tc.op(); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
	if got, want := d.JSON(), `{"a":[[],1]}`; got != want {
		t.Errorf("JSON: got %#q, want %#q", got, want)
	}
}

func TestDeleteClear(t *testing.T) {
	d := tree.MustParse(`{"a":[1,2,3],"b":{"c":true},"d":"x"}`)
	root := d.Root()
	b := root.Get("b")

	if !d.Delete(root, "b") {
		t.Error("Delete b failed")
	}
	if d.Delete(root, "b") {
		t.Error("Delete b twice succeeded")
	}
	if b.IsValid() {
		t.Error("Deleted member is still valid")
	}
	if !d.Clear(root.Get("a")) {
		t.Error("Clear a failed")
	}
	if d.Clear(root.Get("d")) {
		t.Error("Clear of a string succeeded")
	}
	if got, want := d.JSON(), `{"a":[],"d":"x"}`; got != want {
		t.Errorf("JSON: got %#q, want %#q", got, want)
	}
	if got, want := d.Len(), 3; got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}
}

func TestSetRootReset(t *testing.T) {
	d := tree.MustParse(`{"a":1}`)
	old := d.Root()
	a := old.Get("a")

	arr := d.Array()
	d.Append(arr, d.String("x"))
	if !d.SetRoot(arr) {
		t.Fatal("SetRoot failed")
	}
	if old.IsValid() || a.IsValid() {
		t.Error("Old root is still valid")
	}
	if !d.SetRoot(d.Root()) {
		t.Error("SetRoot of current root failed")
	}
	if d.SetRoot(d.Root().Index(0)) {
		t.Error("SetRoot of an attached node succeeded")
	}
	if got, want := d.JSON(), `["x"]`; got != want {
		t.Errorf("JSON: got %#q, want %#q", got, want)
	}

	d.Reset()
	if arr.IsValid() {
		t.Error("Handle is valid after Reset")
	}
	if got, want := d.JSON(), `{}`; got != want {
		t.Errorf("JSON after Reset: got %#q, want %#q", got, want)
	}
	// Slot zero is reused, but the old root handle must not revive.
	if old.IsValid() {
		t.Error("Old root revived after Reset")
	}
}

func TestIterators(t *testing.T) {
	d := tree.MustParse(`{"x":[10,20,30],"y":{"p":1,"q":2}}`)
	root := d.Root()

	type pair struct {
		Key  string
		JSON string
	}
	collect := func() (out []pair) {
		for k, v := range root.Get("y").Members() {
			out = append(out, pair{k, v.JSON()})
		}
		return
	}
	want := []pair{{"p", "1"}, {"q", "2"}}
	for i := range 2 { // iterators restart
		if diff := cmp.Diff(want, collect()); diff != "" {
			t.Errorf("Members pass %d (-want, +got):\n%s", i+1, diff)
		}
	}

	var got []string
	for i, v := range root.Get("x").Elements() {
		if i == 2 {
			break
		}
		got = append(got, fmt.Sprint(i, "=", v.JSON()))
	}
	if diff := cmp.Diff([]string{"0=10", "1=20"}, got); diff != "" {
		t.Errorf("Elements (-want, +got):\n%s", diff)
	}

	// Iterating a non-container yields nothing.
	for range root.Get("x").Members() {
		t.Error("Members of an array yielded a value")
	}
}

func TestAccessors(t *testing.T) {
	d := tree.MustParse(`[null,true,-5,18446744073709551615,2.5,"s"]`)
	r := d.Root()
	if !r.Index(0).IsNull() || !r.IsContainer() || r.IsNumber() {
		t.Error("Kind predicates are wrong")
	}
	if v, ok := r.Index(1).Bool(); !ok || !v {
		t.Errorf("Bool: got %v, %v", v, ok)
	}
	if v, ok := r.Index(2).Int64(); !ok || v != -5 {
		t.Errorf("Int64: got %v, %v", v, ok)
	}
	if v, ok := r.Index(3).Uint64(); !ok || v != 18446744073709551615 {
		t.Errorf("Uint64: got %v, %v", v, ok)
	}
	if v, ok := r.Index(4).Float64(); !ok || v != 2.5 {
		t.Errorf("Float64: got %v, %v", v, ok)
	}
	if v, ok := r.Index(5).Text(); !ok || v != "s" {
		t.Errorf("Text: got %v, %v", v, ok)
	}

	// Reads are exact: no conversions between kinds.
	if _, ok := r.Index(2).Float64(); ok {
		t.Error("Float64 of an integer reported ok")
	}
	if _, ok := r.Index(3).Int64(); ok {
		t.Error("Int64 of a uint64 reported ok")
	}
	if _, ok := r.Index(0).Text(); ok {
		t.Error("Text of null reported ok")
	}

	names := []string{"Invalid", "null(null)", "bool(true)", "Array(len=6)", `String("s")`}
	got := []string{tree.Node{}.String(), r.Index(0).String(), r.Index(1).String(), r.String(), r.Index(5).String()}
	if diff := cmp.Diff(names, got); diff != "" {
		t.Errorf("String (-want, +got):\n%s", diff)
	}
}
