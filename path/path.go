// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package path resolves dotted paths such as "a.b.c" against a JSON tree.
//
// Each segment of a path names a member of an object. There is no syntax for
// array offsets, wildcards, or escaped dots: a path is simply split at every
// "." character. The empty path names the starting node itself.
package path

import (
	"iter"
	"strings"

	"github.com/creachadair/jsonable/scalar"
	"github.com/creachadair/jsonable/tree"
)

// A Path is a sequence of object member names.
type Path []string

// Split parses a dotted path string. The empty string yields an empty Path.
// Empty segments are kept, so "a..b" has three segments, the second empty.
func Split(s string) Path {
	if s == "" {
		return nil
	}
	return strings.Split(s, ".")
}

// String renders p in dotted form.
func (p Path) String() string { return strings.Join(p, ".") }

// Resolve follows p from root, one object member per segment. It reports
// false if some segment names a member that does not exist, or if a value
// along the way is not an object. The empty path resolves to root.
func (p Path) Resolve(root tree.Node) (tree.Node, bool) {
	cur := root
	for _, key := range p {
		if cur.Kind() != tree.Object {
			return tree.Node{}, false
		}
		cur = cur.Get(key)
		if !cur.IsValid() {
			return tree.Node{}, false
		}
	}
	return cur, cur.IsValid()
}

// Resolve follows the dotted path s from root.
func Resolve(root tree.Node, s string) (tree.Node, bool) { return Split(s).Resolve(root) }

// Has reports whether the dotted path s resolves from root.
func Has(root tree.Node, s string) bool {
	_, ok := Resolve(root, s)
	return ok
}

// Lookup returns the value at the dotted path s as a T. It reports false if
// the path does not resolve or the value does not convert to T.
func Lookup[T scalar.Primitive](root tree.Node, s string) (T, bool) {
	n, _ := Resolve(root, s)
	return scalar.As[T](n)
}

// Get returns the value at the dotted path s as a T, or def if Lookup would
// report false.
func Get[T scalar.Primitive](root tree.Node, s string, def T) T {
	if v, ok := Lookup[T](root, s); ok {
		return v
	}
	return def
}

// String returns the string at the dotted path s, or def.
func String(root tree.Node, s, def string) string { return Get(root, s, def) }

// Int64 returns the integer at the dotted path s, or def.
func Int64(root tree.Node, s string, def int64) int64 { return Get(root, s, def) }

// Elements returns an iterator over the elements of the array at the dotted
// path s. If the path does not resolve to an array, the iterator is empty.
// The path is resolved afresh each time the iterator is started.
func Elements(root tree.Node, s string) iter.Seq2[int, tree.Node] {
	p := Split(s)
	return func(yield func(int, tree.Node) bool) {
		arr, ok := p.Resolve(root)
		if !ok || arr.Kind() != tree.Array {
			return
		}
		for i, elt := range arr.Elements() {
			if !yield(i, elt) {
				return
			}
		}
	}
}

// Each calls f for each element of the array at the dotted path s, in order.
// It reports the number of elements visited.
func Each(root tree.Node, s string, f func(tree.Node)) int {
	var n int
	for _, elt := range Elements(root, s) {
		f(elt)
		n++
	}
	return n
}
