// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"fmt"
	"iter"
)

// A Node is a handle to a single value in a Document. The zero Node is not
// attached to any document and has kind Invalid.
//
// A Node is a small value and may be freely copied. Its methods never fail:
// reading a value of the wrong kind reports false, and reading through a
// stale or zero handle behaves as reading an Invalid value.
type Node struct {
	doc *Document
	id  int
	gen uint64
}

func (n Node) get() *node {
	if n.doc == nil {
		return nil
	}
	return n.doc.lookup(n)
}

// Document returns the document that issued n, or nil for a zero Node.
func (n Node) Document() *Document { return n.doc }

// Kind reports the kind of value n refers to.
func (n Node) Kind() Kind {
	if p := n.get(); p != nil {
		return p.kind
	}
	return Invalid
}

// IsValid reports whether n is a live handle.
func (n Node) IsValid() bool { return n.get() != nil }

// IsNull reports whether n is a null value.
func (n Node) IsNull() bool { return n.Kind() == Null }

// IsNumber reports whether n is a number of any kind.
func (n Node) IsNumber() bool { return n.Kind().IsNumber() }

// IsContainer reports whether n is an array or an object.
func (n Node) IsContainer() bool { return n.Kind().IsContainer() }

// Bool returns the value of a Boolean node.
func (n Node) Bool() (bool, bool) {
	if p := n.get(); p != nil && p.kind == Bool {
		return p.b, true
	}
	return false, false
}

// Int64 returns the value of a signed integer node.
func (n Node) Int64() (int64, bool) {
	if p := n.get(); p != nil && p.kind == Int64 {
		return p.i, true
	}
	return 0, false
}

// Uint64 returns the value of an unsigned integer node.
func (n Node) Uint64() (uint64, bool) {
	if p := n.get(); p != nil && p.kind == Uint64 {
		return p.u, true
	}
	return 0, false
}

// Float64 returns the value of a floating-point node.
func (n Node) Float64() (float64, bool) {
	if p := n.get(); p != nil && p.kind == Double {
		return p.f, true
	}
	return 0, false
}

// Text returns the value of a string node.
func (n Node) Text() (string, bool) {
	if p := n.get(); p != nil && p.kind == String {
		return p.s, true
	}
	return "", false
}

// Has reports whether n is an object with a member named key.
func (n Node) Has(key string) bool { return n.Get(key).IsValid() }

// Get returns the value of the member of object n named key. It returns a
// zero Node if n is not an object or has no such member.
func (n Node) Get(key string) Node {
	p := n.get()
	if p == nil || p.kind != Object {
		return Node{}
	}
	for _, m := range p.mems {
		if m.key == key {
			return n.doc.handle(m.id)
		}
	}
	return Node{}
}

// Keys returns an iterator over the member names of object n, in order.
func (n Node) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		p := n.get()
		if p == nil || p.kind != Object {
			return
		}
		for _, m := range p.mems {
			if !yield(m.key) {
				return
			}
		}
	}
}

// Members returns an iterator over the names and values of the members of
// object n, in order.
func (n Node) Members() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		p := n.get()
		if p == nil || p.kind != Object {
			return
		}
		for _, m := range p.mems {
			if !yield(m.key, n.doc.handle(m.id)) {
				return
			}
		}
	}
}

// Len reports the number of elements of an array or members of an object.
// It returns 0 for any other value.
func (n Node) Len() int {
	p := n.get()
	if p == nil {
		return 0
	}
	switch p.kind {
	case Array:
		return len(p.elems)
	case Object:
		return len(p.mems)
	}
	return 0
}

// Index returns the element of array n at offset i. A negative offset counts
// backward from the end of the array. It returns a zero Node if n is not an
// array or i is out of range.
func (n Node) Index(i int) Node {
	p := n.get()
	if p == nil || p.kind != Array {
		return Node{}
	}
	if i < 0 {
		i += len(p.elems)
	}
	if i < 0 || i >= len(p.elems) {
		return Node{}
	}
	return n.doc.handle(p.elems[i])
}

// Elements returns an iterator over the offsets and values of the elements of
// array n, in order.
func (n Node) Elements() iter.Seq2[int, Node] {
	return func(yield func(int, Node) bool) {
		p := n.get()
		if p == nil || p.kind != Array {
			return
		}
		for i, id := range p.elems {
			if !yield(i, n.doc.handle(id)) {
				return
			}
		}
	}
}

// Parent returns the array or object containing n. It returns a zero Node if
// n is the root, is detached, or is not valid.
func (n Node) Parent() Node {
	p := n.get()
	if p == nil || p.parent == noParent {
		return Node{}
	}
	return n.doc.handle(p.parent)
}

// String returns a brief human-readable summary of n.
func (n Node) String() string {
	p := n.get()
	if p == nil {
		return "Invalid"
	}
	switch p.kind {
	case Array:
		return fmt.Sprintf("Array(len=%d)", len(p.elems))
	case Object:
		return fmt.Sprintf("Object(len=%d)", len(p.mems))
	case String:
		return fmt.Sprintf("String(%q)", p.s)
	}
	return fmt.Sprintf("%v(%s)", p.kind, n.JSON())
}
