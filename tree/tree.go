// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package tree defines an in-memory tree of JSON values and a parser that
// constructs trees from JSON source.
//
// All the nodes of a tree live in a Document, which stores them in a flat
// arena. A Node is a small handle naming a slot in that arena. Handles remain
// valid while the arena grows, so a caller may hold a handle to a container
// while adding siblings or ancestors elsewhere in the tree. When a subtree is
// replaced or deleted its slots are reclaimed, and any handle still referring
// to them becomes stale: a stale handle reports kind Invalid, all reads
// through it yield their defaults, and all writes through it are ignored.
//
// A Document is not safe for concurrent use without external synchronization.
package tree

import "slices"

// Kind identifies the type of a JSON value.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // zero or stale handle
	Null                // the constant null
	Bool                // true or false
	Int64               // an integer representable as int64
	Uint64              // an integer representable as uint64 but not int64
	Double              // a floating-point number
	String              // a string
	Array               // an ordered sequence of values
	Object              // an ordered collection of uniquely-keyed members
)

var kindStr = [...]string{
	Invalid: "invalid",
	Null:    "null",
	Bool:    "bool",
	Int64:   "int64",
	Uint64:  "uint64",
	Double:  "double",
	String:  "string",
	Array:   "array",
	Object:  "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[k]
}

// IsNumber reports whether k is one of the numeric kinds.
func (k Kind) IsNumber() bool { return k == Int64 || k == Uint64 || k == Double }

// IsContainer reports whether k is Array or Object.
func (k Kind) IsContainer() bool { return k == Array || k == Object }

const noParent = -1

// A node is a single slot in the document arena.
type node struct {
	kind   Kind
	gen    uint64 // 0 for a free slot
	parent int

	b bool
	i int64
	u uint64
	f float64
	s string

	elems []int    // Array children
	mems  []member // Object members
}

type member struct {
	key string
	id  int
}

// A Document is an arena holding a tree of JSON values. The zero value is
// ready for use and has an empty object as its root.
type Document struct {
	nodes []node
	free  []int
	root  int
	live  int
	seq   uint64 // last generation issued
}

// New constructs an empty document whose root is an empty object.
func New() *Document {
	d := new(Document)
	d.init()
	return d
}

func (d *Document) init() {
	if len(d.nodes) == 0 {
		d.root = d.alloc(node{kind: Object})
	}
}

// Root returns the root node of d.
func (d *Document) Root() Node {
	d.init()
	return d.handle(d.root)
}

// SetRoot makes v the root of d, discarding the previous root and all its
// descendants. It reports false without changing d if v is not a live,
// detached node of d.
func (d *Document) SetRoot(v Node) bool {
	d.init()
	if v.doc == d && v.id == d.root && d.lookup(v) != nil {
		return true
	} else if !d.detached(v) {
		return false
	}
	d.release(d.root)
	d.root = v.id
	return true
}

// Reset discards all the nodes of d and installs an empty object as the new
// root. All handles previously issued by d become stale.
func (d *Document) Reset() {
	clear(d.nodes)
	d.nodes = d.nodes[:0]
	d.free = d.free[:0]
	d.live = 0
	d.init()
}

// Len reports the number of live nodes in d, including detached nodes that
// have not been attached to the tree.
func (d *Document) Len() int { d.init(); return d.live }

// Null returns a new detached null node.
func (d *Document) Null() Node { return d.add(node{kind: Null}) }

// Bool returns a new detached Boolean node.
func (d *Document) Bool(v bool) Node { return d.add(node{kind: Bool, b: v}) }

// Int64 returns a new detached signed integer node.
func (d *Document) Int64(v int64) Node { return d.add(node{kind: Int64, i: v}) }

// Uint64 returns a new detached unsigned integer node.
func (d *Document) Uint64(v uint64) Node { return d.add(node{kind: Uint64, u: v}) }

// Double returns a new detached floating-point node.
func (d *Document) Double(v float64) Node { return d.add(node{kind: Double, f: v}) }

// String returns a new detached string node.
func (d *Document) String(v string) Node { return d.add(node{kind: String, s: v}) }

// Array returns a new detached empty array node.
func (d *Document) Array() Node { return d.add(node{kind: Array}) }

// Object returns a new detached empty object node.
func (d *Document) Object() Node { return d.add(node{kind: Object}) }

func (d *Document) add(n node) Node {
	d.init()
	return d.handle(d.alloc(n))
}

// alloc stores n in a fresh slot and returns its index.
func (d *Document) alloc(n node) int {
	d.seq++
	n.gen = d.seq
	n.parent = noParent
	d.live++
	if k := len(d.free); k != 0 {
		id := d.free[k-1]
		d.free = d.free[:k-1]
		d.nodes[id] = n
		return id
	}
	d.nodes = append(d.nodes, n)
	return len(d.nodes) - 1
}

// release reclaims the slot at id and all the slots beneath it.
func (d *Document) release(id int) {
	n := &d.nodes[id]
	if n.gen == 0 {
		return
	}
	elems, mems := n.elems, n.mems
	d.nodes[id] = node{parent: noParent}
	d.free = append(d.free, id)
	d.live--
	for _, c := range elems {
		d.release(c)
	}
	for _, m := range mems {
		d.release(m.id)
	}
}

func (d *Document) handle(id int) Node {
	return Node{doc: d, id: id, gen: d.nodes[id].gen}
}

// lookup returns the live slot for n, or nil if n is not a live handle into d.
func (d *Document) lookup(n Node) *node {
	if n.doc != d || n.id < 0 || n.id >= len(d.nodes) {
		return nil
	}
	if p := &d.nodes[n.id]; p.gen == n.gen && n.gen != 0 {
		return p
	}
	return nil
}

// detached reports whether v is a live node of d with no parent, other than
// the root.
func (d *Document) detached(v Node) bool {
	p := d.lookup(v)
	return p != nil && p.parent == noParent && v.id != d.root
}

// canAttach reports whether v may become a child of the container at pid.
func (d *Document) canAttach(pid int, v Node) bool {
	if !d.detached(v) {
		return false
	}
	for cur := pid; cur != noParent; cur = d.nodes[cur].parent {
		if cur == v.id {
			return false // v is an ancestor of the target
		}
	}
	return true
}

// upsertID sets the member key of the object at oid to the node at cid.
// The caller must ensure cid is detached and not an ancestor of oid.
func (d *Document) upsertID(oid int, key string, cid int) {
	d.nodes[cid].parent = oid
	o := &d.nodes[oid]
	for i, m := range o.mems {
		if m.key == key {
			o.mems[i].id = cid
			d.release(m.id)
			return
		}
	}
	o.mems = append(o.mems, member{key: key, id: cid})
}

// appendID adds the node at cid to the end of the array at aid.
func (d *Document) appendID(aid, cid int) {
	d.nodes[cid].parent = aid
	d.nodes[aid].elems = append(d.nodes[aid].elems, cid)
}

// Upsert sets the member of obj with the given key to v, replacing and
// discarding any previous value for that key. A new key is added after all
// existing members. Upsert reports false without changing d if obj is not a
// live object of d, or if v is not a live detached node of d, or if v is an
// ancestor of obj.
func (d *Document) Upsert(obj Node, key string, v Node) bool {
	o := d.lookup(obj)
	if o == nil || o.kind != Object || !d.canAttach(obj.id, v) {
		return false
	}
	d.upsertID(obj.id, key, v.id)
	return true
}

// Append adds v to the end of arr. It reports false without changing d if
// arr is not a live array of d, or if v is not a live detached node of d, or
// if v is an ancestor of arr.
func (d *Document) Append(arr, v Node) bool {
	a := d.lookup(arr)
	if a == nil || a.kind != Array || !d.canAttach(arr.id, v) {
		return false
	}
	d.appendID(arr.id, v.id)
	return true
}

// Delete removes the member of obj with the given key and discards its value.
// It reports whether a member was removed.
func (d *Document) Delete(obj Node, key string) bool {
	o := d.lookup(obj)
	if o == nil || o.kind != Object {
		return false
	}
	i := slices.IndexFunc(o.mems, func(m member) bool { return m.key == key })
	if i < 0 {
		return false
	}
	id := o.mems[i].id
	o.mems = slices.Delete(o.mems, i, i+1)
	d.release(id)
	return true
}

// Clear removes all the members of an object or all the elements of an array,
// discarding their values. It reports false if c is not a live container.
func (d *Document) Clear(c Node) bool {
	p := d.lookup(c)
	if p == nil || !p.kind.IsContainer() {
		return false
	}
	elems, mems := p.elems, p.mems
	p.elems, p.mems = nil, nil
	for _, id := range elems {
		d.release(id)
	}
	for _, m := range mems {
		d.release(m.id)
	}
	return true
}
