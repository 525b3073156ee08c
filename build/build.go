// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package build constructs JSON trees through nested begin and end calls.
//
// A Builder keeps a stack of open containers. Values written with Set are
// placed in the container on top of the stack, or in the root of the document
// when the stack is empty. Inside an array the key of a write is ignored and
// the value is appended; inside an object the value is stored under its key,
// and a write with an empty key is dropped. This lets the same sequence of
// calls describe an element whether it lands in an object or an array:
//
//	b.BeginObject("point")
//	build.Set(b, "x", 1)
//	build.Set(b, "y", 2)
//	b.EndObject()
//
//	b.BeginArray("list")
//	for _, v := range values {
//	   build.Set(b, "", v)
//	}
//	b.EndArray()
//
// Calls that do not fit the current context, including unbalanced End calls,
// are dropped without error. Whatever was built before the mistake stays in
// the tree.
package build

import (
	"log/slog"

	"github.com/creachadair/jsonable/scalar"
	"github.com/creachadair/jsonable/tree"
)

// A Builder writes values into a tree.Document. A Builder is not safe for
// concurrent use.
type Builder struct {
	doc   *tree.Document
	stack []frame
	log   *slog.Logger
}

// A frame is an open container.
type frame struct {
	node  tree.Node
	array bool
}

// An Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger to which dropped writes are reported at debug
// level. If nil, log output is discarded.
func WithLogger(log *slog.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// New constructs a Builder that writes into d, which must be non-nil.
func New(d *tree.Document, opts ...Option) *Builder {
	b := &Builder{doc: d, log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Document returns the document b writes into.
func (b *Builder) Document() *tree.Document { return b.doc }

// Current returns the container that receives writes: the top of the stack,
// or the root of the document if the stack is empty.
func (b *Builder) Current() tree.Node { return b.top().node }

// Depth reports the number of open containers.
func (b *Builder) Depth() int { return len(b.stack) }

// Balanced reports whether every container opened by b has been closed.
func (b *Builder) Balanced() bool { return len(b.stack) == 0 }

// Reset closes all open containers without otherwise changing the document.
func (b *Builder) Reset() { b.stack = b.stack[:0] }

func (b *Builder) top() frame {
	if n := len(b.stack); n > 0 {
		return b.stack[n-1]
	}
	root := b.doc.Root()
	return frame{node: root, array: root.Kind() == tree.Array}
}

// BeginObject opens a new empty object in the current context.
//
// In an array the object is appended and key is ignored. Otherwise the object
// is stored under key, unless key is empty. With an empty key and no open
// containers, BeginObject opens the root itself, provided it is an object.
// If no object is opened, the matching EndObject has no effect.
func (b *Builder) BeginObject(key string) { b.begin(key, false) }

// EndObject closes the object on top of the stack. If the top of the stack is
// not an object, EndObject does nothing.
func (b *Builder) EndObject() { b.end(false) }

// BeginArray opens a new empty array in the current context, following the
// same rules as BeginObject. With an empty key and no open containers,
// BeginArray opens the root only if the root is already an array; a new
// document has an object root, so a root-level array must be given a key.
func (b *Builder) BeginArray(key string) { b.begin(key, true) }

// EndArray closes the array on top of the stack. If the top of the stack is
// not an array, EndArray does nothing.
func (b *Builder) EndArray() { b.end(true) }

// PushObject opens a new object as the next element of the current array.
// It has no effect unless the current context is an array.
func (b *Builder) PushObject() { b.pushContainer(false) }

// PushArray opens a new array as the next element of the current array.
// It has no effect unless the current context is an array.
func (b *Builder) PushArray() { b.pushContainer(true) }

func (b *Builder) pushContainer(array bool) {
	f := b.top()
	if !f.array {
		b.log.Debug("push outside an array", "kind", kindName(array))
		return
	}
	if f, ok := b.ready(""); ok {
		b.open(f, "", array)
	}
}

func (b *Builder) begin(key string, array bool) {
	if len(b.stack) == 0 && key == "" {
		root := b.doc.Root()
		if root.Kind() == kindOf(array) {
			b.stack = append(b.stack, frame{node: root, array: array})
		} else {
			b.log.Debug("unkeyed begin at root", "kind", kindName(array), "root", root.Kind())
		}
		return
	}
	if f, ok := b.ready(key); ok {
		b.open(f, key, array)
	}
}

// open attaches a new container to f and pushes a frame for it.
func (b *Builder) open(f frame, key string, array bool) {
	var c tree.Node
	if array {
		c = b.doc.Array()
	} else {
		c = b.doc.Object()
	}
	if b.put(f, key, c) {
		b.stack = append(b.stack, frame{node: c, array: array})
	}
}

func (b *Builder) end(array bool) {
	n := len(b.stack)
	if n == 0 || b.stack[n-1].array != array {
		b.log.Debug("unbalanced end", "kind", kindName(array), "depth", n)
		return
	}
	b.stack = b.stack[:n-1]
}

// ready reports whether a value written under key would be stored, and if so
// returns the frame that would receive it.
func (b *Builder) ready(key string) (frame, bool) {
	f := b.top()
	switch {
	case !f.node.IsValid():
		b.log.Debug("write to a discarded container", "key", key)
		return f, false
	case f.array:
		return f, true
	case key == "":
		b.log.Debug("write with empty key in object")
		return f, false
	case f.node.Kind() != tree.Object:
		b.log.Debug("write to a non-container root", "key", key, "root", f.node.Kind())
		return f, false
	}
	return f, true
}

func (b *Builder) put(f frame, key string, v tree.Node) bool {
	var ok bool
	if f.array {
		ok = b.doc.Append(f.node, v)
	} else {
		ok = b.doc.Upsert(f.node, key, v)
	}
	if !ok {
		b.log.Debug("value not attached", "key", key, "kind", v.Kind())
	}
	return ok
}

// place stores the node returned by newNode in the current context, if a
// write under key would be accepted there. The node is not created otherwise.
func (b *Builder) place(key string, newNode func() tree.Node) {
	if f, ok := b.ready(key); ok {
		b.put(f, key, newNode())
	}
}

// Set writes v under key in the current context of b. In an array, key is
// ignored and v is appended. In an object, v replaces any existing value for
// key; if key is empty the write is dropped.
func Set[T scalar.Primitive](b *Builder, key string, v T) {
	b.place(key, func() tree.Node { return scalar.New(b.doc, v) })
}

// Push appends v to the current context of b. It has no effect unless the
// current context is an array.
func Push[T scalar.Primitive](b *Builder, v T) { Set(b, "", v) }

// SetArray writes an array holding the elements of vs under key, following
// the same rules as Set. A nil or empty vs produces an empty array.
func SetArray[T scalar.Primitive](b *Builder, key string, vs []T) {
	b.place(key, func() tree.Node {
		arr := b.doc.Array()
		for _, v := range vs {
			b.doc.Append(arr, scalar.New(b.doc, v))
		}
		return arr
	})
}

// SetNull writes null under key in the current context.
func (b *Builder) SetNull(key string) { b.place(key, b.doc.Null) }

// PushNull appends null to the current array.
func (b *Builder) PushNull() { b.SetNull("") }

// SetNode moves the detached node v under key in the current context. If the
// write is dropped, v remains detached.
func (b *Builder) SetNode(key string, v tree.Node) { b.place(key, func() tree.Node { return v }) }

// SetString writes a string under key in the current context.
func (b *Builder) SetString(key, v string) { Set(b, key, v) }

// SetInt64 writes a signed integer under key in the current context.
func (b *Builder) SetInt64(key string, v int64) { Set(b, key, v) }

// SetUint32 writes an unsigned integer under key in the current context.
func (b *Builder) SetUint32(key string, v uint32) { Set(b, key, v) }

// SetUint64 writes an unsigned integer under key in the current context.
func (b *Builder) SetUint64(key string, v uint64) { Set(b, key, v) }

// SetDouble writes a floating-point number under key in the current context.
func (b *Builder) SetDouble(key string, v float64) { Set(b, key, v) }

// SetFloat writes a floating-point number under key in the current context.
func (b *Builder) SetFloat(key string, v float32) { Set(b, key, v) }

// SetBool writes a Boolean under key in the current context.
func (b *Builder) SetBool(key string, v bool) { Set(b, key, v) }

// PushString appends a string to the current array.
func (b *Builder) PushString(v string) { Push(b, v) }

// PushInt64 appends a signed integer to the current array.
func (b *Builder) PushInt64(v int64) { Push(b, v) }

// PushDouble appends a floating-point number to the current array.
func (b *Builder) PushDouble(v float64) { Push(b, v) }

// PushBool appends a Boolean to the current array.
func (b *Builder) PushBool(v bool) { Push(b, v) }

func kindOf(array bool) tree.Kind {
	if array {
		return tree.Array
	}
	return tree.Object
}

func kindName(array bool) string { return kindOf(array).String() }
