// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonable

import (
	"log/slog"

	"github.com/creachadair/jsonable/build"
	"github.com/creachadair/jsonable/path"
	"github.com/creachadair/jsonable/scalar"
	"github.com/creachadair/jsonable/tree"
)

// A Doc holds the JSON document of a value, and provides methods to read
// and write its members. The zero value is ready for use and holds an empty
// object. A Doc is not safe for concurrent use.
type Doc struct {
	opts  options
	tree  *tree.Document
	b     *build.Builder
	reads []tree.Node // open InObject contexts
}

// New constructs a new empty Doc with the given options.
func New(opts ...Option) *Doc {
	d := new(Doc)
	d.Configure(opts...)
	return d
}

// Configure applies opts to d. Containers opened for writing are closed.
func (d *Doc) Configure(opts ...Option) {
	for _, opt := range opts {
		opt(&d.opts)
	}
	if d.tree != nil {
		d.install(d.tree)
	}
}

// JSONDoc returns d. It allows a type that embeds a Doc to satisfy Holder.
func (d *Doc) JSONDoc() *Doc { return d }

func (d *Doc) init() {
	if d.tree == nil {
		d.install(tree.New())
	}
}

// install makes t the document of d, and discards all open contexts.
func (d *Doc) install(t *tree.Document) {
	d.tree = t
	d.b = build.New(t, build.WithLogger(d.opts.log))
	d.reads = d.reads[:0]
}

func (d *Doc) log() *slog.Logger { return d.opts.logger() }

// Tree returns the underlying document.
func (d *Doc) Tree() *tree.Document { d.init(); return d.tree }

// Root returns the root of the document.
func (d *Doc) Root() tree.Node { return d.Tree().Root() }

// JSON returns the compact JSON text of the document as it stands, without
// calling Save.
func (d *Doc) JSON() string { return d.Tree().JSON() }

// Clear discards the contents of the document and leaves it an empty object.
func (d *Doc) Clear() {
	d.init()
	d.tree.Reset()
	d.install(d.tree)
}

// Remove deletes the member named key from the object currently being
// written, and reports whether it was present.
func (d *Doc) Remove(key string) bool {
	d.init()
	return d.tree.Delete(d.b.Current(), key)
}

// Reading

// current returns the object that reads refer to.
func (d *Doc) current() tree.Node {
	if n := len(d.reads); n > 0 {
		return d.reads[n-1]
	}
	return d.Root()
}

// Node returns the value of the member named key, or a zero Node.
func (d *Doc) Node(key string) tree.Node { return d.current().Get(key) }

// Has reports whether there is a member named key.
func (d *Doc) Has(key string) bool { return d.current().Has(key) }

// IsNull reports whether the member named key is null.
func (d *Doc) IsNull(key string) bool { return d.Node(key).IsNull() }

// IsArray reports whether the member named key is an array.
func (d *Doc) IsArray(key string) bool { return d.Node(key).Kind() == tree.Array }

// IsObject reports whether the member named key is an object.
func (d *Doc) IsObject(key string) bool { return d.Node(key).Kind() == tree.Object }

// String returns the string value of key, or def.
func (d *Doc) String(key, def string) string { return Get(d, key, def) }

// Int returns the integer value of key, or def.
func (d *Doc) Int(key string, def int) int { return Get(d, key, def) }

// Int64 returns the integer value of key, or def.
func (d *Doc) Int64(key string, def int64) int64 { return Get(d, key, def) }

// Uint32 returns the unsigned integer value of key, or def. Values outside
// the range of uint32 yield def.
func (d *Doc) Uint32(key string, def uint32) uint32 { return Get(d, key, def) }

// Uint64 returns the unsigned integer value of key, or def.
func (d *Doc) Uint64(key string, def uint64) uint64 { return Get(d, key, def) }

// Float64 returns the numeric value of key, or def.
func (d *Doc) Float64(key string, def float64) float64 { return Get(d, key, def) }

// Float32 returns the numeric value of key, or def.
func (d *Doc) Float32(key string, def float32) float32 { return Get(d, key, def) }

// Bool returns the Boolean value of key, or def. A number is true if it is
// not zero.
func (d *Doc) Bool(key string, def bool) bool { return Get(d, key, def) }

// InObject calls f with reads directed at the object named key, and reports
// whether f was called. If there is no such object, f is not called.
func (d *Doc) InObject(key string, f func()) bool {
	obj := d.Node(key)
	if obj.Kind() != tree.Object {
		return false
	}
	d.reads = append(d.reads, obj)
	defer func() { d.reads = d.reads[:len(d.reads)-1] }()
	f()
	return true
}

// EachArray calls f with the offset and value of each element of the array
// named key, in order. It reports the number of elements visited.
func (d *Doc) EachArray(key string, f func(int, tree.Node)) int {
	var n int
	for i, elt := range d.Node(key).Elements() {
		f(i, elt)
		n++
	}
	return n
}

// EachObject calls f with the name and value of each member of the object
// named key, in order. It reports the number of members visited.
func (d *Doc) EachObject(key string, f func(string, tree.Node)) int {
	var n int
	for k, v := range d.Node(key).Members() {
		f(k, v)
		n++
	}
	return n
}

// NestedString returns the string at the dotted path s, or def.
func (d *Doc) NestedString(s, def string) string { return path.String(d.current(), s, def) }

// NestedInt64 returns the integer at the dotted path s, or def.
func (d *Doc) NestedInt64(s string, def int64) int64 { return path.Int64(d.current(), s, def) }

// HasNested reports whether the dotted path s names a value.
func (d *Doc) HasNested(s string) bool { return path.Has(d.current(), s) }

// EachNested calls f for each element of the array at the dotted path s,
// and reports the number of elements visited.
func (d *Doc) EachNested(s string, f func(tree.Node)) int { return path.Each(d.current(), s, f) }

// Lookup returns the value of the member of d named key as a T. It reports
// false if the member is missing, null, or does not convert to T.
func Lookup[T scalar.Primitive](d *Doc, key string) (T, bool) {
	return scalar.Lookup[T](d.current(), key)
}

// Get returns the value of the member of d named key as a T, or def.
func Get[T scalar.Primitive](d *Doc, key string, def T) T {
	return scalar.Get(d.current(), key, def)
}

// Field stores the value of the member of d named key into *p, if it exists
// and converts to T. Otherwise *p is unchanged. It reports whether *p was
// updated.
func Field[T scalar.Primitive](d *Doc, key string, p *T) bool {
	v, ok := Lookup[T](d, key)
	if ok {
		*p = v
	}
	return ok
}

// Array returns the elements of the array named key as values of type T.
// Elements that do not convert to T are reported as zero values. If there is
// no such array, Array returns nil.
func Array[T scalar.Primitive](d *Doc, key string) []T {
	return scalar.Array[T](d.current(), key)
}
