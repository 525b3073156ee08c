// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package scalar converts between JSON tree nodes and Go primitive values.
//
// The Primitive constraint lists the Go types that may be read from or
// written to a tree. Reads coerce between numeric kinds when the value is
// representable in the target type, and otherwise report failure; nothing
// in this package panics or returns an error.
package scalar

import (
	"math"

	"github.com/creachadair/jsonable/tree"
)

// Primitive is the set of Go types that correspond to JSON scalars.
type Primitive interface {
	string | int | int64 | uint32 | uint64 | float64 | float32 | bool
}

// As reports the value of n as a T, and whether the conversion succeeded.
//
// A string is read only from a string node. A bool is read from a Boolean
// node, or from any number (true if nonzero). Integer types accept any
// number whose value fits the target type; floating-point values are
// truncated toward zero. Floating-point types accept any number.
func As[T Primitive](n tree.Node) (T, bool) {
	var out T
	ok := false
	switch p := any(&out).(type) {
	case *string:
		*p, ok = n.Text()
	case *bool:
		*p, ok = asBool(n)
	case *int:
		var v int64
		v, ok = asInt64(n)
		if ok && (v < math.MinInt || v > math.MaxInt) {
			ok = false
		}
		*p = int(v)
	case *int64:
		*p, ok = asInt64(n)
	case *uint32:
		var v uint64
		v, ok = asUint64(n)
		if ok && v > math.MaxUint32 {
			ok = false
		}
		*p = uint32(v)
	case *uint64:
		*p, ok = asUint64(n)
	case *float64:
		*p, ok = asFloat64(n)
	case *float32:
		var v float64
		v, ok = asFloat64(n)
		*p = float32(v)
	}
	if !ok {
		var zero T
		return zero, false
	}
	return out, true
}

func asBool(n tree.Node) (bool, bool) {
	if b, ok := n.Bool(); ok {
		return b, true
	}
	if f, ok := asFloat64(n); ok {
		return f != 0, true
	}
	return false, false
}

func asInt64(n tree.Node) (int64, bool) {
	switch n.Kind() {
	case tree.Int64:
		return n.Int64()
	case tree.Uint64:
		if u, _ := n.Uint64(); u <= math.MaxInt64 {
			return int64(u), true
		}
	case tree.Double:
		// The upper bound is exclusive since float64(MaxInt64) rounds up to 2^63.
		if f, _ := n.Float64(); f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f), true
		}
	}
	return 0, false
}

func asUint64(n tree.Node) (uint64, bool) {
	switch n.Kind() {
	case tree.Int64:
		if v, _ := n.Int64(); v >= 0 {
			return uint64(v), true
		}
	case tree.Uint64:
		return n.Uint64()
	case tree.Double:
		if f, _ := n.Float64(); f >= 0 && f < math.MaxUint64 {
			return uint64(f), true
		}
	}
	return 0, false
}

func asFloat64(n tree.Node) (float64, bool) {
	switch n.Kind() {
	case tree.Int64:
		v, _ := n.Int64()
		return float64(v), true
	case tree.Uint64:
		v, _ := n.Uint64()
		return float64(v), true
	case tree.Double:
		return n.Float64()
	}
	return 0, false
}

// Lookup returns the value of the member of obj named key as a T. It reports
// false if obj is not an object, the member does not exist, is null, or does
// not convert to T.
func Lookup[T Primitive](obj tree.Node, key string) (T, bool) {
	return As[T](obj.Get(key))
}

// Get returns the value of the member of obj named key as a T, or def if
// Lookup would report false.
func Get[T Primitive](obj tree.Node, key string, def T) T {
	if v, ok := Lookup[T](obj, key); ok {
		return v
	}
	return def
}

// Elements returns the elements of array arr as values of type T. Elements
// that do not convert to T are reported as the zero value of T, so offsets in
// the result match offsets in arr. If arr is not an array, Elements returns
// nil.
func Elements[T Primitive](arr tree.Node) []T {
	if arr.Kind() != tree.Array {
		return nil
	}
	out := make([]T, arr.Len())
	for i, elt := range arr.Elements() {
		out[i], _ = As[T](elt)
	}
	return out
}

// Array is as Elements, for the member of obj named key.
func Array[T Primitive](obj tree.Node, key string) []T { return Elements[T](obj.Get(key)) }

// New returns a new detached node of d holding v.
func New[T Primitive](d *tree.Document, v T) tree.Node {
	switch w := any(v).(type) {
	case string:
		return d.String(w)
	case bool:
		return d.Bool(w)
	case int:
		return d.Int64(int64(w))
	case int64:
		return d.Int64(w)
	case uint32:
		return d.Uint64(uint64(w))
	case uint64:
		return d.Uint64(w)
	case float32:
		return d.Double(float64(w))
	case float64:
		return d.Double(w)
	}
	panic("unreachable")
}
