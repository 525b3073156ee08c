// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"math"
	"strconv"

	"github.com/creachadair/jsonable/internal/escape"
	"go4.org/mem"
)

// JSON returns the compact JSON encoding of n. A zero or stale handle
// encodes as null.
func (n Node) JSON() string { return string(n.AppendJSON(nil)) }

// AppendJSON appends the compact JSON encoding of n to dst and returns the
// updated slice.
//
// Object members are written in insertion order. Integral floating-point
// values are written with a trailing ".0" so they decode as floating-point
// values again. Values that JSON cannot represent (NaN, ±Inf) are written as
// null.
func (n Node) AppendJSON(dst []byte) []byte {
	p := n.get()
	if p == nil {
		return append(dst, "null"...)
	}
	d := n.doc
	switch p.kind {
	case Null:
		return append(dst, "null"...)
	case Bool:
		return strconv.AppendBool(dst, p.b)
	case Int64:
		return strconv.AppendInt(dst, p.i, 10)
	case Uint64:
		return strconv.AppendUint(dst, p.u, 10)
	case Double:
		return appendFloat(dst, p.f)
	case String:
		return escape.AppendQuote(dst, mem.S(p.s))
	case Array:
		dst = append(dst, '[')
		for i, id := range p.elems {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = d.handle(id).AppendJSON(dst)
		}
		return append(dst, ']')
	case Object:
		dst = append(dst, '{')
		for i, m := range p.mems {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = escape.AppendQuote(dst, mem.S(m.key))
			dst = append(dst, ':')
			dst = d.handle(m.id).AppendJSON(dst)
		}
		return append(dst, '}')
	}
	return append(dst, "null"...)
}

// JSON returns the compact JSON encoding of the root of d.
func (d *Document) JSON() string { return d.Root().JSON() }

func appendFloat(dst []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, "null"...)
	}
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	start := len(dst)
	dst = strconv.AppendFloat(dst, f, format, -1, 64)
	if format == 'e' {
		// Trim a leading zero from a two-digit negative exponent: 1e-07 becomes 1e-7.
		if n := len(dst); n-start >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
		return dst
	}
	for _, b := range dst[start:] {
		if b == '.' {
			return dst
		}
	}
	return append(dst, ".0"...)
}
