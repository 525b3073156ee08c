// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jsonable lets a Go value describe its own JSON representation.
//
// A value takes part by embedding a Doc and implementing two methods: Load,
// which reads its fields from the Doc after parsing, and Save, which writes
// its fields into the Doc before formatting:
//
//	type Point struct {
//	   jsonable.Doc
//	   X, Y int64
//	   Tags []string
//	}
//
//	func (p *Point) Load(d *jsonable.Doc) {
//	   p.X = d.Int64("x", 0)
//	   p.Y = d.Int64("y", 0)
//	   p.Tags = jsonable.Array[string](d, "tags")
//	}
//
//	func (p *Point) Save(d *jsonable.Doc) {
//	   d.SetInt64("x", p.X)
//	   d.SetInt64("y", p.Y)
//	   jsonable.SetArray(d, "tags", p.Tags)
//	}
//
// Then FromJSON parses text and calls Load, and ToJSON calls Save and returns
// the resulting text:
//
//	var p Point
//	if err := jsonable.FromJSON(&p, `{"x": 1, "y": 2}`); err != nil {
//	   log.Fatalf("Parse: %v", err)
//	}
//	fmt.Println(jsonable.ToJSON(&p)) // {"x":1,"y":2,"tags":[]}
//
// # Reading
//
// The read methods of a Doc take a member name and a default. A member that
// is missing, null, or of a type that does not convert to the requested type
// yields the default; reads never fail. Numbers convert between integer and
// floating-point types when the value fits, but strings are never parsed as
// numbers. Use InObject to read the members of a nested object, EachArray
// and EachObject to visit elements, and the Nested methods to follow dotted
// paths such as "a.b.c".
//
// # Writing
//
// Writes go to the innermost open container. BeginObject and BeginArray open
// a container under a key, and EndObject and EndArray close it. In an array
// the key of a write is ignored and the value is appended, so the same code
// can write an element into either kind of container. In an object, a write
// with an empty key is dropped. Unbalanced Begin and End calls do not fail:
// what was written stays in the document, and any containers still open when
// Save returns are closed and reported to the logger.
//
// The document is kept between calls. Each call to ToJSON updates the members
// that Save writes and leaves others in place; call Clear to start over.
//
// # Trees
//
// The packages under this module can also be used directly. Package tree
// holds the document model and parser, package build the container stack
// used for writing, package scalar the conversions between JSON values and Go
// types, and package path the dotted path resolver.
package jsonable
