// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonable

import (
	"github.com/creachadair/jsonable/build"
	"github.com/creachadair/jsonable/scalar"
)

func (d *Doc) builder() *build.Builder { d.init(); return d.b }

// BeginObject opens a new object under key. See build.Builder.BeginObject.
func (d *Doc) BeginObject(key string) { d.builder().BeginObject(key) }

// EndObject closes the innermost open object.
func (d *Doc) EndObject() { d.builder().EndObject() }

// BeginArray opens a new array under key. See build.Builder.BeginArray.
func (d *Doc) BeginArray(key string) { d.builder().BeginArray(key) }

// EndArray closes the innermost open array.
func (d *Doc) EndArray() { d.builder().EndArray() }

// PushObject opens a new object as the next element of the open array.
func (d *Doc) PushObject() { d.builder().PushObject() }

// PushArray opens a new array as the next element of the open array.
func (d *Doc) PushArray() { d.builder().PushArray() }

// NestedObject opens an object under key, calls f, and closes the object.
func (d *Doc) NestedObject(key string, f func()) {
	d.BeginObject(key)
	if f != nil {
		f()
	}
	d.EndObject()
}

// NestedArray opens an array under key, calls f, and closes the array.
func (d *Doc) NestedArray(key string, f func()) {
	d.BeginArray(key)
	if f != nil {
		f()
	}
	d.EndArray()
}

// SetNull writes null under key.
func (d *Doc) SetNull(key string) { d.builder().SetNull(key) }

// SetString writes a string under key.
func (d *Doc) SetString(key, v string) { d.builder().SetString(key, v) }

// SetInt64 writes a signed integer under key.
func (d *Doc) SetInt64(key string, v int64) { d.builder().SetInt64(key, v) }

// SetUint32 writes an unsigned integer under key.
func (d *Doc) SetUint32(key string, v uint32) { d.builder().SetUint32(key, v) }

// SetUint64 writes an unsigned integer under key.
func (d *Doc) SetUint64(key string, v uint64) { d.builder().SetUint64(key, v) }

// SetDouble writes a floating-point number under key.
func (d *Doc) SetDouble(key string, v float64) { d.builder().SetDouble(key, v) }

// SetFloat writes a floating-point number under key.
func (d *Doc) SetFloat(key string, v float32) { d.builder().SetFloat(key, v) }

// SetBool writes a Boolean under key.
func (d *Doc) SetBool(key string, v bool) { d.builder().SetBool(key, v) }

// PushNull appends null to the open array.
func (d *Doc) PushNull() { d.builder().PushNull() }

// PushString appends a string to the open array.
func (d *Doc) PushString(v string) { d.builder().PushString(v) }

// PushInt64 appends a signed integer to the open array.
func (d *Doc) PushInt64(v int64) { d.builder().PushInt64(v) }

// PushDouble appends a floating-point number to the open array.
func (d *Doc) PushDouble(v float64) { d.builder().PushDouble(v) }

// PushBool appends a Boolean to the open array.
func (d *Doc) PushBool(v bool) { d.builder().PushBool(v) }

// Set writes v under key in d. In an array key is ignored and v is appended.
func Set[T scalar.Primitive](d *Doc, key string, v T) { build.Set(d.builder(), key, v) }

// Push appends v to the open array of d.
func Push[T scalar.Primitive](d *Doc, v T) { build.Push(d.builder(), v) }

// SetIf writes v under key in d if keep(v) is true. A nil keep accepts all
// values.
func SetIf[T scalar.Primitive](d *Doc, key string, v T, keep func(T) bool) {
	if keep == nil || keep(v) {
		Set(d, key, v)
	}
}

// SetArray writes an array of the elements of vs under key in d.
func SetArray[T scalar.Primitive](d *Doc, key string, vs []T) { build.SetArray(d.builder(), key, vs) }

// SetArrayFunc writes an array of the elements of vs for which keep reports
// true under key in d. A nil keep accepts all values.
func SetArrayFunc[T scalar.Primitive](d *Doc, key string, vs []T, keep func(T) bool) {
	if keep == nil {
		SetArray(d, key, vs)
		return
	}
	out := make([]T, 0, len(vs))
	for _, v := range vs {
		if keep(v) {
			out = append(out, v)
		}
	}
	SetArray(d, key, out)
}
