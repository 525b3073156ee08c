// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonable

import (
	"fmt"

	"github.com/creachadair/jsonable/tree"
)

// Loadable is implemented by values that read their fields from a Doc.
type Loadable interface {
	Load(*Doc)
}

// Savable is implemented by values that write their fields to a Doc.
type Savable interface {
	Save(*Doc)
}

// A Holder owns a Doc. A type that embeds Doc is a Holder.
type Holder interface {
	JSONDoc() *Doc
}

// A Loader is a Holder that can load itself.
type Loader interface {
	Holder
	Loadable
}

// A Saver is a Holder that can save itself.
type Saver interface {
	Holder
	Savable
}

// FromJSON parses text as a JSON value, makes it the document of v, and
// calls the Load method of v.
//
// If text is not valid, FromJSON reports an error wrapping a
// *tree.SyntaxError, and neither the document of v nor v itself is changed.
func FromJSON(v Loader, text string) error {
	d := v.JSONDoc()
	if err := d.Parse(text); err != nil {
		return err
	}
	v.Load(d)
	return nil
}

// FromJSONBytes is as FromJSON, but reads from a slice.
func FromJSONBytes(v Loader, data []byte) error { return FromJSON(v, string(data)) }

// ToJSON calls the Save method of v, and returns the compact JSON text of the
// updated document.
func ToJSON(v Saver) string { return string(AppendJSON(v, nil)) }

// AppendJSON is as ToJSON, but appends the text to dst and returns the
// extended slice.
func AppendJSON(v Saver, dst []byte) []byte {
	d := v.JSONDoc()
	d.save(v)
	return d.Root().AppendJSON(dst)
}

// Parse parses text as a JSON value and makes it the document of d, without
// loading it into any value. If text is not valid, Parse reports an error
// wrapping a *tree.SyntaxError and d is not changed.
func (d *Doc) Parse(text string) error {
	var t *tree.Document
	var err error
	if d.opts.extended {
		t, err = tree.ParseExtended([]byte(text))
	} else {
		t, err = tree.ParseString(text)
	}
	if err != nil {
		d.log().Debug("parse failed", "error", err)
		return fmt.Errorf("jsonable: %w", err)
	}
	d.install(t)
	return nil
}

func (d *Doc) save(v Savable) {
	d.init()
	d.b.Reset()
	d.reads = d.reads[:0]
	v.Save(d)
	if !d.b.Balanced() {
		d.log().Warn("unbalanced save", "open", d.b.Depth())
		d.b.Reset()
	}
}
