// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/creachadair/jsonable/internal/escape"
	"github.com/creachadair/jsonable/internal/scan"
	"github.com/tailscale/hujson"
	"go4.org/mem"
)

// MaxDepth is the maximum nesting depth of arrays and objects accepted by
// the parser.
const MaxDepth = 10000

var (
	// ErrEmptyInput is reported when the input contains no value.
	ErrEmptyInput = errors.New("empty input")

	// ErrExtraInput is reported when a complete value is followed by
	// additional non-whitespace input.
	ErrExtraInput = errors.New("extra input after value")

	// ErrTooDeep is reported when arrays and objects nest beyond MaxDepth.
	ErrTooDeep = errors.New("value nested too deeply")

	// ErrNumberRange is reported for a number whose magnitude is too large
	// to represent as a float64.
	ErrNumberRange = errors.New("number out of range")
)

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Offset  int // byte offset of the error
	Line    int // 1-based line number
	Column  int // 0-based byte offset within the line
	Message string

	err error
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at %d:%d (offset %d): %s", e.Line, e.Column, e.Offset, e.Message)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.err }

// Parse parses a single JSON value from data, which may be surrounded by
// whitespace, and returns a new document whose root is that value.
// On failure the error has concrete type *SyntaxError. A number too large to
// represent as a float64, such as 1e400, is an error matching ErrNumberRange.
func Parse(data []byte) (*Document, error) { return parse(mem.B(data)) }

// ParseString is as Parse, but reads from a string.
func ParseString(s string) (*Document, error) { return parse(mem.S(s)) }

// MustParse is as ParseString, but panics on error. It is intended for use
// in tests and static initializers.
func MustParse(s string) *Document {
	d, err := ParseString(s)
	if err != nil {
		panic(fmt.Sprintf("parse %q: %v", s, err))
	}
	return d
}

// ParseExtended parses data as JWCC ("JSON with commas and comments"). Line
// and block comments and trailing commas are removed before parsing. The
// contents of data are not modified.
func ParseExtended(data []byte) (*Document, error) {
	std, err := hujson.Standardize(bytes.Clone(data))
	if err != nil {
		return nil, &SyntaxError{Line: 1, Message: err.Error(), err: err}
	}
	return Parse(std)
}

type parser struct {
	s     *scan.Scanner
	doc   *Document
	depth int
}

func parse(src mem.RO) (_ *Document, err error) {
	p := &parser{s: scan.New(src), doc: new(Document)}
	defer func() {
		if x := recover(); x != nil {
			if e, ok := x.(*SyntaxError); ok {
				err = e
				return
			}
			panic(x)
		}
	}()
	if !p.next() {
		p.fail(p.s.Pos(), ErrEmptyInput, "%v", ErrEmptyInput)
	}
	p.doc.root = p.value()
	if p.next() {
		p.fail(p.s.Pos(), ErrExtraInput, "%v at %v", ErrExtraInput, p.s.Token())
	}
	return p.doc, nil
}

// next advances to the next token, and reports false at end of input.
// A lexical error is reported by panicking.
func (p *parser) next() bool {
	if p.s.Next() {
		return true
	}
	if err := p.s.Err(); err != nil {
		var se *scan.Error
		off := p.s.End()
		if errors.As(err, &se) {
			off = se.Offset
		}
		p.fail(off, err, "%v", errors.Unwrap(err))
	}
	return false
}

// require advances to the next token, which must be one of the given types.
// With no types, any value token is accepted.
func (p *parser) require(tokens ...scan.Token) scan.Token {
	if !p.next() {
		p.fail(p.s.Pos(), nil, "unexpected end of input, want %s", scan.Label(tokens...))
	}
	tok := p.s.Token()
	if len(tokens) == 0 {
		return tok
	}
	for _, want := range tokens {
		if tok == want {
			return tok
		}
	}
	p.fail(p.s.Pos(), nil, "got %v, want %s", tok, scan.Label(tokens...))
	panic("unreachable")
}

// value parses the value beginning at the current token and returns the arena
// index of the node holding it.
func (p *parser) value() int {
	switch tok := p.s.Token(); tok {
	case scan.LBrace:
		return p.object()
	case scan.LSquare:
		return p.array()
	case scan.String:
		return p.doc.alloc(node{kind: String, s: p.text()})
	case scan.Integer:
		return p.doc.alloc(p.integer())
	case scan.Number:
		return p.doc.alloc(node{kind: Double, f: p.float()})
	case scan.True, scan.False:
		return p.doc.alloc(node{kind: Bool, b: tok == scan.True})
	case scan.Null:
		return p.doc.alloc(node{kind: Null})
	default:
		p.fail(p.s.Pos(), nil, "got %v, want %s", tok, scan.Label())
		panic("unreachable")
	}
}

func (p *parser) enter() {
	p.depth++
	if p.depth > MaxDepth {
		p.fail(p.s.Pos(), ErrTooDeep, "%v (max %d)", ErrTooDeep, MaxDepth)
	}
}

func (p *parser) object() int {
	p.enter()
	defer func() { p.depth-- }()

	id := p.doc.alloc(node{kind: Object})
	if p.require(scan.String, scan.RBrace) == scan.RBrace {
		return id
	}
	for {
		key := p.text()
		p.require(scan.Colon)
		p.require()
		p.doc.upsertID(id, key, p.value())

		if p.require(scan.Comma, scan.RBrace) == scan.RBrace {
			return id
		}
		p.require(scan.String)
	}
}

func (p *parser) array() int {
	p.enter()
	defer func() { p.depth-- }()

	id := p.doc.alloc(node{kind: Array})
	if p.require() == scan.RSquare {
		return id
	}
	for {
		p.doc.appendID(id, p.value())

		if p.require(scan.Comma, scan.RSquare) == scan.RSquare {
			return id
		}
		p.require()
	}
}

// text decodes the current string token.
func (p *parser) text() string {
	tok := p.s.Text()
	dec, err := escape.Unquote(tok.SliceFrom(1).SliceTo(tok.Len() - 2))
	if err != nil {
		p.fail(p.s.Pos(), err, "invalid string: %v", err)
	}
	return string(dec)
}

// integer decodes the current integer token. Values that do not fit in
// int64 are stored as uint64 if possible, otherwise as float64.
func (p *parser) integer() node {
	text := p.s.Text().StringCopy()
	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		return node{kind: Int64, i: v}
	}
	if v, err := strconv.ParseUint(text, 10, 64); err == nil {
		return node{kind: Uint64, u: v}
	}
	return node{kind: Double, f: p.float()}
}

// float decodes the current number token as a float64. Underflow rounds to
// zero, but values too large for a float64 are rejected.
func (p *parser) float() float64 {
	text := p.s.Text().StringCopy()
	f, err := strconv.ParseFloat(text, 64)
	if math.IsInf(f, 0) {
		p.fail(p.s.Pos(), ErrNumberRange, "number %q out of range", text)
	} else if err != nil && !errors.Is(err, strconv.ErrRange) {
		p.fail(p.s.Pos(), err, "invalid number %q", text)
	}
	return f
}

func (p *parser) fail(offset int, err error, msg string, args ...any) {
	line, col := p.s.LineCol(offset)
	panic(&SyntaxError{
		Offset:  offset,
		Line:    line,
		Column:  col,
		Message: fmt.Sprintf(msg, args...),
		err:     err,
	})
}
