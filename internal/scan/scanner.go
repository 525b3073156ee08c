// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package scan implements a lexical scanner for JSON text held in memory.
package scan

import (
	"fmt"
	"strings"

	"go4.org/mem"
)

// Token is the type of a lexical token in the JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Comma                // comma ","
	Colon                // colon ":"
	Integer              // number: integer with no fraction or exponent
	Number               // number with fraction and/or exponent
	String               // quoted string
	True                 // constant: true
	False                // constant: false
	Null                 // constant: null
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Integer: "integer",
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (t Token) String() string {
	if int(t) >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[t]
}

// A Scanner reads lexical tokens from a fixed input. Each call to Next
// advances the scanner to the next token, or reports false at the end of
// input or on error.
type Scanner struct {
	src mem.RO
	tok Token
	err error

	pos, end int // start and end offsets of current token
}

// New constructs a scanner that consumes src.
func New(src mem.RO) *Scanner { return &Scanner{src: src} }

// Next advances s to the next token of the input. It returns false when the
// input is exhausted or a lexical error occurs; use Err to distinguish.
func (s *Scanner) Next() bool {
	s.tok = Invalid
	s.err = nil

	for s.end < s.src.Len() && isSpace(s.src.At(s.end)) {
		s.end++
	}
	s.pos = s.end
	if s.end >= s.src.Len() {
		return false
	}

	ch := s.src.At(s.end)
	s.end++
	switch {
	case ch == '{':
		s.tok = LBrace
	case ch == '}':
		s.tok = RBrace
	case ch == '[':
		s.tok = LSquare
	case ch == ']':
		s.tok = RSquare
	case ch == ',':
		s.tok = Comma
	case ch == ':':
		s.tok = Colon
	case ch == '"':
		s.scanString()
	case ch == '-' || isDigit(ch):
		s.scanNumber(ch)
	case ch == 't':
		s.scanName("true", True)
	case ch == 'f':
		s.scanName("false", False)
	case ch == 'n':
		s.scanName("null", Null)
	default:
		s.failf("unexpected %q", rune(ch))
	}
	return s.err == nil
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the error from the last call to Next, or nil. Reaching the end
// of the input is not an error.
func (s *Scanner) Err() error { return s.err }

// Text returns a view of the undecoded text of the current token.
func (s *Scanner) Text() mem.RO { return s.src.SliceFrom(s.pos).SliceTo(s.end - s.pos) }

// Pos returns the offset of the first byte of the current token.
func (s *Scanner) Pos() int { return s.pos }

// End returns the offset just past the last byte of the current token.
func (s *Scanner) End() int { return s.end }

// LineCol reports the 1-based line and 0-based byte column of offset pos.
func (s *Scanner) LineCol(pos int) (line, col int) {
	line = 1
	last := -1
	for i := 0; i < pos && i < s.src.Len(); i++ {
		if s.src.At(i) == '\n' {
			line++
			last = i
		}
	}
	return line, pos - last - 1
}

func (s *Scanner) scanString() {
	for s.end < s.src.Len() {
		ch := s.src.At(s.end)
		s.end++
		switch {
		case ch == '"':
			s.tok = String
			return
		case ch == '\\':
			if s.end >= s.src.Len() {
				s.failf("incomplete escape")
				return
			}
			esc := s.src.At(s.end)
			s.end++
			switch esc {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			case 'u':
				if !s.readHex4() {
					s.failf("invalid Unicode escape")
					return
				}
			default:
				s.failf("invalid %q after escape", rune(esc))
				return
			}
		case ch < ' ':
			s.failf("unescaped control %q", rune(ch))
			return
		}
	}
	s.failf("unterminated string")
}

func (s *Scanner) scanNumber(start byte) {
	if start == '-' {
		// If there is a leading sign, we need at least one digit.
		if !s.accept(isDigit) {
			s.failf("want digit after sign")
			return
		}
	}
	s.skipWhile(isDigit)

	// Check for extra leading zeroes, which RFC 8259 disallows.
	// That is: 0.12 is OK, 01.2 is not.
	if hasExtraLeadingZeroes(s.Text()) {
		s.failf("extra leading zeroes")
		return
	}

	s.tok = Integer
	if s.peek() == '.' {
		s.end++
		if s.skipWhile(isDigit) == 0 {
			s.failf("no digits after decimal point")
			return
		}
		s.tok = Number
	}
	if c := s.peek(); c == 'e' || c == 'E' {
		s.end++
		if c := s.peek(); c == '+' || c == '-' {
			s.end++
		}
		if s.skipWhile(isDigit) == 0 {
			s.failf("missing exponent digits")
			return
		}
		s.tok = Number
	}
}

func (s *Scanner) scanName(want string, tok Token) {
	s.skipWhile(isNameByte)
	if got := s.Text(); !got.EqualString(want) {
		s.failf("unknown constant %q", got.StringCopy())
		return
	}
	s.tok = tok
}

// peek returns the next unconsumed byte, or 0 at the end of input.
func (s *Scanner) peek() byte {
	if s.end < s.src.Len() {
		return s.src.At(s.end)
	}
	return 0
}

// accept consumes a single byte matching f, and reports whether it did so.
func (s *Scanner) accept(f func(byte) bool) bool {
	if s.end < s.src.Len() && f(s.src.At(s.end)) {
		s.end++
		return true
	}
	return false
}

// skipWhile consumes bytes matching f and reports how many it consumed.
func (s *Scanner) skipWhile(f func(byte) bool) int {
	n := 0
	for s.accept(f) {
		n++
	}
	return n
}

// readHex4 consumes exactly 4 hexadecimal digits.
func (s *Scanner) readHex4() bool {
	for range 4 {
		if !s.accept(isHexDigit) {
			return false
		}
	}
	return true
}

// An Error is a lexical error at a byte offset of the input.
type Error struct {
	Offset int
	Err    error
}

func (e *Error) Error() string { return fmt.Sprintf("%v (offset %d)", e.Err, e.Offset) }

func (e *Error) Unwrap() error { return e.Err }

func (s *Scanner) failf(msg string, args ...any) {
	s.tok = Invalid
	s.err = &Error{Offset: s.end, Err: fmt.Errorf(msg, args...)}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isNameByte(ch byte) bool { return 'a' <= ch && ch <= 'z' }

func isHexDigit(ch byte) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

// hasExtraLeadingZeroes reports whether the representation of an integer in
// text has redundant leading zeroes, which RFC 8259 disallows.
//
// OK: 0, 0.1, -1.0, -0.1 are all OK.
// Bad: -01, 01.2, -01.0, 00.1.
func hasExtraLeadingZeroes(text mem.RO) bool {
	if text.Len() != 0 && text.At(0) == '-' {
		text = text.SliceFrom(1)
	}
	return text.Len() > 1 && text.At(0) == '0'
}

// Label makes a human-readable summary of the expected token types.
func Label(tokens ...Token) string {
	switch len(tokens) {
	case 0:
		return "value"
	case 1:
		return tokens[0].String()
	}
	last := len(tokens) - 1
	ss := make([]string, last)
	for i, tok := range tokens[:last] {
		ss[i] = tok.String()
	}
	return strings.Join(ss, ", ") + " or " + tokens[last].String()
}
