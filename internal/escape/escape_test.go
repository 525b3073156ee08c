// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"testing"

	"github.com/creachadair/jsonable/internal/escape"
	"go4.org/mem"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{`\ufffd`, `"\\ufffd"`},
		{"\u2028 \u2029 \ufffd", `"\u2028 \u2029 \ufffd"`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
		{"bad \xff byte", `"bad \ufffd byte"`},
		{"caf\xc3\xa9 \U0001f600", "\"caf\xc3\xa9 \U0001f600\""},
	}
	for _, test := range tests {
		got := string(escape.Quote(mem.S(test.input)))
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, false},
		{`ok go`, "ok go", false},
		{`abc\ndef`, "abc\ndef", false},     // C escapes
		{`\b\f\n\r\t`, "\b\f\n\r\t", false}, // C escapes
		{`a \u0026 b`, "a & b", false},      // short Unicode escape
		{`\/`, "/", false},
		{`\u`, ``, true},         // incomplete Unicode escape
		{`\u00`, ``, true},       // incomplete Unicode escape
		{`trailing \`, ``, true}, // incomplete escape
		{`\u00x9`, "\ufffd", false}, // invalid Unicode escape
		{`\u019 `, "\ufffd", false}, // invalid Unicode escape
		{`a\"b`, `a"b`, false},
		{`a\\b\\cd`, `a\b\cd`, false},
		{`\ud83d\ude00!`, "\U0001f600!", false}, // surrogate pair
		{`\ud83d!`, "\ufffd!", false},            // unpaired high surrogate
		{`\ude00`, "\ufffd", false},              // unpaired low surrogate
		{`\ud83d\u0041`, "\ufffdA", false},       // high surrogate, then not low
	}

	for _, test := range tests {
		got, err := escape.Unquote(mem.S(test.input))
		if err != nil {
			if !test.fail {
				t.Errorf("Unquote(%#q): got %v, want no error", test.input, err)
			} else {
				t.Logf("Unquote(%#q): got expected error: %v", test.input, err)
			}
		} else if test.fail {
			t.Errorf("Unquote(%#q): got nil, want error", test.input)
		}
		if cmp := string(got); cmp != test.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.input, cmp, test.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{
		"", "plain", "tab\there", `"quoted"`, "\x00\x1f", "\u2028", "\U0001f600 smile",
	} {
		q := escape.Quote(mem.S(s))
		got, err := escape.Unquote(mem.B(q[1 : len(q)-1]))
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", q, err)
		} else if string(got) != s {
			t.Errorf("Round trip %#q: got %#q", s, got)
		}
	}
}
