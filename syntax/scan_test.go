// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"strings"
	"testing"
)

func scanString(src string) (string, error) {
	toks, err := scan("foo.cdr", src)
	if err != nil {
		return "", err
	}
	var words []string
	for _, tok := range toks {
		if tok.kind == EOF {
			words = append(words, "EOF")
		} else {
			words = append(words, tok.raw)
		}
	}
	return strings.Join(words, " "), nil
}

func TestScanner(t *testing.T) {
	for _, test := range []struct {
		input, want string
	}{
		{``, "EOF"},
		{`123`, "123 EOF"},
		{`x.y`, "x . y EOF"},
		{`10.ToString()`, "10 . ToString ( ) EOF"},
		{`1.5f 0x1F 10UL 0b101 2.0`, "1.5f 0x1F 10UL 0b101 2.0 EOF"},
		{`a+=b<<2`, "a += b << 2 EOF"},
		{`a&&b||!c`, "a && b || ! c EOF"},
		{`x != y == z`, "x != y == z EOF"},
		{`@"c:\dir" "a\"b"`, `@"c:\dir" "a\"b" EOF`},
		{"x // comment\n/* block\n */ y", "x y EOF"},
		{`const n = 0;`, "const n = 0 ; EOF"},
		{`f(name: 1)`, "f ( name : 1 ) EOF"},
	} {
		got, err := scanString(test.input)
		if err != nil {
			t.Errorf("scan `%s` failed: %v", test.input, err)
			continue
		}
		if test.want != got {
			t.Errorf("scan `%s` = [%s], want [%s]", test.input, got, test.want)
		}
	}
}

func TestScanErrors(t *testing.T) {
	for _, test := range []struct {
		input, want string
	}{
		{`"abc`, "unexpected EOF in string"},
		{"\"a\nb\"", "unexpected newline in string"},
		{`/* never closed`, "unterminated block comment"},
		{`x # y`, "unexpected input character '#'"},
	} {
		_, err := scan("foo.cdr", test.input)
		if err == nil {
			t.Errorf("scan `%s` succeeded, want error %q", test.input, test.want)
			continue
		}
		if got := err.(Error).Msg; got != test.want {
			t.Errorf("scan `%s` error = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestTokenPositions(t *testing.T) {
	toks, err := scan("foo.cdr", "let x =\n  10;")
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, tok := range toks {
		got = append(got, tok.pos.String())
	}
	want := "foo.cdr:1:1 foo.cdr:1:5 foo.cdr:1:7 foo.cdr:2:3 foo.cdr:2:5 foo.cdr:2:6"
	if s := strings.Join(got, " "); s != want {
		t.Errorf("positions = %s, want %s", s, want)
	}
}
