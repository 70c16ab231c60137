// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// Unquoting of Cinder string literals.

import (
	"fmt"
	"strings"
)

// unesc maps the character after a backslash to its meaning.
var unesc = [256]byte{
	't':  '\t',
	'r':  '\r',
	'n':  '\n',
	'\\': '\\',
	'"':  '"',
}

// Unquote interprets the raw text of a STRING token.
//
// A raw literal @"..." is returned verbatim without its delimiters.
// An ordinary literal has the escapes \t \r \n \\ \" decoded; any other
// escape is an error.
func Unquote(quoted string) (s string, err error) {
	raw := strings.HasPrefix(quoted, "@")
	if raw {
		quoted = quoted[1:]
	}
	if len(quoted) < 2 || quoted[0] != '"' || quoted[len(quoted)-1] != '"' {
		return "", fmt.Errorf("string literal not quoted: %s", quoted)
	}
	quoted = quoted[1 : len(quoted)-1]
	if raw || strings.IndexByte(quoted, '\\') < 0 {
		return quoted, nil
	}

	var buf strings.Builder
	for i := 0; i < len(quoted); i++ {
		c := quoted[i]
		if c != '\\' {
			buf.WriteByte(c)
			continue
		}
		if i+1 == len(quoted) {
			return "", fmt.Errorf("truncated escape sequence")
		}
		i++
		if r := unesc[quoted[i]]; r != 0 {
			buf.WriteByte(r)
			continue
		}
		return "", fmt.Errorf(`invalid escape sequence \%c`, quoted[i])
	}
	return buf.String(), nil
}
