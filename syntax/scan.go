// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// A lexical scanner for Cinder.

import (
	"fmt"
	"os"
	"unicode"
	"unicode/utf8"
)

// A Token represents a Cinder lexical token.
type Token int8

const (
	ILLEGAL Token = iota
	EOF

	IDENT  // x
	NUMBER // 123, 0x1F, 1.5f, 10UL
	STRING // "foo", @"c:\foo"

	// Punctuation
	PLUS          // +
	MINUS         // -
	STAR          // *
	SLASH         // /
	PERCENT       // %
	AMP           // &
	PIPE          // |
	CIRCUMFLEX    // ^
	LTLT          // <<
	GTGT          // >>
	BANG          // !
	TILDE         // ~
	ANDAND        // &&
	OROR          // ||
	DOT           // .
	COMMA         // ,
	EQ            // =
	SEMI          // ;
	COLON         // :
	LPAREN        // (
	RPAREN        // )
	LBRACK        // [
	RBRACK        // ]
	LBRACE        // {
	RBRACE        // }
	LT            // <
	GT            // >
	GE            // >=
	LE            // <=
	EQL           // ==
	NEQ           // !=
	PLUS_EQ       // +=    (keep order consistent with PLUS..SLASH)
	MINUS_EQ      // -=
	STAR_EQ       // *=
	SLASH_EQ      // /=

	// Keywords
	BREAK
	CONST
	CONTINUE
	ELSE
	FALSE
	IF
	LET
	NEW
	NULL
	RETURN
	TRUE
	UNLESS
	UNTIL
	USING
	WHILE

	maxToken
)

func (tok Token) String() string { return tokenNames[tok] }

// GoString is like String but quotes punctuation tokens.
// Use Sprintf("%#v", tok) when constructing error messages.
func (tok Token) GoString() string {
	if tok >= PLUS && tok <= SLASH_EQ {
		return "'" + tokenNames[tok] + "'"
	}
	return tokenNames[tok]
}

var tokenNames = [...]string{
	ILLEGAL:    "illegal token",
	EOF:        "end of file",
	IDENT:      "identifier",
	NUMBER:     "number literal",
	STRING:     "string literal",
	PLUS:       "+",
	MINUS:      "-",
	STAR:       "*",
	SLASH:      "/",
	PERCENT:    "%",
	AMP:        "&",
	PIPE:       "|",
	CIRCUMFLEX: "^",
	LTLT:       "<<",
	GTGT:       ">>",
	BANG:       "!",
	TILDE:      "~",
	ANDAND:     "&&",
	OROR:       "||",
	DOT:        ".",
	COMMA:      ",",
	EQ:         "=",
	SEMI:       ";",
	COLON:      ":",
	LPAREN:     "(",
	RPAREN:     ")",
	LBRACK:     "[",
	RBRACK:     "]",
	LBRACE:     "{",
	RBRACE:     "}",
	LT:         "<",
	GT:         ">",
	GE:         ">=",
	LE:         "<=",
	EQL:        "==",
	NEQ:        "!=",
	PLUS_EQ:    "+=",
	MINUS_EQ:   "-=",
	STAR_EQ:    "*=",
	SLASH_EQ:   "/=",
	BREAK:      "break",
	CONST:      "const",
	CONTINUE:   "continue",
	ELSE:       "else",
	FALSE:      "false",
	IF:         "if",
	LET:        "let",
	NEW:        "new",
	NULL:       "null",
	RETURN:     "return",
	TRUE:       "true",
	UNLESS:     "unless",
	UNTIL:      "until",
	USING:      "using",
	WHILE:      "while",
}

var keywordToken = make(map[string]Token)

func init() {
	for tok := BREAK; tok < maxToken; tok++ {
		keywordToken[tokenNames[tok]] = tok
	}
}

// A token is a scanned token and its source text.
type token struct {
	kind Token
	pos  Position
	raw  string // uninterpreted text
}

// scanner tokenizes a complete source buffer up front; the parser
// consumes the resulting slice with arbitrary lookahead.
type scanner struct {
	rest []byte
	pos  Position
	toks []token
}

func readSource(filename string, src interface{}) ([]byte, error) {
	switch src := src.(type) {
	case string:
		return []byte(src), nil
	case []byte:
		return src, nil
	case nil:
		return os.ReadFile(filename)
	default:
		return nil, fmt.Errorf("invalid source: %T", src)
	}
}

func scan(filename string, src interface{}) ([]token, error) {
	data, err := readSource(filename, src)
	if err != nil {
		return nil, err
	}
	sc := &scanner{rest: data, pos: MakePosition(&filename, 1, 1)}
	for {
		tok, err := sc.next()
		if err != nil {
			return nil, err
		}
		sc.toks = append(sc.toks, tok)
		if tok.kind == EOF {
			return sc.toks, nil
		}
	}
}

func (sc *scanner) peekRune() rune {
	if len(sc.rest) == 0 {
		return 0
	}
	if b := sc.rest[0]; b < utf8.RuneSelf {
		return rune(b)
	}
	r, _ := utf8.DecodeRune(sc.rest)
	return r
}

// peekAt returns the byte at offset i of the remaining input, or 0.
func (sc *scanner) peekAt(i int) byte {
	if i < len(sc.rest) {
		return sc.rest[i]
	}
	return 0
}

func (sc *scanner) readRune() rune {
	r, size := utf8.DecodeRune(sc.rest)
	sc.rest = sc.rest[size:]
	if r == '\n' {
		sc.pos.Line++
		sc.pos.Col = 1
	} else {
		sc.pos.Col++
	}
	return r
}

func (sc *scanner) errorf(pos Position, format string, args ...interface{}) error {
	return Error{pos, fmt.Sprintf(format, args...)}
}

func (sc *scanner) next() (token, error) {
	// skip spaces and comments
	for {
		c := sc.peekRune()
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			sc.readRune()
			continue
		case c == '/' && sc.peekAt(1) == '/':
			for len(sc.rest) > 0 && sc.peekRune() != '\n' {
				sc.readRune()
			}
			continue
		case c == '/' && sc.peekAt(1) == '*':
			start := sc.pos
			sc.readRune()
			sc.readRune()
			for {
				if len(sc.rest) == 0 {
					return token{}, sc.errorf(start, "unterminated block comment")
				}
				if sc.peekRune() == '*' && sc.peekAt(1) == '/' {
					sc.readRune()
					sc.readRune()
					break
				}
				sc.readRune()
			}
			continue
		}
		break
	}

	start := sc.pos
	if len(sc.rest) == 0 {
		return token{EOF, start, ""}, nil
	}
	text := sc.rest
	c := sc.peekRune()

	// raw text consumed so far
	raw := func() string {
		return string(text[:len(text)-len(sc.rest)])
	}

	switch {
	case isIdentStart(c):
		for isIdent(sc.peekRune()) {
			sc.readRune()
		}
		s := raw()
		if k, ok := keywordToken[s]; ok {
			return token{k, start, s}, nil
		}
		return token{IDENT, start, s}, nil

	case isDigit(c):
		return sc.scanNumber(start, raw)

	case c == '"':
		return sc.scanString(start, raw, false)

	case c == '@' && sc.peekAt(1) == '"':
		sc.readRune()
		return sc.scanString(start, raw, true)
	}

	// punctuation
	sc.readRune()
	two := func(next byte, yes, no Token) (token, error) {
		if sc.peekAt(0) == next {
			sc.readRune()
			return token{yes, start, raw()}, nil
		}
		return token{no, start, raw()}, nil
	}
	switch c {
	case '+':
		return two('=', PLUS_EQ, PLUS)
	case '-':
		return two('=', MINUS_EQ, MINUS)
	case '*':
		return two('=', STAR_EQ, STAR)
	case '/':
		return two('=', SLASH_EQ, SLASH)
	case '%':
		return token{PERCENT, start, raw()}, nil
	case '&':
		return two('&', ANDAND, AMP)
	case '|':
		return two('|', OROR, PIPE)
	case '^':
		return token{CIRCUMFLEX, start, raw()}, nil
	case '~':
		return token{TILDE, start, raw()}, nil
	case '!':
		return two('=', NEQ, BANG)
	case '=':
		return two('=', EQL, EQ)
	case '<':
		if sc.peekAt(0) == '<' {
			sc.readRune()
			return token{LTLT, start, raw()}, nil
		}
		return two('=', LE, LT)
	case '>':
		if sc.peekAt(0) == '>' {
			sc.readRune()
			return token{GTGT, start, raw()}, nil
		}
		return two('=', GE, GT)
	case '.':
		return token{DOT, start, raw()}, nil
	case ',':
		return token{COMMA, start, raw()}, nil
	case ';':
		return token{SEMI, start, raw()}, nil
	case ':':
		return token{COLON, start, raw()}, nil
	case '(':
		return token{LPAREN, start, raw()}, nil
	case ')':
		return token{RPAREN, start, raw()}, nil
	case '[':
		return token{LBRACK, start, raw()}, nil
	case ']':
		return token{RBRACK, start, raw()}, nil
	case '{':
		return token{LBRACE, start, raw()}, nil
	case '}':
		return token{RBRACE, start, raw()}, nil
	}
	return token{}, sc.errorf(start, "unexpected input character %#q", c)
}

// scanNumber consumes a numeric literal including any base prefix,
// fraction and suffix letters. Interpretation is left to the binder.
func (sc *scanner) scanNumber(start Position, raw func() string) (token, error) {
	fraction := true
	if sc.peekAt(0) == '0' && (sc.peekAt(1) == 'x' || sc.peekAt(1) == 'X' || sc.peekAt(1) == 'b' || sc.peekAt(1) == 'B') {
		sc.readRune()
		sc.readRune()
		fraction = false
	}
	for {
		c := sc.peekRune()
		if isDigit(c) || isLetter(c) || c == '_' {
			sc.readRune()
			continue
		}
		if c == '.' && fraction && isDigit(rune(sc.peekAt(1))) {
			sc.readRune()
			fraction = false
			continue
		}
		break
	}
	return token{NUMBER, start, raw()}, nil
}

// scanString consumes a quoted string. Escape sequences are skipped over
// but not interpreted; a raw string ends at the first closing quote.
func (sc *scanner) scanString(start Position, raw func() string, isRaw bool) (token, error) {
	sc.readRune() // opening quote
	for {
		if len(sc.rest) == 0 {
			return token{}, sc.errorf(start, "unexpected EOF in string")
		}
		c := sc.readRune()
		if c == '"' {
			break
		}
		if c == '\n' && !isRaw {
			return token{}, sc.errorf(start, "unexpected newline in string")
		}
		if c == '\\' && !isRaw {
			if len(sc.rest) == 0 {
				return token{}, sc.errorf(start, "unexpected EOF in string")
			}
			sc.readRune()
		}
	}
	return token{STRING, start, raw()}, nil
}

func isDigit(c rune) bool  { return '0' <= c && c <= '9' }
func isLetter(c rune) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

func isIdentStart(c rune) bool {
	return isLetter(c) || c == '_' || c >= 0x80 && unicode.IsLetter(c)
}

func isIdent(c rune) bool {
	return isDigit(c) || isIdentStart(c)
}
