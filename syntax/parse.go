// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// This file defines a recursive-descent parser for Cinder.
// The grammar is C-like: declarations at top level, braced blocks,
// parenthesized conditions, and semicolon-terminated statements.

import "fmt"

// A Mode value is a set of flags (or 0) that controls optional parser functionality.
type Mode uint

const (
	ScriptMode Mode = 1 << iota // allow statements at top level
)

// Parse parses the input data and returns the corresponding parse tree.
//
// If src != nil, Parse parses the source from src and the filename
// is only used when recording position information.
// The type of the argument for the src parameter must be string or []byte.
// If src == nil, Parse parses the file specified by filename.
func Parse(filename string, src interface{}, mode Mode) (f *File, err error) {
	p, err := newParser(filename, src, mode)
	if err != nil {
		return nil, err
	}
	defer p.recover(&err)
	f = p.parseFile(filename)
	return f, nil
}

// ParseExpr parses a Cinder expression.
func ParseExpr(filename string, src interface{}, mode Mode) (expr Expr, err error) {
	p, err := newParser(filename, src, mode)
	if err != nil {
		return nil, err
	}
	defer p.recover(&err)
	expr = p.parseExpr()
	p.expect(EOF)
	return expr, nil
}

// ParseStmt parses a single Cinder statement.
func ParseStmt(filename string, src interface{}, mode Mode) (stmt Stmt, err error) {
	p, err := newParser(filename, src, mode)
	if err != nil {
		return nil, err
	}
	defer p.recover(&err)
	stmt = p.parseStmt()
	p.expect(EOF)
	return stmt, nil
}

type parser struct {
	mode Mode
	toks []token
	i    int
}

func newParser(filename string, src interface{}, mode Mode) (*parser, error) {
	toks, err := scan(filename, src)
	if err != nil {
		return nil, err
	}
	return &parser{mode: mode, toks: toks}, nil
}

// recover converts a panicking parse error into an ordinary error result.
func (p *parser) recover(err *error) {
	if e := recover(); e != nil {
		if e, ok := e.(Error); ok {
			*err = e
			return
		}
		panic(e)
	}
}

func (p *parser) errorf(pos Position, format string, args ...interface{}) {
	panic(Error{pos, fmt.Sprintf(format, args...)})
}

func (p *parser) tok() token { return p.peek(0) }

// peek returns the token n places ahead, or the final EOF.
func (p *parser) peek(n int) token {
	if p.i+n < len(p.toks) {
		return p.toks[p.i+n]
	}
	return p.toks[len(p.toks)-1]
}

func (p *parser) next() token {
	t := p.tok()
	if p.i < len(p.toks)-1 {
		p.i++
	}
	return t
}

// expect consumes a token of the given kind, returning its position.
func (p *parser) expect(kind Token) Position {
	t := p.tok()
	if t.kind != kind {
		p.errorf(t.pos, "got %#v, want %#v", t.kind, kind)
	}
	p.next()
	return t.pos
}

// file = using* decl*
func (p *parser) parseFile(filename string) *File {
	f := &File{Path: filename}
	for p.tok().kind == USING {
		f.Usings = append(f.Usings, p.parseUsing())
	}
	for p.tok().kind != EOF {
		f.Decls = append(f.Decls, p.parseDecl())
	}
	return f
}

// using = 'using' [IDENT '='] name ';'
func (p *parser) parseUsing() *UsingDecl {
	decl := &UsingDecl{Using: p.expect(USING)}
	if p.tok().kind == IDENT && p.peek(1).kind == EQ {
		decl.Alias = p.parseIdent()
		p.next()
	}
	decl.Name = p.parseName()
	decl.Semi = p.expect(SEMI)
	return decl
}

func (p *parser) parseDecl() Decl {
	switch p.tok().kind {
	case CONST, LET:
		return p.parseVarStmt()
	}
	if p.atFuncDecl() {
		return p.parseFuncDecl()
	}
	if p.mode&ScriptMode != 0 {
		return &ScriptStmt{p.parseStmt()}
	}
	t := p.tok()
	p.errorf(t.pos, "got %#v, want declaration", t.kind)
	panic("unreachable")
}

// atFuncDecl reports whether the upcoming tokens have the shape
// IDENT ('.' IDENT)* ('[' ']')* IDENT '('.
func (p *parser) atFuncDecl() bool {
	n := 0
	if p.peek(n).kind != IDENT {
		return false
	}
	n++
	for p.peek(n).kind == DOT && p.peek(n+1).kind == IDENT {
		n += 2
	}
	for p.peek(n).kind == LBRACK && p.peek(n+1).kind == RBRACK {
		n += 2
	}
	return p.peek(n).kind == IDENT && p.peek(n+1).kind == LPAREN
}

func (p *parser) parseFuncDecl() *FuncDecl {
	decl := &FuncDecl{Result: p.parseType(), Name: p.parseIdent()}
	decl.Lparen = p.expect(LPAREN)
	for p.tok().kind != RPAREN {
		if len(decl.Params) > 0 {
			p.expect(COMMA)
		}
		decl.Params = append(decl.Params, &Param{Type: p.parseType(), Name: p.parseIdent()})
	}
	decl.Rparen = p.expect(RPAREN)
	decl.Body = p.parseBlock()
	return decl
}

// type = name ('[' ']')*
func (p *parser) parseType() *TypeExpr {
	t := &TypeExpr{Name: p.parseName()}
	for p.tok().kind == LBRACK {
		p.next()
		t.Rbrack = p.expect(RBRACK)
		t.Rank++
	}
	return t
}

// name = IDENT ('.' IDENT)*
func (p *parser) parseName() Expr {
	var x Expr = p.parseIdent()
	for p.tok().kind == DOT {
		dot := p.next().pos
		x = &DotExpr{X: x, Dot: dot, Name: p.parseIdent()}
	}
	return x
}

func (p *parser) parseIdent() *Ident {
	t := p.tok()
	if t.kind != IDENT {
		p.errorf(t.pos, "got %#v, want identifier", t.kind)
	}
	p.next()
	return &Ident{NamePos: t.pos, Name: t.raw}
}

func (p *parser) parseStmt() Stmt {
	t := p.tok()
	switch t.kind {
	case LBRACE:
		return p.parseBlock()
	case CONST, LET:
		return p.parseVarStmt()
	case IF, UNLESS:
		return p.parseIfStmt()
	case WHILE, UNTIL:
		p.next()
		loop := &LoopStmt{Pos: t.pos, Until: t.kind == UNTIL}
		p.expect(LPAREN)
		loop.Cond = p.parseExpr()
		p.expect(RPAREN)
		loop.Body = p.parseStmt()
		return loop
	case RETURN:
		p.next()
		ret := &ReturnStmt{Return: t.pos}
		if p.tok().kind != SEMI {
			ret.Result = p.parseExpr()
		}
		ret.Semi = p.expect(SEMI)
		return ret
	case BREAK, CONTINUE:
		p.next()
		return &BranchStmt{Token: t.kind, TokenPos: t.pos, Semi: p.expect(SEMI)}
	case SEMI:
		p.next()
		return &EmptyStmt{Semi: t.pos}
	}
	x := p.parseExpr()
	return &ExprStmt{X: x, Semi: p.expect(SEMI)}
}

func (p *parser) parseBlock() *BlockStmt {
	block := &BlockStmt{Lbrace: p.expect(LBRACE)}
	for p.tok().kind != RBRACE {
		if p.tok().kind == EOF {
			p.errorf(p.tok().pos, "got %#v, want '}'", EOF)
		}
		block.List = append(block.List, p.parseStmt())
	}
	block.Rbrace = p.expect(RBRACE)
	return block
}

// var = ('const' | 'let') IDENT '=' expr ';'
func (p *parser) parseVarStmt() *VarStmt {
	t := p.next()
	stmt := &VarStmt{Pos: t.pos, Const: t.kind == CONST, Name: p.parseIdent()}
	p.expect(EQ)
	stmt.Value = p.parseExpr()
	stmt.Semi = p.expect(SEMI)
	return stmt
}

// if = ('if' | 'unless') '(' expr ')' stmt ['else' (if | stmt)]
func (p *parser) parseIfStmt() *IfStmt {
	stmt := new(IfStmt)
	for {
		t := p.next()
		clause := &CondClause{Pos: t.pos, Unless: t.kind == UNLESS}
		p.expect(LPAREN)
		clause.Cond = p.parseExpr()
		p.expect(RPAREN)
		clause.Body = p.parseStmt()
		stmt.Clauses = append(stmt.Clauses, clause)

		if p.tok().kind != ELSE {
			return stmt
		}
		elsePos := p.next().pos
		if k := p.tok().kind; k == IF || k == UNLESS {
			continue
		}
		stmt.ElsePos = elsePos
		stmt.Else = p.parseStmt()
		return stmt
	}
}

// expr = binary [assignop expr]
func (p *parser) parseExpr() Expr {
	x := p.parseBinary(1)
	switch op := p.tok(); op.kind {
	case EQ, PLUS_EQ, MINUS_EQ, STAR_EQ, SLASH_EQ:
		p.next()
		return &AssignExpr{LHS: x, OpPos: op.pos, Op: op.kind, RHS: p.parseExpr()}
	}
	return x
}

// precedence maps each binary operator to its precedence level.
// Higher binds tighter; zero means not a binary operator.
var precedence [maxToken]int8

func init() {
	for prec, ops := range [...][]Token{
		{OROR},
		{ANDAND},
		{PIPE},
		{CIRCUMFLEX},
		{AMP},
		{EQL, NEQ},
		{LT, LE, GT, GE},
		{LTLT, GTGT},
		{PLUS, MINUS},
		{STAR, SLASH, PERCENT},
	} {
		for _, op := range ops {
			precedence[op] = int8(prec + 1)
		}
	}
}

// parseBinary parses a left-associative chain of operators
// whose precedence is at least prec.
func (p *parser) parseBinary(prec int8) Expr {
	x := p.parseUnary()
	for {
		op := p.tok()
		opprec := precedence[op.kind]
		if opprec == 0 || opprec < prec {
			return x
		}
		p.next()
		y := p.parseBinary(opprec + 1)
		x = &BinaryExpr{X: x, OpPos: op.pos, Op: op.kind, Y: y}
	}
}

func (p *parser) parseUnary() Expr {
	switch t := p.tok(); t.kind {
	case PLUS, MINUS, BANG, TILDE:
		p.next()
		return &UnaryExpr{OpPos: t.pos, Op: t.kind, X: p.parseUnary()}
	}
	return p.parsePrimaryWithSuffix()
}

func (p *parser) parsePrimaryWithSuffix() Expr {
	x := p.parsePrimary()
	for {
		switch p.tok().kind {
		case DOT:
			dot := p.next().pos
			x = &DotExpr{X: x, Dot: dot, Name: p.parseIdent()}
		case LPAREN:
			call := &CallExpr{Fn: x}
			call.Lparen, call.Args, call.Rparen = p.parseArgs()
			x = call
		default:
			return x
		}
	}
}

func (p *parser) parsePrimary() Expr {
	t := p.tok()
	switch t.kind {
	case IDENT:
		return p.parseIdent()
	case NUMBER, STRING, TRUE, FALSE, NULL:
		p.next()
		return &Literal{Token: t.kind, TokenPos: t.pos, Raw: t.raw}
	case LPAREN:
		p.next()
		x := p.parseExpr()
		return &ParenExpr{Lparen: t.pos, X: x, Rparen: p.expect(RPAREN)}
	case NEW:
		p.next()
		x := &NewExpr{New: t.pos, Type: p.parseType()}
		x.Lparen, x.Args, x.Rparen = p.parseArgs()
		return x
	}
	p.errorf(t.pos, "got %#v, want primary expression", t.kind)
	panic("unreachable")
}

// args = '(' [arg (',' arg)*] ')'
// arg = [IDENT ':'] expr
func (p *parser) parseArgs() (lparen Position, args []*Arg, rparen Position) {
	lparen = p.expect(LPAREN)
	for p.tok().kind != RPAREN {
		if len(args) > 0 {
			p.expect(COMMA)
		}
		arg := new(Arg)
		if p.tok().kind == IDENT && p.peek(1).kind == COLON {
			arg.Name = p.parseIdent()
			p.next()
		}
		arg.Value = p.parseExpr()
		args = append(args, arg)
	}
	rparen = p.expect(RPAREN)
	return lparen, args, rparen
}
