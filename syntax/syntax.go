// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package syntax provides a Cinder parser and abstract syntax tree.
//
// Syntax trees are immutable once parsed. Every node reports its
// source span, which later phases use to locate diagnostics.
package syntax

// A Node is a node in a Cinder syntax tree.
type Node interface {
	// Span returns the start and end position of the node.
	Span() (start, end Position)
}

// Start returns the start position of the node.
func Start(n Node) Position {
	start, _ := n.Span()
	return start
}

// End returns the end position of the node.
func End(n Node) Position {
	_, end := n.Span()
	return end
}

// A File represents a Cinder source file.
type File struct {
	Path   string
	Usings []*UsingDecl
	Decls  []Decl
}

func (x *File) Span() (start, end Position) {
	var first, last Node
	if len(x.Usings) > 0 {
		first = x.Usings[0]
	}
	if len(x.Decls) > 0 {
		if first == nil {
			first = x.Decls[0]
		}
		last = x.Decls[len(x.Decls)-1]
	} else if len(x.Usings) > 0 {
		last = x.Usings[len(x.Usings)-1]
	}
	if first == nil {
		return
	}
	return Start(first), End(last)
}

// A UsingDecl imports a namespace or declares a type alias:
//
//	using System;
//	using Con = System.Console;
type UsingDecl struct {
	Using Position
	Alias *Ident // optional
	Name  Expr   // Ident or DotExpr
	Semi  Position
}

func (x *UsingDecl) Span() (start, end Position) {
	return x.Using, x.Semi.add(";")
}

// A Decl is a top-level declaration.
type Decl interface {
	Node
	decl()
}

func (*FuncDecl) decl()   {}
func (*VarStmt) decl()    {}
func (*ScriptStmt) decl() {}

// A FuncDecl declares a function: Result Name(Params) Body.
type FuncDecl struct {
	Result *TypeExpr
	Name   *Ident
	Lparen Position
	Params []*Param
	Rparen Position
	Body   *BlockStmt
}

func (x *FuncDecl) Span() (start, end Position) {
	return Start(x.Result), End(x.Body)
}

// A Param is a function parameter: Type Name.
type Param struct {
	Type *TypeExpr
	Name *Ident
}

func (x *Param) Span() (start, end Position) {
	return Start(x.Type), End(x.Name)
}

// A ScriptStmt is a statement appearing at top level of a script.
type ScriptStmt struct {
	Stmt Stmt
}

func (x *ScriptStmt) Span() (start, end Position) { return x.Stmt.Span() }

// A TypeExpr names a type: a dotted name followed by Rank pairs of brackets.
type TypeExpr struct {
	Name   Expr // Ident or DotExpr
	Rank   int
	Rbrack Position // position of last ']', if Rank > 0
}

func (x *TypeExpr) Span() (start, end Position) {
	start, end = x.Name.Span()
	if x.Rank > 0 {
		end = x.Rbrack.add("]")
	}
	return
}

// A Stmt is a Cinder statement.
type Stmt interface {
	Node
	stmt()
}

func (*BlockStmt) stmt()  {}
func (*BranchStmt) stmt() {}
func (*EmptyStmt) stmt()  {}
func (*ExprStmt) stmt()   {}
func (*IfStmt) stmt()     {}
func (*LoopStmt) stmt()   {}
func (*ReturnStmt) stmt() {}
func (*VarStmt) stmt()    {}

// A BlockStmt is a braced statement list.
type BlockStmt struct {
	Lbrace Position
	List   []Stmt
	Rbrace Position
}

func (x *BlockStmt) Span() (start, end Position) {
	return x.Lbrace, x.Rbrace.add("}")
}

// A BranchStmt changes the flow of control: break, continue.
type BranchStmt struct {
	Token    Token // = BREAK | CONTINUE
	TokenPos Position
	Semi     Position
}

func (x *BranchStmt) Span() (start, end Position) {
	return x.TokenPos, x.Semi.add(";")
}

// An EmptyStmt is a lone semicolon.
type EmptyStmt struct {
	Semi Position
}

func (x *EmptyStmt) Span() (start, end Position) {
	return x.Semi, x.Semi.add(";")
}

// An ExprStmt is an expression evaluated for side effects.
type ExprStmt struct {
	X    Expr
	Semi Position
}

func (x *ExprStmt) Span() (start, end Position) {
	return Start(x.X), x.Semi.add(";")
}

// An IfStmt is a chain of conditional clauses with an optional final else:
//
//	if (a) s1 else unless (b) s2 else s3
//
// The chain is kept flat; each clause is an 'if' or an 'unless'.
type IfStmt struct {
	Clauses []*CondClause // len >= 1
	ElsePos Position
	Else    Stmt // optional
}

func (x *IfStmt) Span() (start, end Position) {
	start = x.Clauses[0].Pos
	if x.Else != nil {
		_, end = x.Else.Span()
	} else {
		_, end = x.Clauses[len(x.Clauses)-1].Body.Span()
	}
	return
}

// A CondClause is one 'if (Cond) Body' or 'unless (Cond) Body' link.
type CondClause struct {
	Pos    Position // IF or UNLESS
	Unless bool
	Cond   Expr
	Body   Stmt
}

func (x *CondClause) Span() (start, end Position) {
	return x.Pos, End(x.Body)
}

// A LoopStmt is 'while (Cond) Body' or 'until (Cond) Body'.
type LoopStmt struct {
	Pos   Position
	Until bool
	Cond  Expr
	Body  Stmt
}

func (x *LoopStmt) Span() (start, end Position) {
	return x.Pos, End(x.Body)
}

// A ReturnStmt returns from a function.
type ReturnStmt struct {
	Return Position
	Result Expr // may be nil
	Semi   Position
}

func (x *ReturnStmt) Span() (start, end Position) {
	return x.Return, x.Semi.add(";")
}

// A VarStmt declares a variable: 'let Name = Value;' or 'const Name = Value;'.
// At top level it is also a declaration.
type VarStmt struct {
	Pos   Position
	Const bool
	Name  *Ident
	Value Expr
	Semi  Position
}

func (x *VarStmt) Span() (start, end Position) {
	return x.Pos, x.Semi.add(";")
}

// An Expr is a Cinder expression.
type Expr interface {
	Node
	expr()
}

func (*AssignExpr) expr() {}
func (*BinaryExpr) expr() {}
func (*CallExpr) expr()   {}
func (*DotExpr) expr()    {}
func (*Ident) expr()      {}
func (*Literal) expr()    {}
func (*NewExpr) expr()    {}
func (*ParenExpr) expr()  {}
func (*UnaryExpr) expr()  {}

// An Ident represents an identifier.
type Ident struct {
	NamePos Position
	Name    string
}

func (x *Ident) Span() (start, end Position) {
	return x.NamePos, x.NamePos.add(x.Name)
}

// A Literal represents a literal number, string, boolean or null.
// The text is uninterpreted; numeric suffixes and escapes are decoded
// during binding.
type Literal struct {
	Token    Token // = NUMBER | STRING | TRUE | FALSE | NULL
	TokenPos Position
	Raw      string
}

func (x *Literal) Span() (start, end Position) {
	return x.TokenPos, x.TokenPos.add(x.Raw)
}

// A ParenExpr represents a parenthesized expression: (X).
type ParenExpr struct {
	Lparen Position
	X      Expr
	Rparen Position
}

func (x *ParenExpr) Span() (start, end Position) {
	return x.Lparen, x.Rparen.add(")")
}

// A UnaryExpr represents a unary expression: Op X.
type UnaryExpr struct {
	OpPos Position
	Op    Token
	X     Expr
}

func (x *UnaryExpr) Span() (start, end Position) {
	return x.OpPos, End(x.X)
}

// A BinaryExpr represents a binary expression: X Op Y.
type BinaryExpr struct {
	X     Expr
	OpPos Position
	Op    Token
	Y     Expr
}

func (x *BinaryExpr) Span() (start, end Position) {
	return Start(x.X), End(x.Y)
}

// An AssignExpr represents an assignment: LHS Op RHS,
// where Op is one of = += -= *= /=.
type AssignExpr struct {
	LHS   Expr
	OpPos Position
	Op    Token
	RHS   Expr
}

func (x *AssignExpr) Span() (start, end Position) {
	return Start(x.LHS), End(x.RHS)
}

// A DotExpr represents a field, property or method selector: X.Name.
type DotExpr struct {
	X    Expr
	Dot  Position
	Name *Ident
}

func (x *DotExpr) Span() (start, end Position) {
	return Start(x.X), End(x.Name)
}

// A CallExpr represents a function call expression: Fn(Args).
type CallExpr struct {
	Fn     Expr
	Lparen Position
	Args   []*Arg
	Rparen Position
}

func (x *CallExpr) Span() (start, end Position) {
	return Start(x.Fn), x.Rparen.add(")")
}

// An Arg is a call argument, optionally named: 'Name: Value'.
type Arg struct {
	Name  *Ident // nil for positional arguments
	Value Expr
}

func (x *Arg) Span() (start, end Position) {
	if x.Name != nil {
		return Start(x.Name), End(x.Value)
	}
	return x.Value.Span()
}

// A NewExpr represents object creation: new Type(Args).
type NewExpr struct {
	New    Position
	Type   *TypeExpr
	Lparen Position
	Args   []*Arg
	Rparen Position
}

func (x *NewExpr) Span() (start, end Position) {
	return x.New, x.Rparen.add(")")
}

// QualifiedName returns the dotted name denoted by an Ident or a
// chain of DotExprs over an Ident, or "" if x is not of that form.
func QualifiedName(x Expr) string {
	switch x := x.(type) {
	case *Ident:
		return x.Name
	case *DotExpr:
		if base := QualifiedName(x.X); base != "" {
			return base + "." + x.Name.Name
		}
	}
	return ""
}
