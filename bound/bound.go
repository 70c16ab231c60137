// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bound defines the bound tree: the typed, diagnosed
// representation of a Cinder program produced by the binder.
//
// The node types form a closed set. Nodes are immutable once
// constructed; all derived properties (Constant, ReadOnly, LValue) are
// computed from a node's fields rather than stored independently.
//
// Each node records the syntax it was bound from and its
// diagnostics: those raised while binding the node itself (Own)
// together with all those of its children (Diagnostics). Because the
// union is computed by the constructors, the diagnostics of a tree
// are always available at its root.
package bound

import (
	"go.cinder.dev/constant"
	"go.cinder.dev/diag"
	"go.cinder.dev/host"
	"go.cinder.dev/symbols"
	"go.cinder.dev/syntax"
)

// A Node is a node of the bound tree.
type Node interface {
	// Syntax returns the syntax the node was bound from,
	// or nil for nodes synthesized by the binder.
	Syntax() syntax.Node

	// Own returns the diagnostics raised while binding this node.
	Own() diag.List

	// Diagnostics returns the diagnostics of this node and all its children.
	Diagnostics() diag.List
}

type node struct {
	syntax syntax.Node
	own    diag.List
	all    diag.List
}

func (n *node) Syntax() syntax.Node    { return n.syntax }
func (n *node) Own() diag.List         { return n.own }
func (n *node) Diagnostics() diag.List { return n.all }

func (n *node) init(syn syntax.Node, own diag.List, children ...diag.List) {
	n.syntax = syn
	n.own = own
	n.all = diag.Concat(append(children, own)...)
}

func diagsOf(e Expr) diag.List {
	if e == nil {
		return nil
	}
	return e.Diagnostics()
}

func exprDiags(list []Expr) diag.List {
	var lists []diag.List
	for _, e := range list {
		lists = append(lists, e.Diagnostics())
	}
	return diag.Concat(lists...)
}

// ---- Expressions ----

// An Expr is a bound expression.
type Expr interface {
	Node

	// Type returns the result type of the expression.
	Type() *symbols.TypeSymbol

	// Constant reports whether the expression has a compile-time constant value.
	Constant() bool

	// ReadOnly reports whether the expression denotes a location
	// that may not be assigned.
	ReadOnly() bool

	// LValue reports whether the expression denotes a location.
	LValue() bool

	exprNode()
}

type expr struct {
	node
	typ *symbols.TypeSymbol
}

func (e *expr) Type() *symbols.TypeSymbol { return e.typ }
func (e *expr) Constant() bool            { return false }
func (e *expr) ReadOnly() bool            { return false }
func (e *expr) LValue() bool              { return false }
func (e *expr) exprNode()                 {}

// A Const is a constant value, such as a literal.
// Value is nil for a literal that could not be decoded.
type Const struct {
	expr
	Value constant.Value
}

func NewConst(syn syntax.Node, v constant.Value, typ *symbols.TypeSymbol, own diag.List) *Const {
	e := &Const{Value: v}
	e.typ = typ
	e.init(syn, own)
	return e
}

func (e *Const) Constant() bool { return e.Value != nil }
func (e *Const) ReadOnly() bool { return true }

// A Var is a reference to a variable.
type Var struct {
	expr
	Variable *symbols.Variable
}

func NewVar(syn syntax.Node, v *symbols.Variable, own diag.List) *Var {
	e := &Var{Variable: v}
	e.typ = v.Type
	e.init(syn, own)
	return e
}

func (e *Var) Constant() bool { return e.Variable.Constant }
func (e *Var) ReadOnly() bool { return e.Variable.ReadOnly }
func (e *Var) LValue() bool   { return true }

// A Unary is a unary operation. Op is invalid if the operator
// could not be resolved for the operand type.
type Unary struct {
	expr
	Op UnaryOp
	X  Expr
}

func NewUnary(syn syntax.Node, op UnaryOp, x Expr, typ *symbols.TypeSymbol, own diag.List) *Unary {
	e := &Unary{Op: op, X: x}
	e.typ = typ
	e.init(syn, own, x.Diagnostics())
	return e
}

func (e *Unary) Constant() bool { return e.Op.IsValid() && e.X.Constant() }

// A Binary is a binary operation. Op is invalid if the operator
// could not be resolved for the operand types.
type Binary struct {
	expr
	X  Expr
	Op BinaryOp
	Y  Expr
}

func NewBinary(syn syntax.Node, x Expr, op BinaryOp, y Expr, typ *symbols.TypeSymbol, own diag.List) *Binary {
	e := &Binary{X: x, Op: op, Y: y}
	e.typ = typ
	e.init(syn, own, x.Diagnostics(), y.Diagnostics())
	return e
}

func (e *Binary) Constant() bool { return e.Op.IsValid() && e.X.Constant() && e.Y.Constant() }

// An Assignment stores RHS in the location denoted by LHS.
// For compound assignments, Operator is the resolved binary
// operation combining the two.
type Assignment struct {
	expr
	Op       AssignOp
	Operator BinaryOp
	LHS      Expr
	RHS      Expr
}

func NewAssignment(syn syntax.Node, op AssignOp, operator BinaryOp, lhs, rhs Expr, typ *symbols.TypeSymbol, own diag.List) *Assignment {
	e := &Assignment{Op: op, Operator: operator, LHS: lhs, RHS: rhs}
	e.typ = typ
	e.init(syn, own, lhs.Diagnostics(), rhs.Diagnostics())
	return e
}

// A FieldAccess reads a host field. X is nil for static fields.
type FieldAccess struct {
	expr
	X     Expr
	Field host.Member
}

func NewFieldAccess(syn syntax.Node, x Expr, f host.Member, typ *symbols.TypeSymbol, own diag.List) *FieldAccess {
	e := &FieldAccess{X: x, Field: f}
	e.typ = typ
	e.init(syn, own, diagsOf(x))
	return e
}

func (e *FieldAccess) ReadOnly() bool { return !e.Field.CanSet() }
func (e *FieldAccess) LValue() bool   { return true }

// A PropertyAccess reads a host property. X is nil for static properties.
type PropertyAccess struct {
	expr
	X        Expr
	Property host.Member
}

func NewPropertyAccess(syn syntax.Node, x Expr, p host.Member, typ *symbols.TypeSymbol, own diag.List) *PropertyAccess {
	e := &PropertyAccess{X: x, Property: p}
	e.typ = typ
	e.init(syn, own, diagsOf(x))
	return e
}

func (e *PropertyAccess) ReadOnly() bool { return !e.Property.CanSet() }
func (e *PropertyAccess) LValue() bool   { return true }

// An InvalidAccess is a selection of a member that does not exist.
// It cannot be emitted; it keeps the shape of the tree regular.
type InvalidAccess struct {
	expr
	X    Expr
	Name string
}

func NewInvalidAccess(syn syntax.Node, x Expr, name string, typ *symbols.TypeSymbol, own diag.List) *InvalidAccess {
	e := &InvalidAccess{X: x, Name: name}
	e.typ = typ
	e.init(syn, own, diagsOf(x))
	return e
}

// A NativeCall calls a host method. X is nil for static methods.
// Args are in parameter order.
type NativeCall struct {
	expr
	X      Expr
	Method host.Member
	Args   []Expr
}

func NewNativeCall(syn syntax.Node, x Expr, m host.Member, args []Expr, typ *symbols.TypeSymbol, own diag.List) *NativeCall {
	e := &NativeCall{X: x, Method: m, Args: args}
	e.typ = typ
	e.init(syn, own, diagsOf(x), exprDiags(args))
	return e
}

// A UserCall calls a Cinder function. Args are in parameter order.
type UserCall struct {
	expr
	Function *symbols.Function
	Args     []Expr
}

func NewUserCall(syn syntax.Node, f *symbols.Function, args []Expr, own diag.List) *UserCall {
	e := &UserCall{Function: f, Args: args}
	e.typ = f.Result
	e.init(syn, own, exprDiags(args))
	return e
}

// An ObjectCreation creates an object by calling a host constructor.
type ObjectCreation struct {
	expr
	Constructor host.Member
	Args        []Expr
}

func NewObjectCreation(syn syntax.Node, ctor host.Member, args []Expr, typ *symbols.TypeSymbol, own diag.List) *ObjectCreation {
	e := &ObjectCreation{Constructor: ctor, Args: args}
	e.typ = typ
	e.init(syn, own, exprDiags(args))
	return e
}

// A TypeName is a reference to a type, as in the operand of a static
// member selection.
type TypeName struct {
	expr
}

func NewTypeName(syn syntax.Node, typ *symbols.TypeSymbol, own diag.List) *TypeName {
	e := new(TypeName)
	e.typ = typ
	e.init(syn, own)
	return e
}

// An Error stands for an expression that could not be bound.
// Its own diagnostics explain why. Any subexpressions that were
// bound before the failure are retained in Parts.
type Error struct {
	expr
	Parts []Expr
}

func NewError(syn syntax.Node, parts []Expr, typ *symbols.TypeSymbol, own diag.List) *Error {
	e := &Error{Parts: parts}
	e.typ = typ
	e.init(syn, own, exprDiags(parts))
	return e
}

// ---- Statements ----

// A Stmt is a bound statement.
type Stmt interface {
	Node
	stmtNode()
}

type stmt struct{ node }

func (*stmt) stmtNode() {}

// A Block is a sequence of statements with its own scope.
type Block struct {
	stmt
	Scope symbols.Scope
	List  []Stmt
}

func NewBlock(syn syntax.Node, scope symbols.Scope, list []Stmt, own diag.List) *Block {
	s := &Block{Scope: scope, List: list}
	lists := make([]diag.List, len(list))
	for i, x := range list {
		lists[i] = x.Diagnostics()
	}
	s.init(syn, own, lists...)
	return s
}

// An ExprStmt evaluates an expression for its effects.
type ExprStmt struct {
	stmt
	X Expr
}

func NewExprStmt(syn syntax.Node, x Expr, own diag.List) *ExprStmt {
	s := &ExprStmt{X: x}
	s.init(syn, own, x.Diagnostics())
	return s
}

// A VarDecl declares a variable and initializes it.
type VarDecl struct {
	stmt
	Variable *symbols.Variable
	Init     Expr
}

func NewVarDecl(syn syntax.Node, v *symbols.Variable, init Expr, own diag.List) *VarDecl {
	s := &VarDecl{Variable: v, Init: init}
	s.init(syn, own, init.Diagnostics())
	return s
}

// A Return returns from the enclosing function.
// Value is nil for a return without a value.
type Return struct {
	stmt
	Value Expr
}

func NewReturn(syn syntax.Node, value Expr, own diag.List) *Return {
	s := &Return{Value: value}
	s.init(syn, own, diagsOf(value))
	return s
}

// An If executes Then if Cond is true and Else otherwise.
// Both branches are always present; a missing branch is a NoOp.
type If struct {
	stmt
	Cond Expr
	Then Stmt
	Else Stmt
}

func NewIf(syn syntax.Node, cond Expr, then, els Stmt, own diag.List) *If {
	s := &If{Cond: cond, Then: then, Else: els}
	s.init(syn, own, cond.Diagnostics(), then.Diagnostics(), els.Diagnostics())
	return s
}

// A LoopContext identifies a loop as the target of break and continue.
type LoopContext struct {
	Syntax *syntax.LoopStmt
}

// A Loop executes Body while Cond is true, or, if Negated,
// while Cond is false.
type Loop struct {
	stmt
	Cond    Expr
	Negated bool
	Body    Stmt
	Context *LoopContext
}

func NewLoop(syn syntax.Node, cond Expr, negated bool, body Stmt, ctx *LoopContext, own diag.List) *Loop {
	s := &Loop{Cond: cond, Negated: negated, Body: body, Context: ctx}
	s.init(syn, own, cond.Diagnostics(), body.Diagnostics())
	return s
}

// A Break exits the loop identified by Loop.
// Loop is nil if the statement is not within a loop.
type Break struct {
	stmt
	Loop *LoopContext
}

func NewBreak(syn syntax.Node, loop *LoopContext, own diag.List) *Break {
	s := &Break{Loop: loop}
	s.init(syn, own)
	return s
}

// A Continue starts the next iteration of the loop identified by Loop.
// Loop is nil if the statement is not within a loop.
type Continue struct {
	stmt
	Loop *LoopContext
}

func NewContinue(syn syntax.Node, loop *LoopContext, own diag.List) *Continue {
	s := &Continue{Loop: loop}
	s.init(syn, own)
	return s
}

// A NoOp does nothing.
type NoOp struct {
	stmt
}

func NewNoOp(syn syntax.Node, own diag.List) *NoOp {
	s := new(NoOp)
	s.init(syn, own)
	return s
}

// ---- Members ----

// A Member is a top-level declaration.
type Member interface {
	Node
	memberNode()
}

type member struct{ node }

func (*member) memberNode() {}

// A Func is a function declaration. Scope is the function scope
// holding the parameters.
type Func struct {
	member
	Function *symbols.Function
	Scope    symbols.Scope
	Body     *Block
}

func NewFunc(syn syntax.Node, f *symbols.Function, scope symbols.Scope, body *Block, own diag.List) *Func {
	m := &Func{Function: f, Scope: scope, Body: body}
	m.init(syn, own, body.Diagnostics())
	return m
}

// A VarMember is a top-level variable declaration.
type VarMember struct {
	member
	Variable *symbols.Variable
	Init     Expr
}

func NewVarMember(syn syntax.Node, v *symbols.Variable, init Expr, own diag.List) *VarMember {
	m := &VarMember{Variable: v, Init: init}
	m.init(syn, own, init.Diagnostics())
	return m
}

// A ScriptMember is a statement at top level of a script.
type ScriptMember struct {
	member
	Stmt Stmt
}

func NewScriptMember(syn syntax.Node, s Stmt, own diag.List) *ScriptMember {
	m := &ScriptMember{Stmt: s}
	m.init(syn, own, s.Diagnostics())
	return m
}

// A Program is the synthetic container of all top-level members of
// a compilation. EntryPoint is the unique function eligible to be the
// program entry point, or nil.
type Program struct {
	node
	Scope      symbols.Scope
	Members    []Member
	EntryPoint *Func
}

func NewProgram(scope symbols.Scope, members []Member, entry *Func, own diag.List) *Program {
	p := &Program{Scope: scope, Members: members, EntryPoint: entry}
	lists := make([]diag.List, len(members))
	for i, m := range members {
		lists[i] = m.Diagnostics()
	}
	p.init(nil, own, lists...)
	return p
}

// Funcs returns the function members of the program.
func (p *Program) Funcs() []*Func {
	var funcs []*Func
	for _, m := range p.Members {
		if f, ok := m.(*Func); ok {
			funcs = append(funcs, f)
		}
	}
	return funcs
}

var (
	_ Expr = (*Const)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Unary)(nil)
	_ Expr = (*Binary)(nil)
	_ Expr = (*Assignment)(nil)
	_ Expr = (*FieldAccess)(nil)
	_ Expr = (*PropertyAccess)(nil)
	_ Expr = (*InvalidAccess)(nil)
	_ Expr = (*NativeCall)(nil)
	_ Expr = (*UserCall)(nil)
	_ Expr = (*ObjectCreation)(nil)
	_ Expr = (*TypeName)(nil)
	_ Expr = (*Error)(nil)

	_ Stmt = (*Block)(nil)
	_ Stmt = (*ExprStmt)(nil)
	_ Stmt = (*VarDecl)(nil)
	_ Stmt = (*Return)(nil)
	_ Stmt = (*If)(nil)
	_ Stmt = (*Loop)(nil)
	_ Stmt = (*Break)(nil)
	_ Stmt = (*Continue)(nil)
	_ Stmt = (*NoOp)(nil)

	_ Member = (*Func)(nil)
	_ Member = (*VarMember)(nil)
	_ Member = (*ScriptMember)(nil)
)
