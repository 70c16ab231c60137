// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binder

import (
	"fmt"

	"go.cinder.dev/bound"
	"go.cinder.dev/diag"
	"go.cinder.dev/host"
	"go.cinder.dev/symbols"
	"go.cinder.dev/syntax"
)

func (b *Binder) bindStmts(list []syntax.Stmt) []bound.Stmt {
	out := make([]bound.Stmt, len(list))
	for i, s := range list {
		out[i] = b.bindStmt(s)
	}
	return out
}

// bindStmt binds a statement.
func (b *Binder) bindStmt(s syntax.Stmt) bound.Stmt {
	switch s := s.(type) {
	case *syntax.BlockStmt:
		scope := b.scope.Child(symbols.BlockScope)
		return bound.NewBlock(s, scope, b.withScope(scope).bindStmts(s.List), nil)

	case *syntax.ExprStmt:
		return bound.NewExprStmt(s, b.bindExpr(s.X), nil)

	case *syntax.VarStmt:
		v, init, own := b.bindVar(s, symbols.Local)
		return bound.NewVarDecl(s, v, init, own)

	case *syntax.ReturnStmt:
		return b.bindReturn(s)

	case *syntax.IfStmt:
		return b.bindIf(s)

	case *syntax.LoopStmt:
		cond, own := b.bindCondition(s.Cond)
		ctx := &bound.LoopContext{Syntax: s}
		body := b.withLoop(ctx).bindBody(s.Body)
		return bound.NewLoop(s, cond, s.Until, body, ctx, own)

	case *syntax.BranchStmt:
		var own diag.List
		if b.loop == nil {
			own = diag.List{diag.Errorf(s, diag.NoEnclosingLoop, "%s is not within a loop", s.Token)}
		}
		if s.Token == syntax.BREAK {
			return bound.NewBreak(s, b.loop, own)
		}
		return bound.NewContinue(s, b.loop, own)

	case *syntax.EmptyStmt:
		return bound.NewNoOp(s, nil)
	}
	panic(fmt.Sprintf("unexpected statement %T", s))
}

// bindBody binds the body of a conditional or loop.
// A body that is not a block still gets a scope of its own.
func (b *Binder) bindBody(s syntax.Stmt) bound.Stmt {
	if _, ok := s.(*syntax.BlockStmt); ok {
		return b.bindStmt(s)
	}
	return b.withScope(b.scope.Child(symbols.BlockScope)).bindStmt(s)
}

// bindCondition binds the condition of an if or loop, which must be a bool.
func (b *Binder) bindCondition(x syntax.Expr) (bound.Expr, diag.List) {
	cond := b.bindExpr(x)
	if failed(cond) || cond.Type().Is(host.Boolean) {
		return cond, nil
	}
	return cond, diag.List{diag.Errorf(x, diag.TypeMismatch, "condition must be bool, not %s", cond.Type())}
}

// bindIf binds a chain of if and unless clauses into nested
// conditionals, innermost last. An unless clause swaps its branches.
func (b *Binder) bindIf(s *syntax.IfStmt) bound.Stmt {
	type clause struct {
		cond bound.Expr
		own  diag.List
		body bound.Stmt
	}
	clauses := make([]clause, len(s.Clauses))
	for i, c := range s.Clauses {
		cond, own := b.bindCondition(c.Cond)
		clauses[i] = clause{cond, own, b.bindBody(c.Body)}
	}
	var els bound.Stmt
	if s.Else != nil {
		els = b.bindBody(s.Else)
	} else {
		els = bound.NewNoOp(nil, nil)
	}
	for i := len(clauses) - 1; i >= 0; i-- {
		c := clauses[i]
		then := c.body
		if s.Clauses[i].Unless {
			then, els = els, then
		}
		var syn syntax.Node = s.Clauses[i]
		if i == 0 {
			syn = s
		}
		els = bound.NewIf(syn, c.cond, then, els, c.own)
	}
	return els
}

// bindVar binds a let or const declaration and declares its variable.
func (b *Binder) bindVar(s *syntax.VarStmt, kind symbols.VarKind) (*symbols.Variable, bound.Expr, diag.List) {
	init := b.bindExpr(s.Value)
	var own diag.List
	typ := init.Type()
	if typ.Is(host.Void) {
		own = append(own, diag.Errorf(s.Value, diag.UnsupportedType, "cannot declare %s of type void", s.Name.Name))
	}
	if _, ok := init.(*bound.TypeName); ok {
		own = append(own, diag.Errorf(s.Value, diag.UnsupportedType, "%s is a type, not a value", typ))
		typ = b.invalid()
	}
	v := &symbols.Variable{
		Name:     s.Name.Name,
		Kind:     kind,
		Type:     typ,
		ReadOnly: s.Const,
		Constant: s.Const && init.Constant(),
		Decl:     s,
	}
	if prev := b.scope.DeclareVariable(v); prev != v {
		// Redeclaration in the same scope refers to the first variable.
		v = prev
		switch {
		case v.ReadOnly:
			own = append(own, diag.Errorf(s.Name, diag.ReadOnlyVariable, "Variable %s is read-only", v.Name))
		case !failed(init) && !v.Type.Equal(init.Type()):
			own = append(own, diag.Errorf(s.Value, diag.TypeMismatch,
				"cannot assign %s to variable %s of type %s", init.Type(), v.Name, v.Type))
		}
	}
	return v, init, own
}

func (b *Binder) bindReturn(s *syntax.ReturnStmt) bound.Stmt {
	var value bound.Expr
	if s.Result != nil {
		value = b.bindExpr(s.Result)
	}
	if b.fn == nil {
		return bound.NewReturn(s, value, diag.List{
			diag.Errorf(s, diag.UnexpectedStatement, "return is not within a function")})
	}
	want := b.fn.Result
	var own diag.List
	switch {
	case !want.IsValid() || value != nil && failed(value):
	case value == nil && !want.Is(host.Void):
		own = append(own, diag.Errorf(s, diag.TypeMismatch, "missing return value of type %s", want))
	case value != nil && !value.Type().Equal(want):
		own = append(own, diag.Errorf(s.Result, diag.TypeMismatch,
			"cannot return %s from function %s returning %s", value.Type(), b.fn.Name, want))
	}
	return bound.NewReturn(s, value, own)
}
