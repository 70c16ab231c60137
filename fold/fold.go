// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fold implements constant folding over bound trees.
//
// A unary or binary operation whose operands are constants of the same
// kind is replaced by its value. The initializer of a const variable
// that folds to a constant is recorded, and every later reference to
// the variable is replaced by that constant. A let variable is never
// substituted, though its initializer may itself fold.
//
// Folding never changes the diagnostics of a tree: a replacement
// constant carries all the diagnostics of the node it replaces.
//
// The binder marks a const variable constant when its initializer is
// built from constants alone, but some such initializers have no
// value, such as 1 / 0. Folding clears the Constant flag of those
// variables, so that neither they nor the expressions using them
// report themselves constant.
package fold // import "go.cinder.dev/fold"

import (
	"go.cinder.dev/bound"
	"go.cinder.dev/constant"
	"go.cinder.dev/symbols"
)

// A Folder folds trees, remembering the values of the const variables
// it has seen so that later trees, such as successive REPL inputs,
// may refer to them.
//
// A Folder is not safe for concurrent use.
type Folder struct {
	consts map[*symbols.Variable]constant.Value
	r      bound.Rewriter
}

// New returns a Folder that knows no constants.
func New() *Folder {
	f := &Folder{consts: make(map[*symbols.Variable]constant.Value)}
	f.r = bound.Rewriter{Expr: f.expr, Stmt: f.stmt, Member: f.member}
	return f
}

// Program folds a program with a new Folder.
func Program(p *bound.Program) *bound.Program { return New().Program(p) }

// Program returns p with its constant expressions folded.
// Top-level variables are folded before any function, so that
// functions declared before a constant may refer to its value.
func (f *Folder) Program(p *bound.Program) *bound.Program {
	for _, m := range p.Members {
		if v, ok := m.(*bound.VarMember); ok {
			f.record(v.Variable, f.r.RewriteExpr(v.Init))
		}
	}
	return f.r.RewriteProgram(p)
}

// Expr returns e with its constant subexpressions folded.
func (f *Folder) Expr(e bound.Expr) bound.Expr { return f.r.RewriteExpr(e) }

// Value returns the recorded value of a const variable.
func (f *Folder) Value(v *symbols.Variable) (constant.Value, bool) {
	x, ok := f.consts[v]
	return x, ok
}

func (f *Folder) record(v *symbols.Variable, init bound.Expr) {
	if !v.Constant {
		return
	}
	if c, ok := init.(*bound.Const); ok && c.Value != nil {
		f.consts[v] = c.Value
		return
	}
	if _, ok := f.consts[v]; !ok {
		v.Constant = false
	}
}

func (f *Folder) stmt(s bound.Stmt) bound.Stmt {
	if d, ok := s.(*bound.VarDecl); ok {
		f.record(d.Variable, d.Init)
	}
	return s
}

func (f *Folder) member(m bound.Member) bound.Member {
	if v, ok := m.(*bound.VarMember); ok {
		f.record(v.Variable, v.Init)
	}
	return m
}

func (f *Folder) expr(e bound.Expr) bound.Expr {
	var v constant.Value
	switch e := e.(type) {
	case *bound.Var:
		if !e.Variable.Constant {
			return e
		}
		x, ok := f.consts[e.Variable]
		if !ok {
			return e
		}
		v = x

	case *bound.Unary:
		x, ok := valueOf(e.X)
		if !ok || !e.Op.IsValid() {
			return e
		}
		if v, ok = constant.UnaryOp(e.Op.Token(), x); !ok {
			return e
		}

	case *bound.Binary:
		x, okx := valueOf(e.X)
		y, oky := valueOf(e.Y)
		if !okx || !oky || !e.Op.IsValid() {
			return e
		}
		var ok bool
		if v, ok = constant.BinaryOp(x, e.Op.Token(), y); !ok {
			return e
		}

	default:
		return e
	}
	return bound.NewConst(e.Syntax(), v, e.Type(), e.Diagnostics())
}

// valueOf returns the value of e if it is a decoded constant.
func valueOf(e bound.Expr) (constant.Value, bool) {
	if c, ok := e.(*bound.Const); ok && c.Value != nil {
		return c.Value, true
	}
	return nil, false
}
