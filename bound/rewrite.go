// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bound

import "fmt"

// A Rewriter transforms a bound tree bottom-up, preserving structure
// wherever nothing changes.
//
// The children of each node are rewritten first. If every child is
// identical (by reference) to the original, the node itself is kept;
// otherwise a copy is built from the new children, carrying the
// node's own diagnostics. List-valued children are rewritten element
// by element and a new list is allocated only if some element changed.
// Finally the hook for the node's category, if non-nil, is applied to
// the (possibly rebuilt) node.
//
// A hook that returns its argument leaves the tree unchanged, so a
// Rewriter with no hooks returns every tree it is given. A hook that
// replaces a node should carry the diagnostics of the original onto
// the replacement.
type Rewriter struct {
	Expr   func(Expr) Expr
	Stmt   func(Stmt) Stmt
	Member func(Member) Member
}

// RewriteProgram rewrites every member of p.
func (r *Rewriter) RewriteProgram(p *Program) *Program {
	members, changed := r.members(p.Members)
	if !changed {
		return p
	}
	var entry *Func
	for i, m := range p.Members {
		if m == Member(p.EntryPoint) {
			entry, _ = members[i].(*Func)
		}
	}
	return NewProgram(p.Scope, members, entry, p.own)
}

func (r *Rewriter) members(list []Member) ([]Member, bool) {
	var out []Member
	for i, m := range list {
		m2 := r.RewriteMember(m)
		if m2 != m && out == nil {
			out = make([]Member, len(list))
			copy(out, list[:i])
		}
		if out != nil {
			out[i] = m2
		}
	}
	if out == nil {
		return list, false
	}
	return out, true
}

// RewriteMember rewrites a top-level member.
func (r *Rewriter) RewriteMember(m Member) Member {
	switch n := m.(type) {
	case *Func:
		if body := r.block(n.Body); body != n.Body {
			m = NewFunc(n.syntax, n.Function, n.Scope, body, n.own)
		}
	case *VarMember:
		if init := r.RewriteExpr(n.Init); init != n.Init {
			m = NewVarMember(n.syntax, n.Variable, init, n.own)
		}
	case *ScriptMember:
		if s := r.RewriteStmt(n.Stmt); s != n.Stmt {
			m = NewScriptMember(n.syntax, s, n.own)
		}
	default:
		panic(fmt.Sprintf("unexpected member %T", m))
	}
	if r.Member != nil {
		m = r.Member(m)
	}
	return m
}

// block rewrites a function body, which must remain a block.
func (r *Rewriter) block(b *Block) *Block {
	s := r.RewriteStmt(b)
	if b2, ok := s.(*Block); ok {
		return b2
	}
	return NewBlock(nil, b.Scope, []Stmt{s}, nil)
}

// RewriteStmt rewrites a statement.
func (r *Rewriter) RewriteStmt(s Stmt) Stmt {
	switch n := s.(type) {
	case *Block:
		if list, changed := r.stmts(n.List); changed {
			s = NewBlock(n.syntax, n.Scope, list, n.own)
		}
	case *ExprStmt:
		if x := r.RewriteExpr(n.X); x != n.X {
			s = NewExprStmt(n.syntax, x, n.own)
		}
	case *VarDecl:
		if init := r.RewriteExpr(n.Init); init != n.Init {
			s = NewVarDecl(n.syntax, n.Variable, init, n.own)
		}
	case *Return:
		if n.Value != nil {
			if v := r.RewriteExpr(n.Value); v != n.Value {
				s = NewReturn(n.syntax, v, n.own)
			}
		}
	case *If:
		cond := r.RewriteExpr(n.Cond)
		then := r.RewriteStmt(n.Then)
		els := r.RewriteStmt(n.Else)
		if cond != n.Cond || then != n.Then || els != n.Else {
			s = NewIf(n.syntax, cond, then, els, n.own)
		}
	case *Loop:
		cond := r.RewriteExpr(n.Cond)
		body := r.RewriteStmt(n.Body)
		if cond != n.Cond || body != n.Body {
			s = NewLoop(n.syntax, cond, n.Negated, body, n.Context, n.own)
		}
	case *Break, *Continue, *NoOp:
		// leaf
	default:
		panic(fmt.Sprintf("unexpected statement %T", s))
	}
	if r.Stmt != nil {
		s = r.Stmt(s)
	}
	return s
}

func (r *Rewriter) stmts(list []Stmt) ([]Stmt, bool) {
	var out []Stmt
	for i, s := range list {
		s2 := r.RewriteStmt(s)
		if s2 != s && out == nil {
			out = make([]Stmt, len(list))
			copy(out, list[:i])
		}
		if out != nil {
			out[i] = s2
		}
	}
	if out == nil {
		return list, false
	}
	return out, true
}

// RewriteExpr rewrites an expression.
// It returns nil if e is nil.
func (r *Rewriter) RewriteExpr(e Expr) Expr {
	switch n := e.(type) {
	case nil:
		return nil
	case *Const, *Var, *TypeName:
		// leaf
	case *Unary:
		if x := r.RewriteExpr(n.X); x != n.X {
			e = NewUnary(n.syntax, n.Op, x, n.typ, n.own)
		}
	case *Binary:
		x := r.RewriteExpr(n.X)
		y := r.RewriteExpr(n.Y)
		if x != n.X || y != n.Y {
			e = NewBinary(n.syntax, x, n.Op, y, n.typ, n.own)
		}
	case *Assignment:
		lhs := r.RewriteExpr(n.LHS)
		rhs := r.RewriteExpr(n.RHS)
		if lhs != n.LHS || rhs != n.RHS {
			e = NewAssignment(n.syntax, n.Op, n.Operator, lhs, rhs, n.typ, n.own)
		}
	case *FieldAccess:
		if x := r.RewriteExpr(n.X); x != n.X {
			e = NewFieldAccess(n.syntax, x, n.Field, n.typ, n.own)
		}
	case *PropertyAccess:
		if x := r.RewriteExpr(n.X); x != n.X {
			e = NewPropertyAccess(n.syntax, x, n.Property, n.typ, n.own)
		}
	case *InvalidAccess:
		if x := r.RewriteExpr(n.X); x != n.X {
			e = NewInvalidAccess(n.syntax, x, n.Name, n.typ, n.own)
		}
	case *NativeCall:
		x := r.RewriteExpr(n.X)
		args, changed := r.exprs(n.Args)
		if x != n.X || changed {
			e = NewNativeCall(n.syntax, x, n.Method, args, n.typ, n.own)
		}
	case *UserCall:
		if args, changed := r.exprs(n.Args); changed {
			e = NewUserCall(n.syntax, n.Function, args, n.own)
		}
	case *ObjectCreation:
		if args, changed := r.exprs(n.Args); changed {
			e = NewObjectCreation(n.syntax, n.Constructor, args, n.typ, n.own)
		}
	case *Error:
		if parts, changed := r.exprs(n.Parts); changed {
			e = NewError(n.syntax, parts, n.typ, n.own)
		}
	default:
		panic(fmt.Sprintf("unexpected expression %T", e))
	}
	if r.Expr != nil {
		e = r.Expr(e)
	}
	return e
}

func (r *Rewriter) exprs(list []Expr) ([]Expr, bool) {
	var out []Expr
	for i, e := range list {
		e2 := r.RewriteExpr(e)
		if e2 != e && out == nil {
			out = make([]Expr, len(list))
			copy(out, list[:i])
		}
		if out != nil {
			out[i] = e2
		}
	}
	if out == nil {
		return list, false
	}
	return out, true
}
