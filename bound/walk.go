// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bound

// Walk traverses a bound tree in depth-first order.
// It starts by calling f(n); n must not be nil.
// If f returns true, Walk calls itself
// recursively for each non-nil child of n.
// Walk then calls f(nil).
func Walk(n Node, f func(Node) bool) {
	if n == nil {
		panic("nil")
	}
	if !f(n) {
		return
	}

	switch n := n.(type) {
	case *Program:
		for _, m := range n.Members {
			Walk(m, f)
		}

	case *Func:
		Walk(n.Body, f)

	case *VarMember:
		Walk(n.Init, f)

	case *ScriptMember:
		Walk(n.Stmt, f)

	case *Block:
		for _, s := range n.List {
			Walk(s, f)
		}

	case *ExprStmt:
		Walk(n.X, f)

	case *VarDecl:
		Walk(n.Init, f)

	case *Return:
		walkOpt(n.Value, f)

	case *If:
		Walk(n.Cond, f)
		Walk(n.Then, f)
		Walk(n.Else, f)

	case *Loop:
		Walk(n.Cond, f)
		Walk(n.Body, f)

	case *Break, *Continue, *NoOp:
		// no-op

	case *Const, *Var, *TypeName:
		// no-op

	case *Unary:
		Walk(n.X, f)

	case *Binary:
		Walk(n.X, f)
		Walk(n.Y, f)

	case *Assignment:
		Walk(n.LHS, f)
		Walk(n.RHS, f)

	case *FieldAccess:
		walkOpt(n.X, f)

	case *PropertyAccess:
		walkOpt(n.X, f)

	case *InvalidAccess:
		walkOpt(n.X, f)

	case *NativeCall:
		walkOpt(n.X, f)
		walkExprs(n.Args, f)

	case *UserCall:
		walkExprs(n.Args, f)

	case *ObjectCreation:
		walkExprs(n.Args, f)

	case *Error:
		walkExprs(n.Parts, f)

	default:
		panic(n)
	}

	f(nil)
}

func walkOpt(e Expr, f func(Node) bool) {
	if e != nil {
		Walk(e, f)
	}
}

func walkExprs(list []Expr, f func(Node) bool) {
	for _, e := range list {
		Walk(e, f)
	}
}
