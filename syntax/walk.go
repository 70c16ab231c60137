// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// Walk traverses a syntax tree in depth-first order.
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
	case *File:
		for _, u := range n.Usings {
			Walk(u, f)
		}
		for _, d := range n.Decls {
			Walk(d, f)
		}

	case *UsingDecl:
		if n.Alias != nil {
			Walk(n.Alias, f)
		}
		Walk(n.Name, f)

	case *FuncDecl:
		Walk(n.Result, f)
		Walk(n.Name, f)
		for _, param := range n.Params {
			Walk(param, f)
		}
		Walk(n.Body, f)

	case *Param:
		Walk(n.Type, f)
		Walk(n.Name, f)

	case *ScriptStmt:
		Walk(n.Stmt, f)

	case *TypeExpr:
		Walk(n.Name, f)

	case *BlockStmt:
		walkStmts(n.List, f)

	case *BranchStmt, *EmptyStmt:
		// no-op

	case *ExprStmt:
		Walk(n.X, f)

	case *IfStmt:
		for _, clause := range n.Clauses {
			Walk(clause, f)
		}
		if n.Else != nil {
			Walk(n.Else, f)
		}

	case *CondClause:
		Walk(n.Cond, f)
		Walk(n.Body, f)

	case *LoopStmt:
		Walk(n.Cond, f)
		Walk(n.Body, f)

	case *ReturnStmt:
		if n.Result != nil {
			Walk(n.Result, f)
		}

	case *VarStmt:
		Walk(n.Name, f)
		Walk(n.Value, f)

	case *Ident, *Literal:
		// no-op

	case *ParenExpr:
		Walk(n.X, f)

	case *UnaryExpr:
		Walk(n.X, f)

	case *BinaryExpr:
		Walk(n.X, f)
		Walk(n.Y, f)

	case *AssignExpr:
		Walk(n.LHS, f)
		Walk(n.RHS, f)

	case *DotExpr:
		Walk(n.X, f)
		Walk(n.Name, f)

	case *CallExpr:
		Walk(n.Fn, f)
		walkArgs(n.Args, f)

	case *Arg:
		if n.Name != nil {
			Walk(n.Name, f)
		}
		Walk(n.Value, f)

	case *NewExpr:
		Walk(n.Type, f)
		walkArgs(n.Args, f)

	default:
		panic(n)
	}

	f(nil)
}

func walkStmts(stmts []Stmt, f func(Node) bool) {
	for _, stmt := range stmts {
		Walk(stmt, f)
	}
}

func walkArgs(args []*Arg, f func(Node) bool) {
	for _, arg := range args {
		Walk(arg, f)
	}
}
