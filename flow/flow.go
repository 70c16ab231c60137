// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flow checks the control flow of bound function bodies.
//
// Check reports a NotAllPathsReturn error for each function that
// returns a value but whose body may complete without executing a
// return statement, and an UnreachableCode warning for the first
// non-empty statement of a block that follows a statement that never
// completes.
//
// A statement never completes if it is a return, break or continue; a
// block containing such a statement; an if both of whose branches
// never complete; or a loop whose condition is constantly true and
// whose body contains no break out of it. Only constant conditions
// that have been folded to a literal are recognized, so the tree
// should be folded first.
package flow // import "go.cinder.dev/flow"

import (
	"go.cinder.dev/bound"
	"go.cinder.dev/constant"
	"go.cinder.dev/diag"
	"go.cinder.dev/host"
)

// Check returns the control-flow diagnostics of every function and
// script statement of p. It does not modify the tree.
func Check(p *bound.Program) diag.List {
	c := new(checker)
	for _, m := range p.Members {
		switch m := m.(type) {
		case *bound.Func:
			c.function(m)
		case *bound.ScriptMember:
			c.completes(m.Stmt)
		}
	}
	return c.diags
}

// Function returns the control-flow diagnostics of one function.
func Function(fn *bound.Func) diag.List {
	c := new(checker)
	c.function(fn)
	return c.diags
}

type checker struct {
	diags diag.List
}

func (c *checker) function(fn *bound.Func) {
	result := fn.Function.Result
	if c.completes(fn.Body) && result.IsValid() && !result.Is(host.Void) {
		decl := fn.Function.Decl
		c.diags = append(c.diags, diag.Errorf(decl.Name, diag.NotAllPathsReturn,
			"not all code paths in function %s return a value of type %s", decl.Name.Name, result))
	}
}

// completes reports whether execution of s may continue with the
// statement that follows it, reporting unreachable code within s.
func (c *checker) completes(s bound.Stmt) bool {
	switch s := s.(type) {
	case *bound.Block:
		return c.block(s.List)
	case *bound.Return, *bound.Break, *bound.Continue:
		return false
	case *bound.If:
		then := c.completes(s.Then)
		els := c.completes(s.Else)
		return then || els
	case *bound.Loop:
		c.completes(s.Body)
		return !alwaysTrue(s) || breaks(s.Body, s.Context)
	}
	return true
}

func (c *checker) block(list []bound.Stmt) bool {
	for i, s := range list {
		if c.completes(s) {
			continue
		}
		for _, next := range list[i+1:] {
			if _, empty := next.(*bound.NoOp); !empty && next.Syntax() != nil {
				c.diags = append(c.diags, diag.Warningf(next.Syntax(), diag.UnreachableCode, "unreachable code"))
				break
			}
		}
		return false
	}
	return true
}

// alwaysTrue reports whether the loop condition is constantly satisfied.
func alwaysTrue(loop *bound.Loop) bool {
	k, ok := loop.Cond.(*bound.Const)
	if !ok || k.Value == nil || k.Value.Kind() != constant.Bool {
		return false
	}
	return constant.BoolVal(k.Value) != loop.Negated
}

// breaks reports whether s contains a break out of the loop ctx.
func breaks(s bound.Stmt, ctx *bound.LoopContext) bool {
	found := false
	bound.Walk(s, func(n bound.Node) bool {
		if b, ok := n.(*bound.Break); ok && b.Loop == ctx {
			found = true
		}
		return !found
	})
	return found
}
