// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbols

import (
	"fmt"
	"sort"
)

// ScopeKind classifies a scope by the construct that introduces it.
type ScopeKind uint8

const (
	GlobalScope ScopeKind = iota // persistent across script inputs
	ModuleScope                  // top level of a module
	FunctionScope
	BlockScope
	TypeScope
)

var scopeKindNames = [...]string{
	GlobalScope:   "global",
	ModuleScope:   "module",
	FunctionScope: "function",
	BlockScope:    "block",
	TypeScope:     "type",
}

func (k ScopeKind) String() string {
	if int(k) < len(scopeKindNames) {
		return scopeKindNames[k]
	}
	return fmt.Sprintf("ScopeKind(%d)", k)
}

// A ScopeTree is an arena holding a tree of scopes. Each scope record
// refers to its parent by index. The root of a tree may be linked to
// a scope of another tree, its outer scope; lookups continue there.
//
// A tree has a single writer. Once frozen, declaring into any of its
// scopes panics, and the tree may be read concurrently, for example
// as the outer scope of several trees being built in parallel.
type ScopeTree struct {
	records []scopeRecord
	outer   Scope
	frozen  bool
}

type scopeRecord struct {
	kind   ScopeKind
	parent int // -1 for the root
	vars   map[string]*Variable
	order  []*Variable
	funcs  []*Function
}

// A Scope is a handle to one scope of a tree.
// The zero Scope is not a scope; see IsZero.
type Scope struct {
	tree *ScopeTree
	id   int
}

// NewScope creates a new tree whose root scope has the given kind
// and returns the root. Lookups that reach the root continue in
// outer, which may be the zero Scope.
func NewScope(kind ScopeKind, outer Scope) Scope {
	t := &ScopeTree{outer: outer}
	t.records = append(t.records, scopeRecord{kind: kind, parent: -1})
	return Scope{t, 0}
}

// IsZero reports whether s is the zero Scope.
func (s Scope) IsZero() bool { return s.tree == nil }

// Tree returns the tree containing s.
func (s Scope) Tree() *ScopeTree { return s.tree }

func (s Scope) rec() *scopeRecord { return &s.tree.records[s.id] }

// Kind returns the kind of the scope.
func (s Scope) Kind() ScopeKind { return s.rec().kind }

// Parent returns the enclosing scope, which is the outer scope for
// the root of a tree, or the zero Scope.
func (s Scope) Parent() Scope {
	if p := s.rec().parent; p >= 0 {
		return Scope{s.tree, p}
	}
	return s.tree.outer
}

// Child creates a new scope nested within s.
func (s Scope) Child(kind ScopeKind) Scope {
	t := s.tree
	t.checkWritable()
	t.records = append(t.records, scopeRecord{kind: kind, parent: s.id})
	return Scope{t, len(t.records) - 1}
}

func (s Scope) String() string {
	if s.IsZero() {
		return "<no scope>"
	}
	return fmt.Sprintf("%s scope #%d", s.Kind(), s.id)
}

// Enclosing returns the nearest scope of kind k enclosing s,
// including s itself, or the zero Scope.
func (s Scope) Enclosing(k ScopeKind) Scope {
	for ; !s.IsZero(); s = s.Parent() {
		if s.Kind() == k {
			return s
		}
	}
	return Scope{}
}

// DeclareVariable declares v in s. If s already declares a variable
// of the same name, DeclareVariable leaves s unchanged and returns
// the existing variable.
func (s Scope) DeclareVariable(v *Variable) *Variable {
	s.tree.checkWritable()
	r := s.rec()
	if prev, ok := r.vars[v.Name]; ok {
		return prev
	}
	if r.vars == nil {
		r.vars = make(map[string]*Variable)
	}
	r.vars[v.Name] = v
	r.order = append(r.order, v)
	return v
}

// DeclareFunction declares f in s. It returns the first function
// previously declared in s that conflicts with f, or f itself if
// there is none. The function is declared in either case, so the
// caller detects ambiguity by comparing the result with f.
func (s Scope) DeclareFunction(f *Function) *Function {
	s.tree.checkWritable()
	r := s.rec()
	var conflict *Function
	for _, g := range r.funcs {
		if g.Conflicts(f) {
			conflict = g
			break
		}
	}
	r.funcs = append(r.funcs, f)
	if conflict != nil {
		return conflict
	}
	return f
}

// LookupVariable returns the variable of the given name declared in
// the nearest scope enclosing s, or nil.
func (s Scope) LookupVariable(name string) *Variable {
	for ; !s.IsZero(); s = s.Parent() {
		if v, ok := s.rec().vars[name]; ok {
			return v
		}
	}
	return nil
}

// LookupFunction returns the first function of the given name whose
// parameter types are exactly args, searching from s outward.
func (s Scope) LookupFunction(name string, args []*TypeSymbol) *Function {
	return s.lookupFunction(name, func(f *Function) bool { return f.MatchesPositional(args) })
}

// LookupFunctionNamed returns the first function of the given name
// whose set of (name, type) parameters equals args, searching from s outward.
func (s Scope) LookupFunctionNamed(name string, args []Param) *Function {
	return s.lookupFunction(name, func(f *Function) bool { return f.MatchesNamed(args) })
}

func (s Scope) lookupFunction(name string, match func(*Function) bool) *Function {
	for ; !s.IsZero(); s = s.Parent() {
		for _, f := range s.rec().funcs {
			if f.Name == name && match(f) {
				return f
			}
		}
	}
	return nil
}

// Functions returns the functions declared directly in s, in order.
func (s Scope) Functions() []*Function { return s.rec().funcs }

// Variables returns the variables declared directly in s, in order.
func (s Scope) Variables() []*Variable { return s.rec().order }

// Names returns the sorted names of all variables and functions
// visible from s.
func (s Scope) Names() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for ; !s.IsZero(); s = s.Parent() {
		for _, v := range s.rec().order {
			add(v.Name)
		}
		for _, f := range s.rec().funcs {
			add(f.Name)
		}
	}
	sort.Strings(names)
	return names
}

// Freeze prevents further changes to the tree.
func (t *ScopeTree) Freeze() { t.frozen = true }

// Frozen reports whether the tree has been frozen.
func (t *ScopeTree) Frozen() bool { return t.frozen }

// Len returns the number of scopes in the tree.
func (t *ScopeTree) Len() int { return len(t.records) }

func (t *ScopeTree) checkWritable() {
	if t.frozen {
		panic("declaration in frozen scope tree")
	}
}
