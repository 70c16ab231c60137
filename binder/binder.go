// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package binder translates Cinder syntax trees into bound trees.
//
// Binding resolves every name against the scope tree and the host type
// catalog, assigns a type to every expression, resolves operators and
// overloads, and records a diagnostic on the node at which each problem
// is detected. Binding never stops at the first error: every rule
// returns a well-formed node, using placeholder nodes of the invalid
// type where nothing better is possible, so that a single pass reports
// as many problems as it can.
//
// A program is bound in two phases. The first, serial phase declares
// every function signature and binds the top-level variables and
// script statements of every file into the module scope, which is then
// frozen. The second phase binds function bodies, one goroutine per
// file; each function body has a scope tree of its own whose outer
// scope is the frozen module scope.
package binder // import "go.cinder.dev/binder"

import (
	"fmt"
	"sync"

	"go.cinder.dev/bound"
	"go.cinder.dev/diag"
	"go.cinder.dev/host"
	"go.cinder.dev/symbols"
	"go.cinder.dev/syntax"
)

const debug = false

// Mode selects how the binder treats assignments to undeclared names.
type Mode uint8

const (
	// ModuleMode reports assignment to an undeclared name.
	ModuleMode Mode = iota

	// ScriptMode implicitly declares a variable on plain assignment
	// to an undeclared name outside any function.
	ScriptMode
)

func (m Mode) String() string {
	switch m {
	case ModuleMode:
		return "module"
	case ScriptMode:
		return "script"
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// DefaultEntry is the name of the entry point function
// if Options.Entry is empty.
const DefaultEntry = "main"

// Options controls binding.
type Options struct {
	Mode Mode

	// Entry is the name of the entry point function.
	Entry string

	// Imports are namespaces searched for unqualified type names,
	// in addition to those named by using declarations.
	Imports []string

	// Aliases maps alias names to qualified type names,
	// in addition to those declared by using declarations.
	Aliases map[string]string
}

func (opts *Options) entry() string {
	if opts.Entry == "" {
		return DefaultEntry
	}
	return opts.Entry
}

// A Binder binds the syntax of one file. Nested constructs are bound
// by copies that differ in scope, enclosing function or loop.
type Binder struct {
	types *symbols.Types
	mode  Mode
	names *names

	scope symbols.Scope
	fn    *symbols.Function  // enclosing function, or nil
	loop  *bound.LoopContext // enclosing loop, or nil
}

func (b *Binder) withScope(s symbols.Scope) *Binder {
	c := *b
	c.scope = s
	return &c
}

func (b *Binder) withLoop(ctx *bound.LoopContext) *Binder {
	c := *b
	c.loop = ctx
	return &c
}

func (b *Binder) inFunction(f *symbols.Function, s symbols.Scope) *Binder {
	c := *b
	c.fn = f
	c.scope = s
	c.loop = nil
	return &c
}

func (b *Binder) invalid() *symbols.TypeSymbol { return b.types.Invalid() }

func (b *Binder) special(s host.Special) *symbols.TypeSymbol { return b.types.Special(s) }

// A declared function is the result of the first phase for one
// function declaration: its symbol and the diagnostics of its signature.
type declared struct {
	fn  *symbols.Function
	own diag.List
}

// BindProgram binds the files of one program, which share a module scope.
func BindProgram(types *symbols.Types, files []*syntax.File, opts Options) *bound.Program {
	module := symbols.NewScope(symbols.ModuleScope, symbols.Scope{})
	binders := make([]*Binder, len(files))
	var own diag.List
	for i, f := range files {
		b := &Binder{types: types, mode: opts.Mode, scope: module}
		b.names, own = newNames(b, f, opts, own)
		binders[i] = b
	}

	// Phase 1: signatures, then top-level variables and statements.
	funcs := make(map[*syntax.FuncDecl]*declared)
	for i, f := range files {
		binders[i].declareFuncs(f, funcs)
	}
	members := make([][]bound.Member, len(files))
	for i, f := range files {
		members[i] = binders[i].bindTopLevel(f)
	}
	module.Tree().Freeze()

	// Phase 2: function bodies.
	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(b *Binder, f *syntax.File, members []bound.Member) {
			defer wg.Done()
			b.bindFuncs(f, funcs, members)
		}(binders[i], f, members[i])
	}
	wg.Wait()

	var all []bound.Member
	for _, list := range members {
		all = append(all, list...)
	}
	entry, entryDiags := findEntryPoint(all, opts.entry())
	return bound.NewProgram(module, all, entry, diag.Concat(own, entryDiags))
}

// A Session binds a sequence of script inputs, such as the lines
// entered at a REPL. Variables and functions declared by one input
// remain visible to later ones.
type Session struct {
	types  *symbols.Types
	opts   Options
	global symbols.Scope
}

// NewSession returns a session with an empty global scope.
// The session binds in script mode regardless of opts.Mode.
func NewSession(types *symbols.Types, opts Options) *Session {
	opts.Mode = ScriptMode
	return &Session{
		types:  types,
		opts:   opts,
		global: symbols.NewScope(symbols.GlobalScope, symbols.Scope{}),
	}
}

// Scope returns the session's global scope.
func (s *Session) Scope() symbols.Scope { return s.global }

// Bind binds one input. A Session is not safe for concurrent use.
func (s *Session) Bind(f *syntax.File) *bound.Program {
	b := &Binder{types: s.types, mode: ScriptMode, scope: s.global}
	var own diag.List
	b.names, own = newNames(b, f, s.opts, nil)
	funcs := make(map[*syntax.FuncDecl]*declared)
	b.declareFuncs(f, funcs)
	members := b.bindTopLevel(f)
	b.bindFuncs(f, funcs, members)
	return bound.NewProgram(s.global, members, nil, own)
}

// declareFuncs declares the signatures of the functions of f.
func (b *Binder) declareFuncs(f *syntax.File, funcs map[*syntax.FuncDecl]*declared) {
	for _, d := range f.Decls {
		decl, ok := d.(*syntax.FuncDecl)
		if !ok {
			continue
		}
		var own diag.List
		result, ds := b.bindType(decl.Result)
		own = append(own, ds...)
		fn := &symbols.Function{Name: decl.Name.Name, Result: result, Decl: decl}
		seen := make(map[string]bool)
		for _, p := range decl.Params {
			t, ds := b.bindType(p.Type)
			own = append(own, ds...)
			if t.Is(host.Void) {
				own = append(own, diag.Errorf(p.Type, diag.UnsupportedType, "parameter %s cannot have type void", p.Name.Name))
			}
			if seen[p.Name.Name] {
				own = append(own, diag.Errorf(p.Name, diag.DuplicateParameterName, "duplicate parameter %s", p.Name.Name))
			}
			seen[p.Name.Name] = true
			fn.Params = append(fn.Params, symbols.Param{Name: p.Name.Name, Type: t})
		}
		if prev := b.scope.DeclareFunction(fn); prev != fn {
			own = append(own, diag.Errorf(decl.Name, diag.AmbiguousFunctionDeclaration,
				"function %s is ambiguous with %s", fn, prev))
		}
		if debug {
			fmt.Printf("declared %s\n", fn)
		}
		funcs[decl] = &declared{fn, own}
	}
}

// bindTopLevel binds the variables and statements of f.
// The result has a nil entry for each function, filled in by bindFuncs.
func (b *Binder) bindTopLevel(f *syntax.File) []bound.Member {
	members := make([]bound.Member, len(f.Decls))
	for i, d := range f.Decls {
		switch d := d.(type) {
		case *syntax.FuncDecl:
			// phase 2
		case *syntax.VarStmt:
			v, init, own := b.bindVar(d, symbols.Global)
			members[i] = bound.NewVarMember(d, v, init, own)
		case *syntax.ScriptStmt:
			members[i] = bound.NewScriptMember(d, b.bindStmt(d.Stmt), nil)
		default:
			panic(fmt.Sprintf("unexpected declaration %T", d))
		}
	}
	return members
}

// bindFuncs binds the function bodies of f into their slots of members.
func (b *Binder) bindFuncs(f *syntax.File, funcs map[*syntax.FuncDecl]*declared, members []bound.Member) {
	for i, d := range f.Decls {
		if decl, ok := d.(*syntax.FuncDecl); ok {
			members[i] = b.bindFunc(decl, funcs[decl])
		}
	}
}

func (b *Binder) bindFunc(decl *syntax.FuncDecl, d *declared) *bound.Func {
	fnScope := symbols.NewScope(symbols.FunctionScope, b.scope)
	for _, p := range d.fn.Params {
		fnScope.DeclareVariable(&symbols.Variable{Name: p.Name, Kind: symbols.Parameter, Type: p.Type})
	}
	fb := b.inFunction(d.fn, fnScope)
	blockScope := fnScope.Child(symbols.BlockScope)
	list := fb.withScope(blockScope).bindStmts(decl.Body.List)
	if d.fn.Result.Is(host.Void) {
		if n := len(list); n == 0 || !isReturn(list[n-1]) {
			list = append(list, bound.NewReturn(nil, nil, nil))
		}
	}
	body := bound.NewBlock(decl.Body, blockScope, list, nil)
	return bound.NewFunc(decl, d.fn, fnScope, body, d.own)
}

func isReturn(s bound.Stmt) bool {
	_, ok := s.(*bound.Return)
	return ok
}

// findEntryPoint returns the first function eligible to be the entry
// point, and a diagnostic for each further one.
func findEntryPoint(members []bound.Member, name string) (*bound.Func, diag.List) {
	var entry *bound.Func
	var own diag.List
	for _, m := range members {
		fn, ok := m.(*bound.Func)
		if !ok || !isEntryPoint(fn.Function, name) {
			continue
		}
		if entry == nil {
			entry = fn
			continue
		}
		own = append(own, diag.Errorf(fn.Function.Decl.Name, diag.MultipleEntryPoints,
			"%s is also declared at %s", fn.Function, syntax.Start(entry.Function.Decl)))
	}
	return entry, own
}

func isEntryPoint(f *symbols.Function, name string) bool {
	if f.Name != name {
		return false
	}
	if !f.Result.Is(host.Void) && !f.Result.Is(host.Int32) {
		return false
	}
	switch len(f.Params) {
	case 0:
		return true
	case 1:
		t := f.Params[0].Type
		return t.IsValid() && host.IsArrayOf(t.Host(), host.String)
	}
	return false
}
