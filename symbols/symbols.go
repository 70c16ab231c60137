// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package symbols defines the symbols and scopes of semantic analysis:
// types, variables, functions, and the tree of lexical scopes into
// which they are declared.
package symbols

import (
	"fmt"
	"strings"

	"go.cinder.dev/syntax"
)

// VarKind distinguishes the kinds of variable.
type VarKind uint8

const (
	Local     VarKind = iota // declared by let or const in a function
	Parameter                // a function parameter
	Global                   // declared by let or const at top level
	REPL                     // implicitly declared by assignment in a script
)

var varKindNames = [...]string{
	Local:     "local",
	Parameter: "parameter",
	Global:    "global",
	REPL:      "repl",
}

func (k VarKind) String() string {
	if int(k) < len(varKindNames) {
		return varKindNames[k]
	}
	return fmt.Sprintf("VarKind(%d)", k)
}

// A Variable is a named storage location.
type Variable struct {
	Name string
	Kind VarKind
	Type *TypeSymbol

	// ReadOnly is set for variables declared with const.
	ReadOnly bool

	// Constant is set for read-only variables whose initializer
	// is a compile-time constant. The binder sets it from the form
	// of the initializer; folding clears it if the initializer
	// does not fold to a value, as for an integer division by zero.
	Constant bool

	Decl syntax.Node // the declaring node, if any
}

func (v *Variable) String() string { return v.Name }

// A Param is a function parameter.
type Param struct {
	Name string
	Type *TypeSymbol
}

// A Function is a user-declared function.
type Function struct {
	Name   string
	Params []Param
	Result *TypeSymbol
	Decl   *syntax.FuncDecl
}

// String returns the function signature, for example "int f(int a, string b)".
func (f *Function) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "%s %s(", f.Result.Name(), f.Name)
	for i, p := range f.Params {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s %s", p.Type.Name(), p.Name)
	}
	buf.WriteByte(')')
	return buf.String()
}

// Conflicts reports whether f and g cannot be distinguished at a
// call site: they have the same name and either the same set of
// (name, type) parameters, so named calls are ambiguous, or the same
// sequence of parameter types, so positional calls are ambiguous.
// A function with an invalid parameter type conflicts with nothing.
func (f *Function) Conflicts(g *Function) bool {
	if f.Name != g.Name || len(f.Params) != len(g.Params) {
		return false
	}
	for i := range f.Params {
		if !f.Params[i].Type.IsValid() || !g.Params[i].Type.IsValid() {
			return false
		}
	}
	return f.MatchesNamed(g.Params) || f.MatchesPositional(paramTypes(g.Params))
}

// MatchesPositional reports whether the parameter types of f are
// exactly the types of args, in order.
func (f *Function) MatchesPositional(args []*TypeSymbol) bool {
	if len(args) != len(f.Params) {
		return false
	}
	for i, p := range f.Params {
		if !p.Type.Equal(args[i]) {
			return false
		}
	}
	return true
}

// MatchesNamed reports whether the (name, type) pairs of the
// parameters of f and of args are equal as sets.
func (f *Function) MatchesNamed(args []Param) bool {
	if len(args) != len(f.Params) {
		return false
	}
	for _, a := range args {
		if f.param(a.Name, a.Type) < 0 {
			return false
		}
	}
	for _, p := range f.Params {
		found := false
		for _, a := range args {
			if a.Name == p.Name && a.Type.Equal(p.Type) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// param returns the index of the parameter with the given name and type, or -1.
func (f *Function) param(name string, t *TypeSymbol) int {
	for i, p := range f.Params {
		if p.Name == name && p.Type.Equal(t) {
			return i
		}
	}
	return -1
}

// ParamIndex returns the index of the parameter named name, or -1.
func (f *Function) ParamIndex(name string) int {
	for i, p := range f.Params {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func paramTypes(params []Param) []*TypeSymbol {
	types := make([]*TypeSymbol, len(params))
	for i, p := range params {
		types[i] = p.Type
	}
	return types
}
