// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binder

import (
	"strings"

	"go.cinder.dev/bound"
	"go.cinder.dev/diag"
	"go.cinder.dev/host"
	"go.cinder.dev/internal/spell"
	"go.cinder.dev/symbols"
	"go.cinder.dev/syntax"
)

// Overload resolution.
//
// A call passes either all arguments by position or all by name.
// A positional call selects the first candidate whose parameter types
// equal the argument types; failing that, for host methods, the first
// candidate whose parameters differ only in being of type object.
// A named call selects the first candidate whose set of parameter
// (name, type) pairs equals that of the arguments; the arguments are
// then reordered into parameter order.

// An argList is a list of bound call arguments.
type argList struct {
	syntax []*syntax.Arg
	exprs  []bound.Expr
	named  bool
}

// bindArgs binds the arguments of a call. If they mix positional and
// named arguments it returns a MixedArguments diagnostic.
func (b *Binder) bindArgs(call syntax.Node, args []*syntax.Arg) (*argList, diag.List) {
	list := &argList{syntax: args, exprs: make([]bound.Expr, len(args))}
	var positional, named int
	for i, a := range args {
		list.exprs[i] = b.bindExpr(a.Value)
		if a.Name != nil {
			named++
		} else {
			positional++
		}
	}
	list.named = named > 0
	if named > 0 && positional > 0 {
		return list, diag.List{diag.Errorf(call, diag.MixedArguments, "cannot mix positional and named arguments")}
	}
	return list, nil
}

// failed reports whether any argument has already been diagnosed.
func (args *argList) failed() bool {
	for _, e := range args.exprs {
		if failed(e) {
			return true
		}
	}
	return false
}

func (args *argList) types() []*symbols.TypeSymbol {
	types := make([]*symbols.TypeSymbol, len(args.exprs))
	for i, e := range args.exprs {
		types[i] = e.Type()
	}
	return types
}

func (args *argList) params() []symbols.Param {
	params := make([]symbols.Param, len(args.exprs))
	for i, e := range args.exprs {
		params[i] = symbols.Param{Name: args.syntax[i].Name.Name, Type: e.Type()}
	}
	return params
}

// String returns the argument signature, for example "(a: int, b: string)".
func (args *argList) String() string {
	var buf strings.Builder
	buf.WriteByte('(')
	for i, e := range args.exprs {
		if i > 0 {
			buf.WriteString(", ")
		}
		if args.named {
			buf.WriteString(args.syntax[i].Name.Name)
			buf.WriteString(": ")
		}
		buf.WriteString(e.Type().Name())
	}
	buf.WriteByte(')')
	return buf.String()
}

// reorder returns the arguments in the order of the named parameters.
func (args *argList) reorder(names []string) []bound.Expr {
	if !args.named {
		return args.exprs
	}
	out := make([]bound.Expr, len(names))
	for i, name := range names {
		for j, a := range args.syntax {
			if a.Name.Name == name {
				out[i] = args.exprs[j]
				break
			}
		}
	}
	return out
}

// match reports whether the host parameters params accept args.
// If loose, an object parameter accepts an argument of any type
// other than void.
func (b *Binder) match(params []host.Param, args *argList, loose bool) bool {
	if len(params) != len(args.exprs) {
		return false
	}
	accepts := func(p host.Param, t *symbols.TypeSymbol) bool {
		pt := b.types.Of(p.Type)
		return pt.Equal(t) || loose && pt.Is(host.Object) && !t.Is(host.Void)
	}
	if !args.named {
		for i, p := range params {
			if !accepts(p, args.exprs[i].Type()) {
				return false
			}
		}
		return true
	}
	seen := make(map[string]bool)
	for _, p := range params {
		if p.Name == "" || seen[p.Name] {
			return false
		}
		seen[p.Name] = true
		found := false
		for j, a := range args.syntax {
			if a.Name.Name == p.Name {
				if found || !accepts(p, args.exprs[j].Type()) {
					return false
				}
				found = true
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// selectMember returns the first candidate accepting args, or nil.
func (b *Binder) selectMember(candidates []host.Member, args *argList) host.Member {
	for _, loose := range []bool{false, true} {
		for _, m := range candidates {
			if b.match(m.Params(), args, loose) {
				return m
			}
		}
	}
	return nil
}

func paramNames(params []host.Param) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}

func (b *Binder) bindCall(x *syntax.CallExpr) bound.Expr {
	switch fn := x.Fn.(type) {
	case *syntax.Ident:
		return b.bindUserCall(x, fn)
	case *syntax.DotExpr:
		return b.bindNativeCall(x, fn)
	}
	callee := b.bindExpr(x.Fn)
	args, own := b.bindArgs(x, x.Args)
	parts := append([]bound.Expr{callee}, args.exprs...)
	if own == nil && !failed(callee) {
		own = diag.List{diag.Errorf(x.Fn, diag.NoMatchingCandidate, "cannot call %s", describe(callee))}
	}
	return bound.NewError(x, parts, b.invalid(), own)
}

// bindUserCall binds a call of a Cinder function.
func (b *Binder) bindUserCall(x *syntax.CallExpr, id *syntax.Ident) bound.Expr {
	args, own := b.bindArgs(x, x.Args)
	if own != nil || args.failed() {
		return bound.NewError(x, args.exprs, b.invalid(), own)
	}
	var fn *symbols.Function
	if args.named {
		fn = b.scope.LookupFunctionNamed(id.Name, args.params())
	} else {
		fn = b.scope.LookupFunction(id.Name, args.types())
	}
	if fn == nil {
		var msg string
		if b.hasFunction(id.Name) {
			msg = "no overload of " + id.Name + " matches " + args.String()
		} else {
			msg = "no function named " + id.Name + spell.Suggest(id.Name, b.scope.Names())
		}
		return bound.NewError(x, args.exprs, b.invalid(), diag.List{
			diag.Errorf(x, diag.NoMatchingCandidate, "%s", msg)})
	}
	exprs := args.exprs
	if args.named {
		names := make([]string, len(fn.Params))
		for i, p := range fn.Params {
			names[i] = p.Name
		}
		exprs = args.reorder(names)
	}
	return bound.NewUserCall(x, fn, exprs, nil)
}

// hasFunction reports whether any function named name is visible.
func (b *Binder) hasFunction(name string) bool {
	for s := b.scope; !s.IsZero(); s = s.Parent() {
		for _, f := range s.Functions() {
			if f.Name == name {
				return true
			}
		}
	}
	return false
}

// bindNativeCall binds a call of a host method.
func (b *Binder) bindNativeCall(x *syntax.CallExpr, dot *syntax.DotExpr) bound.Expr {
	recv := b.bindExpr(dot.X)
	args, own := b.bindArgs(x, x.Args)
	parts := append([]bound.Expr{recv}, args.exprs...)
	if own != nil || failed(recv) || args.failed() {
		return bound.NewError(x, parts, b.invalid(), own)
	}

	name := dot.Name.Name
	_, static := recv.(*bound.TypeName)
	typ := recv.Type()
	var candidates []host.Member
	var methods, hidden int
	for _, m := range typ.Host().Members(name) {
		if m.Kind() != host.Method {
			continue
		}
		methods++
		switch {
		case m.IsStatic() != static, len(m.Params()) != len(args.exprs):
		case !m.IsPublic():
			hidden++
		default:
			candidates = append(candidates, m)
		}
	}

	var d *diag.Diagnostic
	switch {
	case methods == 0:
		d = diag.Errorf(dot.Name, diag.MemberNotFound, "type %s has no method named %s%s",
			typ, name, spell.Suggest(name, typ.Host().MemberNames()))
	case len(candidates) == 0 && hidden > 0:
		d = diag.Errorf(dot.Name, diag.MemberNotAccessible, "method %s.%s is not accessible", typ, name)
	default:
		m := b.selectMember(candidates, args)
		if m == nil {
			kind := "method"
			if static {
				kind = "static method"
			}
			d = diag.Errorf(x, diag.NoMatchingCandidate, "no %s %s.%s matches %s", kind, typ, name, args)
			break
		}
		if static {
			recv = nil
		}
		return bound.NewNativeCall(x, recv, m, args.reorder(paramNames(m.Params())), b.types.Of(m.Type()), nil)
	}
	return bound.NewError(x, parts, b.invalid(), diag.List{d})
}

// bindNew binds an object creation.
func (b *Binder) bindNew(x *syntax.NewExpr) bound.Expr {
	typ, own := b.bindType(x.Type)
	args, ds := b.bindArgs(x, x.Args)
	own = append(own, ds...)
	if own != nil || args.failed() {
		return bound.NewError(x, args.exprs, b.invalid(), own)
	}
	if typ.Elem() != nil || typ.Is(host.Void) {
		return bound.NewError(x, args.exprs, b.invalid(), diag.List{
			diag.Errorf(x.Type, diag.UnsupportedType, "cannot create an object of type %s", typ)})
	}
	var candidates []host.Member
	hidden := 0
	for _, c := range typ.Host().Constructors() {
		switch {
		case len(c.Params()) != len(args.exprs):
		case !c.IsPublic():
			hidden++
		default:
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 && hidden > 0 {
		return bound.NewError(x, args.exprs, b.invalid(), diag.List{
			diag.Errorf(x.Type, diag.MemberNotAccessible, "constructor of %s is not accessible", typ)})
	}
	ctor := b.selectMember(candidates, args)
	if ctor == nil {
		return bound.NewError(x, args.exprs, b.invalid(), diag.List{
			diag.Errorf(x, diag.NoMatchingCandidate, "no constructor of %s matches %s", typ, args)})
	}
	return bound.NewObjectCreation(x, ctor, args.reorder(paramNames(ctor.Params())), typ, nil)
}
