// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbols_test

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.cinder.dev/host"
	"go.cinder.dev/symbols"
)

func newTypes() *symbols.Types { return symbols.NewTypes(host.Standard()) }

func TestTypes(t *testing.T) {
	ts := newTypes()
	i32 := ts.Special(host.Int32)
	require.Same(t, i32, ts.Special(host.Int32))
	require.Same(t, i32, ts.Lookup("System.Int32"))
	require.Nil(t, ts.Lookup("System.Int33"))
	require.True(t, i32.Is(host.Int32))
	require.False(t, i32.Is(host.None))

	arr := ts.ArrayOf(ts.Special(host.String))
	require.Same(t, ts.Special(host.String), arr.Elem())
	require.Equal(t, "System.String[]", arr.Name())

	bad := ts.Invalid()
	require.False(t, bad.IsValid())
	require.Equal(t, "?", bad.Name())
	require.Same(t, bad, ts.ArrayOf(bad))
	require.False(t, bad.Equal(i32))
	require.True(t, bad.Equal(bad))
}

func TestConcurrentInterning(t *testing.T) {
	ts := newTypes()
	var wg sync.WaitGroup
	got := make([]*symbols.TypeSymbol, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = ts.ArrayOf(ts.Lookup("System.Text.StringBuilder"))
		}(i)
	}
	wg.Wait()
	for _, sym := range got[1:] {
		require.Same(t, got[0], sym)
	}
}

func TestShadowing(t *testing.T) {
	ts := newTypes()
	module := symbols.NewScope(symbols.ModuleScope, symbols.Scope{})
	fn := module.Child(symbols.FunctionScope)
	block := fn.Child(symbols.BlockScope)

	outer := &symbols.Variable{Name: "x", Kind: symbols.Global, Type: ts.Special(host.Int32)}
	inner := &symbols.Variable{Name: "x", Kind: symbols.Local, Type: ts.Special(host.String)}
	require.Same(t, outer, module.DeclareVariable(outer))
	require.Same(t, inner, block.DeclareVariable(inner))

	require.Same(t, inner, block.LookupVariable("x"))
	require.Same(t, outer, fn.LookupVariable("x"))
	require.Nil(t, block.LookupVariable("y"))

	// First declaration wins within a scope.
	dup := &symbols.Variable{Name: "x", Kind: symbols.Local, Type: ts.Special(host.Boolean)}
	require.Same(t, inner, block.DeclareVariable(dup))
	require.Len(t, block.Variables(), 1)

	require.Equal(t, fn, block.Parent())
	require.Equal(t, module, block.Enclosing(symbols.ModuleScope))
	require.True(t, block.Enclosing(symbols.TypeScope).IsZero())
	require.True(t, module.Parent().IsZero())
}

func TestOuterScope(t *testing.T) {
	ts := newTypes()
	module := symbols.NewScope(symbols.ModuleScope, symbols.Scope{})
	g := module.DeclareVariable(&symbols.Variable{Name: "g", Kind: symbols.Global, Type: ts.Special(host.Int32)})
	module.Tree().Freeze()
	require.Panics(t, func() { module.DeclareVariable(&symbols.Variable{Name: "h"}) })
	require.Panics(t, func() { module.Child(symbols.BlockScope) })

	// Independent trees may hang off a frozen module scope.
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn := symbols.NewScope(symbols.FunctionScope, module)
			fn.Child(symbols.BlockScope).DeclareVariable(&symbols.Variable{Name: "l", Type: ts.Special(host.Int32)})
			if fn.Child(symbols.BlockScope).LookupVariable("g") != g {
				t.Errorf("lookup through outer scope failed")
			}
		}()
	}
	wg.Wait()
}

func fn(ts *symbols.Types, name string, params ...interface{}) *symbols.Function {
	f := &symbols.Function{Name: name, Result: ts.Special(host.Int32)}
	for i := 0; i < len(params); i += 2 {
		f.Params = append(f.Params, symbols.Param{Type: ts.Special(params[i].(host.Special)), Name: params[i+1].(string)})
	}
	return f
}

// invalidParam gives the first parameter of f an invalid type,
// as after a TypeNotFound error.
func invalidParam(f *symbols.Function, ts *symbols.Types) *symbols.Function {
	f.Params[0].Type = ts.Invalid()
	return f
}

func TestFunctionConflicts(t *testing.T) {
	ts := newTypes()
	for _, test := range []struct {
		f, g     *symbols.Function
		conflict bool
	}{
		// same set, different order
		{fn(ts, "f", host.Int32, "a", host.String, "b"), fn(ts, "f", host.String, "b", host.Int32, "a"), true},
		// same ordered types, different names
		{fn(ts, "f", host.Int32, "a"), fn(ts, "f", host.Int32, "b"), true},
		{fn(ts, "f"), fn(ts, "f"), true},
		{fn(ts, "f", host.Int32, "a"), fn(ts, "g", host.Int32, "a"), false},
		{fn(ts, "f", host.Int32, "a"), fn(ts, "f", host.Int64, "a"), false},
		{fn(ts, "f", host.Int32, "a"), fn(ts, "f", host.Int32, "a", host.Int32, "b"), false},
		{fn(ts, "f", host.Int32, "a", host.String, "b"), fn(ts, "f", host.String, "a", host.Int32, "b"), false},
		// unresolved parameter types
		{invalidParam(fn(ts, "f", host.Int32, "a"), ts), invalidParam(fn(ts, "f", host.Int32, "a"), ts), false},
		{invalidParam(fn(ts, "f", host.Int32, "a"), ts), fn(ts, "f", host.Int32, "a"), false},
	} {
		if got := test.f.Conflicts(test.g); got != test.conflict {
			t.Errorf("%s conflicts with %s = %t, want %t", test.f, test.g, got, test.conflict)
		}
		if got := test.g.Conflicts(test.f); got != test.conflict {
			t.Errorf("Conflicts is not symmetric for %s, %s", test.f, test.g)
		}
	}
}

func TestDeclareFunction(t *testing.T) {
	ts := newTypes()
	module := symbols.NewScope(symbols.ModuleScope, symbols.Scope{})
	f1 := fn(ts, "func", host.Int32, "a", host.String, "b")
	f2 := fn(ts, "func", host.String, "b", host.Int32, "a")
	f3 := fn(ts, "func", host.Int32, "a")

	require.Same(t, f1, module.DeclareFunction(f1))
	require.Same(t, f1, module.DeclareFunction(f2), "ambiguous declaration returns the earlier one")
	require.Same(t, f3, module.DeclareFunction(f3))
	require.Len(t, module.Functions(), 3)

	block := module.Child(symbols.FunctionScope).Child(symbols.BlockScope)
	i32, str := ts.Special(host.Int32), ts.Special(host.String)
	require.Same(t, f1, block.LookupFunction("func", []*symbols.TypeSymbol{i32, str}))
	require.Same(t, f2, block.LookupFunction("func", []*symbols.TypeSymbol{str, i32}))
	require.Same(t, f3, block.LookupFunction("func", []*symbols.TypeSymbol{i32}))
	require.Nil(t, block.LookupFunction("func", nil))

	named := []symbols.Param{{Name: "b", Type: str}, {Name: "a", Type: i32}}
	require.Same(t, f1, block.LookupFunctionNamed("func", named), "named lookup cannot distinguish f1 and f2")
	require.Nil(t, block.LookupFunctionNamed("func", []symbols.Param{{Name: "c", Type: i32}}))

	require.Equal(t, "System.Int32 func(System.Int32 a, System.String b)", f1.String())
	require.Equal(t, 1, f1.ParamIndex("b"))
	require.Equal(t, -1, f1.ParamIndex("c"))
}

func TestNames(t *testing.T) {
	ts := newTypes()
	module := symbols.NewScope(symbols.ModuleScope, symbols.Scope{})
	module.DeclareFunction(fn(ts, "main"))
	module.DeclareVariable(&symbols.Variable{Name: "count"})
	block := module.Child(symbols.BlockScope)
	block.DeclareVariable(&symbols.Variable{Name: "acc"})
	block.DeclareVariable(&symbols.Variable{Name: "count"})
	if got, want := block.Names(), []string{"acc", "count", "main"}; !cmp.Equal(got, want) {
		t.Errorf("Names: %s", cmp.Diff(want, got))
	}
}
