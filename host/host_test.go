// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host_test

import (
	"bytes"
	"io"
	"reflect"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.cinder.dev/host"
)

func TestSpecials(t *testing.T) {
	c := host.NewReflect()
	for _, s := range host.Specials() {
		typ := c.SpecialType(s)
		require.NotNil(t, typ, "%v", s)
		if got := typ.Special(); got != s {
			t.Errorf("SpecialType(%v).Special() = %v", s, got)
		}
		if got := c.LookupType(typ.Name()); got != typ {
			t.Errorf("LookupType(%q) = %v, want %v", typ.Name(), got, typ)
		}
		if k, ok := host.SpecialByKeyword(s.String()); !ok || k != s {
			t.Errorf("SpecialByKeyword(%q) = %v, %t", s.String(), k, ok)
		}
	}
	if _, ok := host.SpecialByKeyword("integer"); ok {
		t.Errorf("SpecialByKeyword(integer) succeeded")
	}
	if got := c.LookupType("System.Nope"); got != nil {
		t.Errorf("LookupType(System.Nope) = %v, want nil", got)
	}
}

func TestArrayOf(t *testing.T) {
	c := host.NewReflect()
	str := c.SpecialType(host.String)
	a := c.ArrayOf(str)
	if a != c.ArrayOf(str) {
		t.Errorf("ArrayOf is not canonical")
	}
	if a.Name() != "System.String[]" {
		t.Errorf("ArrayOf(String).Name() = %q", a.Name())
	}
	if a.Elem() != str {
		t.Errorf("Elem() = %v, want %v", a.Elem(), str)
	}
	if str.Elem() != nil {
		t.Errorf("String.Elem() = %v, want nil", str.Elem())
	}
	if !host.IsArrayOf(a, host.String) || host.IsArrayOf(a, host.Int32) || host.IsArrayOf(str, host.String) {
		t.Errorf("IsArrayOf gave wrong answers")
	}
}

type point struct {
	X, Y   int32
	secret string
}

func (p *point) Scale(k int32) *point { return &point{X: p.X * k, Y: p.Y * k} }

func TestReflectStruct(t *testing.T) {
	c := host.NewReflect()
	pt := c.Define("Geo.Point", reflect.TypeOf(point{}))
	require.Equal(t, pt, c.Define("Geo.Point", reflect.TypeOf(&point{})))

	if got, want := pt.MemberNames(), []string{"Scale", "X", "Y", "secret"}; !cmp.Equal(got, want) {
		t.Errorf("MemberNames: %s", cmp.Diff(want, got))
	}

	x := pt.Members("X")
	require.Len(t, x, 1)
	if x[0].Kind() != host.Field || !x[0].IsPublic() || !x[0].CanSet() || x[0].IsStatic() {
		t.Errorf("X: kind=%v public=%t set=%t static=%t", x[0].Kind(), x[0].IsPublic(), x[0].CanSet(), x[0].IsStatic())
	}
	if x[0].Type() != c.SpecialType(host.Int32) {
		t.Errorf("X.Type() = %v", x[0].Type())
	}

	secret := pt.Members("secret")
	require.Len(t, secret, 1)
	if secret[0].IsPublic() {
		t.Errorf("unexported field is public")
	}

	scale := pt.Members("Scale")
	require.Len(t, scale, 1)
	if scale[0].Kind() != host.Method || scale[0].Type() != pt || len(scale[0].Params()) != 1 {
		t.Errorf("Scale: kind=%v type=%v params=%v", scale[0].Kind(), scale[0].Type(), scale[0].Params())
	}
	if scale[0].DeclaringType() != pt {
		t.Errorf("Scale.DeclaringType() = %v", scale[0].DeclaringType())
	}
}

type appConfig struct{}

func TestStaticFields(t *testing.T) {
	c := host.NewReflect()
	cfg := c.Define("App.Config", reflect.TypeOf(appConfig{}))
	limit := int32(10)
	c.AddStaticField(cfg, "Limit", &limit)
	c.AddConstField(cfg, "Version", "1.2")

	l := cfg.Members("Limit")
	require.Len(t, l, 1)
	require.True(t, l[0].IsStatic())
	require.True(t, l[0].CanSet())
	require.Equal(t, c.SpecialType(host.Int32), l[0].Type())

	v := cfg.Members("Version")
	require.Len(t, v, 1)
	require.True(t, v[0].IsStatic())
	require.False(t, v[0].CanSet())
	require.Equal(t, c.SpecialType(host.String), v[0].Type())
	type reflector interface{ Reflect() reflect.Value }
	require.Equal(t, "1.2", v[0].(reflector).Reflect().Elem().Interface())
}

func TestStandard(t *testing.T) {
	c := host.Standard()
	for _, test := range []struct {
		typ, member string
		arity       []int
		static      bool
	}{
		{"System.Console", "WriteLine", []int{0, 1, 1, 1, 1, 1, 1}, true},
		{"System.Math", "Max", []int{2, 2}, true},
		{"System.Math", "Sqrt", []int{1}, true},
		{"System.Int32", "ToString", []int{0}, false},
		{"System.Int32", "CompareTo", []int{1}, false},
		{"System.Double", "ToString", []int{0}, false},
		{"System.String", "Substring", []int{2}, false},
		{"System.String", "Concat", []int{2}, true},
		{"System.Text.StringBuilder", "Append", []int{1}, false},
	} {
		typ := c.LookupType(test.typ)
		require.NotNil(t, typ, test.typ)
		var arity []int
		for _, m := range typ.Members(test.member) {
			arity = append(arity, len(m.Params()))
			if m.IsStatic() != test.static {
				t.Errorf("%s.%s: static = %t", test.typ, test.member, m.IsStatic())
			}
		}
		if !cmp.Equal(arity, test.arity) {
			t.Errorf("%s.%s arities: %s", test.typ, test.member, cmp.Diff(test.arity, arity))
		}
	}

	sb := c.LookupType("System.Text.StringBuilder")
	if n := len(sb.Constructors()); n != 2 {
		t.Errorf("StringBuilder has %d constructors, want 2", n)
	}
	if ms := sb.Members("buf"); len(ms) != 1 || ms[0].IsPublic() {
		t.Errorf("StringBuilder.buf should be a non-public field")
	}
	if ms := c.LookupType("System.Math").Members("PI"); len(ms) != 1 || ms[0].Kind() != host.Field || !ms[0].IsStatic() || ms[0].CanSet() {
		t.Errorf("Math.PI should be a read-only static field")
	}
	sub := c.SpecialType(host.String).Members("Substring")[0]
	if got := []string{sub.Params()[0].Name, sub.Params()[1].Name}; !cmp.Equal(got, []string{"startIndex", "length"}) {
		t.Errorf("Substring param names = %v", got)
	}
}

func TestStandardBehavior(t *testing.T) {
	var buf bytes.Buffer
	defer func(w io.Writer) { host.Stdout = w }(host.Stdout)
	host.Stdout = &buf

	c := host.Standard()
	type reflector interface{ Reflect() reflect.Value }
	call := func(typ, name string, i int, args ...interface{}) []reflect.Value {
		m := c.LookupType(typ).Members(name)[i]
		var in []reflect.Value
		for _, a := range args {
			in = append(in, reflect.ValueOf(a))
		}
		return m.(reflector).Reflect().Call(in)
	}
	call("System.Console", "WriteLine", 1, "hello")
	require.Equal(t, "hello\n", buf.String())

	require.Equal(t, int32(7), call("System.Math", "Max", 0, int32(3), int32(7))[0].Interface())
	require.Equal(t, "42", call("System.Int32", "ToString", 0, int32(42))[0].Interface())
	require.Equal(t, "True", call("System.Boolean", "ToString", 0, true)[0].Interface())
	require.Equal(t, "ell", call("System.String", "Substring", 0, "hello", int32(1), int32(3))[0].Interface())

	b := new(host.StringBuilder)
	b.Append("a").AppendLine("b")
	require.Equal(t, "ab\n", b.ToString())
}

// Catalog queries must be safe from concurrent binders.
func TestConcurrentQueries(t *testing.T) {
	c := host.Standard()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, name := range []string{"System.Console", "System.Text.StringBuilder", "System.String"} {
				typ := c.LookupType(name)
				typ.MemberNames()
				c.ArrayOf(typ)
			}
		}()
	}
	wg.Wait()
}
