// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fold_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.cinder.dev/binder"
	"go.cinder.dev/bound"
	"go.cinder.dev/constant"
	"go.cinder.dev/diag"
	"go.cinder.dev/fold"
	"go.cinder.dev/host"
	"go.cinder.dev/symbols"
	"go.cinder.dev/syntax"
)

var types = symbols.NewTypes(host.Standard())

func bind(t *testing.T, src string) *bound.Program {
	t.Helper()
	f, err := syntax.Parse("test.cdr", src, syntax.ScriptMode)
	require.NoError(t, err)
	return binder.BindProgram(types, []*syntax.File{f}, binder.Options{Imports: []string{"System"}})
}

// varInit returns the initializer of the i'th member, a variable.
func varInit(t *testing.T, p *bound.Program, i int) bound.Expr {
	t.Helper()
	m, ok := p.Members[i].(*bound.VarMember)
	require.True(t, ok, "member %d is %T", i, p.Members[i])
	return m.Init
}

func constValue(t *testing.T, e bound.Expr) constant.Value {
	t.Helper()
	c, ok := e.(*bound.Const)
	require.True(t, ok, "got %T, want *bound.Const", e)
	return c.Value
}

func TestConstDeclaration(t *testing.T) {
	prog := bind(t, "const a = 10 + 10;")
	require.Empty(t, prog.Diagnostics())
	a := prog.Members[0].(*bound.VarMember).Variable
	require.True(t, a.Constant)
	require.True(t, a.ReadOnly)
	require.IsType(t, (*bound.Binary)(nil), varInit(t, prog, 0))

	f := fold.New()
	folded := f.Program(prog)
	require.Equal(t, constant.MakeInt32(20), constValue(t, varInit(t, folded, 0)))
	require.True(t, varInit(t, folded, 0).Type().Is(host.Int32))
	v, ok := f.Value(a)
	require.True(t, ok)
	require.Equal(t, constant.MakeInt32(20), v)

	// The input is unchanged.
	require.IsType(t, (*bound.Binary)(nil), varInit(t, prog, 0))
}

func TestSubstitution(t *testing.T) {
	prog := fold.Program(bind(t, `
const a = 2;
let b = a * 3;
let c = b + 1;
const d = b;
const e = "x" + "y";
let f = 1 / 0;
let g = -a;
let h = !(a < 3);
`))
	require.Empty(t, prog.Diagnostics())
	require.Equal(t, constant.MakeInt32(6), constValue(t, varInit(t, prog, 1)))
	require.IsType(t, (*bound.Binary)(nil), varInit(t, prog, 2))
	require.IsType(t, (*bound.Var)(nil), varInit(t, prog, 3))
	require.Equal(t, constant.MakeString("xy"), constValue(t, varInit(t, prog, 4)))
	require.IsType(t, (*bound.Binary)(nil), varInit(t, prog, 5))
	require.Equal(t, constant.MakeInt32(-2), constValue(t, varInit(t, prog, 6)))
	require.Equal(t, constant.False, constValue(t, varInit(t, prog, 7)))
}

func TestUnfoldableConstant(t *testing.T) {
	prog := bind(t, `
const a = 10 / 0;
const b = 1 % 0;
let c = a + 1;
const d = a * 2;
const n = null == null;
const m = null != null;
`)
	require.Empty(t, prog.Diagnostics())
	vars := make([]*symbols.Variable, len(prog.Members))
	for i, m := range prog.Members {
		vars[i] = m.(*bound.VarMember).Variable
	}
	a, b, d := vars[0], vars[1], vars[3]
	require.True(t, a.Constant)
	require.True(t, varInit(t, prog, 2).Constant())

	folded := fold.Program(prog)
	for _, v := range []*symbols.Variable{a, b, d} {
		require.True(t, v.ReadOnly, v.Name)
		require.False(t, v.Constant, v.Name)
	}
	require.IsType(t, (*bound.Binary)(nil), varInit(t, folded, 0))
	c := varInit(t, folded, 2)
	require.IsType(t, (*bound.Binary)(nil), c)
	require.False(t, c.Constant())

	require.True(t, vars[4].Constant)
	require.Equal(t, constant.True, constValue(t, varInit(t, folded, 4)))
	require.True(t, vars[5].Constant)
	require.Equal(t, constant.False, constValue(t, varInit(t, folded, 5)))
}

func TestUnfoldableLocalConstant(t *testing.T) {
	prog := fold.Program(bind(t, `
int main() {
  const z = 4 / 0;
  let y = z + 1;
  return y;
}
`))
	require.Empty(t, prog.Diagnostics())
	body := prog.Funcs()[0].Body.List
	z := body[0].(*bound.VarDecl)
	require.False(t, z.Variable.Constant)
	y := body[1].(*bound.VarDecl).Init
	require.IsType(t, (*bound.Binary)(nil), y)
	require.False(t, y.Constant())
}

func TestForwardReference(t *testing.T) {
	prog := fold.Program(bind(t, "int f() { return k; }\nconst k = 5;\n"))
	require.Empty(t, prog.Diagnostics())
	ret := prog.Funcs()[0].Body.List[0].(*bound.Return)
	require.Equal(t, constant.MakeInt32(5), constValue(t, ret.Value))
}

func TestLocalConstants(t *testing.T) {
	prog := fold.Program(bind(t, `
void main() {
  const n = 4;
  let m = n * n;
  while (n > 3) { break; }
}
`))
	require.Empty(t, prog.Diagnostics())
	body := prog.Funcs()[0].Body.List
	require.Equal(t, constant.MakeInt32(16), constValue(t, body[1].(*bound.VarDecl).Init))
	require.Equal(t, constant.True, constValue(t, body[2].(*bound.Loop).Cond))
}

func TestDiagnosticsPreserved(t *testing.T) {
	prog := bind(t, `
const a = 1;
void main() {
  a = 2;
  let b = a + "s";
  let c = (1 + 2) + missing;
}
`)
	want := prog.Diagnostics()
	require.Len(t, want, 3)
	require.Equal(t, want, fold.Program(prog).Diagnostics())
}

func TestIdempotent(t *testing.T) {
	prog := fold.Program(bind(t, `
const a = 1 + 2;
int f(int x) { return x * a + (3 - 1); }
void main() { if (a == 3) { f(a); } }
`))
	require.Same(t, prog, fold.Program(prog))
}

func TestUnchanged(t *testing.T) {
	prog := bind(t, "void main(string[] args) { let x = args; }")
	require.Same(t, prog, fold.Program(prog))
}

func TestFolderAcrossInputs(t *testing.T) {
	s := binder.NewSession(types, binder.Options{})
	f := fold.New()
	parse := func(src string) *syntax.File {
		file, err := syntax.Parse("<stdin>", src, syntax.ScriptMode)
		require.NoError(t, err)
		return file
	}
	f.Program(s.Bind(parse("const a = 3;")))
	prog := f.Program(s.Bind(parse("a + 1;")))
	stmt := prog.Members[0].(*bound.ScriptMember).Stmt.(*bound.ExprStmt)
	require.Equal(t, constant.MakeInt32(4), constValue(t, stmt.X))
}

func TestExpr(t *testing.T) {
	i32 := types.Special(host.Int32)
	one := bound.NewConst(nil, constant.MakeInt32(1), i32, nil)
	warn := &diag.Diagnostic{Message: "w", Level: diag.Warning, Code: diag.UnreachableCode}
	two := bound.NewConst(nil, constant.MakeInt32(2), i32, diag.List{warn})
	sum := bound.NewBinary(nil, one, bound.Addition, two, i32, nil)

	got := fold.New().Expr(sum)
	require.Equal(t, constant.MakeInt32(3), constValue(t, got))
	require.Equal(t, diag.List{warn}, got.Diagnostics())

	// An unresolved operator is never folded.
	bad := bound.NewBinary(nil, one, 0, two, types.Invalid(), nil)
	require.Same(t, bad, fold.New().Expr(bad))
}
