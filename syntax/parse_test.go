// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax_test

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"go.cinder.dev/syntax"
)

func TestExprParseTrees(t *testing.T) {
	for _, test := range []struct {
		input, want string
	}{
		{`1 + 2 + 3`,
			`(BinaryExpr X=(BinaryExpr X=1 Op=+ Y=2) Op=+ Y=3)`},
		{`x+y*z`,
			`(BinaryExpr X=x Op=+ Y=(BinaryExpr X=y Op=* Y=z))`},
		{`(1 + 2) * 3`,
			`(BinaryExpr X=(ParenExpr X=(BinaryExpr X=1 Op=+ Y=2)) Op=* Y=3)`},
		{`1 << 2 + 3`,
			`(BinaryExpr X=1 Op=<< Y=(BinaryExpr X=2 Op=+ Y=3))`},
		{`!a && b || c`,
			`(BinaryExpr X=(BinaryExpr X=(UnaryExpr Op=! X=a) Op=&& Y=b) Op=|| Y=c)`},
		{`a = b += 1`,
			`(AssignExpr LHS=a Op== RHS=(AssignExpr LHS=b Op=+= RHS=1))`},
		{`-x.y`,
			`(UnaryExpr Op=- X=(DotExpr X=x Name=y))`},
		{`10.ToString()`,
			`(CallExpr Fn=(DotExpr X=10 Name=ToString))`},
		{`f(a: 1, b: "x")`,
			`(CallExpr Fn=f Args=((Arg Name=a Value=1) (Arg Name=b Value="x")))`},
		{`new System.Text.StringBuilder(16)`,
			`(NewExpr Type=(TypeExpr Name=(DotExpr X=(DotExpr X=System Name=Text) Name=StringBuilder)) Args=((Arg Value=16)))`},
		{`@"raw" == null`,
			`(BinaryExpr X=@"raw" Op=== Y=null)`},
	} {
		e, err := syntax.ParseExpr("foo.cdr", test.input, 0)
		var got string
		if err != nil {
			got = stripPos(err)
		} else {
			got = treeString(e)
		}
		if test.want != got {
			t.Errorf("parse `%s` = %s, want %s", test.input, got, test.want)
		}
	}
}

func TestStmtParseTrees(t *testing.T) {
	for _, test := range []struct {
		input, want string
	}{
		{`const n = 0;`,
			`(VarStmt Const Name=n Value=0)`},
		{`let s = "x";`,
			`(VarStmt Name=s Value="x")`},
		{`return;`,
			`(ReturnStmt)`},
		{`{ const n = 0; n = 0; }`,
			`(BlockStmt List=((VarStmt Const Name=n Value=0) (ExprStmt X=(AssignExpr LHS=n Op== RHS=0))))`},
		{`if (a) x; else unless (b) y; else z;`,
			`(IfStmt Clauses=((CondClause Cond=a Body=(ExprStmt X=x)) (CondClause Unless Cond=b Body=(ExprStmt X=y))) Else=(ExprStmt X=z))`},
		{`if (a) if (b) x; else y;`,
			`(IfStmt Clauses=((CondClause Cond=a Body=(IfStmt Clauses=((CondClause Cond=b Body=(ExprStmt X=x))) Else=(ExprStmt X=y)))))`},
		{`while (x) { break; }`,
			`(LoopStmt Cond=x Body=(BlockStmt List=((BranchStmt Token=break))))`},
		{`until (done) ;`,
			`(LoopStmt Until Cond=done Body=(EmptyStmt))`},
	} {
		s, err := syntax.ParseStmt("foo.cdr", test.input, 0)
		var got string
		if err != nil {
			got = stripPos(err)
		} else {
			got = treeString(s)
		}
		if test.want != got {
			t.Errorf("parse `%s` = %s, want %s", test.input, got, test.want)
		}
	}
}

func TestFileParseTree(t *testing.T) {
	const src = `
using System;
using Con = System.Console;

int func(int a, string[] b) { return a; }
`
	f, err := syntax.Parse("a.cdr", src, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := `(File Path=a.cdr ` +
		`Usings=((UsingDecl Name=System) (UsingDecl Alias=Con Name=(DotExpr X=System Name=Console))) ` +
		`Decls=((FuncDecl Result=(TypeExpr Name=int) Name=func ` +
		`Params=((Param Type=(TypeExpr Name=int) Name=a) (Param Type=(TypeExpr Name=string Rank=1) Name=b)) ` +
		`Body=(BlockStmt List=((ReturnStmt Result=a))))))`
	if got := treeString(f); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestScriptMode(t *testing.T) {
	const src = `let x = 1; x = x + 1; void f() { }`
	if _, err := syntax.Parse("a.cdr", src, 0); err == nil || stripPos(err) != "got identifier, want declaration" {
		t.Errorf("module-mode parse error = %v", err)
	}
	f, err := syntax.Parse("a.cdr", src, syntax.ScriptMode)
	if err != nil {
		t.Fatal(err)
	}
	var kinds []string
	for _, d := range f.Decls {
		kinds = append(kinds, strings.TrimPrefix(reflect.TypeOf(d).String(), "*syntax."))
	}
	if got, want := strings.Join(kinds, " "), "VarStmt ScriptStmt FuncDecl"; got != want {
		t.Errorf("decls = %s, want %s", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		input, want string
	}{
		{`if x) y;`, "got identifier, want '('"},
		{`x = ;`, "got ';', want primary expression"},
		{`{ x; `, "got end of file, want '}'"},
		{`return 1`, "got end of file, want ';'"},
		{`f(a: 1, 2`, "got end of file, want ','"},
		{`"abc`, "unexpected EOF in string"},
	} {
		_, err := syntax.ParseStmt("foo.cdr", test.input, 0)
		if err == nil {
			t.Errorf("parse `%s` succeeded, want error %q", test.input, test.want)
			continue
		}
		if got := stripPos(err); got != test.want {
			t.Errorf("parse `%s` error = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestSpans(t *testing.T) {
	e, err := syntax.ParseExpr("foo.cdr", "a.b(c, d)", 0)
	if err != nil {
		t.Fatal(err)
	}
	span := fmt.Sprint(e.Span())
	if want := "foo.cdr:1:1 foo.cdr:1:10"; span != want {
		t.Errorf("wrong span: got %q, want %q", span, want)
	}
}

func stripPos(err error) string {
	s := err.Error()
	if i := strings.Index(s, ": "); i >= 0 {
		s = s[i+len(": "):] // strip file:line:col
	}
	return s
}

// treeString prints a syntax node as a parenthesized tree.
// Idents are printed as foo and Literals by their source text.
// Structs are printed as (type name=value ...).
// Only non-empty fields are shown.
func treeString(n syntax.Node) string {
	var buf bytes.Buffer
	writeTree(&buf, reflect.ValueOf(n))
	return buf.String()
}

func writeTree(out *bytes.Buffer, x reflect.Value) {
	switch x.Kind() {
	case reflect.String, reflect.Int, reflect.Bool:
		fmt.Fprintf(out, "%v", x.Interface())
	case reflect.Ptr, reflect.Interface:
		if elem := x.Elem(); elem.Kind() == 0 {
			out.WriteString("nil")
		} else {
			writeTree(out, elem)
		}
	case reflect.Struct:
		switch v := x.Interface().(type) {
		case syntax.Literal:
			out.WriteString(v.Raw)
			return
		case syntax.Ident:
			out.WriteString(v.Name)
			return
		}
		fmt.Fprintf(out, "(%s", strings.TrimPrefix(x.Type().String(), "syntax."))
		for i, n := 0, x.NumField(); i < n; i++ {
			f := x.Field(i)
			if f.Type() == reflect.TypeOf(syntax.Position{}) {
				continue // skip positions
			}
			name := x.Type().Field(i).Name
			if f.Type() == reflect.TypeOf(syntax.Token(0)) {
				fmt.Fprintf(out, " %s=%s", name, f.Interface())
				continue
			}

			switch f.Kind() {
			case reflect.Slice:
				if n := f.Len(); n > 0 {
					fmt.Fprintf(out, " %s=(", name)
					for i := 0; i < n; i++ {
						if i > 0 {
							out.WriteByte(' ')
						}
						writeTree(out, f.Index(i))
					}
					out.WriteByte(')')
				}
				continue
			case reflect.Ptr, reflect.Interface:
				if f.IsNil() {
					continue
				}
			case reflect.Int:
				if f.Int() != 0 {
					fmt.Fprintf(out, " %s=%d", name, f.Int())
				}
				continue
			case reflect.Bool:
				if f.Bool() {
					fmt.Fprintf(out, " %s", name)
				}
				continue
			}
			fmt.Fprintf(out, " %s=", name)
			writeTree(out, f)
		}
		fmt.Fprintf(out, ")")
	default:
		fmt.Fprintf(out, "%T", x.Interface())
	}
}
