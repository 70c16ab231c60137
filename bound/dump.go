// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bound

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented description of the tree rooted at n,
// one node per line, showing each expression's type.
func Dump(w io.Writer, n Node) {
	depth := 0
	Walk(n, func(n Node) bool {
		if n == nil {
			depth--
			return true
		}
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), describe(n))
		depth++
		return true
	})
}

func describe(n Node) string {
	var s string
	switch n := n.(type) {
	case *Program:
		s = "Program"
		if n.EntryPoint != nil {
			s += " entry=" + n.EntryPoint.Function.Name
		}
	case *Func:
		s = "Func " + n.Function.String()
	case *VarMember:
		s = "VarMember " + describeVar(n.Variable.Name, n.Variable.ReadOnly, n.Variable.Constant)
	case *ScriptMember:
		s = "ScriptMember"
	case *Block:
		s = "Block"
	case *ExprStmt:
		s = "ExprStmt"
	case *VarDecl:
		s = "VarDecl " + describeVar(n.Variable.Name, n.Variable.ReadOnly, n.Variable.Constant)
	case *Return:
		s = "Return"
		if n.Syntax() == nil {
			s += " (synthetic)"
		}
	case *If:
		s = "If"
	case *Loop:
		s = "Loop"
		if n.Negated {
			s += " negated"
		}
	case *Break:
		s = "Break"
	case *Continue:
		s = "Continue"
	case *NoOp:
		s = "NoOp"
	case *Const:
		if n.Value == nil {
			s = "Const <invalid>"
		} else {
			s = "Const " + n.Value.String()
		}
	case *Var:
		s = "Var " + n.Variable.Name
	case *Unary:
		s = "Unary " + n.Op.String()
	case *Binary:
		s = "Binary " + n.Op.String()
	case *Assignment:
		s = "Assignment " + n.Op.String()
	case *FieldAccess:
		s = "FieldAccess " + n.Field.Name()
	case *PropertyAccess:
		s = "PropertyAccess " + n.Property.Name()
	case *InvalidAccess:
		s = "InvalidAccess " + n.Name
	case *NativeCall:
		s = "NativeCall " + n.Method.DeclaringType().Name() + "." + n.Method.Name()
	case *UserCall:
		s = "UserCall " + n.Function.Name
	case *ObjectCreation:
		s = "ObjectCreation"
	case *TypeName:
		s = "TypeName"
	case *Error:
		s = "Error"
	default:
		panic(n)
	}
	if e, ok := n.(Expr); ok {
		s += " : " + e.Type().Name()
	}
	if own := n.Own(); len(own) > 0 {
		codes := make([]string, len(own))
		for i, d := range own {
			codes[i] = d.Code.String()
		}
		s += " [" + strings.Join(codes, " ") + "]"
	}
	return s
}

func describeVar(name string, readOnly, constant bool) string {
	switch {
	case constant:
		return name + " const"
	case readOnly:
		return name + " readonly"
	}
	return name
}
