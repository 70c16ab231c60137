// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binder

import (
	"fmt"

	"go.cinder.dev/bound"
	"go.cinder.dev/diag"
	"go.cinder.dev/host"
	"go.cinder.dev/internal/spell"
	"go.cinder.dev/symbols"
	"go.cinder.dev/syntax"
)

// bindExpr binds an expression.
func (b *Binder) bindExpr(e syntax.Expr) bound.Expr {
	switch e := e.(type) {
	case *syntax.Literal:
		return b.bindLiteral(e)
	case *syntax.Ident:
		return b.bindName(e)
	case *syntax.ParenExpr:
		return b.bindExpr(e.X)
	case *syntax.UnaryExpr:
		return b.bindUnary(e)
	case *syntax.BinaryExpr:
		return b.bindBinary(e)
	case *syntax.AssignExpr:
		return b.bindAssign(e)
	case *syntax.DotExpr:
		return b.bindDot(e)
	case *syntax.CallExpr:
		return b.bindCall(e)
	case *syntax.NewExpr:
		return b.bindNew(e)
	}
	panic(fmt.Sprintf("unexpected expression %T", e))
}

// failed reports whether e or one of its parts has already been
// diagnosed, so that no further diagnostic should be reported for it.
func failed(e bound.Expr) bool {
	return !e.Type().IsValid() || e.Diagnostics().HasErrors()
}

// bindName binds an identifier, trying first a type and then a variable.
func (b *Binder) bindName(id *syntax.Ident) bound.Expr {
	if t := b.names.lookup(id.Name); t != nil {
		return bound.NewTypeName(id, t, nil)
	}
	if v := b.scope.LookupVariable(id.Name); v != nil {
		return bound.NewVar(id, v, nil)
	}
	return bound.NewError(id, nil, b.invalid(), diag.List{
		diag.Errorf(id, diag.UndeclaredVariable, "Variable %s is not declared%s",
			id.Name, spell.Suggest(id.Name, b.scope.Names()))})
}

func (b *Binder) bindUnary(x *syntax.UnaryExpr) bound.Expr {
	operand := b.bindExpr(x.X)
	if failed(operand) {
		return bound.NewUnary(x, 0, operand, b.invalid(), nil)
	}
	op, result, ok := unaryOperator(x.Op, operand.Type().Special())
	if !ok {
		return bound.NewUnary(x, 0, operand, b.invalid(), diag.List{
			diag.Errorf(x, diag.UnsupportedOperator, "operator %s is not defined for %s", x.Op, operand.Type())})
	}
	return bound.NewUnary(x, op, operand, b.special(result), nil)
}

func (b *Binder) bindBinary(x *syntax.BinaryExpr) bound.Expr {
	left := b.bindExpr(x.X)
	right := b.bindExpr(x.Y)
	if failed(left) || failed(right) {
		return bound.NewBinary(x, left, 0, right, b.invalid(), nil)
	}
	op, result, ok := binaryOperator(left.Type().Special(), x.Op, right.Type().Special())
	if !ok {
		return bound.NewBinary(x, left, 0, right, b.invalid(), diag.List{
			diag.Errorf(x, diag.UnsupportedOperator, "operator %s is not defined for %s and %s",
				x.Op, left.Type(), right.Type())})
	}
	return bound.NewBinary(x, left, op, right, b.special(result), nil)
}

func (b *Binder) bindAssign(x *syntax.AssignExpr) bound.Expr {
	op, ok := bound.AssignOperation(x.Op)
	if !ok {
		panic(fmt.Sprintf("unexpected assignment operator %s", x.Op))
	}
	rhs := b.bindExpr(x.RHS)
	if id, ok := x.LHS.(*syntax.Ident); ok && op == bound.Assign {
		b.declareImplicit(id, rhs)
	}
	lhs := b.bindExpr(x.LHS)

	var own diag.List
	if !failed(lhs) {
		switch {
		case !lhs.LValue():
			own = append(own, diag.Errorf(x.LHS, diag.NotAnLValue, "cannot assign to %s", describe(lhs)))
		case lhs.ReadOnly():
			own = append(own, diag.Errorf(x.LHS, diag.ReadOnlyVariable, "%s is read-only", describeCap(lhs)))
		}
	}

	var operator bound.BinaryOp
	if !failed(lhs) && !failed(rhs) {
		if op == bound.Assign {
			if !lhs.Type().Equal(rhs.Type()) {
				own = append(own, diag.Errorf(x.RHS, diag.TypeMismatch,
					"cannot assign %s to %s of type %s", rhs.Type(), describe(lhs), lhs.Type()))
			}
		} else {
			var result host.Special
			operator, result, ok = binaryOperator(lhs.Type().Special(), op.BinaryToken(), rhs.Type().Special())
			switch {
			case !ok:
				own = append(own, diag.Errorf(x, diag.UnsupportedOperator, "operator %s is not defined for %s and %s",
					op, lhs.Type(), rhs.Type()))
			case !b.special(result).Equal(lhs.Type()):
				own = append(own, diag.Errorf(x, diag.TypeMismatch, "cannot assign %s to %s of type %s",
					b.special(result), describe(lhs), lhs.Type()))
			}
		}
	}
	return bound.NewAssignment(x, op, operator, lhs, rhs, lhs.Type(), own)
}

// declareImplicit declares a REPL variable for a script assignment
// to an undeclared name outside any function.
func (b *Binder) declareImplicit(id *syntax.Ident, rhs bound.Expr) {
	if b.mode != ScriptMode || b.fn != nil || !rhs.Type().IsValid() || rhs.Type().Is(host.Void) {
		return
	}
	if b.names.lookup(id.Name) != nil || b.scope.LookupVariable(id.Name) != nil {
		return
	}
	top := b.scope.Enclosing(symbols.ModuleScope)
	if top.IsZero() {
		top = b.scope.Enclosing(symbols.GlobalScope)
	}
	top.DeclareVariable(&symbols.Variable{Name: id.Name, Kind: symbols.REPL, Type: rhs.Type(), Decl: id})
}

// describe returns a short description of a location for diagnostics.
func describe(e bound.Expr) string {
	switch e := e.(type) {
	case *bound.Var:
		return "variable " + e.Variable.Name
	case *bound.FieldAccess:
		return "field " + e.Field.Name()
	case *bound.PropertyAccess:
		return "property " + e.Property.Name()
	case *bound.TypeName:
		return "type " + e.Type().Name()
	}
	return "expression"
}

func describeCap(e bound.Expr) string {
	s := describe(e)
	return string(s[0]-'a'+'A') + s[1:]
}

// bindDot binds a field or property access, or a qualified type name.
func (b *Binder) bindDot(x *syntax.DotExpr) bound.Expr {
	if name := syntax.QualifiedName(x); name != "" {
		if t := b.names.lookup(name); t != nil {
			return bound.NewTypeName(x, t, nil)
		}
	}
	recv := b.bindExpr(x.X)
	name := x.Name.Name
	if failed(recv) {
		return bound.NewInvalidAccess(x, recv, name, b.invalid(), nil)
	}
	_, static := recv.(*bound.TypeName)
	typ := recv.Type()

	var found host.Member
	for _, m := range typ.Host().Members(name) {
		if (m.Kind() == host.Field || m.Kind() == host.Property) && m.IsStatic() == static {
			found = m
			break
		}
	}
	if found == nil {
		return bound.NewInvalidAccess(x, recv, name, b.invalid(), diag.List{
			diag.Errorf(x.Name, diag.MemberNotFound, "type %s has no %s named %s%s",
				typ, fieldKind(static), name, spell.Suggest(name, typ.Host().MemberNames()))})
	}

	var own diag.List
	if !found.IsPublic() {
		own = append(own, diag.Errorf(x.Name, diag.MemberNotAccessible, "%s %s.%s is not accessible",
			found.Kind(), typ, name))
	}
	if static {
		recv = nil
	}
	mtyp := b.types.Of(found.Type())
	if found.Kind() == host.Field {
		return bound.NewFieldAccess(x, recv, found, mtyp, own)
	}
	return bound.NewPropertyAccess(x, recv, found, mtyp, own)
}

func fieldKind(static bool) string {
	if static {
		return "static field or property"
	}
	return "field or property"
}
