// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binder

import (
	"go.cinder.dev/bound"
	"go.cinder.dev/host"
	"go.cinder.dev/syntax"
)

// Operator resolution. Operands of a binary operator must have the
// same special type; there are no implicit conversions.

var (
	numerics = []host.Special{host.Int32, host.UInt32, host.Int64, host.UInt64, host.Float, host.Double}
	integers = []host.Special{host.Int32, host.UInt32, host.Int64, host.UInt64}
)

type binaryKey struct {
	tok     syntax.Token
	operand host.Special
}

type binaryEntry struct {
	op     bound.BinaryOp
	result host.Special
}

var binaryTable = make(map[binaryKey]binaryEntry)

func init() {
	def := func(tok syntax.Token, operands []host.Special, op bound.BinaryOp, result host.Special) {
		for _, s := range operands {
			r := result
			if r == host.None {
				r = s // same as the operands
			}
			binaryTable[binaryKey{tok, s}] = binaryEntry{op, r}
		}
	}
	def(syntax.PLUS, numerics, bound.Addition, host.None)
	def(syntax.MINUS, numerics, bound.Subtraction, host.None)
	def(syntax.STAR, numerics, bound.Multiplication, host.None)
	def(syntax.SLASH, numerics, bound.Division, host.None)
	def(syntax.PERCENT, numerics, bound.Modulo, host.None)
	def(syntax.AMP, integers, bound.BitwiseAnd, host.None)
	def(syntax.PIPE, integers, bound.BitwiseOr, host.None)
	def(syntax.CIRCUMFLEX, integers, bound.BitwiseXor, host.None)
	def(syntax.LTLT, integers, bound.ShiftLeft, host.None)
	def(syntax.GTGT, integers, bound.ShiftRight, host.None)

	def(syntax.LT, numerics, bound.Less, host.Boolean)
	def(syntax.LE, numerics, bound.LessEqual, host.Boolean)
	def(syntax.GT, numerics, bound.Greater, host.Boolean)
	def(syntax.GE, numerics, bound.GreaterEqual, host.Boolean)

	equatable := append([]host.Special{host.Boolean, host.String, host.Object}, numerics...)
	def(syntax.EQL, equatable, bound.Equal, host.Boolean)
	def(syntax.NEQ, equatable, bound.NotEqual, host.Boolean)

	def(syntax.ANDAND, []host.Special{host.Boolean}, bound.LogicalAnd, host.Boolean)
	def(syntax.OROR, []host.Special{host.Boolean}, bound.LogicalOr, host.Boolean)
	def(syntax.PLUS, []host.Special{host.String}, bound.Concatenation, host.String)
}

// binaryOperator returns the operator denoted by tok for operands of
// special types x and y, and the special type of its result.
func binaryOperator(x host.Special, tok syntax.Token, y host.Special) (bound.BinaryOp, host.Special, bool) {
	if x != y || x == host.None {
		return 0, host.None, false
	}
	e, ok := binaryTable[binaryKey{tok, x}]
	return e.op, e.result, ok
}

// unaryOperator returns the operator denoted by tok for an operand
// of special type x, and the special type of its result.
func unaryOperator(tok syntax.Token, x host.Special) (bound.UnaryOp, host.Special, bool) {
	op, ok := bound.UnaryOperation(tok)
	if !ok {
		return 0, host.None, false
	}
	result := x
	switch op {
	case bound.Identity:
		ok = contains(numerics, x)
	case bound.Negation:
		ok = contains(numerics, x) && x != host.UInt64
		if x == host.UInt32 {
			result = host.Int64
		}
	case bound.Complement:
		ok = contains(integers, x)
	case bound.LogicalNot:
		ok = x == host.Boolean
	}
	if !ok {
		return 0, host.None, false
	}
	return bound.MakeUnaryOp(op, x), result, true
}

func contains(list []host.Special, x host.Special) bool {
	for _, s := range list {
		if s == x {
			return true
		}
	}
	return false
}
