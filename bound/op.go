// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bound

import (
	"fmt"

	"go.cinder.dev/host"
	"go.cinder.dev/syntax"
)

// A UnaryOp combines a unary operation, in the high byte, with the
// special type of its operand, in the low byte. The zero UnaryOp
// denotes an operator that failed to resolve.
type UnaryOp uint16

// Unary operations.
const (
	Identity   UnaryOp = 1 << 8 // +x
	Negation   UnaryOp = 2 << 8 // -x
	Complement UnaryOp = 3 << 8 // ~x
	LogicalNot UnaryOp = 4 << 8 // !x
)

// MakeUnaryOp returns the unary operator applying operation op to an
// operand of special type s.
func MakeUnaryOp(op UnaryOp, s host.Special) UnaryOp { return op&^0xff | UnaryOp(s) }

// Operation returns the operation of op without its operand type.
func (op UnaryOp) Operation() UnaryOp { return op &^ 0xff }

// Operand returns the operand type of op.
func (op UnaryOp) Operand() host.Special { return host.Special(op & 0xff) }

// IsValid reports whether op is a resolved operator.
func (op UnaryOp) IsValid() bool { return op.Operation() != 0 }

// Token returns the syntax token of the operation.
func (op UnaryOp) Token() syntax.Token {
	switch op.Operation() {
	case Identity:
		return syntax.PLUS
	case Negation:
		return syntax.MINUS
	case Complement:
		return syntax.TILDE
	case LogicalNot:
		return syntax.BANG
	}
	return syntax.ILLEGAL
}

func (op UnaryOp) String() string {
	if !op.IsValid() {
		return "<invalid>"
	}
	return fmt.Sprintf("%s%s", op.Token(), op.Operand())
}

// UnaryOperation returns the unary operation denoted by a syntax token.
func UnaryOperation(tok syntax.Token) (UnaryOp, bool) {
	switch tok {
	case syntax.PLUS:
		return Identity, true
	case syntax.MINUS:
		return Negation, true
	case syntax.TILDE:
		return Complement, true
	case syntax.BANG:
		return LogicalNot, true
	}
	return 0, false
}

// A BinaryOp is the kind of a resolved binary operator.
// The zero BinaryOp denotes an operator that failed to resolve.
type BinaryOp uint8

const (
	_ BinaryOp = iota
	Addition
	Subtraction
	Multiplication
	Division
	Modulo
	Concatenation // string +
	BitwiseAnd
	BitwiseOr
	BitwiseXor
	ShiftLeft
	ShiftRight
	Equal
	NotEqual
	Less
	LessEqual
	Greater
	GreaterEqual
	LogicalAnd
	LogicalOr
)

var binaryOps = [...]struct {
	name string
	tok  syntax.Token
}{
	Addition:       {"Addition", syntax.PLUS},
	Subtraction:    {"Subtraction", syntax.MINUS},
	Multiplication: {"Multiplication", syntax.STAR},
	Division:       {"Division", syntax.SLASH},
	Modulo:         {"Modulo", syntax.PERCENT},
	Concatenation:  {"Concatenation", syntax.PLUS},
	BitwiseAnd:     {"BitwiseAnd", syntax.AMP},
	BitwiseOr:      {"BitwiseOr", syntax.PIPE},
	BitwiseXor:     {"BitwiseXor", syntax.CIRCUMFLEX},
	ShiftLeft:      {"ShiftLeft", syntax.LTLT},
	ShiftRight:     {"ShiftRight", syntax.GTGT},
	Equal:          {"Equal", syntax.EQL},
	NotEqual:       {"NotEqual", syntax.NEQ},
	Less:           {"Less", syntax.LT},
	LessEqual:      {"LessEqual", syntax.LE},
	Greater:        {"Greater", syntax.GT},
	GreaterEqual:   {"GreaterEqual", syntax.GE},
	LogicalAnd:     {"LogicalAnd", syntax.ANDAND},
	LogicalOr:      {"LogicalOr", syntax.OROR},
}

// IsValid reports whether op is a resolved operator.
func (op BinaryOp) IsValid() bool { return op != 0 && int(op) < len(binaryOps) }

// Token returns the syntax token of the operator.
func (op BinaryOp) Token() syntax.Token {
	if !op.IsValid() {
		return syntax.ILLEGAL
	}
	return binaryOps[op].tok
}

func (op BinaryOp) String() string {
	if !op.IsValid() {
		return "<invalid>"
	}
	return binaryOps[op].name
}

// An AssignOp is the kind of an assignment.
type AssignOp uint8

const (
	Assign AssignOp = iota
	AddAssign
	SubAssign
	MulAssign
	DivAssign
)

var assignOps = [...]struct {
	name string
	tok  syntax.Token // token of the underlying binary operation
}{
	Assign:    {"=", syntax.ILLEGAL},
	AddAssign: {"+=", syntax.PLUS},
	SubAssign: {"-=", syntax.MINUS},
	MulAssign: {"*=", syntax.STAR},
	DivAssign: {"/=", syntax.SLASH},
}

func (op AssignOp) String() string {
	if int(op) < len(assignOps) {
		return assignOps[op].name
	}
	return fmt.Sprintf("AssignOp(%d)", op)
}

// BinaryToken returns the token of the binary operation performed by a
// compound assignment, or ILLEGAL for plain assignment.
func (op AssignOp) BinaryToken() syntax.Token { return assignOps[op].tok }

// AssignOperation returns the assignment kind denoted by a syntax token.
func AssignOperation(tok syntax.Token) (AssignOp, bool) {
	switch tok {
	case syntax.EQ:
		return Assign, true
	case syntax.PLUS_EQ:
		return AddAssign, true
	case syntax.MINUS_EQ:
		return SubAssign, true
	case syntax.STAR_EQ:
		return MulAssign, true
	case syntax.SLASH_EQ:
		return DivAssign, true
	}
	return 0, false
}
