// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constant

import (
	"math"

	"go.cinder.dev/syntax"
)

// UnaryOp returns the result of the unary expression op x.
// It reports false if the operation is not defined for x's kind.
//
// Negating a UInt32 yields an Int64; negating a UInt64 is undefined.
// Complement preserves the operand's width.
func UnaryOp(op syntax.Token, x Value) (Value, bool) {
	switch op {
	case syntax.PLUS:
		if x.Kind().IsNumeric() {
			return x, true
		}
	case syntax.MINUS:
		switch x := x.(type) {
		case floatVal:
			return -x, true
		case doubleVal:
			return -x, true
		case int32Val:
			return -x, true
		case uint32Val:
			return -int64Val(x), true
		case int64Val:
			return -x, true
		}
	case syntax.TILDE:
		switch x := x.(type) {
		case int32Val:
			return ^x, true
		case uint32Val:
			return ^x, true
		case int64Val:
			return ^x, true
		case uint64Val:
			return ^x, true
		}
	case syntax.BANG:
		if x, ok := x.(boolVal); ok {
			return !x, true
		}
	}
	return nil, false
}

// BinaryOp returns the result of the binary expression x op y.
// The operation must be one of the arithmetic, bitwise, shift,
// comparison or logical operators. It reports false if x and y are
// of different kinds, if op is not defined for their kind, or if
// the operation is an integer division by zero.
//
// Integer arithmetic wraps around. Shift counts are masked to the
// width of the left operand.
func BinaryOp(x Value, op syntax.Token, y Value) (Value, bool) {
	if x.Kind() != y.Kind() {
		return nil, false
	}
	switch op {
	case syntax.EQL, syntax.NEQ, syntax.LT, syntax.LE, syntax.GT, syntax.GE:
		if b, ok := Compare(x, op, y); ok {
			return MakeBool(b), true
		}
		return nil, false
	}

	switch x := x.(type) {
	case stringVal:
		if op == syntax.PLUS {
			return x + y.(stringVal), true
		}

	case boolVal:
		y := y.(boolVal)
		switch op {
		case syntax.ANDAND:
			return x && y, true
		case syntax.OROR:
			return x || y, true
		}

	case floatVal:
		if z, ok := floatOp(float64(x), op, float64(y.(floatVal))); ok {
			return floatVal(z), true
		}

	case doubleVal:
		if z, ok := floatOp(float64(x), op, float64(y.(doubleVal))); ok {
			return doubleVal(z), true
		}

	case int32Val:
		y := y.(int32Val)
		switch op {
		case syntax.SLASH, syntax.PERCENT:
			if y == 0 {
				return nil, false
			}
			if op == syntax.SLASH {
				return x / y, true
			}
			return x % y, true
		case syntax.LTLT:
			return x << (uint(y) & 31), true
		case syntax.GTGT:
			return x >> (uint(y) & 31), true
		}
		if z, ok := intOp(uint64(x), op, uint64(y)); ok {
			return int32Val(z), true
		}

	case uint32Val:
		y := y.(uint32Val)
		switch op {
		case syntax.SLASH, syntax.PERCENT:
			if y == 0 {
				return nil, false
			}
			if op == syntax.SLASH {
				return x / y, true
			}
			return x % y, true
		case syntax.LTLT:
			return x << (uint(y) & 31), true
		case syntax.GTGT:
			return x >> (uint(y) & 31), true
		}
		if z, ok := intOp(uint64(x), op, uint64(y)); ok {
			return uint32Val(z), true
		}

	case int64Val:
		y := y.(int64Val)
		switch op {
		case syntax.SLASH, syntax.PERCENT:
			if y == 0 {
				return nil, false
			}
			if op == syntax.SLASH {
				return x / y, true
			}
			return x % y, true
		case syntax.LTLT:
			return x << (uint(y) & 63), true
		case syntax.GTGT:
			return x >> (uint(y) & 63), true
		}
		if z, ok := intOp(uint64(x), op, uint64(y)); ok {
			return int64Val(z), true
		}

	case uint64Val:
		y := y.(uint64Val)
		switch op {
		case syntax.SLASH, syntax.PERCENT:
			if y == 0 {
				return nil, false
			}
			if op == syntax.SLASH {
				return x / y, true
			}
			return x % y, true
		case syntax.LTLT:
			return x << (uint(y) & 63), true
		case syntax.GTGT:
			return x >> (uint(y) & 63), true
		}
		if z, ok := intOp(uint64(x), op, uint64(y)); ok {
			return uint64Val(z), true
		}
	}
	return nil, false
}

// intOp performs the width-independent integer operations on
// two's complement bit patterns; the caller truncates the result.
func intOp(x uint64, op syntax.Token, y uint64) (uint64, bool) {
	switch op {
	case syntax.PLUS:
		return x + y, true
	case syntax.MINUS:
		return x - y, true
	case syntax.STAR:
		return x * y, true
	case syntax.AMP:
		return x & y, true
	case syntax.PIPE:
		return x | y, true
	case syntax.CIRCUMFLEX:
		return x ^ y, true
	}
	return 0, false
}

func floatOp(x float64, op syntax.Token, y float64) (float64, bool) {
	switch op {
	case syntax.PLUS:
		return x + y, true
	case syntax.MINUS:
		return x - y, true
	case syntax.STAR:
		return x * y, true
	case syntax.SLASH:
		return x / y, true
	case syntax.PERCENT:
		return math.Mod(x, y), true
	}
	return 0, false
}

// Compare returns the result of the comparison x op y.
// Null, strings and booleans support only == and !=.
// It reports false if the comparison is undefined.
func Compare(x Value, op syntax.Token, y Value) (bool, bool) {
	if x.Kind() != y.Kind() {
		return false, false
	}
	switch x.Kind() {
	case Null, String, Bool:
		switch op {
		case syntax.EQL:
			return x == y, true
		case syntax.NEQ:
			return x != y, true
		}
		return false, false
	}

	var cmp int
	switch x := x.(type) {
	case floatVal, doubleVal:
		a, b := x.(Number).Float64(), y.(Number).Float64()
		switch op {
		case syntax.EQL:
			return a == b, true
		case syntax.NEQ:
			return a != b, true
		case syntax.LT:
			return a < b, true
		case syntax.LE:
			return a <= b, true
		case syntax.GT:
			return a > b, true
		case syntax.GE:
			return a >= b, true
		}
		return false, false
	case int32Val, int64Val:
		a, b := x.(Number).Int64(), y.(Number).Int64()
		cmp = threeway(a < b, a > b)
	default:
		a, b := x.(Number).Uint64(), y.(Number).Uint64()
		cmp = threeway(a < b, a > b)
	}
	return threewayCompare(op, cmp)
}

func threeway(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return +1
	}
	return 0
}

func threewayCompare(op syntax.Token, cmp int) (bool, bool) {
	switch op {
	case syntax.EQL:
		return cmp == 0, true
	case syntax.NEQ:
		return cmp != 0, true
	case syntax.LE:
		return cmp <= 0, true
	case syntax.LT:
		return cmp < 0, true
	case syntax.GE:
		return cmp >= 0, true
	case syntax.GT:
		return cmp > 0, true
	}
	return false, false
}
