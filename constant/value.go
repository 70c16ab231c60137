// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package constant implements values representing compile-time
// constants of Cinder's primitive types, and arithmetic on them.
//
// There is one Kind per primitive type that may appear in a literal.
// Arithmetic is defined only between values of the same Kind: mixed
// pairs such as an Int32 and an Int64 are reported as unsupported
// rather than converted, so that folding never changes the type of
// an expression.
package constant

import (
	"fmt"
	"strconv"
	"strings"

	"go.cinder.dev/host"
)

// Kind specifies the kind of value represented by a Value.
type Kind uint8

const (
	Null Kind = iota
	String
	Bool
	Float
	Double
	Int32
	UInt32
	Int64
	UInt64
)

var kindNames = [...]string{
	Null:   "Null",
	String: "String",
	Bool:   "Bool",
	Float:  "Float",
	Double: "Double",
	Int32:  "Int32",
	UInt32: "UInt32",
	Int64:  "Int64",
	UInt64: "UInt64",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Special returns the host special type of values of kind k.
// Null constants have type Object.
func (k Kind) Special() host.Special {
	switch k {
	case Null:
		return host.Object
	case String:
		return host.String
	case Bool:
		return host.Boolean
	case Float:
		return host.Float
	case Double:
		return host.Double
	case Int32:
		return host.Int32
	case UInt32:
		return host.UInt32
	case Int64:
		return host.Int64
	case UInt64:
		return host.UInt64
	}
	panic(k)
}

// IsInteger reports whether k is one of the integer kinds.
func (k Kind) IsInteger() bool { return k >= Int32 }

// IsNumeric reports whether k is an integer or floating-point kind.
func (k Kind) IsNumeric() bool { return k >= Float }

// A Value represents the value of a Cinder constant.
// Values are immutable and comparable with ==.
type Value interface {
	// Kind returns the value kind.
	Kind() Kind

	// String returns the value in Cinder literal syntax.
	String() string

	// Interface returns the value as a Go value of the
	// corresponding type: nil, string, bool, float32, float64,
	// int32, uint32, int64 or uint64.
	Interface() interface{}

	implementsValue()
}

// A Number is a Value of numeric kind. Its accessors convert the value
// to each of the widest Go representations, truncating or wrapping
// as a Go conversion would.
type Number interface {
	Value
	Int64() int64
	Uint64() uint64
	Float64() float64
}

type (
	nullVal   struct{}
	stringVal string
	boolVal   bool
	floatVal  float32
	doubleVal float64
	int32Val  int32
	uint32Val uint32
	int64Val  int64
	uint64Val uint64
)

func (nullVal) Kind() Kind   { return Null }
func (stringVal) Kind() Kind { return String }
func (boolVal) Kind() Kind   { return Bool }
func (floatVal) Kind() Kind  { return Float }
func (doubleVal) Kind() Kind { return Double }
func (int32Val) Kind() Kind  { return Int32 }
func (uint32Val) Kind() Kind { return UInt32 }
func (int64Val) Kind() Kind  { return Int64 }
func (uint64Val) Kind() Kind { return UInt64 }

func (nullVal) String() string     { return "null" }
func (x stringVal) String() string { return strconv.Quote(string(x)) }
func (x boolVal) String() string   { return strconv.FormatBool(bool(x)) }
func (x floatVal) String() string  { return strconv.FormatFloat(float64(x), 'g', -1, 32) + "f" }
func (x int32Val) String() string  { return strconv.FormatInt(int64(x), 10) }
func (x uint32Val) String() string { return strconv.FormatUint(uint64(x), 10) + "u" }
func (x int64Val) String() string  { return strconv.FormatInt(int64(x), 10) + "l" }
func (x uint64Val) String() string { return strconv.FormatUint(uint64(x), 10) + "ul" }

func (x doubleVal) String() string {
	s := strconv.FormatFloat(float64(x), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}

func (nullVal) Interface() interface{}     { return nil }
func (x stringVal) Interface() interface{} { return string(x) }
func (x boolVal) Interface() interface{}   { return bool(x) }
func (x floatVal) Interface() interface{}  { return float32(x) }
func (x doubleVal) Interface() interface{} { return float64(x) }
func (x int32Val) Interface() interface{}  { return int32(x) }
func (x uint32Val) Interface() interface{} { return uint32(x) }
func (x int64Val) Interface() interface{}  { return int64(x) }
func (x uint64Val) Interface() interface{} { return uint64(x) }

func (x floatVal) Int64() int64    { return int64(x) }
func (x doubleVal) Int64() int64   { return int64(x) }
func (x int32Val) Int64() int64    { return int64(x) }
func (x uint32Val) Int64() int64   { return int64(x) }
func (x int64Val) Int64() int64    { return int64(x) }
func (x uint64Val) Int64() int64   { return int64(x) }
func (x floatVal) Uint64() uint64  { return uint64(x) }
func (x doubleVal) Uint64() uint64 { return uint64(x) }
func (x int32Val) Uint64() uint64  { return uint64(x) }
func (x uint32Val) Uint64() uint64 { return uint64(x) }
func (x int64Val) Uint64() uint64  { return uint64(x) }
func (x uint64Val) Uint64() uint64 { return uint64(x) }

func (x floatVal) Float64() float64  { return float64(x) }
func (x doubleVal) Float64() float64 { return float64(x) }
func (x int32Val) Float64() float64  { return float64(x) }
func (x uint32Val) Float64() float64 { return float64(x) }
func (x int64Val) Float64() float64  { return float64(x) }
func (x uint64Val) Float64() float64 { return float64(x) }

func (nullVal) implementsValue()   {}
func (stringVal) implementsValue() {}
func (boolVal) implementsValue()   {}
func (floatVal) implementsValue()  {}
func (doubleVal) implementsValue() {}
func (int32Val) implementsValue()  {}
func (uint32Val) implementsValue() {}
func (int64Val) implementsValue()  {}
func (uint64Val) implementsValue() {}

// The interned constants.
var (
	NullValue Value = nullVal{}
	True      Value = boolVal(true)
	False     Value = boolVal(false)
)

func MakeString(s string) Value   { return stringVal(s) }
func MakeFloat(x float32) Value   { return floatVal(x) }
func MakeDouble(x float64) Value  { return doubleVal(x) }
func MakeInt32(x int32) Value     { return int32Val(x) }
func MakeUInt32(x uint32) Value   { return uint32Val(x) }
func MakeInt64(x int64) Value     { return int64Val(x) }
func MakeUInt64(x uint64) Value   { return uint64Val(x) }

// MakeBool returns True or False.
func MakeBool(b bool) Value {
	if b {
		return True
	}
	return False
}

// Make returns the constant of host special type s holding the Go
// value x, converting x as a Go conversion would. It reports false if
// s has no constant kind or x is not convertible to it.
func Make(s host.Special, x interface{}) (Value, bool) {
	switch s {
	case host.Object:
		if x == nil {
			return NullValue, true
		}
	case host.String:
		if x, ok := x.(string); ok {
			return stringVal(x), true
		}
	case host.Boolean:
		if x, ok := x.(bool); ok {
			return MakeBool(x), true
		}
	case host.Float, host.Double, host.Int32, host.UInt32, host.Int64, host.UInt64:
		n, ok := toNumber(x)
		if !ok {
			break
		}
		switch s {
		case host.Float:
			return floatVal(n.Float64()), true
		case host.Double:
			return doubleVal(n.Float64()), true
		case host.Int32:
			return int32Val(n.Int64()), true
		case host.UInt32:
			return uint32Val(n.Uint64()), true
		case host.Int64:
			return int64Val(n.Int64()), true
		case host.UInt64:
			return uint64Val(n.Uint64()), true
		}
	}
	return nil, false
}

func toNumber(x interface{}) (Number, bool) {
	switch x := x.(type) {
	case Number:
		return x, true
	case int:
		return int64Val(x), true
	case int32:
		return int32Val(x), true
	case int64:
		return int64Val(x), true
	case uint:
		return uint64Val(x), true
	case uint32:
		return uint32Val(x), true
	case uint64:
		return uint64Val(x), true
	case float32:
		return floatVal(x), true
	case float64:
		return doubleVal(x), true
	}
	return nil, false
}

// StringVal returns the Go string value of x, which must be a String.
func StringVal(x Value) string { return string(x.(stringVal)) }

// BoolVal returns the Go bool value of x, which must be a Bool.
func BoolVal(x Value) bool { return bool(x.(boolVal)) }
