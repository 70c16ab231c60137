// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constant_test

import (
	"math"
	"testing"

	"go.cinder.dev/constant"
	"go.cinder.dev/host"
	"go.cinder.dev/syntax"
)

func TestString(t *testing.T) {
	for _, test := range []struct {
		v    constant.Value
		want string
	}{
		{constant.NullValue, "null"},
		{constant.True, "true"},
		{constant.MakeString("a\"b"), `"a\"b"`},
		{constant.MakeInt32(-7), "-7"},
		{constant.MakeUInt32(7), "7u"},
		{constant.MakeInt64(7), "7l"},
		{constant.MakeUInt64(7), "7ul"},
		{constant.MakeFloat(1.5), "1.5f"},
		{constant.MakeDouble(2), "2.0"},
		{constant.MakeDouble(2.25), "2.25"},
		{constant.MakeDouble(1e100), "1e+100"},
	} {
		if got := test.v.String(); got != test.want {
			t.Errorf("%v.String() = %s, want %s", test.v.Interface(), got, test.want)
		}
	}
}

func TestInterning(t *testing.T) {
	if constant.MakeBool(true) != constant.True || constant.MakeBool(false) != constant.False {
		t.Errorf("booleans are not interned")
	}
	if constant.MakeInt32(3) != constant.MakeInt32(3) {
		t.Errorf("equal constants compare unequal")
	}
	if constant.MakeInt32(3) == constant.MakeInt64(3) {
		t.Errorf("constants of different kinds compare equal")
	}
}

func TestCrossWidth(t *testing.T) {
	n := constant.MakeInt32(-1).(constant.Number)
	if n.Int64() != -1 || n.Uint64() != math.MaxUint64 || n.Float64() != -1 {
		t.Errorf("Int32(-1) views: %d %d %g", n.Int64(), n.Uint64(), n.Float64())
	}
	u := constant.MakeUInt32(math.MaxUint32).(constant.Number)
	if u.Int64() != math.MaxUint32 {
		t.Errorf("UInt32 max as int64 = %d", u.Int64())
	}
}

func TestMake(t *testing.T) {
	for _, test := range []struct {
		s    host.Special
		x    interface{}
		want constant.Value
	}{
		{host.Int32, 5, constant.MakeInt32(5)},
		{host.Int64, int32(5), constant.MakeInt64(5)},
		{host.Double, 1, constant.MakeDouble(1)},
		{host.Float, 0.5, constant.MakeFloat(0.5)},
		{host.UInt32, constant.MakeInt32(3), constant.MakeUInt32(3)},
		{host.Boolean, true, constant.True},
		{host.String, "s", constant.MakeString("s")},
		{host.Object, nil, constant.NullValue},
	} {
		got, ok := constant.Make(test.s, test.x)
		if !ok || got != test.want {
			t.Errorf("Make(%v, %v) = %v, %t, want %v", test.s, test.x, got, ok, test.want)
		}
		if got, want := got.Kind().Special(), test.s; ok && got != want {
			t.Errorf("Make(%v, %v).Kind().Special() = %v", test.s, test.x, got)
		}
	}
	for _, bad := range []struct {
		s host.Special
		x interface{}
	}{
		{host.Int32, "1"},
		{host.Boolean, 1},
		{host.Void, nil},
		{host.String, nil},
	} {
		if v, ok := constant.Make(bad.s, bad.x); ok {
			t.Errorf("Make(%v, %v) = %v, want failure", bad.s, bad.x, v)
		}
	}
}

func TestUnaryOp(t *testing.T) {
	for _, test := range []struct {
		op   syntax.Token
		x    constant.Value
		want constant.Value // nil => undefined
	}{
		{syntax.MINUS, constant.MakeInt32(5), constant.MakeInt32(-5)},
		{syntax.MINUS, constant.MakeInt32(math.MinInt32), constant.MakeInt32(math.MinInt32)},
		{syntax.MINUS, constant.MakeUInt32(5), constant.MakeInt64(-5)},
		{syntax.MINUS, constant.MakeUInt64(5), nil},
		{syntax.MINUS, constant.MakeDouble(1.5), constant.MakeDouble(-1.5)},
		{syntax.PLUS, constant.MakeFloat(1.5), constant.MakeFloat(1.5)},
		{syntax.PLUS, constant.MakeString("x"), nil},
		{syntax.TILDE, constant.MakeInt32(0), constant.MakeInt32(-1)},
		{syntax.TILDE, constant.MakeUInt32(0), constant.MakeUInt32(math.MaxUint32)},
		{syntax.TILDE, constant.MakeDouble(0), nil},
		{syntax.BANG, constant.True, constant.False},
		{syntax.BANG, constant.MakeInt32(0), nil},
	} {
		got, ok := constant.UnaryOp(test.op, test.x)
		if test.want == nil {
			if ok {
				t.Errorf("%s%s = %s, want undefined", test.op, test.x, got)
			}
			continue
		}
		if !ok || got != test.want {
			t.Errorf("%s%s = %v (%t), want %s", test.op, test.x, got, ok, test.want)
		}
	}
}

func TestBinaryOp(t *testing.T) {
	i := constant.MakeInt32
	for _, test := range []struct {
		x    constant.Value
		op   syntax.Token
		y    constant.Value
		want constant.Value // nil => not folded
	}{
		{i(10), syntax.PLUS, i(10), i(20)},
		{i(7), syntax.SLASH, i(2), i(3)},
		{i(-7), syntax.PERCENT, i(2), i(-1)},
		{i(1), syntax.SLASH, i(0), nil},
		{i(math.MaxInt32), syntax.PLUS, i(1), i(math.MinInt32)},
		{i(1), syntax.LTLT, i(33), i(2)},
		{i(-8), syntax.GTGT, i(1), i(-4)},
		{i(6), syntax.AMP, i(3), i(2)},
		{i(6), syntax.PIPE, i(3), i(7)},
		{i(6), syntax.CIRCUMFLEX, i(3), i(5)},
		{i(1), syntax.LT, i(2), constant.True},
		{i(1), syntax.EQL, i(2), constant.False},
		{i(1), syntax.PLUS, constant.MakeInt64(1), nil},
		{constant.MakeUInt32(0), syntax.MINUS, constant.MakeUInt32(1), constant.MakeUInt32(math.MaxUint32)},
		{constant.MakeUInt64(math.MaxUint64), syntax.GT, constant.MakeUInt64(1), constant.True},
		{constant.MakeInt64(1 << 40), syntax.STAR, constant.MakeInt64(2), constant.MakeInt64(1 << 41)},
		{constant.MakeDouble(1), syntax.SLASH, constant.MakeDouble(4), constant.MakeDouble(0.25)},
		{constant.MakeFloat(5), syntax.PERCENT, constant.MakeFloat(3), constant.MakeFloat(2)},
		{constant.MakeDouble(1), syntax.GE, constant.MakeDouble(1), constant.True},
		{constant.MakeString("a"), syntax.PLUS, constant.MakeString("b"), constant.MakeString("ab")},
		{constant.MakeString("a"), syntax.EQL, constant.MakeString("a"), constant.True},
		{constant.MakeString("a"), syntax.LT, constant.MakeString("b"), nil},
		{constant.MakeString("a"), syntax.MINUS, constant.MakeString("b"), nil},
		{constant.True, syntax.ANDAND, constant.False, constant.False},
		{constant.True, syntax.OROR, constant.False, constant.True},
		{constant.True, syntax.NEQ, constant.False, constant.True},
		{constant.True, syntax.PLUS, constant.False, nil},
		{constant.NullValue, syntax.EQL, constant.NullValue, constant.True},
		{constant.NullValue, syntax.NEQ, constant.NullValue, constant.False},
		{constant.NullValue, syntax.LT, constant.NullValue, nil},
		{constant.NullValue, syntax.EQL, constant.MakeString("a"), nil},
	} {
		got, ok := constant.BinaryOp(test.x, test.op, test.y)
		if test.want == nil {
			if ok {
				t.Errorf("%s %s %s = %s, want not folded", test.x, test.op, test.y, got)
			}
			continue
		}
		if !ok || got != test.want {
			t.Errorf("%s %s %s = %v (%t), want %s", test.x, test.op, test.y, got, ok, test.want)
		}
	}
}
