// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binder

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.cinder.dev/bound"
	"go.cinder.dev/constant"
	"go.cinder.dev/diag"
	"go.cinder.dev/host"
	"go.cinder.dev/syntax"
)

func (b *Binder) bindLiteral(x *syntax.Literal) bound.Expr {
	var (
		v   constant.Value
		err error
	)
	switch x.Token {
	case syntax.NUMBER:
		v, err = decodeNumber(x.Raw)
	case syntax.STRING:
		var s string
		s, err = syntax.Unquote(x.Raw)
		v = constant.MakeString(s)
	case syntax.TRUE:
		v = constant.True
	case syntax.FALSE:
		v = constant.False
	case syntax.NULL:
		return bound.NewConst(x, constant.NullValue, b.special(host.Object), nil)
	default:
		panic(fmt.Sprintf("unexpected literal token %s", x.Token))
	}
	if err != nil {
		return bound.NewConst(x, nil, b.invalid(), diag.List{
			diag.Errorf(x, diag.UnsupportedLiteral, "unsupported literal %s: %v", x.Raw, err)})
	}
	return bound.NewConst(x, v, b.special(v.Kind().Special()), nil)
}

// decodeNumber interprets the text of a NUMBER token.
//
// An optional 0x or 0b prefix selects the base. The suffixes u, l and
// ul select uint, long and ulong; f and d select float and double, as
// does a decimal point. Without a suffix the literal is an int, or a
// long if it does not fit in an int.
func decodeNumber(raw string) (constant.Value, error) {
	s := strings.ToLower(raw)
	base := 10
	switch {
	case strings.HasPrefix(s, "0x"):
		base, s = 16, s[2:]
	case strings.HasPrefix(s, "0b"):
		base, s = 2, s[2:]
	}

	kind := constant.Int32
	switch {
	case strings.HasSuffix(s, "ul"):
		kind, s = constant.UInt64, s[:len(s)-2]
	case strings.HasSuffix(s, "l"):
		kind, s = constant.Int64, s[:len(s)-1]
	case strings.HasSuffix(s, "u"):
		kind, s = constant.UInt32, s[:len(s)-1]
	case base == 10 && strings.HasSuffix(s, "f"):
		kind, s = constant.Float, s[:len(s)-1]
	case base == 10 && strings.HasSuffix(s, "d"):
		kind, s = constant.Double, s[:len(s)-1]
	case base == 10 && strings.Contains(s, "."):
		kind = constant.Double
	}
	if s == "" {
		return nil, fmt.Errorf("no digits")
	}

	switch kind {
	case constant.Float:
		x, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, numError(err)
		}
		return constant.MakeFloat(float32(x)), nil
	case constant.Double:
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, numError(err)
		}
		return constant.MakeDouble(x), nil
	}

	x, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return nil, numError(err)
	}
	switch kind {
	case constant.UInt64:
		return constant.MakeUInt64(x), nil
	case constant.Int64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("value out of range for long")
		}
		return constant.MakeInt64(int64(x)), nil
	case constant.UInt32:
		if x > math.MaxUint32 {
			return nil, fmt.Errorf("value out of range for uint")
		}
		return constant.MakeUInt32(uint32(x)), nil
	}
	switch {
	case x <= math.MaxInt32:
		return constant.MakeInt32(int32(x)), nil
	case x <= math.MaxInt64:
		return constant.MakeInt64(int64(x)), nil
	}
	return nil, fmt.Errorf("value out of range")
}

// numError strips the function name and input from a strconv error.
func numError(err error) error {
	if e, ok := err.(*strconv.NumError); ok {
		if e.Err == strconv.ErrRange {
			return fmt.Errorf("value out of range")
		}
		return fmt.Errorf("invalid digits")
	}
	return err
}
