// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"fmt"
	"io"
	"math"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// Stdout is the writer used by System.Console.
var Stdout io.Writer = os.Stdout

// Standard returns a new catalog populated with the default Cinder universe:
//
//	System.Console             WriteLine overloads
//	System.Math                Max, Abs, Sqrt, PI
//	System.Text.StringBuilder  constructors, Append, ToString, Length
//
// plus ToString on every primitive, CompareTo on Int32, and the
// Length, ToUpper, Substring and Concat members of String.
func Standard() *Reflect {
	c := NewReflect()

	console := c.Define("System.Console", reflect.TypeOf(Console{}))
	c.AddStatic(console, "WriteLine", func() { fmt.Fprintln(Stdout) })
	c.AddStatic(console, "WriteLine", func(s string) { fmt.Fprintln(Stdout, s) }, "value")
	c.AddStatic(console, "WriteLine", func(x int32) { fmt.Fprintln(Stdout, x) }, "value")
	c.AddStatic(console, "WriteLine", func(x int64) { fmt.Fprintln(Stdout, x) }, "value")
	c.AddStatic(console, "WriteLine", func(x float64) { fmt.Fprintln(Stdout, x) }, "value")
	c.AddStatic(console, "WriteLine", func(x bool) { fmt.Fprintln(Stdout, x) }, "value")
	c.AddStatic(console, "WriteLine", func(x interface{}) { fmt.Fprintln(Stdout, x) }, "value")

	m := c.Define("System.Math", reflect.TypeOf(Math{}))
	c.AddStatic(m, "Max", func(x, y int32) int32 {
		if x > y {
			return x
		}
		return y
	}, "val1", "val2")
	c.AddStatic(m, "Max", math.Max, "val1", "val2")
	c.AddStatic(m, "Abs", func(x int32) int32 {
		if x < 0 {
			return -x
		}
		return x
	}, "value")
	c.AddStatic(m, "Abs", math.Abs, "value")
	c.AddStatic(m, "Sqrt", math.Sqrt, "d")
	c.AddConstField(m, "PI", math.Pi)

	i32 := c.SpecialType(Int32)
	c.AddMethod(i32, "CompareTo", func(x, y int32) int32 {
		switch {
		case x < y:
			return -1
		case x > y:
			return +1
		}
		return 0
	}, "value")
	for _, s := range Specials() {
		switch s {
		case Void, Object:
			continue
		}
		t := c.SpecialType(s)
		rt := t.(*rtype).t
		toString := reflect.MakeFunc(reflect.FuncOf([]reflect.Type{rt}, []reflect.Type{reflect.TypeOf("")}, false),
			func(args []reflect.Value) []reflect.Value {
				return []reflect.Value{reflect.ValueOf(formatValue(args[0].Interface()))}
			})
		c.AddMethod(t, "ToString", toString.Interface())
	}

	str := c.SpecialType(String)
	c.AddProperty(str, "Length", func(s string) int32 { return int32(len(s)) })
	c.AddMethod(str, "ToUpper", strings.ToUpper)
	c.AddMethod(str, "Substring", func(s string, start, length int32) string {
		return s[start : start+length]
	}, "startIndex", "length")
	c.AddStatic(str, "Concat", func(x, y string) string { return x + y }, "str0", "str1")

	sb := c.Define("System.Text.StringBuilder", reflect.TypeOf(StringBuilder{}))
	c.AddConstructor(sb, func() *StringBuilder { return new(StringBuilder) })
	c.AddConstructor(sb, func(capacity int32) *StringBuilder {
		b := new(StringBuilder)
		b.buf.Grow(int(capacity))
		return b
	}, "capacity")
	c.AddProperty(sb, "Length", func(b *StringBuilder) int32 { return int32(b.buf.Len()) })

	return c
}

// Console is the Go type behind System.Console.
type Console struct{}

// Math is the Go type behind System.Math.
type Math struct{}

// A StringBuilder is a mutable string buffer; it is System.Text.StringBuilder.
type StringBuilder struct {
	buf strings.Builder
}

func (b *StringBuilder) Append(s string) *StringBuilder {
	b.buf.WriteString(s)
	return b
}

func (b *StringBuilder) AppendLine(s string) *StringBuilder {
	b.buf.WriteString(s)
	b.buf.WriteByte('\n')
	return b
}

func (b *StringBuilder) ToString() string { return b.buf.String() }

func formatValue(x interface{}) string {
	switch x := x.(type) {
	case bool:
		if x {
			return "True"
		}
		return "False"
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return fmt.Sprint(x)
}
