// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diag defines the diagnostic records produced by semantic
// analysis. Diagnostics are values: they are attached to the bound
// node that detected them and concatenated upward, never thrown.
package diag

import (
	"fmt"
	"io"
	"sort"

	"go.cinder.dev/syntax"
)

// Level is the severity of a diagnostic.
type Level uint8

const (
	Error Level = iota
	Warning
)

func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	}
	return fmt.Sprintf("Level(%d)", l)
}

// Code identifies the kind of problem a diagnostic reports.
type Code uint8

const (
	_ Code = iota
	UnsupportedLiteral
	UnsupportedOperator
	UndeclaredVariable
	ReadOnlyVariable
	TypeMismatch
	NotAnLValue
	MemberNotFound
	MemberNotAccessible
	NoMatchingCandidate
	MixedArguments
	TypeNotFound
	UnsupportedType
	UnexpectedStatement
	NoEnclosingLoop
	DuplicateParameterName
	AmbiguousFunctionDeclaration
	MultipleEntryPoints
	NotAllPathsReturn
	UnreachableCode
)

var codeNames = [...]string{
	UnsupportedLiteral:           "UnsupportedLiteral",
	UnsupportedOperator:          "UnsupportedOperator",
	UndeclaredVariable:           "UndeclaredVariable",
	ReadOnlyVariable:             "ReadOnlyVariable",
	TypeMismatch:                 "TypeMismatch",
	NotAnLValue:                  "NotAnLValue",
	MemberNotFound:               "MemberNotFound",
	MemberNotAccessible:          "MemberNotAccessible",
	NoMatchingCandidate:          "NoMatchingCandidate",
	MixedArguments:               "MixedArguments",
	TypeNotFound:                 "TypeNotFound",
	UnsupportedType:              "UnsupportedType",
	UnexpectedStatement:          "UnexpectedStatement",
	NoEnclosingLoop:              "NoEnclosingLoop",
	DuplicateParameterName:       "DuplicateParameterName",
	AmbiguousFunctionDeclaration: "AmbiguousFunctionDeclaration",
	MultipleEntryPoints:          "MultipleEntryPoints",
	NotAllPathsReturn:            "NotAllPathsReturn",
	UnreachableCode:              "UnreachableCode",
}

func (c Code) String() string {
	if int(c) < len(codeNames) && codeNames[c] != "" {
		return codeNames[c]
	}
	return fmt.Sprintf("Code(%d)", c)
}

// A Diagnostic is a single error or warning located in the source.
type Diagnostic struct {
	Message string
	Level   Level
	Code    Code
	Span    syntax.Span
}

func (d *Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s: %s", d.Span.Start, d.Level, d.Code, d.Message)
}

// Errorf returns an Error-level diagnostic covering node n.
func Errorf(n syntax.Node, code Code, format string, args ...interface{}) *Diagnostic {
	return newDiagnostic(n, Error, code, fmt.Sprintf(format, args...))
}

// Warningf returns a Warning-level diagnostic covering node n.
func Warningf(n syntax.Node, code Code, format string, args ...interface{}) *Diagnostic {
	return newDiagnostic(n, Warning, code, fmt.Sprintf(format, args...))
}

func newDiagnostic(n syntax.Node, level Level, code Code, msg string) *Diagnostic {
	d := &Diagnostic{Message: msg, Level: level, Code: code}
	if n != nil {
		d.Span = syntax.SpanOf(n)
	}
	return d
}

// A List is an ordered collection of diagnostics.
// Lists are treated as immutable once attached to a node;
// Concat always allocates when both operands are non-empty.
type List []*Diagnostic

// Concat returns the concatenation of the lists.
func Concat(lists ...List) List {
	n := 0
	var only List
	for _, l := range lists {
		if len(l) > 0 {
			n++
			only = l
		}
	}
	switch n {
	case 0:
		return nil
	case 1:
		return only
	}
	var out List
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// HasErrors reports whether the list contains an Error-level diagnostic.
func (l List) HasErrors() bool {
	for _, d := range l {
		if d.Level == Error {
			return true
		}
	}
	return false
}

// Count returns the number of Error and Warning diagnostics.
func (l List) Count() (errors, warnings int) {
	for _, d := range l {
		switch d.Level {
		case Error:
			errors++
		case Warning:
			warnings++
		}
	}
	return
}

// Filter returns the diagnostics with the given code.
func (l List) Filter(code Code) List {
	var out List
	for _, d := range l {
		if d.Code == code {
			out = append(out, d)
		}
	}
	return out
}

// Sorted returns a copy of l ordered by file, line and column.
// Diagnostics at the same location keep their relative order.
func (l List) Sorted() List {
	out := append(List(nil), l...)
	sort.SliceStable(out, func(i, j int) bool {
		p, q := out[i].Span.Start, out[j].Span.Start
		if p.Filename() != q.Filename() {
			return p.Filename() < q.Filename()
		}
		if p.Line != q.Line {
			return p.Line < q.Line
		}
		return p.Col < q.Col
	})
	return out
}

// Format writes one line per diagnostic, followed by a summary line
// when the list is non-empty.
func (l List) Format(w io.Writer) {
	for _, d := range l.Sorted() {
		fmt.Fprintln(w, d)
	}
	errors, warnings := l.Count()
	switch {
	case errors > 0:
		fmt.Fprintf(w, "compilation failed with %d error(s)", errors)
		if warnings > 0 {
			fmt.Fprintf(w, " and %d warning(s)", warnings)
		}
		fmt.Fprintln(w)
	case warnings > 0:
		fmt.Fprintf(w, "compilation succeeded with %d warning(s)\n", warnings)
	}
}
