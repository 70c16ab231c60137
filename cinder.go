// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cinder runs the semantic analysis of Cinder programs.
//
// Compile binds a set of parsed files into a program, folds its
// constant expressions, and checks its control flow:
//
//	files, err := cinder.ParseFiles(filenames, 0)
//	...
//	res := cinder.Compile(symbols.NewTypes(host.Standard()), files, cinder.Options{})
//	res.Diagnostics.Format(os.Stderr)
//	if res.HasErrors() {
//		...
//	}
//
// A program whose diagnostics include an error must not be handed
// to code generation. Warnings do not prevent it unless
// Options.WarningsAsErrors is set.
package cinder // import "go.cinder.dev"

import (
	"errors"
	"fmt"
	"io"

	"go.cinder.dev/binder"
	"go.cinder.dev/bound"
	"go.cinder.dev/diag"
	"go.cinder.dev/flow"
	"go.cinder.dev/fold"
	"go.cinder.dev/symbols"
	"go.cinder.dev/syntax"
)

// Options controls compilation.
type Options struct {
	binder.Options

	// WarningsAsErrors causes HasErrors to report warnings too.
	WarningsAsErrors bool
}

// A Result is the outcome of a compilation.
type Result struct {
	// Program is the bound program after constant folding.
	Program *bound.Program

	// Diagnostics holds every diagnostic of the compilation,
	// sorted by position.
	Diagnostics diag.List

	warningsAsErrors bool
}

// HasErrors reports whether the compilation failed.
func (r *Result) HasErrors() bool {
	if r.warningsAsErrors {
		return len(r.Diagnostics) > 0
	}
	return r.Diagnostics.HasErrors()
}

// Format writes the diagnostics of r followed by a summary.
func (r *Result) Format(w io.Writer) {
	r.Diagnostics.Format(w)
	if r.HasErrors() && !r.Diagnostics.HasErrors() {
		fmt.Fprintln(w, "warnings treated as errors")
	}
}

// Compile binds, folds and checks the files of one program.
func Compile(types *symbols.Types, files []*syntax.File, opts Options) *Result {
	prog := binder.BindProgram(types, files, opts.Options)
	prog = fold.Program(prog)
	diags := diag.Concat(prog.Diagnostics(), flow.Check(prog))
	return &Result{
		Program:          prog,
		Diagnostics:      diags.Sorted(),
		warningsAsErrors: opts.WarningsAsErrors,
	}
}

// ParseFiles parses the named files. It returns the files that
// parsed, and an error joining the syntax errors of those that did not.
func ParseFiles(filenames []string, mode syntax.Mode) ([]*syntax.File, error) {
	var files []*syntax.File
	var errs []error
	for _, filename := range filenames {
		f, err := syntax.Parse(filename, nil, mode)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		files = append(files, f)
	}
	return files, errors.Join(errs...)
}
