// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cinder_test

import (
	"fmt"
	"os"

	"go.cinder.dev"
	"go.cinder.dev/binder"
	"go.cinder.dev/host"
	"go.cinder.dev/symbols"
	"go.cinder.dev/syntax"
)

// ExampleCompile demonstrates the analysis of a simple program.
func ExampleCompile() {
	const src = `
int twice(int n) { return n * 2; }

void main() {
  let x = twice(21);
  x = "forty-two";
}
`
	f, err := syntax.Parse("twice.cdr", src, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	res := cinder.Compile(symbols.NewTypes(host.Standard()), []*syntax.File{f}, cinder.Options{
		Options: binder.Options{Imports: []string{"System"}},
	})
	res.Format(os.Stdout)

	// Output:
	// twice.cdr:6:7: error: TypeMismatch: cannot assign System.String to variable x of type System.Int32
	// compilation failed with 1 error(s)
}
