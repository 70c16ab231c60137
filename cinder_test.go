// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cinder_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.cinder.dev"
	"go.cinder.dev/binder"
	"go.cinder.dev/bound"
	"go.cinder.dev/diag"
	"go.cinder.dev/host"
	"go.cinder.dev/symbols"
	"go.cinder.dev/syntax"
)

var types = symbols.NewTypes(host.Standard())

func compile(t *testing.T, src string, opts cinder.Options) *cinder.Result {
	t.Helper()
	f, err := syntax.Parse("test.cdr", src, syntax.ScriptMode)
	require.NoError(t, err)
	return cinder.Compile(types, []*syntax.File{f}, opts)
}

func TestCompile(t *testing.T) {
	res := compile(t, `
const greeting = "hello, " + "world";
void main() {
  Console.WriteLine(greeting);
}
`, cinder.Options{Options: binder.Options{Imports: []string{"System"}}})
	require.Empty(t, res.Diagnostics)
	require.False(t, res.HasErrors())
	require.NotNil(t, res.Program.EntryPoint)

	// The program is folded.
	init := res.Program.Members[0].(*bound.VarMember).Init
	require.IsType(t, (*bound.Const)(nil), init)
}

func TestCompileDiagnostics(t *testing.T) {
	res := compile(t, `
int f() { }
void main() {
  return;
  missing();
}
`, cinder.Options{})
	var got []diag.Code
	for _, d := range res.Diagnostics {
		got = append(got, d.Code)
	}
	// Sorted by position: binding and flow diagnostics interleave.
	require.Equal(t, []diag.Code{diag.NotAllPathsReturn, diag.NoMatchingCandidate, diag.UnreachableCode}, got)
	require.True(t, res.HasErrors())

	var buf bytes.Buffer
	res.Format(&buf)
	require.Contains(t, buf.String(), "compilation failed with 2 error(s) and 1 warning(s)")
}

func TestWarningsAsErrors(t *testing.T) {
	const src = "void main() { return; main(); }"
	res := compile(t, src, cinder.Options{})
	require.Len(t, res.Diagnostics, 1)
	require.False(t, res.HasErrors())

	res = compile(t, src, cinder.Options{WarningsAsErrors: true})
	require.True(t, res.HasErrors())
	var buf bytes.Buffer
	res.Format(&buf)
	require.Contains(t, buf.String(), "warnings treated as errors")
}

func TestParseFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.cdr")
	bad := filepath.Join(dir, "bad.cdr")
	require.NoError(t, os.WriteFile(good, []byte("void main() { }\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("void main( {\n"), 0o644))

	files, err := cinder.ParseFiles([]string{good}, 0)
	require.NoError(t, err)
	require.Len(t, files, 1)

	files, err = cinder.ParseFiles([]string{good, bad, filepath.Join(dir, "missing.cdr")}, 0)
	require.Error(t, err)
	require.Len(t, files, 1)
	require.Contains(t, err.Error(), "bad.cdr")
	require.ErrorIs(t, err, os.ErrNotExist)
}
