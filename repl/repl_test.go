// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.cinder.dev/binder"
	"go.cinder.dev/host"
	"go.cinder.dev/repl"
	"go.cinder.dev/symbols"
)

func newSession() (*repl.Session, *bytes.Buffer, *bytes.Buffer) {
	s := repl.NewSession(symbols.NewTypes(host.Standard()), binder.Options{Imports: []string{"System"}})
	out, errw := new(bytes.Buffer), new(bytes.Buffer)
	s.Out, s.Err = out, errw
	return s, out, errw
}

func TestAnalyze(t *testing.T) {
	s, out, errw := newSession()

	_, err := s.Analyze("1 + 2 + 3;")
	require.NoError(t, err)
	require.Equal(t, "System.Int32 = 6\n", out.String())
	require.Empty(t, errw.String())

	// Variables persist across inputs.
	out.Reset()
	_, err = s.Analyze("const greeting = \"hello\";")
	require.NoError(t, err)
	_, err = s.Analyze("greeting + \", world\";")
	require.NoError(t, err)
	require.Equal(t, "System.String = \"hello, world\"\n", out.String())
	require.NotNil(t, s.Scope().LookupVariable("greeting"))

	// Implicit declaration by assignment.
	out.Reset()
	_, err = s.Analyze("n = 41;")
	require.NoError(t, err)
	_, err = s.Analyze("n + 1;")
	require.NoError(t, err)
	require.Equal(t, "System.Int32\nSystem.Int32\n", out.String())
	require.Empty(t, errw.String())
}

func TestAnalyzeDiagnostics(t *testing.T) {
	s, out, errw := newSession()

	_, err := s.Analyze("missing + 1;")
	require.NoError(t, err)
	require.Empty(t, out.String())
	require.Contains(t, errw.String(), "UndeclaredVariable")
	require.Contains(t, errw.String(), "compilation failed with 1 error(s)")

	_, err = s.Analyze("1 +;")
	require.Error(t, err)
}

func TestAnalyzeDump(t *testing.T) {
	s, out, _ := newSession()
	s.Dump = true
	_, err := s.Analyze("let x = 1;")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out.String(), "Program"), "%s", out)
	require.Contains(t, out.String(), "VarMember")
}

func TestIncomplete(t *testing.T) {
	for _, test := range []struct {
		src  string
		want bool
	}{
		{"1;", false},
		{"void f() {", true},
		{"if (true) {\n  1;", true},
		{"\"abc", true},
		{"1 +;", false},
		{"let x = 1", true},
	} {
		if got := repl.Incomplete(test.src); got != test.want {
			t.Errorf("Incomplete(%q) = %t, want %t", test.src, got, test.want)
		}
	}
}
