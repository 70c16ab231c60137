// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.cinder.dev/binder"
	"go.cinder.dev/config"
	"go.cinder.dev/host"
)

func TestDecode(t *testing.T) {
	for _, test := range []struct {
		name, src string
		want      *config.Options
	}{
		{
			name: "empty",
			src:  "",
			want: config.Default(),
		},
		{
			name: "full",
			src: `mode: script
entry: Main
imports: [System, System.Text]
aliases:
  Con: System.Console
warningsAsErrors: true
catalog: minimal
`,
			want: &config.Options{
				Mode:             "script",
				Entry:            "Main",
				Imports:          []string{"System", "System.Text"},
				Aliases:          map[string]string{"Con": "System.Console"},
				WarningsAsErrors: true,
				Catalog:          config.Minimal,
			},
		},
		{
			name: "partial",
			src:  "entry: start\n",
			want: &config.Options{
				Mode:    "module",
				Entry:   "start",
				Imports: []string{"System"},
				Catalog: config.Standard,
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := config.Decode(strings.NewReader(test.src))
			require.NoError(t, err)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Decode mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, test := range []struct {
		src, want string
	}{
		{"colour: red\n", "field colour not found"},
		{"mode: interactive\n", `mode must be "module" or "script", not "interactive"`},
		{"entry: \"\"\n", "entry must be provided"},
		{"imports: [System., 1x]\n", `imports[0]: "System." is not a qualified name`},
		{"aliases: {A.B: System}\n", `aliases: "A.B" is not an identifier`},
		{"catalog: full\n", `catalog must be "standard" or "minimal", not "full"`},
	} {
		_, err := config.Decode(strings.NewReader(test.src))
		if err == nil {
			t.Errorf("Decode(%q) succeeded, want error containing %q", test.src, test.want)
			continue
		}
		if !strings.Contains(err.Error(), test.want) {
			t.Errorf("Decode(%q) = %v, want error containing %q", test.src, err, test.want)
		}
	}
}

func TestValidationErrorIssues(t *testing.T) {
	_, err := config.Decode(strings.NewReader("mode: x\nentry: \"\"\ncatalog: y\n"))
	var verr *config.ValidationError
	require.True(t, errors.As(err, &verr), "%v", err)
	require.Len(t, verr.Issues, 3)
	require.True(t, strings.HasPrefix(err.Error(), "config: invalid options:\n- "))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("mode: script\nwarningsAsErrors: true\n"), 0o644))

	opts, err := config.Load(path)
	require.NoError(t, err)
	c := opts.Compiler()
	require.Equal(t, binder.ScriptMode, c.Mode)
	require.Equal(t, binder.DefaultEntry, c.Entry)
	require.Equal(t, []string{"System"}, c.Imports)
	require.True(t, c.WarningsAsErrors)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestTypes(t *testing.T) {
	opts := config.Default()
	types, err := opts.Types()
	require.NoError(t, err)
	require.NotNil(t, types.Lookup("System.Console"))
	require.True(t, types.Special(host.Int32).IsValid())

	opts.Catalog = config.Minimal
	types, err = opts.Types()
	require.NoError(t, err)
	require.Nil(t, types.Lookup("System.Console"))
	require.True(t, types.Special(host.String).IsValid())

	opts.Descriptors = []string{filepath.Join(t.TempDir(), "missing.pb")}
	_, err = opts.Types()
	require.Error(t, err)
}
