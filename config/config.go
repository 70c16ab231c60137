// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads Cinder project options from a YAML file,
// conventionally named cinder.yaml:
//
//	mode: module
//	entry: main
//	imports: [System, System.Text]
//	aliases:
//	  Con: System.Console
//	warningsAsErrors: false
//	catalog: standard
//	descriptors: [person.pb]
//
// Unknown keys are rejected.
package config // import "go.cinder.dev/config"

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"go.cinder.dev"
	"go.cinder.dev/binder"
	"go.cinder.dev/host"
	"go.cinder.dev/host/protohost"
	"go.cinder.dev/symbols"
)

// DefaultFile is the conventional name of the options file.
const DefaultFile = "cinder.yaml"

// Catalog names.
const (
	Standard = "standard" // host.Standard
	Minimal  = "minimal"  // special types only
)

// Options are the options of a Cinder project.
type Options struct {
	Mode             string            `yaml:"mode"`
	Entry            string            `yaml:"entry"`
	Imports          []string          `yaml:"imports"`
	Aliases          map[string]string `yaml:"aliases"`
	WarningsAsErrors bool              `yaml:"warningsAsErrors"`
	Catalog          string            `yaml:"catalog"`
	Descriptors      []string          `yaml:"descriptors"` // FileDescriptorSet files
}

// Default returns the options used when there is no options file.
func Default() *Options {
	return &Options{
		Mode:    binder.ModuleMode.String(),
		Entry:   binder.DefaultEntry,
		Imports: []string{"System"},
		Catalog: Standard,
	}
}

// ValidationError aggregates the problems found by Validate.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid options"
	}
	var b strings.Builder
	b.WriteString("config: invalid options:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// Load reads options from the named file. Options absent from the
// file keep their default values.
func Load(path string) (*Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	opts, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return opts, nil
}

// Decode reads and validates options in YAML form.
func Decode(r io.Reader) (*Options, error) {
	opts := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(opts); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate reports every problem with the options.
func (o *Options) Validate() error {
	var errs ValidationError
	if _, err := o.mode(); err != nil {
		errs.Issues = append(errs.Issues, err.Error())
	}
	if o.Entry == "" {
		errs.Issues = append(errs.Issues, "entry must be provided")
	}
	for i, imp := range o.Imports {
		if !isQualifiedName(imp) {
			errs.Issues = append(errs.Issues, fmt.Sprintf("imports[%d]: %q is not a qualified name", i, imp))
		}
	}
	for alias, target := range o.Aliases {
		if !isQualifiedName(alias) || strings.Contains(alias, ".") {
			errs.Issues = append(errs.Issues, fmt.Sprintf("aliases: %q is not an identifier", alias))
		}
		if !isQualifiedName(target) {
			errs.Issues = append(errs.Issues, fmt.Sprintf("aliases[%s]: %q is not a qualified name", alias, target))
		}
	}
	switch o.Catalog {
	case Standard, Minimal:
	default:
		errs.Issues = append(errs.Issues, fmt.Sprintf("catalog must be %q or %q, not %q", Standard, Minimal, o.Catalog))
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

func (o *Options) mode() (binder.Mode, error) {
	switch o.Mode {
	case "", binder.ModuleMode.String():
		return binder.ModuleMode, nil
	case binder.ScriptMode.String():
		return binder.ScriptMode, nil
	}
	return 0, fmt.Errorf("mode must be %q or %q, not %q", binder.ModuleMode, binder.ScriptMode, o.Mode)
}

// Compiler returns the compilation options denoted by o,
// which must be valid.
func (o *Options) Compiler() cinder.Options {
	mode, _ := o.mode()
	return cinder.Options{
		Options: binder.Options{
			Mode:    mode,
			Entry:   o.Entry,
			Imports: o.Imports,
			Aliases: o.Aliases,
		},
		WarningsAsErrors: o.WarningsAsErrors,
	}
}

// Types returns the type table of the host catalog selected by o,
// extended by the message types of its descriptor files.
func (o *Options) Types() (*symbols.Types, error) {
	var cat host.Catalog
	switch o.Catalog {
	case Minimal:
		cat = host.NewReflect()
	default:
		cat = host.Standard()
	}
	if len(o.Descriptors) > 0 {
		files, err := protohost.Load(o.Descriptors...)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		cat = protohost.New(cat, files)
	}
	return symbols.NewTypes(cat), nil
}

func isQualifiedName(s string) bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ".") {
		if !isIdent(part) {
			return false
		}
	}
	return true
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case i > 0 && '0' <= r && r <= '9':
		default:
			return false
		}
	}
	return true
}
