// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binder

import (
	"strings"

	"go.cinder.dev/diag"
	"go.cinder.dev/host"
	"go.cinder.dev/symbols"
	"go.cinder.dev/syntax"
)

// names holds the namespaces and aliases in effect for one file.
type names struct {
	types   *symbols.Types
	imports []string
	aliases map[string]string
}

// newNames returns the names in effect for f: those of opts followed
// by those of the using declarations of f. Diagnostics for aliases
// that do not denote a type are appended to own.
func newNames(b *Binder, f *syntax.File, opts Options, own diag.List) (*names, diag.List) {
	ns := &names{
		types:   b.types,
		imports: append([]string(nil), opts.Imports...),
		aliases: make(map[string]string),
	}
	for k, v := range opts.Aliases {
		ns.aliases[k] = v
	}
	for _, u := range f.Usings {
		name := syntax.QualifiedName(u.Name)
		if u.Alias == nil {
			ns.imports = append(ns.imports, name)
			continue
		}
		if ns.types.Lookup(name) == nil {
			own = append(own, diag.Errorf(u.Name, diag.TypeNotFound, "type %s not found", name))
			continue
		}
		ns.aliases[u.Alias.Name] = name
	}
	return ns, own
}

// lookup resolves a possibly qualified type name: a keyword for a
// special type, an alias, a fully qualified name, or a name within
// one of the imported namespaces. It returns nil if there is no such type.
func (ns *names) lookup(name string) *symbols.TypeSymbol {
	if s, ok := host.SpecialByKeyword(name); ok {
		return ns.types.Special(s)
	}
	if target, ok := ns.aliases[name]; ok {
		return ns.types.Lookup(target)
	}
	if i := strings.IndexByte(name, '.'); i > 0 {
		if target, ok := ns.aliases[name[:i]]; ok {
			if t := ns.types.Lookup(target + name[i:]); t != nil {
				return t
			}
		}
	}
	if t := ns.types.Lookup(name); t != nil {
		return t
	}
	for _, imp := range ns.imports {
		if t := ns.types.Lookup(imp + "." + name); t != nil {
			return t
		}
	}
	return nil
}

// bindType resolves a type expression.
func (b *Binder) bindType(x *syntax.TypeExpr) (*symbols.TypeSymbol, diag.List) {
	name := syntax.QualifiedName(x.Name)
	t := b.names.lookup(name)
	if t == nil {
		return b.invalid(), diag.List{diag.Errorf(x, diag.TypeNotFound, "type %s not found", name)}
	}
	if x.Rank > 0 && t.Is(host.Void) {
		return b.invalid(), diag.List{diag.Errorf(x, diag.UnsupportedType, "cannot declare array of void")}
	}
	for i := 0; i < x.Rank; i++ {
		t = b.types.ArrayOf(t)
	}
	return t, nil
}
