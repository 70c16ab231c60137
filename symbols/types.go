// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbols

import (
	"sync"

	"go.cinder.dev/host"
)

// A TypeSymbol is the binder's view of a type. A valid TypeSymbol
// wraps a host type; the single invalid TypeSymbol of a Types table
// stands for the type of an expression that failed to bind.
//
// TypeSymbols are interned by their Types table, so two symbols from
// the same table denote the same type iff they are equal pointers.
type TypeSymbol struct {
	host host.Type // nil => invalid
	elem *TypeSymbol
}

// Host returns the underlying host type, or nil for the invalid type.
func (t *TypeSymbol) Host() host.Type { return t.host }

// IsValid reports whether t denotes a host type.
func (t *TypeSymbol) IsValid() bool { return t != nil && t.host != nil }

// Name returns the fully qualified type name.
func (t *TypeSymbol) Name() string {
	if !t.IsValid() {
		return "?"
	}
	return t.host.Name()
}

func (t *TypeSymbol) String() string { return t.Name() }

// Special returns the type's special classification, or None.
func (t *TypeSymbol) Special() host.Special {
	if !t.IsValid() {
		return host.None
	}
	return t.host.Special()
}

// Is reports whether t is the special type s.
func (t *TypeSymbol) Is(s host.Special) bool { return t.Special() == s && s != host.None }

// Elem returns the element type of an array type, or nil.
func (t *TypeSymbol) Elem() *TypeSymbol { return t.elem }

// Equal reports whether t and u denote the same host type.
func (t *TypeSymbol) Equal(u *TypeSymbol) bool {
	if t == u {
		return true
	}
	return t.IsValid() && u.IsValid() && t.host == u.host
}

// Types interns the TypeSymbols of one host catalog.
// It is safe for concurrent use.
type Types struct {
	cat     host.Catalog
	invalid *TypeSymbol

	mu sync.Mutex
	m  map[host.Type]*TypeSymbol
}

// NewTypes returns an empty table over the given catalog.
func NewTypes(cat host.Catalog) *Types {
	return &Types{
		cat:     cat,
		invalid: new(TypeSymbol),
		m:       make(map[host.Type]*TypeSymbol),
	}
}

// Catalog returns the underlying host catalog.
func (ts *Types) Catalog() host.Catalog { return ts.cat }

// Invalid returns the invalid type.
func (ts *Types) Invalid() *TypeSymbol { return ts.invalid }

// Of returns the symbol for host type h, or the invalid type if h is nil.
func (ts *Types) Of(h host.Type) *TypeSymbol {
	if h == nil {
		return ts.invalid
	}
	ts.mu.Lock()
	t, ok := ts.m[h]
	ts.mu.Unlock()
	if ok {
		return t
	}
	var elem *TypeSymbol
	if e := h.Elem(); e != nil {
		elem = ts.Of(e)
	}
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if t, ok := ts.m[h]; ok {
		return t // lost a race
	}
	t = &TypeSymbol{host: h, elem: elem}
	ts.m[h] = t
	return t
}

// Special returns the symbol for the special type s.
func (ts *Types) Special(s host.Special) *TypeSymbol {
	return ts.Of(ts.cat.SpecialType(s))
}

// ArrayOf returns the array type with element type elem.
// The array of an invalid type is invalid.
func (ts *Types) ArrayOf(elem *TypeSymbol) *TypeSymbol {
	if !elem.IsValid() {
		return ts.invalid
	}
	return ts.Of(ts.cat.ArrayOf(elem.host))
}

// Lookup returns the type with the given fully qualified name, or nil.
func (ts *Types) Lookup(name string) *TypeSymbol {
	if h := ts.cat.LookupType(name); h != nil {
		return ts.Of(h)
	}
	return nil
}
