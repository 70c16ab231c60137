// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host defines the host type catalog: the external universe of
// types and members that Cinder programs may use but do not declare.
//
// The binder needs only name, arity, staticness and visibility queries
// plus a classification of primitive ("special") types, so a Catalog is
// deliberately narrow. NewReflect provides a catalog backed by Go
// reflection; package protohost provides one backed by protocol buffer
// descriptors.
//
// Catalogs are shared, read-only inputs: once populated they must be
// safe for concurrent queries from independent binders.
package host

import "fmt"

// Special classifies a type against the fixed set of primitive types
// for fast operator and overload matching.
type Special uint8

const (
	None Special = iota // not a special type
	Void
	Boolean
	Byte
	Int32
	UInt32
	Int64
	UInt64
	Float
	Double
	String
	Object
)

var specialNames = [...]string{
	None:    "none",
	Void:    "void",
	Boolean: "bool",
	Byte:    "byte",
	Int32:   "int",
	UInt32:  "uint",
	Int64:   "long",
	UInt64:  "ulong",
	Float:   "float",
	Double:  "double",
	String:  "string",
	Object:  "object",
}

// String returns the Cinder keyword for the special type.
func (s Special) String() string {
	if int(s) < len(specialNames) {
		return specialNames[s]
	}
	return fmt.Sprintf("Special(%d)", s)
}

// Specials returns all special types other than None, in declaration order.
func Specials() []Special {
	out := make([]Special, 0, Object)
	for s := Void; s <= Object; s++ {
		out = append(out, s)
	}
	return out
}

// SpecialByKeyword returns the special type denoted by a Cinder type keyword.
func SpecialByKeyword(keyword string) (Special, bool) {
	for s := Void; s <= Object; s++ {
		if specialNames[s] == keyword {
			return s, true
		}
	}
	return None, false
}

// A Catalog resolves host types.
type Catalog interface {
	// LookupType returns the type with the given fully qualified
	// name, or nil if there is none.
	LookupType(name string) Type

	// SpecialType returns the host type classified as s.
	// It panics if s is None.
	SpecialType(s Special) Type

	// ArrayOf returns the array type whose elements have type elem.
	ArrayOf(elem Type) Type
}

// A Type is a host type. Implementations return canonical values
// so that two Types are the same type iff they compare equal.
type Type interface {
	// Name returns the fully qualified name of the type.
	Name() string

	// Special returns the type's classification, or None.
	Special() Special

	// Elem returns the element type of an array type, or nil.
	Elem() Type

	// Members returns all fields, properties and methods named name,
	// regardless of visibility.
	Members(name string) []Member

	// MemberNames returns the sorted names of the type's members.
	MemberNames() []string

	// Constructors returns the type's constructors, regardless of visibility.
	Constructors() []Member
}

// MemberKind distinguishes the kinds of host member.
type MemberKind uint8

const (
	Field MemberKind = iota
	Property
	Method
	Constructor
)

func (k MemberKind) String() string {
	switch k {
	case Field:
		return "field"
	case Property:
		return "property"
	case Method:
		return "method"
	case Constructor:
		return "constructor"
	}
	return fmt.Sprintf("MemberKind(%d)", k)
}

// A Member is a field, property, method or constructor of a host type.
type Member interface {
	Name() string
	Kind() MemberKind

	// DeclaringType returns the type that declares the member.
	DeclaringType() Type

	// Type returns the type of a field or property, the result type
	// of a method (the Void type if it has none), or the declaring
	// type of a constructor.
	Type() Type

	// Params returns the parameters of a method or constructor.
	Params() []Param

	IsStatic() bool
	IsPublic() bool

	// CanSet reports whether a field or property may be assigned.
	CanSet() bool
}

// A Param is a method or constructor parameter.
// Name is empty if the host does not record parameter names.
type Param struct {
	Name string
	Type Type
}

// IsArrayOf reports whether t is an array whose elements are classified as s.
func IsArrayOf(t Type, s Special) bool {
	if t == nil {
		return false
	}
	elem := t.Elem()
	return elem != nil && elem.Special() == s
}
