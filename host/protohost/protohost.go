// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package protohost exposes protocol message types as host types.
//
// Each message type in a descriptor pool becomes a host type named by
// its full name. Its fields are public, assignable instance properties
// and it has a single public constructor with no parameters, so Cinder
// programs may write:
//
//	using example;
//	let p = new Person();
//	p.name = "Ada";
//	p.id = 1;
//
// Field kinds map to special types as follows:
//
//	bool                         Boolean
//	int32 sint32 sfixed32 enum   Int32
//	uint32 fixed32               UInt32
//	int64 sint64 sfixed64        Int64
//	uint64 fixed64               UInt64
//	float                        Float
//	double                       Double
//	string                       String
//	bytes                        Byte[]
//	message, group               the message's host type
//
// Repeated fields have array types and map fields have type Object.
//
// THIS PACKAGE IS EXPERIMENTAL AND ITS INTERFACE MAY CHANGE.
package protohost

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"go.cinder.dev/host"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

// A DescriptorPool loads FileDescriptors by path name or package-qualified name.
// Both protoregistry.GlobalFiles and the result of protodesc.NewFiles
// satisfy it.
type DescriptorPool interface {
	FindFileByPath(string) (protoreflect.FileDescriptor, error)
	FindDescriptorByName(protoreflect.FullName) (protoreflect.Descriptor, error)
}

var _ DescriptorPool = (*protoregistry.Files)(nil)

// A Catalog is a host.Catalog that adds the message types of a
// descriptor pool to those of a base catalog.
type Catalog struct {
	base host.Catalog
	pool DescriptorPool

	mu       sync.Mutex
	messages map[protoreflect.FullName]*messageType
	arrays   map[host.Type]*arrayType
}

var _ host.Catalog = (*Catalog)(nil)

// New returns a catalog over the messages of pool.
// Names are resolved against base first.
func New(base host.Catalog, pool DescriptorPool) *Catalog {
	return &Catalog{
		base:     base,
		pool:     pool,
		messages: make(map[protoreflect.FullName]*messageType),
		arrays:   make(map[host.Type]*arrayType),
	}
}

// Load reads the named files, each containing an encoded
// FileDescriptorSet such as produced by
//
//	$ protoc --descriptor_set_out=foo.fds foo.proto
//
// and returns an index of all their files.
func Load(filenames ...string) (*protoregistry.Files, error) {
	var fdset descriptorpb.FileDescriptorSet
	for _, filename := range filenames {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		// Accumulate into the repeated field of FileDescriptors.
		if err := (proto.UnmarshalOptions{Merge: true}).Unmarshal(data, &fdset); err != nil {
			return nil, fmt.Errorf("%s does not contain a FileDescriptorSet: %w", filename, err)
		}
	}
	files, err := protodesc.NewFiles(&fdset)
	if err != nil {
		return nil, fmt.Errorf("could not build FileDescriptor index: %w", err)
	}
	return files, nil
}

func (c *Catalog) LookupType(name string) host.Type {
	if t := c.base.LookupType(name); t != nil {
		return t
	}
	if !protoreflect.FullName(name).IsValid() {
		return nil
	}
	d, err := c.pool.FindDescriptorByName(protoreflect.FullName(name))
	if err != nil {
		return nil
	}
	md, ok := d.(protoreflect.MessageDescriptor)
	if !ok || md.IsMapEntry() {
		return nil
	}
	return c.message(md)
}

func (c *Catalog) SpecialType(s host.Special) host.Type { return c.base.SpecialType(s) }

func (c *Catalog) ArrayOf(elem host.Type) host.Type {
	switch elem.(type) {
	case *messageType, *arrayType:
		c.mu.Lock()
		defer c.mu.Unlock()
		a, ok := c.arrays[elem]
		if !ok {
			a = &arrayType{elem: elem}
			c.arrays[elem] = a
		}
		return a
	}
	return c.base.ArrayOf(elem)
}

// message returns the canonical host type for md.
func (c *Catalog) message(md protoreflect.MessageDescriptor) *messageType {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.messages[md.FullName()]
	if !ok {
		t = &messageType{cat: c, desc: md}
		c.messages[md.FullName()] = t
	}
	return t
}

// fieldType returns the host type of a message field.
func (c *Catalog) fieldType(fd protoreflect.FieldDescriptor) host.Type {
	if fd.IsMap() {
		return c.SpecialType(host.Object)
	}
	var t host.Type
	switch fd.Kind() {
	case protoreflect.BoolKind:
		t = c.SpecialType(host.Boolean)
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind, protoreflect.EnumKind:
		t = c.SpecialType(host.Int32)
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		t = c.SpecialType(host.UInt32)
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		t = c.SpecialType(host.Int64)
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		t = c.SpecialType(host.UInt64)
	case protoreflect.FloatKind:
		t = c.SpecialType(host.Float)
	case protoreflect.DoubleKind:
		t = c.SpecialType(host.Double)
	case protoreflect.StringKind:
		t = c.SpecialType(host.String)
	case protoreflect.BytesKind:
		t = c.ArrayOf(c.SpecialType(host.Byte))
	case protoreflect.MessageKind, protoreflect.GroupKind:
		t = c.message(fd.Message())
	default:
		panic(fmt.Sprintf("unexpected field kind %v", fd.Kind()))
	}
	if fd.IsList() {
		t = c.ArrayOf(t)
	}
	return t
}

// A messageType is the host type of a protocol message.
type messageType struct {
	cat  *Catalog
	desc protoreflect.MessageDescriptor

	once    sync.Once
	members map[string][]host.Member
	names   []string
	ctors   []host.Member
}

func (t *messageType) Name() string          { return string(t.desc.FullName()) }
func (t *messageType) String() string        { return t.Name() }
func (t *messageType) Special() host.Special { return host.None }
func (t *messageType) Elem() host.Type       { return nil }

// Descriptor returns the message descriptor.
func (t *messageType) Descriptor() protoreflect.MessageDescriptor { return t.desc }

func (t *messageType) Members(name string) []host.Member {
	t.init()
	return t.members[name]
}

func (t *messageType) MemberNames() []string {
	t.init()
	return t.names
}

func (t *messageType) Constructors() []host.Member {
	t.init()
	return t.ctors
}

func (t *messageType) init() {
	t.once.Do(func() {
		t.members = make(map[string][]host.Member)
		fields := t.desc.Fields()
		for i := 0; i < fields.Len(); i++ {
			fd := fields.Get(i)
			name := string(fd.Name())
			t.members[name] = []host.Member{&field{decl: t, desc: fd, typ: t.cat.fieldType(fd)}}
			t.names = append(t.names, name)
		}
		sort.Strings(t.names)
		t.ctors = []host.Member{&constructor{decl: t}}
	})
}

// A field is a message field, exposed as a settable property.
type field struct {
	decl *messageType
	desc protoreflect.FieldDescriptor
	typ  host.Type
}

func (f *field) Name() string             { return string(f.desc.Name()) }
func (f *field) Kind() host.MemberKind    { return host.Property }
func (f *field) DeclaringType() host.Type { return f.decl }
func (f *field) Type() host.Type          { return f.typ }
func (f *field) Params() []host.Param     { return nil }
func (f *field) IsStatic() bool           { return false }
func (f *field) IsPublic() bool           { return true }
func (f *field) CanSet() bool             { return true }
func (f *field) String() string           { return string(f.desc.FullName()) }

// Descriptor returns the field descriptor.
func (f *field) Descriptor() protoreflect.FieldDescriptor { return f.desc }

type constructor struct {
	decl *messageType
}

func (c *constructor) Name() string             { return c.decl.Name() }
func (c *constructor) Kind() host.MemberKind    { return host.Constructor }
func (c *constructor) DeclaringType() host.Type { return c.decl }
func (c *constructor) Type() host.Type          { return c.decl }
func (c *constructor) Params() []host.Param     { return nil }
func (c *constructor) IsStatic() bool           { return true }
func (c *constructor) IsPublic() bool           { return true }
func (c *constructor) CanSet() bool             { return false }

// An arrayType is an array of message (or array-of-message) elements.
type arrayType struct {
	elem host.Type
}

func (a *arrayType) Name() string                 { return a.elem.Name() + "[]" }
func (a *arrayType) String() string               { return a.Name() }
func (a *arrayType) Special() host.Special        { return host.None }
func (a *arrayType) Elem() host.Type              { return a.elem }
func (a *arrayType) Members(string) []host.Member { return nil }
func (a *arrayType) MemberNames() []string        { return nil }
func (a *arrayType) Constructors() []host.Member  { return nil }
