// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// A Reflect is a Catalog whose types wrap Go types using reflection.
//
// Struct fields and exported methods of a defined Go type become its
// members automatically; unexported struct fields are present but not
// public. Additional members (extension methods on primitive types,
// static methods, properties, constructors) are added explicitly with
// AddMethod, AddStatic, AddProperty, AddStaticField, AddConstField and
// AddConstructor.
//
// Definitions must be complete before the catalog is shared;
// thereafter all methods are safe for concurrent use.
type Reflect struct {
	mu      sync.Mutex
	byName  map[string]*rtype
	byType  map[reflect.Type]*rtype
	special [Object + 1]*rtype
}

// voidType is the Go type standing for the host Void type.
type voidType struct{}

var (
	_ Catalog = (*Reflect)(nil)
	_ Type    = (*rtype)(nil)
	_ Member  = (*rmember)(nil)
)

var specialGoTypes = [...]struct {
	special Special
	name    string
	t       reflect.Type
}{
	{Void, "System.Void", reflect.TypeOf(voidType{})},
	{Boolean, "System.Boolean", reflect.TypeOf(false)},
	{Byte, "System.Byte", reflect.TypeOf(byte(0))},
	{Int32, "System.Int32", reflect.TypeOf(int32(0))},
	{UInt32, "System.UInt32", reflect.TypeOf(uint32(0))},
	{Int64, "System.Int64", reflect.TypeOf(int64(0))},
	{UInt64, "System.UInt64", reflect.TypeOf(uint64(0))},
	{Float, "System.Single", reflect.TypeOf(float32(0))},
	{Double, "System.Double", reflect.TypeOf(float64(0))},
	{String, "System.String", reflect.TypeOf("")},
	{Object, "System.Object", reflect.TypeOf((*interface{})(nil)).Elem()},
}

// NewReflect returns a catalog containing only the special types.
func NewReflect() *Reflect {
	c := &Reflect{
		byName: make(map[string]*rtype),
		byType: make(map[reflect.Type]*rtype),
	}
	for _, s := range specialGoTypes {
		t := c.define(s.name, s.t)
		t.special = s.special
		c.special[s.special] = t
	}
	return c
}

// Define registers the Go type t under the fully qualified name
// and returns the corresponding host type. Pointer types are
// registered by their element type.
func (c *Reflect) Define(name string, t reflect.Type) Type {
	if t == nil {
		panic("Define(nil)")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.byName[name]; ok {
		if prev.t != t {
			panic(fmt.Sprintf("Define: %s already defined as %s", name, prev.t))
		}
		return prev
	}
	return c.define(name, t)
}

// define registers t; c.mu must be held.
func (c *Reflect) define(name string, t reflect.Type) *rtype {
	rt := &rtype{cat: c, name: name, t: t}
	c.byName[name] = rt
	c.byType[t] = rt
	return rt
}

func (c *Reflect) LookupType(name string) Type {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.byName[name]; ok {
		return t
	}
	return nil
}

func (c *Reflect) SpecialType(s Special) Type {
	if s == None || int(s) >= len(c.special) {
		panic(fmt.Sprintf("SpecialType(%v)", s))
	}
	return c.special[s]
}

func (c *Reflect) ArrayOf(elem Type) Type {
	e, ok := elem.(*rtype)
	if !ok || e.cat != c {
		panic(fmt.Sprintf("ArrayOf: %s is not a type of this catalog", elem.Name()))
	}
	return c.typeOf(reflect.SliceOf(e.t))
}

// typeOf returns the host type for a Go type, registering it
// under its Go name if it is not yet known.
func (c *Reflect) typeOf(t reflect.Type) *rtype {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.typeOfLocked(t)
}

func (c *Reflect) typeOfLocked(t reflect.Type) *rtype {
	if rt, ok := c.byType[t]; ok {
		return rt
	}
	if t.Kind() == reflect.Slice {
		elem := c.typeOfLocked(t.Elem())
		rt := &rtype{cat: c, name: elem.name + "[]", t: t, elem: elem}
		c.byType[t] = rt
		return rt
	}
	return c.define(t.String(), t)
}

// AddMethod adds an instance method to t. The first parameter of the Go
// function fn is the receiver. Optional names label the remaining parameters.
func (c *Reflect) AddMethod(t Type, name string, fn interface{}, names ...string) {
	rt := c.checkType(t)
	ft := checkFunc(fn, 1)
	m := &rmember{name: name, kind: Method, decl: rt, public: true, fn: reflect.ValueOf(fn)}
	m.params = c.params(ft, 1, names)
	m.typ = c.result(ft)
	rt.add(m)
}

// AddStatic adds a static method to t.
func (c *Reflect) AddStatic(t Type, name string, fn interface{}, names ...string) {
	rt := c.checkType(t)
	ft := checkFunc(fn, 0)
	m := &rmember{name: name, kind: Method, decl: rt, static: true, public: true, fn: reflect.ValueOf(fn)}
	m.params = c.params(ft, 0, names)
	m.typ = c.result(ft)
	rt.add(m)
}

// AddProperty adds a read-only instance property computed by getter,
// a function of one argument, the receiver.
func (c *Reflect) AddProperty(t Type, name string, getter interface{}) {
	rt := c.checkType(t)
	ft := checkFunc(getter, 1)
	if ft.NumIn() != 1 || ft.NumOut() != 1 {
		panic(fmt.Sprintf("AddProperty %s.%s: getter must have type func(T) R", rt.name, name))
	}
	rt.add(&rmember{name: name, kind: Property, decl: rt, public: true, typ: c.typeOf(ft.Out(0)), fn: reflect.ValueOf(getter)})
}

// AddStaticField adds an assignable static field backed by the Go variable *ptr.
func (c *Reflect) AddStaticField(t Type, name string, ptr interface{}) {
	rt := c.checkType(t)
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Ptr {
		panic("AddStaticField: not a pointer")
	}
	rt.add(&rmember{name: name, kind: Field, decl: rt, static: true, public: true, settable: true, typ: c.typeOf(v.Type().Elem()), fn: v})
}

// AddConstField adds a read-only static field holding value.
func (c *Reflect) AddConstField(t Type, name string, value interface{}) {
	rt := c.checkType(t)
	v := reflect.ValueOf(value)
	ptr := reflect.New(v.Type())
	ptr.Elem().Set(v)
	rt.add(&rmember{name: name, kind: Field, decl: rt, static: true, public: true, typ: c.typeOf(v.Type()), fn: ptr})
}

// AddConstructor adds a constructor to t. The Go function fn
// must return a single value of type t or *t.
func (c *Reflect) AddConstructor(t Type, fn interface{}, names ...string) {
	rt := c.checkType(t)
	ft := checkFunc(fn, 0)
	if ft.NumOut() != 1 || c.typeOf(ft.Out(0)) != rt {
		panic(fmt.Sprintf("AddConstructor %s: function must return %s", rt.name, rt.t))
	}
	rt.ctors = append(rt.ctors, &rmember{name: rt.name, kind: Constructor, decl: rt, public: true, typ: rt, params: c.params(ft, 0, names), fn: reflect.ValueOf(fn)})
}

func (c *Reflect) checkType(t Type) *rtype {
	rt, ok := t.(*rtype)
	if !ok || rt.cat != c {
		panic(fmt.Sprintf("%s is not a type of this catalog", t.Name()))
	}
	rt.init()
	return rt
}

func checkFunc(fn interface{}, minIn int) reflect.Type {
	ft := reflect.TypeOf(fn)
	if ft == nil || ft.Kind() != reflect.Func {
		panic(fmt.Sprintf("got %T, want func", fn))
	}
	if ft.NumIn() < minIn || ft.IsVariadic() {
		panic(fmt.Sprintf("unsupported function type %s", ft))
	}
	return ft
}

func (c *Reflect) params(ft reflect.Type, skip int, names []string) []Param {
	var params []Param
	for i := skip; i < ft.NumIn(); i++ {
		p := Param{Type: c.typeOf(ft.In(i))}
		if j := i - skip; j < len(names) {
			p.Name = names[j]
		}
		params = append(params, p)
	}
	return params
}

// result returns the host type of a function's result:
// Void if it has none, otherwise the first result.
func (c *Reflect) result(ft reflect.Type) Type {
	if ft.NumOut() == 0 {
		return c.special[Void]
	}
	return c.typeOf(ft.Out(0))
}

// An rtype is a host type backed by a Go type.
type rtype struct {
	cat     *Reflect
	name    string
	t       reflect.Type
	special Special
	elem    *rtype

	once    sync.Once
	members map[string][]Member
	ctors   []Member
}

func (t *rtype) Name() string     { return t.name }
func (t *rtype) Special() Special { return t.special }
func (t *rtype) String() string   { return t.name }

// Reflect returns the underlying Go type.
func (t *rtype) Reflect() reflect.Type { return t.t }

func (t *rtype) Elem() Type {
	if t.elem == nil {
		return nil // avoid a non-nil interface holding a nil pointer
	}
	return t.elem
}

func (t *rtype) Members(name string) []Member {
	t.init()
	return t.members[name]
}

func (t *rtype) MemberNames() []string {
	t.init()
	names := make([]string, 0, len(t.members))
	for name := range t.members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t *rtype) Constructors() []Member {
	t.init()
	return t.ctors
}

func (t *rtype) add(m *rmember) {
	t.members[m.name] = append(t.members[m.name], m)
}

// init populates the members discovered by reflection.
func (t *rtype) init() {
	t.once.Do(func() {
		t.members = make(map[string][]Member)
		if t.special != None || t.elem != nil {
			return
		}
		if t.t.Kind() == reflect.Struct {
			for i := 0; i < t.t.NumField(); i++ {
				f := t.t.Field(i)
				if f.Anonymous {
					continue
				}
				public := f.PkgPath == ""
				t.add(&rmember{
					name:     f.Name,
					kind:     Field,
					decl:     t,
					public:   public,
					settable: public,
					typ:      t.cat.typeOf(f.Type),
					index:    f.Index,
				})
			}
		}
		// Methods of *T include those of T.
		pt := reflect.PtrTo(t.t)
		if t.t.Kind() == reflect.Interface {
			pt = t.t
		}
		for i := 0; i < pt.NumMethod(); i++ {
			m := pt.Method(i)
			skip := 1
			if t.t.Kind() == reflect.Interface {
				skip = 0 // interface method types have no receiver
			}
			t.add(&rmember{
				name:   m.Name,
				kind:   Method,
				decl:   t,
				public: true,
				params: t.cat.params(m.Type, skip, nil),
				typ:    t.cat.result(m.Type),
				fn:     m.Func,
			})
		}
	})
}

// An rmember is a member of an rtype.
type rmember struct {
	name     string
	kind     MemberKind
	decl     *rtype
	typ      Type
	params   []Param
	static   bool
	public   bool
	settable bool

	fn    reflect.Value // function, getter, or variable pointer
	index []int         // struct field index
}

func (m *rmember) Name() string        { return m.name }
func (m *rmember) Kind() MemberKind    { return m.kind }
func (m *rmember) DeclaringType() Type { return m.decl }
func (m *rmember) Type() Type          { return m.typ }
func (m *rmember) Params() []Param     { return m.params }
func (m *rmember) IsStatic() bool      { return m.static }
func (m *rmember) IsPublic() bool      { return m.public }
func (m *rmember) CanSet() bool        { return m.settable }

func (m *rmember) String() string {
	return fmt.Sprintf("%s %s.%s", m.kind, m.decl.name, m.name)
}

// Reflect returns the Go function, getter or variable pointer
// implementing the member; it is invalid for struct fields.
func (m *rmember) Reflect() reflect.Value { return m.fn }

// FieldIndex returns the struct field index sequence of a
// reflected field, or nil.
func (m *rmember) FieldIndex() []int { return m.index }
