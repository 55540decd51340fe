package types

import "github.com/you-not-fish/rsexport/internal/syntax"

// Object represents a declared entity: a variable, a struct field or a type name.
type Object interface {
	Name() string    // object name
	Type() Type      // object type
	Pos() syntax.Pos // declaration position
	Parent() *Scope  // enclosing scope

	setParent(*Scope) // internal: set parent scope
	aObject()         // marker method to restrict implementations
}

// object is the base struct for all objects.
type object struct {
	name   string
	typ    Type
	pos    syntax.Pos
	parent *Scope
}

func (o *object) Name() string       { return o.name }
func (o *object) Type() Type         { return o.typ }
func (o *object) Pos() syntax.Pos    { return o.pos }
func (o *object) Parent() *Scope     { return o.parent }
func (o *object) setParent(s *Scope) { o.parent = s }
func (*object) aObject()             {}

// Var represents a variable or struct field.
type Var struct {
	object
	isField bool
}

// NewVar creates a new variable object.
func NewVar(pos syntax.Pos, name string, typ Type) *Var {
	return &Var{object: object{name: name, typ: typ, pos: pos}}
}

// NewField creates a new struct field object.
func NewField(pos syntax.Pos, name string, typ Type) *Var {
	return &Var{object: object{name: name, typ: typ, pos: pos}, isField: true}
}

// IsField reports whether this variable is a struct field.
func (v *Var) IsField() bool {
	return v.isField
}

// SetType sets the variable's type once it is resolved.
func (v *Var) SetType(typ Type) {
	v.typ = typ
}

// TypeName represents a declared type name: a typedef, a record or a
// predeclared type.
type TypeName struct {
	object
}

// NewTypeName creates a new type name object.
func NewTypeName(pos syntax.Pos, name string, typ Type) *TypeName {
	return &TypeName{object: object{name: name, typ: typ, pos: pos}}
}

// IsAlias reports whether the type name denotes a typedef.
func (t *TypeName) IsAlias() bool {
	_, ok := t.typ.(*Alias)
	return ok
}
