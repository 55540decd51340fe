package types

// Named represents a declared record type (type T struct{...}).
type Named struct {
	typ
	obj        *TypeName // type name object
	underlying Type      // underlying struct type
}

// NewNamed creates a new named type.
// The underlying type may be set later using SetUnderlying.
func NewNamed(obj *TypeName, underlying Type) *Named {
	n := &Named{obj: obj, underlying: underlying}
	if obj != nil {
		obj.typ = n
	}
	return n
}

// Obj returns the type name object.
func (n *Named) Obj() *TypeName {
	return n.obj
}

// SetUnderlying sets the underlying type.
// This is called during type checking once the underlying type is resolved.
func (n *Named) SetUnderlying(underlying Type) {
	n.underlying = underlying
}

// Underlying implements Type.
func (n *Named) Underlying() Type {
	return n.underlying
}

// String implements Type.
func (n *Named) String() string {
	if n.obj != nil {
		return n.obj.Name()
	}
	return "unnamed"
}

// Alias represents a typedef (type T = U).
// Unlike Named, an alias introduces no new type: it is another name for
// its right-hand side, which may itself be an alias.
type Alias struct {
	typ
	obj *TypeName // type name object
	rhs Type      // immediate right-hand side
}

// NewAlias creates a new alias for rhs.
// The right-hand side may be set later using SetRhs.
func NewAlias(obj *TypeName, rhs Type) *Alias {
	a := &Alias{obj: obj, rhs: rhs}
	if obj != nil {
		obj.typ = a
	}
	return a
}

// Obj returns the type name object.
func (a *Alias) Obj() *TypeName {
	return a.obj
}

// Name returns the declared name of the alias.
func (a *Alias) Name() string {
	if a.obj != nil {
		return a.obj.Name()
	}
	return ""
}

// Rhs returns the immediate right-hand side of the alias declaration.
func (a *Alias) Rhs() Type {
	return a.rhs
}

// SetRhs sets the right-hand side.
// This is called during type checking once the aliased type is resolved.
func (a *Alias) SetRhs(rhs Type) {
	a.rhs = rhs
}

// Underlying implements Type.
func (a *Alias) Underlying() Type {
	if t := Unalias(a); t != nil {
		return t.Underlying()
	}
	return nil
}

// String implements Type.
func (a *Alias) String() string {
	return a.Name()
}

// Unalias returns t with all outer aliases removed.
// If t is not an alias, it is returned unchanged. An alias whose
// right-hand side is not yet resolved yields nil.
func Unalias(t Type) Type {
	for {
		a, ok := t.(*Alias)
		if !ok {
			return t
		}
		if a.rhs == nil {
			return nil
		}
		t = a.rhs
	}
}
