package types

import (
	"fmt"
	"strings"
)

// Array represents a constant-size array type [N]Elem.
type Array struct {
	typ
	len  int64
	elem Type
}

// NewArray creates a new array type with the given length and element type.
func NewArray(len int64, elem Type) *Array {
	return &Array{len: len, elem: elem}
}

// Len returns the array length.
func (a *Array) Len() int64 {
	return a.len
}

// Elem returns the array element type.
func (a *Array) Elem() Type {
	return a.elem
}

// Underlying implements Type.
func (a *Array) Underlying() Type {
	return a
}

// String implements Type.
func (a *Array) String() string {
	return fmt.Sprintf("[%d]%s", a.len, a.elem)
}

// Vector represents an extended vector type vector[N]Elem.
// The element is always a numeric basic type.
type Vector struct {
	typ
	lanes int
	elem  *Basic
}

// NewVector creates a new vector type with the given lane count and element type.
func NewVector(lanes int, elem *Basic) *Vector {
	return &Vector{lanes: lanes, elem: elem}
}

// Lanes returns the number of lanes.
func (v *Vector) Lanes() int {
	return v.lanes
}

// Elem returns the lane type.
func (v *Vector) Elem() *Basic {
	return v.elem
}

// Underlying implements Type.
func (v *Vector) Underlying() Type {
	return v
}

// String implements Type.
func (v *Vector) String() string {
	return fmt.Sprintf("vector[%d]%s", v.lanes, v.elem)
}

// Struct represents a struct type.
type Struct struct {
	typ
	fields  []*Var  // field declarations
	size    int64   // computed size (0 if not yet computed)
	align   int64   // computed alignment (0 if not yet computed)
	offsets []int64 // field offsets (nil if not yet computed)
}

// NewStruct creates a new struct type with the given fields.
func NewStruct(fields []*Var) *Struct {
	return &Struct{fields: fields}
}

// NumFields returns the number of fields.
func (s *Struct) NumFields() int {
	return len(s.fields)
}

// Field returns the field at the given index.
func (s *Struct) Field(i int) *Var {
	return s.fields[i]
}

// Fields returns all fields.
func (s *Struct) Fields() []*Var {
	return s.fields
}

// Size returns the struct size in bytes.
// Must be called after layout is computed.
func (s *Struct) Size() int64 {
	return s.size
}

// Align returns the struct alignment in bytes.
// Must be called after layout is computed.
func (s *Struct) Align() int64 {
	return s.align
}

// Offset returns the offset of field i in bytes.
// Must be called after layout is computed.
func (s *Struct) Offset(i int) int64 {
	return s.offsets[i]
}

// SetLayout sets the computed layout information.
func (s *Struct) SetLayout(size, align int64, offsets []int64) {
	s.size = size
	s.align = align
	s.offsets = offsets
}

// LayoutDone reports whether layout has been computed.
func (s *Struct) LayoutDone() bool {
	return s.offsets != nil
}

// Underlying implements Type.
func (s *Struct) Underlying() Type {
	return s
}

// String implements Type.
func (s *Struct) String() string {
	var buf strings.Builder
	buf.WriteString("struct{")
	for i, f := range s.fields {
		if i > 0 {
			buf.WriteString("; ")
		}
		buf.WriteString(f.Name())
		buf.WriteString(" ")
		buf.WriteString(f.Type().String())
	}
	buf.WriteString("}")
	return buf.String()
}

// Pointer represents a pointer type *T.
type Pointer struct {
	typ
	base Type
}

// NewPointer creates a new pointer type.
func NewPointer(base Type) *Pointer {
	return &Pointer{base: base}
}

// Elem returns the base type that the pointer points to.
func (p *Pointer) Elem() Type {
	return p.base
}

// Underlying implements Type.
func (p *Pointer) Underlying() Type {
	return p
}

// String implements Type.
func (p *Pointer) String() string {
	return "*" + p.base.String()
}
