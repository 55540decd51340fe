package export

import (
	"fmt"

	"github.com/you-not-fish/rsexport/internal/rtabi"
)

// Class discriminates exported types.
type Class int

const (
	ClassPrimitive Class = iota
	ClassVector
	ClassPointer
	ClassConstantArray
	ClassRecord
)

var classNames = [...]string{
	ClassPrimitive:     "Primitive",
	ClassVector:        "Vector",
	ClassPointer:       "Pointer",
	ClassConstantArray: "ConstantArray",
	ClassRecord:        "Record",
}

// String returns the class name.
func (c Class) String() string {
	if c >= 0 && int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Type is an exported type.
// Exported types are immutable once constructed, except that a record's
// fields are filled in by the export constructor before it is returned.
type Type interface {
	Class() Class
	Name() string
	Size() int64  // store size in bytes
	Align() int64 // alignment in bytes
	aType()
}

// Primitive is an exported scalar: a builtin type or a pointer exported
// by value.
type Primitive struct {
	name       string
	kind       DataKind
	normalized bool
}

// NewPrimitive returns a primitive named name.
func NewPrimitive(name string, kind DataKind, normalized bool) *Primitive {
	return &Primitive{name: name, kind: kind, normalized: normalized}
}

func (p *Primitive) Class() Class       { return ClassPrimitive }
func (p *Primitive) Name() string       { return p.name }
func (p *Primitive) DataKind() DataKind { return p.kind }
func (p *Primitive) Normalized() bool   { return p.normalized }
func (p *Primitive) Size() int64        { return p.kind.Size() }
func (p *Primitive) Align() int64       { return p.kind.Size() }
func (*Primitive) aType()               {}

// Vector is an exported fixed-width vector.
type Vector struct {
	name       string
	kind       DataKind
	lanes      int
	normalized bool
}

// NewVector returns a vector named name with the given lane kind and count.
func NewVector(name string, kind DataKind, lanes int, normalized bool) *Vector {
	return &Vector{name: name, kind: kind, lanes: lanes, normalized: normalized}
}

func (v *Vector) Class() Class       { return ClassVector }
func (v *Vector) Name() string       { return v.name }
func (v *Vector) DataKind() DataKind { return v.kind }
func (v *Vector) Lanes() int         { return v.lanes }
func (v *Vector) Normalized() bool   { return v.normalized }
func (*Vector) aType()               {}

// Size returns the store size. Three-lane vectors occupy four lanes.
func (v *Vector) Size() int64 {
	lanes := int64(v.lanes)
	if v.lanes == 3 {
		lanes = rtabi.PaddedLanes3
	}
	return v.kind.Size() * lanes
}

// Align returns the alignment, which equals the store size.
func (v *Vector) Align() int64 { return v.Size() }

// PointerType is an exported pointer.
type PointerType struct {
	pointee Type
}

// NewPointer returns a pointer to pointee.
func NewPointer(pointee Type) *PointerType {
	return &PointerType{pointee: pointee}
}

func (p *PointerType) Class() Class  { return ClassPointer }
func (p *PointerType) Name() string  { return "*" + p.pointee.Name() }
func (p *PointerType) Pointee() Type { return p.pointee }
func (p *PointerType) Size() int64   { return rtabi.SizePtr }
func (p *PointerType) Align() int64  { return rtabi.AlignPtr }
func (*PointerType) aType()          {}

// ConstantArray is an exported one-dimensional array of fixed length.
type ConstantArray struct {
	elem Type
	len  int64
}

// NewConstantArray returns an array of length elements of elem.
func NewConstantArray(elem Type, length int64) *ConstantArray {
	return &ConstantArray{elem: elem, len: length}
}

func (a *ConstantArray) Class() Class { return ClassConstantArray }
func (a *ConstantArray) Name() string { return fmt.Sprintf("[%d]%s", a.len, a.elem.Name()) }
func (a *ConstantArray) Elem() Type   { return a.elem }
func (a *ConstantArray) Len() int64   { return a.len }
func (a *ConstantArray) Size() int64  { return a.len * a.elem.Size() }
func (a *ConstantArray) Align() int64 { return a.elem.Align() }
func (*ConstantArray) aType()         {}

// Field is a field of an exported record.
type Field struct {
	Name   string
	Type   Type
	Offset int64 // byte offset from the start of the record
}

// Record is an exported named struct.
type Record struct {
	name   string
	fields []*Field
	size   int64
	align  int64
}

// NewRecord returns a record without fields.
func NewRecord(name string, size, align int64) *Record {
	return &Record{name: name, size: size, align: align}
}

// AddField appends a field to the record.
func (r *Record) AddField(name string, typ Type, offset int64) {
	r.fields = append(r.fields, &Field{Name: name, Type: typ, Offset: offset})
}

func (r *Record) Class() Class       { return ClassRecord }
func (r *Record) Name() string       { return r.name }
func (r *Record) Fields() []*Field   { return r.fields }
func (r *Record) NumFields() int     { return len(r.fields) }
func (r *Record) Field(i int) *Field { return r.fields[i] }
func (r *Record) Size() int64        { return r.size }
func (r *Record) Align() int64       { return r.align }
func (*Record) aType()               {}
