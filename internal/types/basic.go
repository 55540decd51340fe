package types

// BasicKind describes the kind of basic type.
type BasicKind int

const (
	Invalid BasicKind = iota // invalid type

	Bool
	Char
	UChar
	Short
	UShort
	Int
	UInt
	Long
	ULong
	Half
	Float
	Double
)

// BasicInfo describes properties of a basic type.
type BasicInfo int

const (
	InfoBoolean BasicInfo = 1 << iota
	InfoInteger
	InfoUnsigned
	InfoFloat
	InfoNumeric = InfoInteger | InfoFloat
)

// Basic represents a builtin scalar type.
type Basic struct {
	typ
	kind BasicKind
	info BasicInfo
	name string
}

// Kind returns the kind of the basic type.
func (b *Basic) Kind() BasicKind {
	return b.kind
}

// Info returns information about the basic type.
func (b *Basic) Info() BasicInfo {
	return b.info
}

// Name returns the name of the basic type.
func (b *Basic) Name() string {
	return b.name
}

// Underlying implements Type.
func (b *Basic) Underlying() Type {
	return b
}

// String implements Type.
func (b *Basic) String() string {
	return b.name
}

// Typ holds the predeclared basic types, indexed by BasicKind.
// Typ[Invalid] is nil, representing an invalid type.
var Typ = []*Basic{
	Invalid: nil,
	Bool:    {kind: Bool, info: InfoBoolean, name: "bool"},
	Char:    {kind: Char, info: InfoInteger, name: "char"},
	UChar:   {kind: UChar, info: InfoInteger | InfoUnsigned, name: "uchar"},
	Short:   {kind: Short, info: InfoInteger, name: "short"},
	UShort:  {kind: UShort, info: InfoInteger | InfoUnsigned, name: "ushort"},
	Int:     {kind: Int, info: InfoInteger, name: "int"},
	UInt:    {kind: UInt, info: InfoInteger | InfoUnsigned, name: "uint"},
	Long:    {kind: Long, info: InfoInteger, name: "long"},
	ULong:   {kind: ULong, info: InfoInteger | InfoUnsigned, name: "ulong"},
	Half:    {kind: Half, info: InfoFloat, name: "half"},
	Float:   {kind: Float, info: InfoFloat, name: "float"},
	Double:  {kind: Double, info: InfoFloat, name: "double"},
}
