package types

import (
	"testing"

	"github.com/you-not-fish/rsexport/internal/syntax"
)

func TestBasicTypes(t *testing.T) {
	tests := []struct {
		kind BasicKind
		name string
		info BasicInfo
	}{
		{Bool, "bool", InfoBoolean},
		{Char, "char", InfoInteger},
		{UChar, "uchar", InfoInteger | InfoUnsigned},
		{Short, "short", InfoInteger},
		{UShort, "ushort", InfoInteger | InfoUnsigned},
		{Int, "int", InfoInteger},
		{UInt, "uint", InfoInteger | InfoUnsigned},
		{Long, "long", InfoInteger},
		{ULong, "ulong", InfoInteger | InfoUnsigned},
		{Half, "half", InfoFloat},
		{Float, "float", InfoFloat},
		{Double, "double", InfoFloat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ := Typ[tt.kind]
			if typ == nil {
				t.Fatalf("Typ[%d] is nil", tt.kind)
			}
			if typ.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", typ.Kind(), tt.kind)
			}
			if typ.Info() != tt.info {
				t.Errorf("Info() = %v, want %v", typ.Info(), tt.info)
			}
			if typ.String() != tt.name {
				t.Errorf("String() = %q, want %q", typ.String(), tt.name)
			}
			if typ.Underlying() != typ {
				t.Errorf("Underlying() != self")
			}
		})
	}
}

func TestVectorType(t *testing.T) {
	v := NewVector(3, Typ[UChar])

	if v.Lanes() != 3 {
		t.Errorf("Lanes() = %d, want 3", v.Lanes())
	}
	if v.Elem() != Typ[UChar] {
		t.Errorf("Elem() = %v, want uchar", v.Elem())
	}
	if v.String() != "vector[3]uchar" {
		t.Errorf("String() = %q, want %q", v.String(), "vector[3]uchar")
	}
	if v.Underlying() != v {
		t.Errorf("Underlying() != self")
	}
}

func TestAliasChain(t *testing.T) {
	vec := NewVector(3, Typ[UChar])
	raw := NewAlias(NewTypeName(NoPos, "raw3", nil), vec)
	pixel := NewAlias(NewTypeName(NoPos, "pixel", nil), raw)

	if pixel.Rhs() != raw {
		t.Errorf("Rhs() = %v, want raw3", pixel.Rhs())
	}
	if got := Unalias(pixel); got != vec {
		t.Errorf("Unalias(pixel) = %v, want %v", got, vec)
	}
	if got := pixel.Underlying(); got != vec {
		t.Errorf("Underlying() = %v, want %v", got, vec)
	}
	if pixel.String() != "pixel" {
		t.Errorf("String() = %q, want %q", pixel.String(), "pixel")
	}
	if !pixel.Obj().IsAlias() {
		t.Errorf("Obj().IsAlias() = false, want true")
	}
	if got := Unalias(vec); got != vec {
		t.Errorf("Unalias(non-alias) = %v, want receiver", got)
	}
}

func TestUnaliasUnresolved(t *testing.T) {
	a := NewAlias(NewTypeName(NoPos, "pending", nil), nil)
	if got := Unalias(a); got != nil {
		t.Errorf("Unalias(unresolved) = %v, want nil", got)
	}
	a.SetRhs(Typ[Int])
	if got := Unalias(a); got != Typ[Int] {
		t.Errorf("Unalias after SetRhs = %v, want int", got)
	}
}

func TestClassOf(t *testing.T) {
	vec := NewVector(4, Typ[Float])
	alias := NewAlias(NewTypeName(NoPos, "float4x", nil), vec)
	named := NewNamed(NewTypeName(NoPos, "Rec", nil), NewStruct(nil))

	tests := []struct {
		name string
		typ  Type
		want Class
	}{
		{"basic", Typ[Int], ClassBuiltin},
		{"pointer", NewPointer(Typ[Int]), ClassPointer},
		{"vector", vec, ClassVector},
		{"alias", alias, ClassAlias},
		{"named", named, ClassOther},
		{"struct", NewStruct(nil), ClassOther},
		{"array", NewArray(2, Typ[Int]), ClassOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassOf(tt.typ); got != tt.want {
				t.Errorf("ClassOf(%v) = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

func TestNamedType(t *testing.T) {
	obj := NewTypeName(syntax.NewPos("a.rsd", 3, 6), "Sprite", nil)
	st := NewStruct([]*Var{NewField(NoPos, "x", Typ[Float])})
	named := NewNamed(obj, st)

	if obj.Type() != named {
		t.Errorf("obj.Type() != named")
	}
	if named.Underlying() != st {
		t.Errorf("Underlying() != struct")
	}
	if named.String() != "Sprite" {
		t.Errorf("String() = %q, want %q", named.String(), "Sprite")
	}
	if obj.IsAlias() {
		t.Errorf("IsAlias() = true for a record")
	}
}

func TestStructString(t *testing.T) {
	st := NewStruct([]*Var{
		NewField(NoPos, "a", Typ[Int]),
		NewField(NoPos, "b", NewPointer(Typ[Float])),
	})
	if got, want := st.String(), "struct{a int; b *float}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
