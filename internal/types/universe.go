package types

import (
	"fmt"

	"github.com/you-not-fish/rsexport/internal/rtabi"
	"github.com/you-not-fish/rsexport/internal/syntax"
)

// NoPos is the zero position value, used for predeclared objects.
var NoPos syntax.Pos

// Universe is the root scope containing all predeclared objects.
var Universe *Scope

// scalarKinds lists the predeclared scalar types in declaration order.
var scalarKinds = []BasicKind{
	Bool, Char, UChar, Short, UShort, Int, UInt, Long, ULong, Half, Float, Double,
}

func init() {
	Universe = NewScope(nil, NoPos, NoPos, "universe")

	defPredeclaredTypes()
	defPredeclaredVectors()
}

// defPredeclaredTypes defines the scalar type names in Universe.
func defPredeclaredTypes() {
	for _, kind := range scalarKinds {
		typ := Typ[kind]
		Universe.Insert(NewTypeName(NoPos, typ.name, typ))
	}
}

// defPredeclaredVectors defines the vector typedefs (uchar3, float4, ...)
// for every numeric scalar type.
func defPredeclaredVectors() {
	for _, kind := range scalarKinds {
		elem := Typ[kind]
		if elem.info&InfoNumeric == 0 {
			continue
		}
		for lanes := rtabi.MinVectorLanes; lanes <= rtabi.MaxVectorLanes; lanes++ {
			obj := NewTypeName(NoPos, fmt.Sprintf("%s%d", elem.name, lanes), nil)
			NewAlias(obj, NewVector(lanes, elem))
			Universe.Insert(obj)
		}
	}
}

// UniverseType returns the predeclared type with the given name, or nil.
func UniverseType(name string) Type {
	if tn, ok := Universe.Lookup(name).(*TypeName); ok {
		return tn.Type()
	}
	return nil
}
