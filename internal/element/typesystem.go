package element

import (
	"github.com/you-not-fish/rsexport/internal/export"
	"github.com/you-not-fish/rsexport/internal/types"
)

// TypeSystem is what element resolution needs from the source type system.
type TypeSystem interface {
	// Class returns the class of t's outermost constructor.
	Class(t types.Type) types.Class

	// Canonical returns t with all typedefs reduced.
	Canonical(t types.Type) types.Type

	// AliasName returns the declared name of a typedef.
	AliasName(t types.Type) string

	// AliasUnderlying returns the immediate right-hand side of a typedef.
	AliasUnderlying(t types.Type) types.Type

	// VectorLanes returns the lane count of a vector type.
	VectorLanes(t types.Type) int

	// DeclaredType returns the written type of a declaration.
	DeclaredType(decl types.Object) types.Type

	// DataKindOf returns the data kind of a scalar, pointer or vector type.
	DataKindOf(t types.Type) export.DataKind
}

// SourceTypes implements TypeSystem over package types.
type SourceTypes struct{}

var _ TypeSystem = SourceTypes{}

func (SourceTypes) Class(t types.Type) types.Class         { return types.ClassOf(t) }
func (SourceTypes) Canonical(t types.Type) types.Type      { return types.Unalias(t) }
func (SourceTypes) DeclaredType(d types.Object) types.Type { return d.Type() }
func (SourceTypes) DataKindOf(t types.Type) export.DataKind {
	return export.DataKindOf(t)
}

func (SourceTypes) AliasName(t types.Type) string {
	if a, ok := t.(*types.Alias); ok {
		return a.Name()
	}
	return ""
}

func (SourceTypes) AliasUnderlying(t types.Type) types.Type {
	if a, ok := t.(*types.Alias); ok {
		return a.Rhs()
	}
	return nil
}

func (SourceTypes) VectorLanes(t types.Type) int {
	if v, ok := types.Unalias(t).(*types.Vector); ok {
		return v.Lanes()
	}
	return 0
}
