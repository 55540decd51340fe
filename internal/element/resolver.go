package element

import (
	"go.uber.org/zap"

	"github.com/you-not-fish/rsexport/internal/export"
	"github.com/you-not-fish/rsexport/internal/types"
)

// Resolver exports declared types, recognizing element names along
// typedef chains. It implements export.Resolver.
type Resolver struct {
	reg *Registry
	ts  TypeSystem
}

var _ export.Resolver = (*Resolver)(nil)

// NewResolver returns a resolver over reg.
// A nil reg uses DefaultRegistry; a nil ts uses SourceTypes.
func NewResolver(reg *Registry, ts TypeSystem) *Resolver {
	if reg == nil {
		reg = DefaultRegistry()
	}
	if ts == nil {
		ts = SourceTypes{}
	}
	return &Resolver{reg: reg, ts: ts}
}

// Registry returns the registry the resolver consults.
func (r *Resolver) Registry() *Registry {
	return r.reg
}

// ResolveDecl exports the type of decl.
func (r *Resolver) ResolveDecl(ctx *export.Context, decl types.Object) (export.Type, error) {
	return r.Resolve(ctx, r.ts.DeclaredType(decl))
}

// Resolve exports t.
//
// If t's canonical form is a scalar, pointer or vector, the typedef chain
// from t toward the canonical form is walked and the first typedef name
// found in the registry selects the element; names further down the chain
// are not consulted. Without a match, or for any other canonical class,
// t itself is exported by export.Create. A type written without typedefs
// is therefore never an element, whatever its shape.
func (r *Resolver) Resolve(ctx *export.Context, t types.Type) (export.Type, error) {
	c := r.ts.Canonical(t)

	switch r.ts.Class(c) {
	case types.ClassBuiltin, types.ClassPointer, types.ClassVector:
	default:
		return export.Create(ctx, t)
	}

	d, ok := r.match(t, c)
	if !ok {
		return export.Create(ctx, t)
	}

	Logger().Debug("element matched",
		zap.String("type", t.String()),
		zap.String("element", d.Name()),
		zap.String("canonical", c.String()))
	return Classify(ctx, r.ts, c, d)
}

// match walks the typedef chain from t to c and returns the descriptor of
// the first registered typedef name.
func (r *Resolver) match(t, c types.Type) (Descriptor, bool) {
	for cur := t; cur != c; cur = r.ts.AliasUnderlying(cur) {
		if r.ts.Class(cur) != types.ClassAlias {
			break
		}
		if d, ok := r.reg.Lookup(r.ts.AliasName(cur)); ok {
			return d, true
		}
	}
	return Descriptor{}, false
}
