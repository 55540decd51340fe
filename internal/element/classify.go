package element

import (
	"go.uber.org/zap"

	"github.com/you-not-fish/rsexport/internal/export"
	"github.com/you-not-fish/rsexport/internal/types"
)

// Classify builds the element form of the canonical type t described by d.
//
// Scalars and pointers become primitives, vectors become vectors, both named
// after the element. Any other class is not exportable: it is reported to
// the context's sink and ErrNotExportable is returned.
//
// Classify panics with an *InvariantError if d disagrees with t's shape or
// data kind.
func Classify(ctx *export.Context, ts TypeSystem, t types.Type, d Descriptor) (export.Type, error) {
	switch ts.Class(t) {
	case types.ClassBuiltin, types.ClassPointer:
		if d.VectorSize() != 1 {
			panic(invariantf(d, t, "not a primitive element (vector size %d)", d.VectorSize()))
		}
		p := export.NewPrimitive(d.Name(), ts.DataKindOf(t), d.Normalized())
		if p.DataKind() != d.DataKind() {
			panic(invariantf(d, t, "unexpected data kind %s, want %s", p.DataKind(), d.DataKind()))
		}
		return p, nil

	case types.ClassVector:
		if d.VectorSize() <= 1 {
			panic(invariantf(d, t, "not a vector element (vector size %d)", d.VectorSize()))
		}
		v := export.NewVector(d.Name(), ts.DataKindOf(t), ts.VectorLanes(t), d.Normalized())
		if v.DataKind() != d.DataKind() {
			panic(invariantf(d, t, "unexpected data kind %s, want %s", v.DataKind(), d.DataKind()))
		}
		if v.Lanes() != d.VectorSize() {
			panic(invariantf(d, t, "unexpected vector size %d, want %d", v.Lanes(), d.VectorSize()))
		}
		return v, nil

	case types.ClassAlias, types.ClassOther:
		ctx.Sink().NotExportable(t.String())
		Logger().Debug("element type not exportable",
			zap.String("element", d.Name()),
			zap.String("type", t.String()),
			zap.Stringer("class", ts.Class(t)))
		return nil, ErrNotExportable
	}

	panic("element: unknown type class " + ts.Class(t).String())
}
