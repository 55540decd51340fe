package export

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/you-not-fish/rsexport/internal/types"
)

// ErrNotExportable is returned when a type has no exported form.
var ErrNotExportable = errors.New("type is not exportable")

// Create builds the exported form of t.
//
// Typedefs of scalars and vectors export under the typedef name; other
// typedefs export their canonical type. Unnamed vectors are named after
// their lanes, as in float4. Record fields, array elements and
// pointees are exported through ctx.Resolve, so element names are honored
// at every nesting level.
func Create(ctx *Context, t types.Type) (Type, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: missing type", ErrNotExportable)
	}

	orig := t
	name := t.String()
	if a, ok := t.(*types.Alias); ok {
		name = a.Name()
		t = types.Unalias(t)
		if t == nil {
			return nil, notExportable(ctx, name, "unresolved typedef")
		}
	}

	switch t := t.(type) {
	case *types.Basic:
		return NewPrimitive(name, DataKindOf(t), false), nil

	case *types.Vector:
		if _, ok := orig.(*types.Alias); !ok {
			name = fmt.Sprintf("%s%d", t.Elem().Name(), t.Lanes())
		}
		return NewVector(name, DataKindOf(t), t.Lanes(), false), nil

	case *types.Pointer:
		return createPointer(ctx, t)

	case *types.Array:
		return createArray(ctx, t)

	case *types.Named:
		return createRecord(ctx, t)

	case *types.Struct:
		return nil, notExportable(ctx, name, "anonymous struct")
	}

	return nil, notExportable(ctx, name, "unsupported type")
}

func createPointer(ctx *Context, t *types.Pointer) (Type, error) {
	if _, ok := types.Unalias(t.Elem()).(*types.Pointer); ok {
		return nil, notExportable(ctx, t.String(), "pointer to pointer")
	}
	pointee, err := ctx.Resolve(t.Elem())
	if err != nil {
		return nil, err
	}
	return NewPointer(pointee), nil
}

func createArray(ctx *Context, t *types.Array) (Type, error) {
	if _, ok := types.Unalias(t.Elem()).(*types.Array); ok {
		return nil, notExportable(ctx, t.String(), "multidimensional array")
	}
	if t.Len() <= 0 {
		return nil, notExportable(ctx, t.String(), "unsized array")
	}
	elem, err := ctx.Resolve(t.Elem())
	if err != nil {
		return nil, err
	}
	return NewConstantArray(elem, t.Len()), nil
}

// createRecord exports a named struct. The record is registered before its
// fields are exported so that fields may point back at it.
func createRecord(ctx *Context, t *types.Named) (Type, error) {
	name := t.Obj().Name()
	if r, ok := ctx.LookupRecord(name); ok {
		return r, nil
	}

	st, ok := t.Underlying().(*types.Struct)
	if !ok {
		return nil, notExportable(ctx, name, "record without struct type")
	}

	sizes := ctx.Sizes()
	r := NewRecord(name, sizes.Sizeof(t), sizes.Alignof(t))
	ctx.addRecord(r)

	for i, f := range st.Fields() {
		ft, err := ctx.resolveAt(f.Pos(), f.Type())
		if err != nil {
			ctx.removeRecord(r)
			Logger().Debug("record field not exportable",
				zap.String("record", name),
				zap.String("field", f.Name()),
				zap.Error(err))
			return nil, fmt.Errorf("field %s.%s: %w", name, f.Name(), err)
		}
		r.AddField(f.Name(), ft, sizes.Offsetof(st, i))
	}

	Logger().Debug("exported record",
		zap.String("record", name),
		zap.Int("fields", r.NumFields()),
		zap.Int64("size", r.Size()))
	return r, nil
}

// notExportable reports typeName to the sink and returns the wrapped error.
func notExportable(ctx *Context, typeName, reason string) error {
	ctx.Sink().NotExportable(typeName)
	Logger().Debug("type not exportable",
		zap.String("type", typeName),
		zap.String("reason", reason))
	return fmt.Errorf("%w: %s: %s", ErrNotExportable, typeName, reason)
}
