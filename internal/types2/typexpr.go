package types2

import (
	"strconv"

	"github.com/you-not-fish/rsexport/internal/rtabi"
	"github.com/you-not-fish/rsexport/internal/syntax"
	"github.com/you-not-fish/rsexport/internal/types"
)

// resolveType resolves a type expression and returns the resulting type,
// or nil if an error was reported.
func (c *Checker) resolveType(e syntax.Expr) types.Type {
	var typ types.Type

	switch e := e.(type) {
	case *syntax.Name:
		typ = c.typeName(e)
	case *syntax.PointerType:
		typ = c.pointerType(e)
	case *syntax.ArrayType:
		typ = c.arrayType(e)
	case *syntax.VectorType:
		typ = c.vectorType(e)
	case *syntax.StructType:
		if st := c.structType(e); st != nil {
			typ = st
		}
	default:
		c.errorf(e.Pos(), "%T is not a type", e)
	}

	c.recordType(e, typ)
	return typ
}

// typeName resolves a type name, resolving its declaration first if needed.
func (c *Checker) typeName(name *syntax.Name) types.Type {
	obj := c.resolve(name)
	if obj == nil {
		return nil
	}

	tn, ok := obj.(*types.TypeName)
	if !ok {
		c.errorf(name.Pos(), "%s is not a type", name.Value)
		return nil
	}

	if d := c.objMap[tn]; d != nil {
		switch d.state {
		case unresolved:
			c.objDecl(tn)
		case resolving:
			if c.validCycle(tn) {
				return tn.Type()
			}
			c.cycleError(tn)
			return nil
		}
	}

	typ := tn.Type()
	if typ == nil || types.Unalias(typ) == nil {
		// The declaration failed; its error is already reported.
		return nil
	}
	return typ
}

// pointerType resolves a pointer type *T.
func (c *Checker) pointerType(e *syntax.PointerType) types.Type {
	c.indirect++
	base := c.resolveType(e.Base)
	c.indirect--
	if base == nil {
		return nil
	}
	return types.NewPointer(base)
}

// arrayType resolves an array type [N]Elem.
func (c *Checker) arrayType(e *syntax.ArrayType) types.Type {
	length, ok := c.intLit(e.Len, e.Pos())
	if ok {
		switch {
		case length <= 0:
			c.errorf(e.Len.Pos(), "array length must be positive")
			ok = false
		case length > rtabi.MaxArrayLen:
			c.errorf(e.Len.Pos(), "array length %d too large", length)
			ok = false
		}
	}

	elem := c.resolveType(e.Elem)
	if elem == nil || !ok {
		return nil
	}
	return types.NewArray(length, elem)
}

// vectorType resolves an extended vector type vector[N]Elem.
// The lane type must be a numeric scalar, possibly named through typedefs.
func (c *Checker) vectorType(e *syntax.VectorType) types.Type {
	lanes, ok := c.intLit(e.Len, e.Pos())
	if ok && (lanes < rtabi.MinVectorLanes || lanes > rtabi.MaxVectorLanes) {
		c.errorf(e.Len.Pos(), "invalid vector lane count %d (must be %d to %d)",
			lanes, rtabi.MinVectorLanes, rtabi.MaxVectorLanes)
		ok = false
	}

	elem := c.resolveType(e.Elem)
	if elem == nil || !ok {
		return nil
	}

	basic, isBasic := types.Unalias(elem).(*types.Basic)
	if !isBasic || !types.IsNumeric(basic) {
		c.errorf(e.Elem.Pos(), "invalid vector element type %s", elem)
		return nil
	}
	return types.NewVector(int(lanes), basic)
}

// structType resolves a struct type. Its layout is computed at the end
// of checking.
func (c *Checker) structType(e *syntax.StructType) *types.Struct {
	fields := make([]*types.Var, 0, len(e.Fields))
	seen := make(map[string]bool)
	valid := true

	for _, field := range e.Fields {
		fieldType := c.resolveType(field.Type)
		if fieldType == nil {
			valid = false
			continue
		}

		name := field.Name.Value
		if seen[name] {
			c.errorf(field.Name.Pos(), "duplicate field %s", name)
			valid = false
			continue
		}
		seen[name] = true

		f := types.NewField(field.Pos(), name, fieldType)
		c.recordDef(field.Name, f)
		fields = append(fields, f)
	}

	if !valid {
		return nil
	}

	st := types.NewStruct(fields)
	c.structs = append(c.structs, st)
	return st
}

// intLit evaluates an integer literal used as a length.
func (c *Checker) intLit(lit *syntax.BasicLit, pos syntax.Pos) (int64, bool) {
	if lit == nil {
		c.errorf(pos, "missing length")
		return 0, false
	}
	n, err := strconv.ParseInt(lit.Value, 0, 64)
	if err != nil {
		c.errorf(lit.Pos(), "invalid integer literal %s", lit.Value)
		return 0, false
	}
	return n, true
}
