package types

// Identical reports whether x and y are identical types.
// An alias is identical to the type it stands for.
func Identical(x, y Type) bool {
	x, y = Unalias(x), Unalias(y)
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	return identical(x, y)
}

func identical(x, y Type) bool {
	// Two named types are identical only if they are the same named type
	xn, xNamed := x.(*Named)
	yn, yNamed := y.(*Named)
	if xNamed || yNamed {
		return xNamed && yNamed && xn.obj == yn.obj
	}

	switch x := x.(type) {
	case *Basic:
		if y, ok := y.(*Basic); ok {
			return x.kind == y.kind
		}
	case *Vector:
		if y, ok := y.(*Vector); ok {
			return x.lanes == y.lanes && x.elem.kind == y.elem.kind
		}
	case *Array:
		if y, ok := y.(*Array); ok {
			return x.len == y.len && Identical(x.elem, y.elem)
		}
	case *Struct:
		if y, ok := y.(*Struct); ok {
			return identicalStructs(x, y)
		}
	case *Pointer:
		if y, ok := y.(*Pointer); ok {
			return Identical(x.base, y.base)
		}
	}
	return false
}

func identicalStructs(x, y *Struct) bool {
	if len(x.fields) != len(y.fields) {
		return false
	}
	for i := range x.fields {
		if x.fields[i].Name() != y.fields[i].Name() {
			return false
		}
		if !Identical(x.fields[i].Type(), y.fields[i].Type()) {
			return false
		}
	}
	return true
}

// basicInfo returns the info bits of T if T is a basic type.
func basicInfo(T Type) (BasicInfo, bool) {
	if T == nil {
		return 0, false
	}
	b, ok := T.Underlying().(*Basic)
	if !ok {
		return 0, false
	}
	return b.info, true
}

// IsBoolean reports whether T is the bool type.
func IsBoolean(T Type) bool {
	info, ok := basicInfo(T)
	return ok && info&InfoBoolean != 0
}

// IsInteger reports whether T is an integer type.
func IsInteger(T Type) bool {
	info, ok := basicInfo(T)
	return ok && info&InfoInteger != 0
}

// IsUnsignedInteger reports whether T is an unsigned integer type.
func IsUnsignedInteger(T Type) bool {
	info, ok := basicInfo(T)
	return ok && info&InfoUnsigned != 0
}

// IsFloat reports whether T is a floating-point type.
func IsFloat(T Type) bool {
	info, ok := basicInfo(T)
	return ok && info&InfoFloat != 0
}

// IsNumeric reports whether T is a numeric type (integer or float).
func IsNumeric(T Type) bool {
	info, ok := basicInfo(T)
	return ok && info&InfoNumeric != 0
}

// IsPointer reports whether T is a pointer type.
func IsPointer(T Type) bool {
	_, ok := T.Underlying().(*Pointer)
	return ok
}

// IsVector reports whether T is a vector type.
func IsVector(T Type) bool {
	_, ok := T.Underlying().(*Vector)
	return ok
}
