package types

import "github.com/you-not-fish/rsexport/internal/rtabi"

// Sizes provides size and alignment calculations for types.
// It uses the rtabi constants of the script target.
type Sizes struct{}

// DefaultSizes is the default Sizes implementation.
var DefaultSizes = &Sizes{}

// Sizeof returns the size of type T in bytes.
func (s *Sizes) Sizeof(T Type) int64 {
	switch t := T.Underlying().(type) {
	case *Basic:
		return s.basicSize(t.Kind())
	case *Vector:
		return s.basicSize(t.Elem().Kind()) * vectorStorageLanes(t.Lanes())
	case *Array:
		return t.Len() * s.Sizeof(t.Elem())
	case *Struct:
		s.ComputeLayout(t)
		return t.Size()
	case *Pointer:
		return rtabi.SizePtr
	}
	return 0
}

// Alignof returns the alignment of type T in bytes.
// Vectors are aligned to their full storage size.
func (s *Sizes) Alignof(T Type) int64 {
	switch t := T.Underlying().(type) {
	case *Basic:
		return s.basicAlign(t.Kind())
	case *Vector:
		return s.Sizeof(t)
	case *Array:
		if t.Len() == 0 {
			return 1
		}
		return s.Alignof(t.Elem())
	case *Struct:
		s.ComputeLayout(t)
		return t.Align()
	case *Pointer:
		return rtabi.AlignPtr
	}
	return 1
}

// Offsetof returns the offset of field i in struct type T.
func (s *Sizes) Offsetof(T *Struct, i int) int64 {
	s.ComputeLayout(T)
	return T.Offset(i)
}

// ComputeLayout computes the size, alignment, and field offsets for a struct.
// This function is idempotent and safe to call multiple times.
func (s *Sizes) ComputeLayout(st *Struct) {
	if st.LayoutDone() {
		return
	}

	var offset int64
	var maxAlign int64 = 1
	offsets := make([]int64, len(st.fields))

	for i, f := range st.fields {
		fieldSize := s.Sizeof(f.Type())
		fieldAlign := s.Alignof(f.Type())

		offset = align(offset, fieldAlign)
		offsets[i] = offset
		offset += fieldSize

		if fieldAlign > maxAlign {
			maxAlign = fieldAlign
		}
	}

	// Trailing padding up to the struct alignment
	size := align(offset, maxAlign)

	st.SetLayout(size, maxAlign, offsets)
}

// vectorStorageLanes returns the number of lanes a vector occupies in memory.
func vectorStorageLanes(lanes int) int64 {
	if lanes == 3 {
		return rtabi.PaddedLanes3
	}
	return int64(lanes)
}

// basicSize returns the size of a basic type in bytes.
func (s *Sizes) basicSize(kind BasicKind) int64 {
	switch kind {
	case Bool:
		return rtabi.SizeBool
	case Char, UChar:
		return rtabi.SizeChar
	case Short, UShort:
		return rtabi.SizeShort
	case Int, UInt:
		return rtabi.SizeInt
	case Long, ULong:
		return rtabi.SizeLong
	case Half:
		return rtabi.SizeHalf
	case Float:
		return rtabi.SizeFloat
	case Double:
		return rtabi.SizeDouble
	}
	return 0
}

// basicAlign returns the alignment of a basic type in bytes.
func (s *Sizes) basicAlign(kind BasicKind) int64 {
	switch kind {
	case Bool:
		return rtabi.AlignBool
	case Char, UChar:
		return rtabi.AlignChar
	case Short, UShort:
		return rtabi.AlignShort
	case Int, UInt:
		return rtabi.AlignInt
	case Long, ULong:
		return rtabi.AlignLong
	case Half:
		return rtabi.AlignHalf
	case Float:
		return rtabi.AlignFloat
	case Double:
		return rtabi.AlignDouble
	}
	return 1
}

// align returns x rounded up to a multiple of a.
func align(x, a int64) int64 {
	return (x + a - 1) &^ (a - 1)
}
