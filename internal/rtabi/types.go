// Package rtabi defines the data layout constants of the script target.
// These values must be kept in sync with the script runtime headers.
package rtabi

// Target configuration
const (
	// TargetTriple is the target the script compiler emits for.
	TargetTriple = "armv7-none-linux-gnueabi"

	// DataLayout is the data layout string matching the target.
	DataLayout = "e-p:32:32:32-i1:8:8-i8:8:8-i16:16:16-i32:32:32-i64:64:64-f32:32:32-f64:64:64-v64:64:64-v128:128:128"
)

// Scalar sizes in bytes
const (
	SizeBool   = 1
	SizeChar   = 1
	SizeShort  = 2
	SizeInt    = 4
	SizeLong   = 8
	SizeHalf   = 2
	SizeFloat  = 4
	SizeDouble = 8
	SizePtr    = 4
)

// Scalar alignments in bytes
const (
	AlignBool   = 1
	AlignChar   = 1
	AlignShort  = 2
	AlignInt    = 4
	AlignLong   = 8
	AlignHalf   = 2
	AlignFloat  = 4
	AlignDouble = 8
	AlignPtr    = 4
)

// Vector layout
const (
	// MinVectorLanes and MaxVectorLanes bound the lane count of a vector type.
	MinVectorLanes = 2
	MaxVectorLanes = 4

	// PaddedLanes3 is the number of lanes a 3-lane vector occupies in memory.
	PaddedLanes3 = 4
)

// MaxArrayLen bounds the length of an exported constant array.
const MaxArrayLen = 1<<31 - 1
