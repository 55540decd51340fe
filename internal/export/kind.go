// Package export implements the exported type model of script headers and
// the generic export constructor for declared types.
package export

import (
	"fmt"

	"github.com/you-not-fish/rsexport/internal/rtabi"
	"github.com/you-not-fish/rsexport/internal/types"
)

// DataKind is the primitive data kind of an exported scalar or vector lane.
type DataKind int

const (
	Unknown DataKind = iota

	Float16
	Float32
	Float64
	Signed8
	Signed16
	Signed32
	Signed64
	Unsigned8
	Unsigned16
	Unsigned32
	Unsigned64
	Boolean
	Pointer

	dataKindCount
)

var dataKindNames = [...]string{
	Unknown:    "Unknown",
	Float16:    "Float16",
	Float32:    "Float32",
	Float64:    "Float64",
	Signed8:    "Signed8",
	Signed16:   "Signed16",
	Signed32:   "Signed32",
	Signed64:   "Signed64",
	Unsigned8:  "Unsigned8",
	Unsigned16: "Unsigned16",
	Unsigned32: "Unsigned32",
	Unsigned64: "Unsigned64",
	Boolean:    "Boolean",
	Pointer:    "Pointer",
}

// String returns the name of the data kind.
func (k DataKind) String() string {
	if k >= 0 && k < dataKindCount {
		return dataKindNames[k]
	}
	return fmt.Sprintf("DataKind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k DataKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseDataKind returns the data kind with the given name.
func ParseDataKind(name string) (DataKind, bool) {
	for k := Unknown + 1; k < dataKindCount; k++ {
		if dataKindNames[k] == name {
			return k, true
		}
	}
	return Unknown, false
}

// Size returns the storage size of one value of kind k in bytes.
// Scalars are aligned to their size.
func (k DataKind) Size() int64 {
	switch k {
	case Boolean:
		return rtabi.SizeBool
	case Signed8, Unsigned8:
		return rtabi.SizeChar
	case Signed16, Unsigned16:
		return rtabi.SizeShort
	case Signed32, Unsigned32:
		return rtabi.SizeInt
	case Signed64, Unsigned64:
		return rtabi.SizeLong
	case Float16:
		return rtabi.SizeHalf
	case Float32:
		return rtabi.SizeFloat
	case Float64:
		return rtabi.SizeDouble
	case Pointer:
		return rtabi.SizePtr
	}
	return 0
}

// basicKinds maps scalar types to their data kinds.
var basicKinds = map[types.BasicKind]DataKind{
	types.Bool:   Boolean,
	types.Char:   Signed8,
	types.UChar:  Unsigned8,
	types.Short:  Signed16,
	types.UShort: Unsigned16,
	types.Int:    Signed32,
	types.UInt:   Unsigned32,
	types.Long:   Signed64,
	types.ULong:  Unsigned64,
	types.Half:   Float16,
	types.Float:  Float32,
	types.Double: Float64,
}

// DataKindOf returns the data kind of a scalar, pointer or vector type.
// A vector reports the kind of its lanes. Any other type is Unknown.
func DataKindOf(t types.Type) DataKind {
	switch t := types.Unalias(t).(type) {
	case *types.Basic:
		return basicKinds[t.Kind()]
	case *types.Pointer:
		return Pointer
	case *types.Vector:
		return basicKinds[t.Elem().Kind()]
	}
	return Unknown
}
