// Package element recognizes element types: typedef names registered as
// primitives or fixed-width vectors with known data kind and normalization.
package element

import (
	"fmt"

	"github.com/you-not-fish/rsexport/internal/export"
)

// Descriptor describes one registered element.
// Descriptors are immutable values owned by their registry.
type Descriptor struct {
	name       string
	dataKind   export.DataKind
	normalized bool
	vectorSize int
}

// Name returns the element name.
func (d Descriptor) Name() string { return d.name }

// DataKind returns the data kind of the element or of its lanes.
func (d Descriptor) DataKind() export.DataKind { return d.dataKind }

// Normalized reports whether integer storage is scaled to a fractional range.
func (d Descriptor) Normalized() bool { return d.normalized }

// VectorSize returns 1 for a primitive element and the lane count for a vector.
func (d Descriptor) VectorSize() int { return d.vectorSize }

// IsVector reports whether the element maps to a vector type.
func (d Descriptor) IsVector() bool { return d.vectorSize > 1 }

// String returns a compact rendering such as "rs_pixel_rgb(Unsigned8x3, normalized)".
func (d Descriptor) String() string {
	s := fmt.Sprintf("%s(%sx%d", d.name, d.dataKind, d.vectorSize)
	if d.normalized {
		s += ", normalized"
	}
	return s + ")"
}

// Entry is one row of an element table.
type Entry struct {
	Name       string          `json:"name" yaml:"name"`
	DataKind   export.DataKind `json:"dataKind" yaml:"dataKind"`
	Normalized bool            `json:"normalized" yaml:"normalized"`
	VectorSize int             `json:"vectorSize" yaml:"vectorSize"`
}

// Entry returns the table row of d.
func (d Descriptor) Entry() Entry {
	return Entry{
		Name:       d.name,
		DataKind:   d.dataKind,
		Normalized: d.normalized,
		VectorSize: d.vectorSize,
	}
}
