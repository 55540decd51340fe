package element

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/you-not-fish/rsexport/internal/export"
	"github.com/you-not-fish/rsexport/internal/rtabi"
)

// Registry errors.
var (
	ErrDuplicateElement  = errors.New("duplicate element name")
	ErrInvalidVectorSize = errors.New("invalid element vector size")
	ErrInvalidDataKind   = errors.New("invalid element data kind")
)

// Registry maps element names to descriptors.
// A registry is immutable once built and safe for concurrent use.
type Registry struct {
	elems map[string]Descriptor
}

// NewRegistry builds a registry from a table of entries.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{elems: make(map[string]Descriptor, len(entries))}
	for _, e := range entries {
		if _, dup := r.elems[e.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateElement, e.Name)
		}
		if e.VectorSize < 1 || e.VectorSize > rtabi.MaxVectorLanes {
			return nil, fmt.Errorf("%w: %s has %d", ErrInvalidVectorSize, e.Name, e.VectorSize)
		}
		if e.DataKind == export.Unknown || e.DataKind.Size() == 0 {
			return nil, fmt.Errorf("%w: %s has %s", ErrInvalidDataKind, e.Name, e.DataKind)
		}
		r.elems[e.Name] = Descriptor{
			name:       e.Name,
			dataKind:   e.DataKind,
			normalized: e.Normalized,
			vectorSize: e.VectorSize,
		}
	}
	return r, nil
}

// Lookup returns the descriptor registered under name.
// The match is exact and case-sensitive.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	d, ok := r.elems[name]
	return d, ok
}

// Len returns the number of registered elements.
func (r *Registry) Len() int {
	return len(r.elems)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.elems))
	for name := range r.elems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Descriptors returns the registered descriptors sorted by name.
func (r *Registry) Descriptors() []Descriptor {
	names := r.Names()
	descs := make([]Descriptor, len(names))
	for i, name := range names {
		descs[i] = r.elems[name]
	}
	return descs
}

// builtinEntries is the compiled-in element table of the pixel header.
var builtinEntries = []Entry{
	{Name: "rs_pixel_l", DataKind: export.Unsigned8, Normalized: true, VectorSize: 1},
	{Name: "rs_pixel_a", DataKind: export.Unsigned8, Normalized: true, VectorSize: 1},
	{Name: "rs_pixel_la", DataKind: export.Unsigned8, Normalized: true, VectorSize: 2},
	{Name: "rs_pixel_rgb", DataKind: export.Unsigned8, Normalized: true, VectorSize: 3},
	{Name: "rs_pixel_rgba", DataKind: export.Unsigned8, Normalized: true, VectorSize: 4},
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the registry of the compiled-in element table.
// It is built on first use.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		r, err := NewRegistry(builtinEntries...)
		if err != nil {
			panic(fmt.Sprintf("element: bad compiled-in table: %v", err))
		}
		Logger().Debug("element registry initialized", zap.Int("elements", r.Len()))
		defaultRegistry = r
	})
	return defaultRegistry
}

// FindDescriptor looks name up in the default registry.
func FindDescriptor(name string) (Descriptor, bool) {
	return DefaultRegistry().Lookup(name)
}
