package export

import (
	"github.com/you-not-fish/rsexport/internal/syntax"
	"github.com/you-not-fish/rsexport/internal/types"
)

// Sink receives reports of types that cannot be exported.
type Sink interface {
	NotExportable(typeName string)
}

// PosSink is a Sink that attributes reports to a source position.
// While a record field is exported, the position is moved to the field.
type PosSink interface {
	Sink
	Pos() syntax.Pos
	SetPos(pos syntax.Pos)
}

// Resolver exports the type found at an export position: the type of a
// declaration, a record field, an array element or a pointee.
// The element resolver implements it; without one, positions are exported
// by Create.
type Resolver interface {
	Resolve(ctx *Context, t types.Type) (Type, error)
}

type nopSink struct{}

func (nopSink) NotExportable(string) {}

// Context holds the state of one export pass.
type Context struct {
	sizes    *types.Sizes
	sink     Sink
	resolver Resolver

	// Records exported so far, by name and in export order.
	records map[string]*Record
	order   []*Record
}

// NewContext returns a context reporting to sink.
// A nil sizes uses types.DefaultSizes; a nil sink discards reports.
func NewContext(sizes *types.Sizes, sink Sink) *Context {
	if sizes == nil {
		sizes = types.DefaultSizes
	}
	if sink == nil {
		sink = nopSink{}
	}
	return &Context{
		sizes:   sizes,
		sink:    sink,
		records: make(map[string]*Record),
	}
}

// Sizes returns the layout calculator of the target.
func (c *Context) Sizes() *types.Sizes {
	return c.sizes
}

// Sink returns the diagnostics sink.
func (c *Context) Sink() Sink {
	return c.sink
}

// SetResolver installs the resolver used for nested export positions.
func (c *Context) SetResolver(r Resolver) {
	c.resolver = r
}

// Resolve exports t through the installed resolver, or through Create
// if there is none.
func (c *Context) Resolve(t types.Type) (Type, error) {
	if c.resolver != nil {
		return c.resolver.Resolve(c, t)
	}
	return Create(c, t)
}

// resolveAt exports t with sink reports attributed to pos.
func (c *Context) resolveAt(pos syntax.Pos, t types.Type) (Type, error) {
	ps, ok := c.sink.(PosSink)
	if !ok || !pos.IsValid() {
		return c.Resolve(t)
	}
	saved := ps.Pos()
	ps.SetPos(pos)
	defer ps.SetPos(saved)
	return c.Resolve(t)
}

// LookupRecord returns the record exported under name, if any.
func (c *Context) LookupRecord(name string) (*Record, bool) {
	r, ok := c.records[name]
	return r, ok
}

// Records returns the records exported so far in export order.
func (c *Context) Records() []*Record {
	return c.order
}

func (c *Context) addRecord(r *Record) {
	c.records[r.name] = r
	c.order = append(c.order, r)
}

// removeRecord forgets a record whose fields failed to export, together
// with every record added after it. Those were exported while r was
// incomplete and may refer to it.
func (c *Context) removeRecord(r *Record) {
	for i, o := range c.order {
		if o != r {
			continue
		}
		for _, dropped := range c.order[i:] {
			delete(c.records, dropped.name)
		}
		c.order = c.order[:i]
		return
	}
}
