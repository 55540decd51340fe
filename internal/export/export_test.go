package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-not-fish/rsexport/internal/syntax"
	"github.com/you-not-fish/rsexport/internal/types"
	"github.com/you-not-fish/rsexport/internal/types2"
)

type recordingSink struct {
	names []string
}

func (s *recordingSink) NotExportable(typeName string) {
	s.names = append(s.names, typeName)
}

// checkSource parses and checks src, failing the test on any error.
func checkSource(t *testing.T, src string) *types.Package {
	t.Helper()
	file := syntax.NewParser("test.rsd", strings.NewReader(src), nil).Parse()
	pkg, err := types2.Check("test.rsd", file, nil, nil)
	require.NoError(t, err)
	return pkg
}

func varOf(t *testing.T, pkg *types.Package, name string) types.Type {
	t.Helper()
	v, ok := pkg.Scope().Lookup(name).(*types.Var)
	require.True(t, ok, "%s is not a variable", name)
	return v.Type()
}

func TestDataKindOf(t *testing.T) {
	tests := []struct {
		typ  types.Type
		want DataKind
	}{
		{types.Typ[types.Bool], Boolean},
		{types.Typ[types.Char], Signed8},
		{types.Typ[types.UChar], Unsigned8},
		{types.Typ[types.Short], Signed16},
		{types.Typ[types.UShort], Unsigned16},
		{types.Typ[types.Int], Signed32},
		{types.Typ[types.UInt], Unsigned32},
		{types.Typ[types.Long], Signed64},
		{types.Typ[types.ULong], Unsigned64},
		{types.Typ[types.Half], Float16},
		{types.Typ[types.Float], Float32},
		{types.Typ[types.Double], Float64},
		{types.NewPointer(types.Typ[types.Float]), Pointer},
		{types.NewVector(3, types.Typ[types.UChar]), Unsigned8},
		{types.UniverseType("float4"), Float32},
		{types.NewArray(2, types.Typ[types.Int]), Unknown},
		{nil, Unknown},
	}

	for _, tt := range tests {
		name := "nil"
		if tt.typ != nil {
			name = tt.typ.String()
		}
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, DataKindOf(tt.typ))
		})
	}
}

func TestDataKindNames(t *testing.T) {
	for k := Float16; k < dataKindCount; k++ {
		got, ok := ParseDataKind(k.String())
		assert.True(t, ok, k.String())
		assert.Equal(t, k, got)
		assert.NotZero(t, k.Size(), k.String())
	}
	_, ok := ParseDataKind("Unsigned7")
	assert.False(t, ok)
	assert.Equal(t, "DataKind(99)", DataKind(99).String())

	text, err := Unsigned8.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Unsigned8", string(text))
}

func TestCreateScalarsAndVectors(t *testing.T) {
	pkg := checkSource(t, `
package p

type byte = uchar
type rgb = uchar3

var a float
var b byte
var c rgb
var d vector[3]short
`)
	ctx := NewContext(nil, nil)

	tests := []struct {
		varName   string
		wantClass Class
		wantName  string
		wantKind  DataKind
		wantSize  int64
	}{
		{"a", ClassPrimitive, "float", Float32, 4},
		{"b", ClassPrimitive, "byte", Unsigned8, 1},
		{"c", ClassVector, "rgb", Unsigned8, 4},
		{"d", ClassVector, "short3", Signed16, 8},
	}

	for _, tt := range tests {
		t.Run(tt.varName, func(t *testing.T) {
			et, err := Create(ctx, varOf(t, pkg, tt.varName))
			require.NoError(t, err)
			assert.Equal(t, tt.wantClass, et.Class())
			assert.Equal(t, tt.wantName, et.Name())
			assert.Equal(t, tt.wantSize, et.Size())
			assert.Equal(t, tt.wantSize, et.Align())

			switch et := et.(type) {
			case *Primitive:
				assert.Equal(t, tt.wantKind, et.DataKind())
				assert.False(t, et.Normalized())
			case *Vector:
				assert.Equal(t, tt.wantKind, et.DataKind())
				assert.Equal(t, 3, et.Lanes())
				assert.False(t, et.Normalized())
			}
		})
	}
}

func TestCreatePointerAndArray(t *testing.T) {
	pkg := checkSource(t, `
package p

var p *float
var a [4]int
var pa [2]*uchar2
`)
	ctx := NewContext(nil, nil)

	p, err := Create(ctx, varOf(t, pkg, "p"))
	require.NoError(t, err)
	require.IsType(t, &PointerType{}, p)
	assert.Equal(t, "*float", p.Name())
	assert.Equal(t, int64(4), p.Size())

	a, err := Create(ctx, varOf(t, pkg, "a"))
	require.NoError(t, err)
	arr := a.(*ConstantArray)
	assert.Equal(t, "[4]int", arr.Name())
	assert.Equal(t, int64(4), arr.Len())
	assert.Equal(t, int64(16), arr.Size())

	pa, err := Create(ctx, varOf(t, pkg, "pa"))
	require.NoError(t, err)
	assert.Equal(t, "[2]*uchar2", pa.Name())
	assert.Equal(t, int64(8), pa.Size())
}

func TestCreateFailures(t *testing.T) {
	pkg := checkSource(t, `
package p

var pp **int
var grid [2][2]float
var anon struct { x int }
`)

	tests := []struct {
		varName  string
		wantSink string
		wantMsg  string
	}{
		{"pp", "**int", "pointer to pointer"},
		{"grid", "[2][2]float", "multidimensional array"},
		{"anon", "struct{x int}", "anonymous struct"},
	}

	for _, tt := range tests {
		t.Run(tt.varName, func(t *testing.T) {
			sink := &recordingSink{}
			ctx := NewContext(nil, sink)
			et, err := Create(ctx, varOf(t, pkg, tt.varName))
			assert.Nil(t, et)
			require.ErrorIs(t, err, ErrNotExportable)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Equal(t, []string{tt.wantSink}, sink.names)
		})
	}
}

func TestCreateRecord(t *testing.T) {
	pkg := checkSource(t, `
package p

type Sprite struct {
	color uchar3
	pos   float2
	next  *Sprite
	mask  [3]uchar
}

var s Sprite
var t Sprite
`)
	ctx := NewContext(nil, nil)

	et, err := Create(ctx, varOf(t, pkg, "s"))
	require.NoError(t, err)
	r, ok := et.(*Record)
	require.True(t, ok)

	assert.Equal(t, "Sprite", r.Name())
	require.Equal(t, 4, r.NumFields())

	wantFields := []struct {
		name   string
		offset int64
		class  Class
	}{
		{"color", 0, ClassVector},
		{"pos", 8, ClassVector},
		{"next", 16, ClassPointer},
		{"mask", 20, ClassConstantArray},
	}
	for i, want := range wantFields {
		f := r.Field(i)
		assert.Equal(t, want.name, f.Name)
		assert.Equal(t, want.offset, f.Offset, want.name)
		assert.Equal(t, want.class, f.Type.Class(), want.name)
	}
	assert.Equal(t, int64(24), r.Size())
	assert.Equal(t, int64(8), r.Align())

	// The self pointer refers to the same record.
	next := r.Field(2).Type.(*PointerType)
	assert.Same(t, r, next.Pointee())

	// A second export returns the cached record.
	again, err := Create(ctx, varOf(t, pkg, "t"))
	require.NoError(t, err)
	assert.Same(t, r, again)
	assert.Len(t, ctx.Records(), 1)
}

func TestCreateRecordFieldFailure(t *testing.T) {
	pkg := checkSource(t, `
package p

type Bad struct {
	ok   int
	anon struct { v float }
}

var b Bad
`)
	sink := &recordingSink{}
	ctx := NewContext(nil, sink)

	_, err := Create(ctx, varOf(t, pkg, "b"))
	require.ErrorIs(t, err, ErrNotExportable)
	assert.Contains(t, err.Error(), "field Bad.anon")
	assert.Len(t, sink.names, 1)

	_, ok := ctx.LookupRecord("Bad")
	assert.False(t, ok, "failed record must not stay cached")
	assert.Empty(t, ctx.Records())
}

func TestCreateRecordFailureDropsDependents(t *testing.T) {
	pkg := checkSource(t, `
package p

type A struct {
	b   B
	bad struct { x int }
}

type B struct {
	a *A
}

var a A
var b B
`)
	sink := &recordingSink{}
	ctx := NewContext(nil, sink)

	_, err := Create(ctx, varOf(t, pkg, "a"))
	require.ErrorIs(t, err, ErrNotExportable)

	// B was completed while A was still being exported and points at it.
	_, ok := ctx.LookupRecord("B")
	assert.False(t, ok, "record depending on a failed record must not stay cached")
	assert.Empty(t, ctx.Records())

	_, err = Create(ctx, varOf(t, pkg, "b"))
	require.ErrorIs(t, err, ErrNotExportable)
	assert.Contains(t, err.Error(), "field B.a")
	assert.Len(t, sink.names, 2)
	assert.Empty(t, ctx.Records())
}

type countingResolver struct {
	seen []string
}

func (r *countingResolver) Resolve(ctx *Context, t types.Type) (Type, error) {
	r.seen = append(r.seen, t.String())
	return Create(ctx, t)
}

func TestNestedPositionsUseResolver(t *testing.T) {
	pkg := checkSource(t, `
package p

type Pair struct {
	a uchar4
	b *int
}

var pairs [2]Pair
`)
	ctx := NewContext(nil, nil)
	res := &countingResolver{}
	ctx.SetResolver(res)

	_, err := Create(ctx, varOf(t, pkg, "pairs"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Pair", "uchar4", "*int", "int"}, res.seen)
}

func TestDescribeAndFprint(t *testing.T) {
	pkg := checkSource(t, `
package p

type Node struct {
	value int
	next  *Node
}

var n Node
`)
	ctx := NewContext(nil, nil)
	et, err := Create(ctx, varOf(t, pkg, "n"))
	require.NoError(t, err)

	d := Describe(et)
	assert.Equal(t, "Node", d.Name)
	assert.Equal(t, "Record", d.Class)
	require.Len(t, d.Fields, 2)
	assert.Equal(t, "Primitive", d.Fields[0].Type.Class)
	assert.Equal(t, "Signed32", d.Fields[0].Type.DataKind)

	next := d.Fields[1].Type
	require.NotNil(t, next.Elem)
	assert.Equal(t, "*Node", next.Name)
	assert.Equal(t, "Node", next.Elem.Name)
	assert.Empty(t, next.Elem.Fields, "recursive record is described by name")

	var buf bytes.Buffer
	Fprint(&buf, et)
	want := `Record Node (size=8 align=4)
  value @0:
    Primitive int (kind=Signed32 size=4 align=4)
  next @4:
    Pointer *Node (size=4 align=4)
      Record Node (size=8 align=4)
`
	assert.Equal(t, want, buf.String())
}

func TestDescribeNormalizedVector(t *testing.T) {
	v := NewVector("rs_pixel_rgba", Unsigned8, 4, true)
	d := Describe(v)
	assert.Equal(t, Description{
		Name:       "rs_pixel_rgba",
		Class:      "Vector",
		DataKind:   "Unsigned8",
		Normalized: true,
		Lanes:      4,
		Size:       4,
		Align:      4,
	}, d)

	var buf bytes.Buffer
	FprintDescription(&buf, &d)
	assert.Equal(t, "Vector rs_pixel_rgba (kind=Unsigned8 lanes=4 normalized size=4 align=4)\n", buf.String())
}
