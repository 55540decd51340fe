package types2

import (
	"strings"
	"testing"

	"github.com/you-not-fish/rsexport/internal/syntax"
	"github.com/you-not-fish/rsexport/internal/types"
)

// parseAndCheck parses source code and runs the type checker.
// Returns the package, the info and any errors.
func parseAndCheck(src string) (*types.Package, *Info, []string) {
	r := strings.NewReader(src)
	var parseErrs []string
	parseErrh := func(pos syntax.Pos, msg string) {
		parseErrs = append(parseErrs, pos.String()+": "+msg)
	}

	p := syntax.NewParser("test.rsd", r, parseErrh)
	file := p.Parse()

	if len(parseErrs) > 0 {
		return nil, nil, parseErrs
	}

	var typeErrs []string
	typeErrh := func(pos syntax.Pos, msg string) {
		typeErrs = append(typeErrs, pos.String()+": "+msg)
	}

	conf := &Config{
		Error: typeErrh,
		Sizes: types.DefaultSizes,
	}
	info := &Info{}

	pkg, _ := Check("test.rsd", file, conf, info)
	return pkg, info, typeErrs
}

// mustCheck checks that the source code type-checks without errors.
func mustCheck(t *testing.T, src string) (*types.Package, *Info) {
	t.Helper()
	pkg, info, errs := parseAndCheck(src)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors:\n%s", strings.Join(errs, "\n"))
	}
	return pkg, info
}

// expectErrors checks that type-checking produces expected error substrings.
func expectErrors(t *testing.T, src string, expectedMsgs ...string) {
	t.Helper()
	_, _, errs := parseAndCheck(src)
	if len(errs) == 0 {
		t.Errorf("expected errors containing %v, got none", expectedMsgs)
		return
	}
	errText := strings.Join(errs, "\n")
	for _, msg := range expectedMsgs {
		if !strings.Contains(errText, msg) {
			t.Errorf("expected error containing %q, got:\n%s", msg, errText)
		}
	}
}

func varType(t *testing.T, pkg *types.Package, name string) types.Type {
	t.Helper()
	v, ok := pkg.Scope().Lookup(name).(*types.Var)
	if !ok {
		t.Fatalf("%s is not a variable", name)
	}
	if v.Type() == nil {
		t.Fatalf("%s has no type", name)
	}
	return v.Type()
}

func TestScalarAndVectorVars(t *testing.T) {
	pkg, _ := mustCheck(t, `
package p

var a uchar
var b float4
var c vector[3]short
`)
	if got := varType(t, pkg, "a"); got != types.Typ[types.UChar] {
		t.Errorf("a: got %s, want uchar", got)
	}

	b := varType(t, pkg, "b")
	alias, ok := b.(*types.Alias)
	if !ok || alias.Name() != "float4" {
		t.Fatalf("b: got %T %s, want alias float4", b, b)
	}
	if vec, ok := types.Unalias(b).(*types.Vector); !ok || vec.Lanes() != 4 || vec.Elem().Kind() != types.Float {
		t.Errorf("b: canonical type %s, want vector[4]float", types.Unalias(b))
	}

	c, ok := varType(t, pkg, "c").(*types.Vector)
	if !ok || c.Lanes() != 3 || c.Elem().Kind() != types.Short {
		t.Errorf("c: got %s, want vector[3]short", varType(t, pkg, "c"))
	}
}

func TestAliasChainPreserved(t *testing.T) {
	pkg, _ := mustCheck(t, `
package p

type rs_pixel_rgb = uchar3
type my_rgb = rs_pixel_rgb
type tint = my_rgb

var x tint
`)
	var chain []string
	for typ := varType(t, pkg, "x"); ; {
		a, ok := typ.(*types.Alias)
		if !ok {
			break
		}
		chain = append(chain, a.Name())
		typ = a.Rhs()
	}
	want := "tint,my_rgb,rs_pixel_rgb,uchar3"
	if got := strings.Join(chain, ","); got != want {
		t.Errorf("alias chain = %s, want %s", got, want)
	}
}

func TestForwardReferences(t *testing.T) {
	pkg, _ := mustCheck(t, `
package p

var s Sprite
type Sprite struct {
	color color_t
}
type color_t = rgb
type rgb = uchar3
`)
	named, ok := varType(t, pkg, "s").(*types.Named)
	if !ok {
		t.Fatalf("s: got %T, want *types.Named", varType(t, pkg, "s"))
	}
	st, ok := named.Underlying().(*types.Struct)
	if !ok || st.NumFields() != 1 {
		t.Fatalf("Sprite underlying = %v", named.Underlying())
	}
	if st.Size() != 4 {
		t.Errorf("Sprite size = %d, want 4", st.Size())
	}
}

func TestSelfReferenceThroughPointer(t *testing.T) {
	pkg, _ := mustCheck(t, `
package p

type Node struct {
	value int
	next  *Node
	kids  [2]*Node
}

type link = *Node
type Other struct { l link }

var n Node
`)
	named := varType(t, pkg, "n").(*types.Named)
	st := named.Underlying().(*types.Struct)
	if st.NumFields() != 3 {
		t.Fatalf("got %d fields, want 3", st.NumFields())
	}
	ptr, ok := st.Field(1).Type().(*types.Pointer)
	if !ok || ptr.Elem() != types.Type(named) {
		t.Errorf("next: got %s, want *Node", st.Field(1).Type())
	}
	if st.Size() != 16 {
		t.Errorf("Node size = %d, want 16", st.Size())
	}
}

func TestRecursionThroughPointerAnyOrder(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		sizes map[string]int64
	}{
		{
			"record_pointer_first",
			"package p\ntype B struct { a *A }\ntype A struct { b B }\n",
			map[string]int64{"A": 4, "B": 4},
		},
		{
			"record_value_first",
			"package p\ntype A struct { b B }\ntype B struct { a *A }\n",
			map[string]int64{"A": 4, "B": 4},
		},
		{
			"alias_first",
			"package p\ntype P = *S\ntype S struct { p P; x double }\n",
			map[string]int64{"S": 16},
		},
		{
			"record_first",
			"package p\ntype S struct { p P; x double }\ntype P = *S\n",
			map[string]int64{"S": 16},
		},
		{
			"embedded_before_declared",
			"package p\ntype Outer struct { c uchar; in Inner }\ntype Inner struct { up *Outer; v float4 }\n",
			map[string]int64{"Inner": 32, "Outer": 48},
		},
		{
			"pointer_to_anonymous_struct",
			"package p\ntype A struct { p *struct { a A } }\n",
			map[string]int64{"A": 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg, _ := mustCheck(t, tt.src)
			for name, want := range tt.sizes {
				tn, ok := pkg.Scope().Lookup(name).(*types.TypeName)
				if !ok {
					t.Fatalf("%s is not a type", name)
				}
				if got := types.DefaultSizes.Sizeof(tn.Type()); got != want {
					t.Errorf("sizeof(%s) = %d, want %d", name, got, want)
				}
			}
		})
	}
}

func TestInfoRecords(t *testing.T) {
	src := `
package p

type rgb = uchar3
var x rgb
`
	r := strings.NewReader(src)
	file := syntax.NewParser("test.rsd", r, nil).Parse()
	info := &Info{}
	if _, err := Check("test.rsd", file, nil, info); err != nil {
		t.Fatalf("Check: %v", err)
	}

	vd := file.Decls[1].(*syntax.VarDecl)
	if _, ok := info.Defs[vd.Name].(*types.Var); !ok {
		t.Errorf("Defs[x] = %v, want *types.Var", info.Defs[vd.Name])
	}
	use := vd.Type.(*syntax.Name)
	tn, ok := info.Uses[use].(*types.TypeName)
	if !ok || tn.Name() != "rgb" {
		t.Errorf("Uses[rgb] = %v, want type name rgb", info.Uses[use])
	}
	if got := info.TypeOf(vd.Type); got != tn.Type() {
		t.Errorf("TypeOf(rgb) = %v, want %v", got, tn.Type())
	}
}

func TestPackagePath(t *testing.T) {
	pkg, _ := mustCheck(t, "package pixels\n")
	if pkg.Name() != "pixels" || pkg.Path() != "test.rsd" {
		t.Errorf("package = %s (%s), want pixels (test.rsd)", pkg.Name(), pkg.Path())
	}
}

func TestCheckErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"undefined",
			"package p\nvar x missing\n",
			"2:7: undefined: missing",
		},
		{
			"not_a_type",
			"package p\nvar x int\nvar y x\n",
			"3:7: x is not a type",
		},
		{
			"redeclared",
			"package p\ntype T = int\nvar T float\n",
			"3:5: T redeclared in this block",
		},
		{
			"record_not_struct",
			"package p\ntype T int\n",
			"type T must be a struct",
		},
		{
			"direct_recursion",
			"package p\ntype S struct { s S }\n",
			"invalid recursive type S",
		},
		{
			"mutual_recursion",
			"package p\ntype A struct { b B }\ntype B struct { a A }\n",
			"invalid recursive type A",
		},
		{
			"alias_cycle_through_pointer",
			"package p\ntype P = *P\n",
			"invalid recursive type P",
		},
		{
			"mutual_recursion_in_field_order",
			"package p\ntype B struct { a A }\ntype A struct { b *B; c B }\n",
			"invalid recursive type B",
		},
		{
			"alias_cycle",
			"package p\ntype A = B\ntype B = A\n",
			"invalid recursive type A",
		},
		{
			"duplicate_field",
			"package p\ntype S struct { a int; a float }\n",
			"duplicate field a",
		},
		{
			"lanes_too_few",
			"package p\nvar v vector[1]float\n",
			"invalid vector lane count 1 (must be 2 to 4)",
		},
		{
			"lanes_too_many",
			"package p\nvar v vector[8]uchar\n",
			"invalid vector lane count 8 (must be 2 to 4)",
		},
		{
			"bool_lanes",
			"package p\nvar v vector[2]bool\n",
			"invalid vector element type bool",
		},
		{
			"vector_of_vector",
			"package p\nvar v vector[2]float2\n",
			"invalid vector element type float2",
		},
		{
			"zero_array",
			"package p\nvar a [0]int\n",
			"array length must be positive",
		},
		{
			"huge_array",
			"package p\nvar a [0x100000000]int\n",
			"array length 4294967296 too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectErrors(t, tt.src, tt.want)
		})
	}
}

func TestVectorOfTypedefScalar(t *testing.T) {
	pkg, _ := mustCheck(t, `
package p

type byte = uchar
var v vector[4]byte
`)
	vec, ok := varType(t, pkg, "v").(*types.Vector)
	if !ok || vec.Elem() != types.Typ[types.UChar] {
		t.Errorf("v: got %s, want vector[4]uchar", varType(t, pkg, "v"))
	}
}

func TestFirstErrorReturned(t *testing.T) {
	file := syntax.NewParser("test.rsd", strings.NewReader("package p\nvar x nope\nvar y nada\n"), nil).Parse()
	var n int
	_, err := Check("test.rsd", file, &Config{Error: func(syntax.Pos, string) { n++ }}, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if n != 2 {
		t.Errorf("reported %d errors, want 2", n)
	}
	te, ok := err.(*TypeError)
	if !ok || te.Msg != "undefined: nope" {
		t.Errorf("first error = %v, want undefined: nope", err)
	}
}
