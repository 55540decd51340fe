package types2

import (
	"github.com/you-not-fish/rsexport/internal/syntax"
	"github.com/you-not-fish/rsexport/internal/types"
)

// declState tracks the resolution of a type declaration.
type declState int

const (
	unresolved declState = iota
	resolving
	resolved
)

// declInfo links a package-level type name to its declaration.
type declInfo struct {
	decl  *syntax.TypeDecl
	state declState
}

// pathEntry is a declaration on the resolution path and the pointer
// depth at which its resolution started.
type pathEntry struct {
	obj      *types.TypeName
	indirect int
}

// Checker is the type checker.
type Checker struct {
	conf *Config
	info *Info
	pkg  *types.Package

	scope *types.Scope // package scope

	// Type declarations are resolved lazily, on first use or in
	// declaration order, whichever comes first.
	objMap map[*types.TypeName]*declInfo

	// varDecls maps variable declarations to the objects collected for them.
	varDecls map[*syntax.VarDecl]*types.Var

	// path lists the declarations being resolved, outermost first.
	path []pathEntry

	// indirect counts the pointer types enclosing the type expression
	// being resolved, across nested declarations.
	indirect int

	// structs collects the struct types of the file. Their layouts are
	// computed once every declaration is resolved.
	structs []*types.Struct

	// Error tracking
	errors int        // error count
	first  *TypeError // first error
}

// checkFile type-checks a single file.
func (c *Checker) checkFile(file *syntax.File) {
	pkgName := "main"
	if file.PkgName != nil {
		pkgName = file.PkgName.Value
	}
	c.pkg = types.NewPackage(pkgName)
	c.scope = c.pkg.Scope()

	// Phase 1: Collect all top-level declarations
	c.collectDecls(file.Decls)

	// Phase 2: Resolve type declarations in source order.
	// Forward references are resolved on demand.
	for _, decl := range file.Decls {
		if td, ok := decl.(*syntax.TypeDecl); ok {
			if tn, ok := c.declaredTypeName(td.Name); ok {
				c.objDecl(tn)
			}
		}
	}

	// Phase 3: Check variable declarations
	for _, decl := range file.Decls {
		if vd, ok := decl.(*syntax.VarDecl); ok {
			c.checkVarDecl(vd)
		}
	}

	// Phase 4: Lay out structs. Records may be embedded by value before
	// their own declaration finished resolving.
	for _, st := range c.structs {
		c.conf.Sizes.ComputeLayout(st)
	}
}

// declaredTypeName returns the type name declared by name, if the declaration
// was collected without error.
func (c *Checker) declaredTypeName(name *syntax.Name) (*types.TypeName, bool) {
	tn, ok := c.scope.Lookup(name.Value).(*types.TypeName)
	if !ok {
		return nil, false
	}
	d := c.objMap[tn]
	return tn, d != nil && d.decl.Name == name
}

// lookup looks up a name in the package scope and the Universe.
func (c *Checker) lookup(name string) types.Object {
	obj, _ := c.scope.LookupParent(name)
	return obj
}

// declare declares an object in the package scope.
// Reports an error and returns false if the name is already declared.
func (c *Checker) declare(name *syntax.Name, obj types.Object) bool {
	if existing := c.scope.Insert(obj); existing != nil {
		c.errorf(name.Pos(), "%s redeclared in this block", name.Value)
		return false
	}
	c.recordDef(name, obj)
	return true
}

// recordDef records the object defined by name.
func (c *Checker) recordDef(name *syntax.Name, obj types.Object) {
	if c.info != nil {
		c.info.Defs[name] = obj
	}
}

// recordUse records a use of an object.
func (c *Checker) recordUse(name *syntax.Name, obj types.Object) {
	if c.info != nil {
		c.info.Uses[name] = obj
	}
}

// recordType records the type denoted by a type expression.
func (c *Checker) recordType(e syntax.Expr, typ types.Type) {
	if c.info != nil && typ != nil {
		c.info.Types[e] = typ
	}
}
