package types2

import (
	"github.com/you-not-fish/rsexport/internal/syntax"
	"github.com/you-not-fish/rsexport/internal/types"
)

// collectDecls collects all top-level declarations and creates
// placeholder objects for them in the package scope.
func (c *Checker) collectDecls(decls []syntax.Decl) {
	for _, d := range decls {
		switch decl := d.(type) {
		case *syntax.TypeDecl:
			c.collectTypeDecl(decl)
		case *syntax.VarDecl:
			c.collectVarDecl(decl)
		}
	}
}

// collectTypeDecl collects a type declaration.
// The type is created when the declaration is resolved in objDecl.
func (c *Checker) collectTypeDecl(decl *syntax.TypeDecl) {
	obj := types.NewTypeName(decl.Name.Pos(), decl.Name.Value, nil)
	if c.declare(decl.Name, obj) {
		c.objMap[obj] = &declInfo{decl: decl}
	}
}

// collectVarDecl collects a variable declaration.
// The type is resolved in checkVarDecl.
func (c *Checker) collectVarDecl(decl *syntax.VarDecl) {
	obj := types.NewVar(decl.Name.Pos(), decl.Name.Value, nil)
	if c.declare(decl.Name, obj) {
		c.varDecls[decl] = obj
	}
}

// resolve resolves a name to an object.
// Reports an error if the name is undefined.
func (c *Checker) resolve(name *syntax.Name) types.Object {
	obj := c.lookup(name.Value)
	if obj == nil {
		c.errorf(name.Pos(), "undefined: %s", name.Value)
		return nil
	}
	c.recordUse(name, obj)
	return obj
}
