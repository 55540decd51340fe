package types2

import (
	"github.com/you-not-fish/rsexport/internal/syntax"
	"github.com/you-not-fish/rsexport/internal/types"
)

// objDecl resolves the type declared by obj.
// It is a no-op for predeclared names and already resolved declarations.
func (c *Checker) objDecl(obj *types.TypeName) {
	d := c.objMap[obj]
	if d == nil || d.state != unresolved {
		return
	}
	d.state = resolving
	c.path = append(c.path, pathEntry{obj: obj, indirect: c.indirect})
	defer func() {
		c.path = c.path[:len(c.path)-1]
		d.state = resolved
	}()

	if d.decl.Alias {
		c.aliasDecl(obj, d.decl)
	} else {
		c.recordDecl(obj, d.decl)
	}
}

// aliasDecl resolves a typedef: type T = U.
// On error the alias is left without a right-hand side.
func (c *Checker) aliasDecl(obj *types.TypeName, decl *syntax.TypeDecl) {
	alias := types.NewAlias(obj, nil)
	if rhs := c.resolveType(decl.Type); rhs != nil {
		alias.SetRhs(rhs)
	}
}

// recordDecl resolves a record definition: type T struct { ... }.
// The Named type exists before its fields are resolved so that fields
// may point back at it.
func (c *Checker) recordDecl(obj *types.TypeName, decl *syntax.TypeDecl) {
	named := types.NewNamed(obj, nil)

	st, ok := decl.Type.(*syntax.StructType)
	if !ok {
		c.errorf(decl.Type.Pos(), "type %s must be a struct (use 'type %s = ...' for a typedef)",
			obj.Name(), obj.Name())
		return
	}

	if under := c.structType(st); under != nil {
		named.SetUnderlying(under)
		c.recordType(st, under)
	}
}

// validCycle reports whether a reference to tn, whose declaration is being
// resolved, closes a cycle of finite size: one that goes through a pointer
// and through a record declaration.
func (c *Checker) validCycle(tn *types.TypeName) bool {
	for i := len(c.path) - 1; i >= 0; i-- {
		if c.path[i].obj != tn {
			continue
		}
		if c.indirect <= c.path[i].indirect {
			return false
		}
		for _, e := range c.path[i:] {
			if _, isRecord := e.obj.Type().(*types.Named); isRecord {
				return true
			}
		}
		return false
	}
	return false
}

// checkVarDecl type-checks a top-level variable declaration.
func (c *Checker) checkVarDecl(decl *syntax.VarDecl) {
	v := c.varDecls[decl]
	if v == nil {
		return // redeclared; already reported in collectDecls
	}

	if decl.Type == nil {
		c.errorf(decl.Pos(), "missing type in variable declaration")
		return
	}

	if typ := c.resolveType(decl.Type); typ != nil {
		v.SetType(typ)
	}
}
