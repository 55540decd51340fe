package types2

import (
	"github.com/you-not-fish/rsexport/internal/syntax"
	"github.com/you-not-fish/rsexport/internal/types"
)

// Config specifies the configuration for type checking.
type Config struct {
	// Error is called for each type error.
	// If nil, errors are silently ignored.
	Error ErrorHandler

	// Sizes provides type size and alignment information.
	// If nil, DefaultSizes is used.
	Sizes *types.Sizes
}

// Info holds the results of type checking.
type Info struct {
	// Types maps type expressions to the types they denote.
	Types map[syntax.Expr]types.Type

	// Defs maps defining identifiers to their declared objects.
	// For variables this maps the Name to the Var, for type
	// declarations the Name to the TypeName and for struct fields
	// the field Name to the field Var.
	Defs map[*syntax.Name]types.Object

	// Uses maps referencing identifiers to their referenced objects.
	Uses map[*syntax.Name]types.Object
}

// TypeOf returns the type denoted by the type expression e, or nil.
func (info *Info) TypeOf(e syntax.Expr) types.Type {
	if info == nil {
		return nil
	}
	return info.Types[e]
}

// Check type-checks a parsed declaration file.
// It returns the package for the file and the first error encountered, if any.
// The package is returned even when errors were reported.
func Check(filename string, file *syntax.File, conf *Config, info *Info) (*types.Package, error) {
	if conf == nil {
		conf = &Config{}
	}
	if conf.Sizes == nil {
		conf.Sizes = types.DefaultSizes
	}

	// Initialize info maps if not provided
	if info != nil {
		if info.Types == nil {
			info.Types = make(map[syntax.Expr]types.Type)
		}
		if info.Defs == nil {
			info.Defs = make(map[*syntax.Name]types.Object)
		}
		if info.Uses == nil {
			info.Uses = make(map[*syntax.Name]types.Object)
		}
	}

	c := &Checker{
		conf:     conf,
		info:     info,
		objMap:   make(map[*types.TypeName]*declInfo),
		varDecls: make(map[*syntax.VarDecl]*types.Var),
	}

	c.checkFile(file)
	c.pkg.SetPath(filename)

	if c.errors > 0 {
		return c.pkg, c.first
	}
	return c.pkg, nil
}
