package types

// Package represents one checked declaration file.
type Package struct {
	name  string
	path  string
	scope *Scope
}

// NewPackage creates a new package with the given name.
func NewPackage(name string) *Package {
	return &Package{
		name:  name,
		scope: NewScope(Universe, NoPos, NoPos, "package "+name),
	}
}

// Name returns the package name.
func (p *Package) Name() string {
	return p.name
}

// Path returns the file the package was checked from.
func (p *Package) Path() string {
	return p.path
}

// SetPath sets the file the package was checked from.
func (p *Package) SetPath(path string) {
	p.path = path
}

// Scope returns the package-level scope.
func (p *Package) Scope() *Scope {
	return p.scope
}

// Vars returns the package-level variables in declaration order.
func (p *Package) Vars() []*Var {
	var vars []*Var
	for _, obj := range p.scope.Objects() {
		if v, ok := obj.(*Var); ok {
			vars = append(vars, v)
		}
	}
	return vars
}

// String returns the package name.
func (p *Package) String() string {
	return p.name
}
