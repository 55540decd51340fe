package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 2 classes of nodes: Expressions (names and type expressions) and
// Declarations. All nodes implement the Node interface.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
	aNode()   // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Decl is the interface for all declaration nodes.
type Decl interface {
	Node
	aDecl()
}

// ----------------------------------------------------------------------------
// Base node types

type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

type expr struct{ node }

func (*expr) aExpr() {}

type decl struct{ node }

func (*decl) aDecl() {}

// ----------------------------------------------------------------------------
// Files and Declarations

// File represents a complete declaration file.
type File struct {
	node
	PkgName *Name  // package name
	Decls   []Decl // top-level declarations
}

// TypeDecl represents a type declaration.
// type Name Type (record definition) or type Name = Type (typedef)
type TypeDecl struct {
	decl
	Name  *Name // type name
	Alias bool  // true for a typedef (type T = U)
	Type  Expr  // the type expression
}

// VarDecl represents a variable declaration: var Name Type
type VarDecl struct {
	decl
	Name *Name // variable name
	Type Expr  // declared type
}

// Field represents a named field in a struct.
type Field struct {
	node
	Name *Name // field name
	Type Expr  // field type
}

// ----------------------------------------------------------------------------
// Expressions

// Name represents an identifier.
type Name struct {
	expr
	Value string
}

// BasicLit represents an integer literal.
type BasicLit struct {
	expr
	Value string  // literal text
	Kind  LitKind // IntLit
}

// ----------------------------------------------------------------------------
// Type Expressions

// ArrayType represents an array type: [Len]Elem
type ArrayType struct {
	expr
	Len  *BasicLit // length literal
	Elem Expr      // element type
}

// VectorType represents an extended vector type: vector[Len]Elem
type VectorType struct {
	expr
	Len  *BasicLit // lane count literal
	Elem Expr      // lane type
}

// PointerType represents a pointer type: *Base
type PointerType struct {
	expr
	Base Expr
}

// StructType represents a struct type: struct { Fields... }
type StructType struct {
	expr
	Fields []*Field
}
