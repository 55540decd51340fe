package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
func Walk(node Node, v Visitor) {
	if isNil(node) || !v(node) {
		return
	}

	switch n := node.(type) {
	case *File:
		Walk(n.PkgName, v)
		for _, d := range n.Decls {
			Walk(d, v)
		}
	case *TypeDecl:
		Walk(n.Name, v)
		Walk(n.Type, v)
	case *VarDecl:
		Walk(n.Name, v)
		Walk(n.Type, v)
	case *Field:
		Walk(n.Name, v)
		Walk(n.Type, v)
	case *PointerType:
		Walk(n.Base, v)
	case *ArrayType:
		Walk(n.Len, v)
		Walk(n.Elem, v)
	case *VectorType:
		Walk(n.Len, v)
		Walk(n.Elem, v)
	case *StructType:
		for _, f := range n.Fields {
			Walk(f, v)
		}
	}
}

// isNil reports whether node is nil or a typed nil pointer.
func isNil(node Node) bool {
	switch n := node.(type) {
	case nil:
		return true
	case *Name:
		return n == nil
	case *BasicLit:
		return n == nil
	case *Field:
		return n == nil
	}
	return false
}
