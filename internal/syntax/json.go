package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	switch n := node.(type) {
	case nil:
		return nil

	case *File:
		decls := make([]interface{}, len(n.Decls))
		for i, d := range n.Decls {
			decls[i] = toJSON(d)
		}
		m := map[string]interface{}{
			"type":  "File",
			"pos":   n.pos.String(),
			"decls": decls,
		}
		if n.PkgName != nil {
			m["package"] = n.PkgName.Value
		}
		return m

	case *TypeDecl:
		return map[string]interface{}{
			"type":    "TypeDecl",
			"pos":     n.pos.String(),
			"name":    n.Name.Value,
			"alias":   n.Alias,
			"typedef": toJSON(n.Type),
		}

	case *VarDecl:
		return map[string]interface{}{
			"type":    "VarDecl",
			"pos":     n.pos.String(),
			"name":    n.Name.Value,
			"vartype": toJSON(n.Type),
		}

	case *Field:
		return map[string]interface{}{
			"type":      "Field",
			"pos":       n.pos.String(),
			"name":      n.Name.Value,
			"fieldtype": toJSON(n.Type),
		}

	case *Name:
		return map[string]interface{}{
			"type":  "Name",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *BasicLit:
		return map[string]interface{}{
			"type":  "BasicLit",
			"pos":   n.pos.String(),
			"kind":  n.Kind.String(),
			"value": n.Value,
		}

	case *PointerType:
		return map[string]interface{}{
			"type": "PointerType",
			"pos":  n.pos.String(),
			"base": toJSON(n.Base),
		}

	case *ArrayType:
		return map[string]interface{}{
			"type": "ArrayType",
			"pos":  n.pos.String(),
			"len":  litJSON(n.Len),
			"elem": toJSON(n.Elem),
		}

	case *VectorType:
		return map[string]interface{}{
			"type":  "VectorType",
			"pos":   n.pos.String(),
			"lanes": litJSON(n.Len),
			"elem":  toJSON(n.Elem),
		}

	case *StructType:
		fields := make([]interface{}, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = toJSON(f)
		}
		return map[string]interface{}{
			"type":   "StructType",
			"pos":    n.pos.String(),
			"fields": fields,
		}
	}
	return nil
}

func litJSON(lit *BasicLit) interface{} {
	if lit == nil {
		return nil
	}
	return toJSON(lit)
}
