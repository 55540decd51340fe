package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// nested prints node one level deeper under a label.
func (p *printer) nested(label string, node Node) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(node)
	p.indent--
}

func (p *printer) print(node Node) {
	switch n := node.(type) {
	case nil:
		return

	case *File:
		p.printf("File %s\n", n.pos)
		p.indent++
		if n.PkgName != nil {
			p.printf("Package: %s\n", n.PkgName.Value)
		}
		for _, d := range n.Decls {
			p.print(d)
		}
		p.indent--

	case *TypeDecl:
		p.printf("TypeDecl %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		if n.Alias {
			p.printf("Alias: true\n")
		}
		p.nested("Type", n.Type)
		p.indent--

	case *VarDecl:
		p.printf("VarDecl %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		p.nested("Type", n.Type)
		p.indent--

	case *Field:
		p.printf("Field %s\n", n.Name.Value)
		p.indent++
		p.print(n.Type)
		p.indent--

	case *Name:
		p.printf("Name %q\n", n.Value)

	case *BasicLit:
		p.printf("BasicLit %s %s\n", n.Kind, n.Value)

	case *PointerType:
		p.printf("PointerType\n")
		p.indent++
		p.print(n.Base)
		p.indent--

	case *ArrayType:
		p.printf("ArrayType [%s]\n", litValue(n.Len))
		p.indent++
		p.print(n.Elem)
		p.indent--

	case *VectorType:
		p.printf("VectorType [%s]\n", litValue(n.Len))
		p.indent++
		p.print(n.Elem)
		p.indent--

	case *StructType:
		p.printf("StructType\n")
		p.indent++
		for _, f := range n.Fields {
			p.print(f)
		}
		p.indent--

	default:
		p.printf("<unknown %T>\n", n)
	}
}

func litValue(lit *BasicLit) string {
	if lit == nil {
		return "?"
	}
	return lit.Value
}
