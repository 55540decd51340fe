package export

import (
	"fmt"
	"io"
	"strings"
)

// Description is a serializable view of an exported type.
type Description struct {
	Name       string             `json:"name" yaml:"name"`
	Class      string             `json:"class" yaml:"class"`
	DataKind   string             `json:"dataKind,omitempty" yaml:"dataKind,omitempty"`
	Normalized bool               `json:"normalized,omitempty" yaml:"normalized,omitempty"`
	Lanes      int                `json:"lanes,omitempty" yaml:"lanes,omitempty"`
	Length     int64              `json:"length,omitempty" yaml:"length,omitempty"`
	Size       int64              `json:"size" yaml:"size"`
	Align      int64              `json:"align" yaml:"align"`
	Elem       *Description       `json:"elem,omitempty" yaml:"elem,omitempty"`
	Fields     []FieldDescription `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// FieldDescription describes one record field.
type FieldDescription struct {
	Name   string      `json:"name" yaml:"name"`
	Offset int64       `json:"offset" yaml:"offset"`
	Type   Description `json:"type" yaml:"type"`
}

// Describe returns the description of t.
// A record reached again through its own fields is described by name only.
func Describe(t Type) Description {
	return describe(t, make(map[*Record]bool))
}

func describe(t Type, active map[*Record]bool) Description {
	d := Description{
		Name:  t.Name(),
		Class: t.Class().String(),
		Size:  t.Size(),
		Align: t.Align(),
	}

	switch t := t.(type) {
	case *Primitive:
		d.DataKind = t.DataKind().String()
		d.Normalized = t.Normalized()

	case *Vector:
		d.DataKind = t.DataKind().String()
		d.Lanes = t.Lanes()
		d.Normalized = t.Normalized()

	case *PointerType:
		elem := describe(t.Pointee(), active)
		d.Elem = &elem

	case *ConstantArray:
		elem := describe(t.Elem(), active)
		d.Elem = &elem
		d.Length = t.Len()

	case *Record:
		if active[t] {
			break
		}
		active[t] = true
		for _, f := range t.Fields() {
			d.Fields = append(d.Fields, FieldDescription{
				Name:   f.Name,
				Offset: f.Offset,
				Type:   describe(f.Type, active),
			})
		}
		delete(active, t)
	}

	return d
}

// Fprint writes an indented text rendering of t to w.
func Fprint(w io.Writer, t Type) {
	d := Describe(t)
	fprint(w, &d, 0)
}

// FprintDescription writes an indented text rendering of d to w.
func FprintDescription(w io.Writer, d *Description) {
	fprint(w, d, 0)
}

func fprint(w io.Writer, d *Description, indent int) {
	fmt.Fprintf(w, "%s%s %s", strings.Repeat("  ", indent), d.Class, d.Name)

	var attrs []string
	if d.DataKind != "" {
		attrs = append(attrs, "kind="+d.DataKind)
	}
	if d.Lanes > 0 {
		attrs = append(attrs, fmt.Sprintf("lanes=%d", d.Lanes))
	}
	if d.Length > 0 {
		attrs = append(attrs, fmt.Sprintf("len=%d", d.Length))
	}
	if d.Normalized {
		attrs = append(attrs, "normalized")
	}
	attrs = append(attrs, fmt.Sprintf("size=%d", d.Size), fmt.Sprintf("align=%d", d.Align))
	fmt.Fprintf(w, " (%s)\n", strings.Join(attrs, " "))

	if d.Elem != nil {
		fprint(w, d.Elem, indent+1)
	}
	for i := range d.Fields {
		f := &d.Fields[i]
		fmt.Fprintf(w, "%s%s @%d:\n", strings.Repeat("  ", indent+1), f.Name, f.Offset)
		fprint(w, &f.Type, indent+2)
	}
}
