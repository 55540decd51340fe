package types

// Class discriminates types by their outermost constructor.
type Class int

const (
	ClassOther   Class = iota // struct, record, array or invalid
	ClassBuiltin              // *Basic
	ClassPointer              // *Pointer
	ClassVector               // *Vector
	ClassAlias                // *Alias
)

var classNames = [...]string{
	ClassOther:   "Other",
	ClassBuiltin: "Builtin",
	ClassPointer: "Pointer",
	ClassVector:  "ExtVector",
	ClassAlias:   "Typedef",
}

// String returns the class name.
func (c Class) String() string {
	if c >= 0 && int(c) < len(classNames) {
		return classNames[c]
	}
	return "Class(?)"
}

// ClassOf returns the class of t without looking through aliases.
func ClassOf(t Type) Class {
	switch t.(type) {
	case *Basic:
		return ClassBuiltin
	case *Pointer:
		return ClassPointer
	case *Vector:
		return ClassVector
	case *Alias:
		return ClassAlias
	}
	return ClassOther
}
