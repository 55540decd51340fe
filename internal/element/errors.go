package element

import (
	"fmt"

	"github.com/you-not-fish/rsexport/internal/export"
)

// ErrNotExportable is returned when a type matched an element name but has
// no element form. It is the same error the export constructor reports.
var ErrNotExportable = export.ErrNotExportable

// InvariantError reports that a registered descriptor disagrees with the
// shape of the type declared under its name. It means the element table
// and the type system are out of sync; Classify panics with it.
type InvariantError struct {
	Element string // element name
	Type    string // canonical type
	Msg     string
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("element %s: %s (type %s)", e.Element, e.Msg, e.Type)
}

func invariantf(d Descriptor, t fmt.Stringer, format string, args ...interface{}) *InvariantError {
	return &InvariantError{
		Element: d.Name(),
		Type:    t.String(),
		Msg:     fmt.Sprintf(format, args...),
	}
}

// Recover converts an InvariantError panic into an error stored in *errp.
// Other panics are propagated. Use it as a deferred call:
//
//	defer element.Recover(&err)
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if ie, ok := r.(*InvariantError); ok {
		*errp = ie
		return
	}
	panic(r)
}
