// Package diag collects the diagnostics of an export pass.
package diag

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/you-not-fish/rsexport/internal/syntax"
)

// Severity classifies a diagnostic.
type Severity int

const (
	Warning Severity = iota
	Error
)

// String returns the lower-case severity name.
func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Diagnostic is one reported problem.
type Diagnostic struct {
	Pos      syntax.Pos `json:"-" yaml:"-"`
	Severity Severity   `json:"severity" yaml:"severity"`
	Msg      string     `json:"message" yaml:"message"`
}

// String formats the diagnostic as "pos: severity: msg".
// The position is omitted when unknown.
func (d Diagnostic) String() string {
	if !d.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", d.Severity, d.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", d.Pos, d.Severity, d.Msg)
}

// List collects diagnostics in report order.
// It is the sink of element and export reports; those are attributed to
// the position set with SetPos.
type List struct {
	items []Diagnostic
	pos   syntax.Pos
}

// SetPos sets the position attributed to sink reports, normally the
// declaration being exported. The export constructor moves it to each
// record field while the field is exported.
func (l *List) SetPos(pos syntax.Pos) {
	l.pos = pos
}

// Pos returns the position attributed to sink reports.
func (l *List) Pos() syntax.Pos {
	return l.pos
}

// Errorf reports an error at pos.
func (l *List) Errorf(pos syntax.Pos, format string, args ...interface{}) {
	l.add(Diagnostic{Pos: pos, Severity: Error, Msg: fmt.Sprintf(format, args...)})
}

// Warnf reports a warning at pos.
func (l *List) Warnf(pos syntax.Pos, format string, args ...interface{}) {
	l.add(Diagnostic{Pos: pos, Severity: Warning, Msg: fmt.Sprintf(format, args...)})
}

// NotExportable reports that the named type cannot be exported, at the
// current position.
func (l *List) NotExportable(typeName string) {
	l.Errorf(l.pos, "type '%s' is not exportable", typeName)
}

func (l *List) add(d Diagnostic) {
	l.items = append(l.items, d)

	Logger().Debug(d.Msg,
		zap.String("severity", d.Severity.String()),
		zap.String("pos", d.Pos.String()))
}

// Items returns the diagnostics in report order.
func (l *List) Items() []Diagnostic {
	return l.items
}

// Len returns the number of diagnostics.
func (l *List) Len() int {
	return len(l.items)
}

// Errors returns the number of errors.
func (l *List) Errors() int {
	return l.count(Error)
}

// Warnings returns the number of warnings.
func (l *List) Warnings() int {
	return l.count(Warning)
}

func (l *List) count(s Severity) int {
	n := 0
	for _, d := range l.items {
		if d.Severity == s {
			n++
		}
	}
	return n
}

// Fprint writes one line per diagnostic to w.
func (l *List) Fprint(w io.Writer) {
	for _, d := range l.items {
		fmt.Fprintln(w, d)
	}
}
