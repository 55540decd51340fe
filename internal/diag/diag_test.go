package diag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/you-not-fish/rsexport/internal/export"
	"github.com/you-not-fish/rsexport/internal/syntax"
	"github.com/you-not-fish/rsexport/internal/types"
	"github.com/you-not-fish/rsexport/internal/types2"
)

var _ export.PosSink = (*List)(nil)

func TestNotExportableUsesCurrentPos(t *testing.T) {
	var l List
	l.SetPos(syntax.NewPos("pixels.rsd", 4, 1))
	l.NotExportable("Record")

	if assert.Equal(t, 1, l.Len()) {
		d := l.Items()[0]
		assert.Equal(t, Error, d.Severity)
		assert.Equal(t, "type 'Record' is not exportable", d.Msg)
		assert.Equal(t, "pixels.rsd:4:1: error: type 'Record' is not exportable", d.String())
	}
}

func TestNestedFailureUsesFieldPos(t *testing.T) {
	src := `package p

type Inner struct {
	pp **float
}

type Outer struct {
	ok int
	in Inner
}

var o Outer
`
	file := syntax.NewParser("nested.rsd", strings.NewReader(src), nil).Parse()
	pkg, err := types2.Check("nested.rsd", file, nil, nil)
	if !assert.NoError(t, err) {
		return
	}
	o := pkg.Scope().Lookup("o").(*types.Var)

	var l List
	ctx := export.NewContext(nil, &l)
	l.SetPos(o.Pos())
	_, err = export.Create(ctx, o.Type())
	assert.ErrorIs(t, err, export.ErrNotExportable)

	if assert.Equal(t, 1, l.Len()) {
		assert.Equal(t, "nested.rsd:4:2: error: type '**float' is not exportable", l.Items()[0].String())
	}
	assert.Equal(t, o.Pos(), l.Pos(), "position restored after the record")
}

func TestCounts(t *testing.T) {
	var l List
	l.Warnf(syntax.Pos{}, "no variables to export")
	l.Errorf(syntax.NewPos("", 2, 3), "bad %s", "thing")
	l.NotExportable("float*")

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 2, l.Errors())
	assert.Equal(t, 1, l.Warnings())

	var buf bytes.Buffer
	l.Fprint(&buf)
	want := "warning: no variables to export\n" +
		"2:3: error: bad thing\n" +
		"error: type 'float*' is not exportable\n"
	assert.Equal(t, want, buf.String())
}

func TestDiagnosticsAreLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	defer SetLogger(prev)

	var l List
	l.Warnf(syntax.Pos{}, "w")
	l.NotExportable("T")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, zap.DebugLevel, entries[0].Level)
		assert.Equal(t, "warning", entries[0].ContextMap()["severity"])
		assert.Equal(t, "error", entries[1].ContextMap()["severity"])
		assert.Equal(t, "type 'T' is not exportable", entries[1].Message)
	}
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "warning", Warning.String())
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "Severity(7)", Severity(7).String())
}
