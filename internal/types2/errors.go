// Package types2 implements type checking for script header declaration files.
package types2

import (
	"fmt"

	"github.com/you-not-fish/rsexport/internal/syntax"
	"github.com/you-not-fish/rsexport/internal/types"
)

// TypeError represents a type checking error.
type TypeError struct {
	Pos syntax.Pos
	Msg string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// ErrorHandler is a function called for each type error.
type ErrorHandler func(pos syntax.Pos, msg string)

// errorf reports a type checking error at the given position.
func (c *Checker) errorf(pos syntax.Pos, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)

	if c.errors == 0 {
		c.first = &TypeError{Pos: pos, Msg: msg}
	}
	c.errors++

	if c.conf.Error != nil {
		c.conf.Error(pos, msg)
	}
}

// cycleError reports an invalid recursive type declaration.
func (c *Checker) cycleError(obj *types.TypeName) {
	c.errorf(obj.Pos(), "invalid recursive type %s", obj.Name())
}
