// Package errors holds the error helpers shared by the module,
// re-exported from github.com/pkg/errors and the standard library.
package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

// Errorf is re-exported from fmt
var Errorf = fmt.Errorf

// New is an alias to Errorf
var New = Errorf

// Wrapf annotates err with a formatted message. If err is nil it
// behaves like Errorf, so it never returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return Errorf(format, args...)
	}
	return errors.WithMessage(err, fmt.Sprintf(format, args...))
}

// WithStack is re-exported from github.com/pkg/errors
var WithStack = errors.WithStack

// Cause is re-exported from github.com/pkg/errors
var Cause = errors.Cause

// Is is re-exported from the standard library
var Is = stderrors.Is
