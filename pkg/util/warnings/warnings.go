// Package warnings marks errors that are the user's input rather than a
// bug, so they can be printed without a stack trace or debug-log hint.
package warnings

import (
	"fmt"

	"github.com/pkg/errors"
)

type warning struct {
	msg string
}

func (w warning) Error() string {
	return w.msg
}

// New returns a warning with a plain message.
func New(msg string) error {
	return warning{msg: msg}
}

// Newf returns a warning with a formatted message.
func Newf(format string, args ...interface{}) error {
	return warning{msg: fmt.Sprintf(format, args...)}
}

// Wrap turns err into a warning carrying err's message.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return warning{msg: err.Error()}
}

// IsWarning reports whether the root cause of err is a warning.
func IsWarning(err error) bool {
	_, ok := errors.Cause(err).(warning)
	return ok
}

// StripStackIfWarning returns the bare warning behind err, or err itself
// when it is not a warning.
func StripStackIfWarning(err error) error {
	if IsWarning(err) {
		return errors.Cause(err)
	}
	return err
}
