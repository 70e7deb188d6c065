package transcript

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError reports a transcript line that matches no instruction form.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// NavigationError reports a cd that has nowhere to go: above the root,
// into a missing child, or into a file.
type NavigationError struct {
	Line   int
	From   string
	Target string
	Reason string
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("line %d: cd %s from %s: %s", e.Line, e.Target, e.From, e.Reason)
}

// ConflictError reports a listing entry that would change the kind of an
// existing child. It is only raised under PolicyStrict.
type ConflictError struct {
	Line     int
	Path     string
	Existing string
	Declared string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("line %d: %s is already a %s, listing declares a %s", e.Line, e.Path, e.Existing, e.Declared)
}

// IsParseError reports whether the root cause of err is a *ParseError.
func IsParseError(err error) bool {
	_, ok := errors.Cause(err).(*ParseError)
	return ok
}

// IsNavigationError reports whether the root cause of err is a *NavigationError.
func IsNavigationError(err error) bool {
	_, ok := errors.Cause(err).(*NavigationError)
	return ok
}

// IsConflictError reports whether the root cause of err is a *ConflictError.
func IsConflictError(err error) bool {
	_, ok := errors.Cause(err).(*ConflictError)
	return ok
}
