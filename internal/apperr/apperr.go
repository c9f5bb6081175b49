// Package apperr provides the error template used across elapsed
package apperr

import "fmt"

// Error is an application error. Package-level values act as templates:
// Fmt and Wrap derive new errors that still match the template with
// errors.Is.
type Error struct {
	Cause   error
	tmpl    *Error
	Message string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

// Fmt formats the message of the template with the provided arguments.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
		tmpl:    e.root(),
	}
}

// Wrap attaches an underlying error to the template.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
		tmpl:    e.root(),
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is e or the template e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t == e || t == e.root()
}

func (e *Error) root() *Error {
	if e.tmpl != nil {
		return e.tmpl
	}

	return e
}
