// Package errors provides error values that can wrap a cause
// without resorting to fmt.Errorf("%w", err), so that sentinel
// errors exported by status packages stay comparable with errors.Is.
package errors

import (
	stderr "errors"
)

var _ error = New("")

// New builds an Error carrying the given message.
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Error is a message with an optional wrapped cause.
type Error struct {
	msg string
	err error
}

func (e *Error) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Wrap returns a copy of e carrying err as its cause. The receiver is
// not mutated, so package-level sentinels may be wrapped concurrently.
func (e *Error) Wrap(err error) *Error {
	return &Error{msg: e.msg, err: err}
}

// Is matches either the sentinel itself or a Wrap copy of it.
func (e *Error) Is(target error) bool {
	if e == target {
		return true
	}
	if other, ok := target.(*Error); ok {
		return e.msg == other.msg
	}
	return false
}

// As finds the first error in err's chain matching target
// (a shortcut to the standard library).
func As(err error, target interface{}) bool {
	return stderr.As(err, target)
}

// Is reports whether any error in err's chain matches target
// (a shortcut to the standard library).
func Is(err, target error) bool {
	return stderr.Is(err, target)
}
