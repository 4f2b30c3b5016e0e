package error

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrorWithStackTrace is an error that attaches a stack trace to its
// message.
type ErrorWithStackTrace struct {
	StackTrace string
	Wrapped    error
}

// Error returns this error's message.
func (s ErrorWithStackTrace) Error() string {
	return fmt.Sprintf("%v\n\n%s\nEND OF StackTraceError", s.Wrapped, s.StackTrace)
}

// Unwrap returns the underlying error of this error.
func (s ErrorWithStackTrace) Unwrap() error {
	return s.Wrapped
}

// WithStackTrace attaches a stack trace to the error, if it does not
// already contain one.
func WithStackTrace(err error) error {
	if err == nil {
		return nil
	}
	if hasStackTrace(err) {
		return err
	}
	st := make([]byte, 1<<16)
	n := runtime.Stack(st, true)
	return ErrorWithStackTrace{
		Wrapped:    err,
		StackTrace: string(st[:n]),
	}
}

func hasStackTrace(err error) bool {
	for err != nil {
		if _, ok := err.(ErrorWithStackTrace); ok {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// StackTracef formats an error like fmt.Errorf and attaches a stack
// trace to it.
func StackTracef(format string, a ...interface{}) error {
	return WithStackTrace(fmt.Errorf(format, a...))
}
