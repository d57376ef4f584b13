// Package apperror provides a structured error type that carries a message,
// the call sites it passed through and any number of underlying errors.
//
// Errors created by this package work with errors.Is and errors.As:
//
//	err := apperror.NewError("opening cache file failed").AddError(cause)
//	if errors.Is(err, fs.ErrNotExist) {
//	    ...
//	}
package apperror

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Error is the error type returned by all packages of this module
type Error struct {
	Trace   []string
	Message string
	Errors  []error
}

// NewError creates a new error with the given message
func NewError(msg string) *Error {
	return &Error{
		Trace:   []string{caller(2)},
		Message: msg,
	}
}

// NewErrorf creates a new error with a formatted message
func NewErrorf(format string, a ...interface{}) *Error {
	return &Error{
		Trace:   []string{caller(2)},
		Message: fmt.Sprintf(format, a...),
	}
}

// Wrap records the call site of the caller on top of err.
// A nil error stays nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}

	return &Error{
		Trace:  []string{caller(2)},
		Errors: []error{err},
	}
}

// AddError appends underlying errors. Nil errors are skipped.
func (e *Error) AddError(errs ...error) *Error {
	for _, err := range errs {
		if err != nil {
			e.Errors = append(e.Errors, err)
		}
	}
	return e
}

// Error implements the error interface
func (e *Error) Error() string {
	var parts []string
	if e.Message != "" {
		parts = append(parts, e.Message)
	}

	for _, err := range e.Errors {
		parts = append(parts, err.Error())
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying errors so errors.Is and errors.As can walk them
func (e *Error) Unwrap() []error {
	return e.Errors
}

// Stack returns the recorded call sites, innermost first
func (e *Error) Stack() []string {
	stack := append([]string{}, e.Trace...)
	for _, err := range e.Errors {
		if inner, ok := err.(*Error); ok {
			stack = append(inner.Stack(), stack...)
		}
	}
	return stack
}

func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
