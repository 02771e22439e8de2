package pkg

// Sentinel errors for the hcomp module and its subpackages.
// These errors can be tested using errors.Is for reliable error checking.

import (
	"fmt"
	"slices"
	"strings"
)

// Error represents a chain of errors.
type Error []error

// ErrNoInput is returned when no input source was specified.
//
// The extraction core never produces this error itself; it originates in the
// CLI layer when neither a command, file, schema, nor stdin is available.
var ErrNoInput = MakeErrorf("no input source specified")

// ErrReadInput is returned when reading an input file or stdin fails.
//
// This error should be wrapped with the underlying I/O error
// to preserve the error chain.
var ErrReadInput = MakeErrorf("failed to read input")

// ErrRunCommand is returned when invoking an external command to capture its
// help or man output fails.
//
// This error should be wrapped with the underlying exec error
// to preserve the error chain.
var ErrRunCommand = MakeErrorf("failed to run command")

// ErrSchemaDecode is returned when a previously exported schema cannot be
// decoded.
//
// This error should be wrapped with the underlying JSON error
// to preserve the error chain.
var ErrSchemaDecode = MakeErrorf("failed to decode schema")

// ErrInvalidFormat is returned when an unsupported output format is requested.
//
// This error should be wrapped with additional context that specifies the
// invalid format along with a list of valid formats.
var ErrInvalidFormat = MakeErrorf("invalid output format")

// ErrFilterExpr is returned when an option filter expression fails to compile
// or evaluate.
//
// This error should be wrapped with the underlying expression error
// to preserve the error chain.
var ErrFilterExpr = MakeErrorf("invalid filter expression")

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided:
// the first argument is the innermost error in the chain.
// Nil is returned if no errors are provided.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns a concatenated string representation of all errors
// in the error chain, separated by ": ", from innermost to outermost.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap appends one or more errors to the receiver and returns the result.
func (e Error) Wrap(err ...error) Error {
	return append(e, err...)
}

// Wrapf appends a formatted error to the receiver and returns the result.
func (e Error) Wrapf(format string, args ...any) Error {
	return append(e, fmt.Errorf(format, args...))
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
