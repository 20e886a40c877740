// Package cerr defines the tagged error taxonomy shared by every
// component of the CAD core. Errors are surfaced to the immediate
// caller with the failing argument identified; there are no silent
// fallbacks.
package cerr

import "fmt"

// Code identifies a member of the core's error taxonomy.
type Code string

const (
	// InvalidDimension marks a non-positive or non-finite primitive parameter.
	InvalidDimension Code = "InvalidDimension"
	// InvalidMesh marks a mesh that failed structural validation.
	InvalidMesh Code = "InvalidMesh"
	// BooleanFailure marks a boolean engine that rejected input or produced an invalid result.
	BooleanFailure Code = "BooleanFailure"
	// Singular marks a solver whose normal equations stayed singular at saturated damping.
	Singular Code = "Singular"
	// UnsupportedFormat marks an export format that is not recognized.
	UnsupportedFormat Code = "UnsupportedFormat"
	// BackendUnavailable marks an operation requested without its external
	// backend, e.g. a boolean operation in a build without -tags=manifold.
	BackendUnavailable Code = "BackendUnavailable"
	// ExportFailure marks an external writer that rejected the shape or an I/O failure.
	ExportFailure Code = "ExportFailure"
	// UnsupportedPrimitive marks a primitive kind the kernel declines to approximate.
	UnsupportedPrimitive Code = "UnsupportedPrimitive"
)

// Error is the concrete error type returned by every core operation.
// HistoryEmpty is deliberately not a Code here: per spec it is
// non-fatal and is reported as a bool return, not an error value.
type Error struct {
	Code Code
	// Op names the operation that failed, e.g. "Box" or "Document.Export".
	Op string
	// Arg identifies the offending argument or field, when applicable.
	Arg string
	// Message is a human-readable detail.
	Message string
	// Err wraps the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Arg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s (%s): %s: %v", e.Op, e.Code, e.Arg, e.Message, e.Err)
	case e.Arg != "":
		return fmt.Sprintf("%s: %s (%s): %s", e.Op, e.Code, e.Arg, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %s: %v", e.Op, e.Code, e.Message, e.Err)
	default:
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Code, e.Message)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Code, so
// callers can write errors.Is(err, cerr.New(cerr.InvalidMesh, "", "", "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New builds an *Error. Err may be nil.
func New(code Code, op, arg, message string) *Error {
	return &Error{Code: code, Op: op, Arg: arg, Message: message}
}

// Wrap builds an *Error around an existing cause.
func Wrap(code Code, op, arg, message string, err error) *Error {
	return &Error{Code: code, Op: op, Arg: arg, Message: message, Err: err}
}

// Is reports whether err is, or wraps, an *Error with the given code.
func Is(err error, code Code) bool {
	type unwrapper interface{ Unwrap() error }
	for err != nil {
		if e, ok := err.(*Error); ok && e.Code == code {
			return true
		}
		u, ok := err.(unwrapper)
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
