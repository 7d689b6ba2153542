// Package domainerrors provides coded errors for the domain and service layers.
//
// Stores and other infrastructure return sentinel errors (pkg/platform/sentinel);
// services and domain code translate those into coded errors so callers can
// branch on classification without string matching. Errors constructed here
// wrap their cause and participate in errors.Is / errors.As chains.
//
// Typed errors defined outside this package join the scheme by implementing
// the Coder interface; HasCode walks the unwrap chain and honors any error
// that carries a Code.
package domainerrors

import "errors"

// Code classifies an error for programmatic handling.
type Code string

const (
	CodeInternal           Code = "internal"
	CodeInvariantViolation Code = "invariant_violation"
	CodeValidation         Code = "validation"
	CodeInvalidInput       Code = "invalid_input"
	CodeNotFound           Code = "not_found"
	CodeConflict           Code = "conflict"
	CodeTimeout            Code = "timeout"
)

// Coder is implemented by errors that carry a classification Code.
type Coder interface {
	Code() Code
}

// Error is a coded error with an optional wrapped cause.
type Error struct {
	code Code
	msg  string
	err  error
}

// New returns a coded error with the given message.
func New(code Code, msg string) error {
	return &Error{code: code, msg: msg}
}

// Wrap returns a coded error wrapping err. Returns nil if err is nil.
func Wrap(err error, code Code, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{code: code, msg: msg, err: err}
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

// Unwrap exposes the cause for errors.Is / errors.As traversal.
func (e *Error) Unwrap() error { return e.err }

// Code returns the error's classification.
func (e *Error) Code() Code { return e.code }

// HasCode reports whether any error in err's unwrap chain carries code.
// The chain may hold multiple coded errors; every link is inspected.
func HasCode(err error, code Code) bool {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if c, ok := e.(Coder); ok && c.Code() == code {
			return true
		}
	}
	return false
}

// Is is an alias of HasCode that reads naturally in assertions.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// GetCode returns the first code in err's unwrap chain. Uncoded errors
// classify as CodeInternal; a nil error yields the empty Code.
func GetCode(err error) Code {
	if err == nil {
		return ""
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		if c, ok := e.(Coder); ok {
			return c.Code()
		}
	}
	return CodeInternal
}
