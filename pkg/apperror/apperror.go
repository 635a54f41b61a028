// Package apperror classifies failures into the four kinds callers react to:
// bad input, unmet preconditions, missing records and storage failures.
package apperror

import "errors"

// Kind is the coarse class of an Error.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindPrecondition Kind = "precondition"
	KindNotFound     Kind = "not_found"
	KindPersistence  Kind = "persistence"
)

// Error carries a kind plus a stable snake_case code. Field is set for
// validation errors that point at one input.
type Error struct {
	Kind      Kind
	Field     string
	Code      string
	Transient bool
	Err       error
}

var (
	ErrValidation   = &Error{Kind: KindValidation}
	ErrPrecondition = &Error{Kind: KindPrecondition}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrPersistence  = &Error{Kind: KindPersistence}
)

func (e *Error) Error() string {
	msg := e.Code
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error by kind, and by code when the target has one.
// The package-level kind sentinels therefore match every error of their kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Code == "" || t.Code == e.Code
}

// Validation builds a validation error for one input field.
func Validation(field, code string) *Error {
	return &Error{Kind: KindValidation, Field: field, Code: code}
}

// Precondition builds an error for an operation attempted in the wrong state.
func Precondition(code string) *Error {
	return &Error{Kind: KindPrecondition, Code: code}
}

// NotFound builds an error for a referenced record that does not exist.
func NotFound(code string) *Error {
	return &Error{Kind: KindNotFound, Code: code}
}

// Persistence wraps a storage failure. Transient failures may be retried.
func Persistence(code string, err error, transient bool) *Error {
	return &Error{Kind: KindPersistence, Code: code, Err: err, Transient: transient}
}

// Wrap returns a copy of e that carries err as its cause.
func (e *Error) Wrap(err error) *Error {
	out := *e
	out.Err = err
	return &out
}

// KindOf reports the kind of the first *Error in err's chain, or "" when none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) && appErr != nil {
		return appErr.Kind
	}
	return ""
}

// IsTransient reports whether err is a persistence failure worth retrying.
func IsTransient(err error) bool {
	var appErr *Error
	if errors.As(err, &appErr) && appErr != nil {
		return appErr.Kind == KindPersistence && appErr.Transient
	}
	return false
}
