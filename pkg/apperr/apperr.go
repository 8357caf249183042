// Package apperr defines the error kinds surfaced by marketplace operations.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindDuplicate     Kind = "duplicate"
	KindAuthorization Kind = "authorization"
	KindPrecondition  Kind = "precondition_failed"
	KindSafety        Kind = "safety"
	KindStore         Kind = "store"
	KindNotFound      Kind = "not_found"
)

// Error is the domain error type. Reason is only set for safety errors and
// names the rule the message tripped.
type Error struct {
	Kind    Kind
	Message string
	Reason  string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches by kind, so errors.Is(err, apperr.ErrPrecondition) works on any
// precondition failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is.
var (
	ErrValidation    = &Error{Kind: KindValidation, Message: "validation error"}
	ErrDuplicate     = &Error{Kind: KindDuplicate, Message: "duplicate"}
	ErrAuthorization = &Error{Kind: KindAuthorization, Message: "not authorized"}
	ErrPrecondition  = &Error{Kind: KindPrecondition, Message: "precondition failed"}
	ErrSafety        = &Error{Kind: KindSafety, Message: "message blocked"}
	ErrStore         = &Error{Kind: KindStore, Message: "store error"}
	ErrNotFound      = &Error{Kind: KindNotFound, Message: "not found"}
)

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Duplicate(format string, args ...any) *Error {
	return &Error{Kind: KindDuplicate, Message: fmt.Sprintf(format, args...)}
}

func Authorization(format string, args ...any) *Error {
	return &Error{Kind: KindAuthorization, Message: fmt.Sprintf(format, args...)}
}

func Precondition(format string, args ...any) *Error {
	return &Error{Kind: KindPrecondition, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Safety reports blocked message content; reason is shown to the sender.
func Safety(reason string) *Error {
	return &Error{Kind: KindSafety, Message: "message blocked: " + reason, Reason: reason}
}

// Store wraps a persistence failure.
func Store(message string, cause error) *Error {
	return &Error{Kind: KindStore, Message: message, Cause: cause}
}

// KindOf returns the kind of err, or KindStore for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStore
}

// ReasonOf returns the safety reason carried by err, if any.
func ReasonOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return ""
}
