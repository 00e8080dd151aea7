package entity

import (
	"errors"
	"fmt"
)

// ErrorKind classifies operational errors so callers can decide whether to
// surface, retry with an override, or abort.
type ErrorKind string

const (
	KindNotFound           ErrorKind = "not_found"
	KindInvalidState       ErrorKind = "invalid_state"
	KindConflict           ErrorKind = "conflict"
	KindPolicyViolation    ErrorKind = "policy_violation"
	KindValidation         ErrorKind = "validation"
	KindStorageUnavailable ErrorKind = "storage_unavailable"
)

// Error is the structured error returned at every component boundary.
type Error struct {
	Kind    ErrorKind              `json:"kind"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// NewError builds a structured error with no details.
func NewError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithDetail attaches a detail entry and returns the error for chaining.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// KindOf extracts the error kind, defaulting unknown errors to storage
// failures since repository errors are the only untyped class that escapes.
func KindOf(err error) ErrorKind {
	var opErr *Error
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	return KindStorageUnavailable
}

// IsKind reports whether err is a structured error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
