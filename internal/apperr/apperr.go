// Package apperr defines the error taxonomy shared by services and
// handlers. Services return *Error values; handlers map kinds to HTTP
// status codes.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport mapping.
type Kind int

const (
	// KindValidation marks user-correctable bad input.
	KindValidation Kind = iota
	// KindNotFound marks a missing referenced entity.
	KindNotFound
	// KindConflict marks a deletion blocked by active references or a
	// detected write race; the caller may retry.
	KindConflict
	// KindUnauthenticated marks a missing or invalid credential.
	KindUnauthenticated
	// KindForbidden marks a valid credential with an insufficient role.
	KindForbidden
	// KindStorage marks an underlying store failure.
	KindStorage
)

// Error carries a kind and a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation returns a validation error with a formatted message.
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound returns a not-found error with a formatted message.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict returns a conflict error with a formatted message.
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Unauthenticated returns an authentication error.
func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

// Forbidden returns an authorization error.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// Storage wraps an underlying store failure.
func Storage(err error, message string) *Error {
	return &Error{Kind: KindStorage, Message: message, Err: err}
}

// KindOf extracts the kind from err, defaulting to KindStorage for
// errors that did not originate in this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
