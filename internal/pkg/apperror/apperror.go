package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport mapping
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindLocked
	KindUpstream
	KindSignature
	KindAuth
	KindForbidden
	KindRateLimited
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindLocked:
		return "locked"
	case KindUpstream:
		return "upstream"
	case KindSignature:
		return "signature"
	case KindAuth:
		return "auth"
	case KindForbidden:
		return "forbidden"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "internal"
	}
}

// Error is a classified application error. Message is safe to show to users.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap classifies an underlying error
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation creates a validation error with field details
func Validation(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

// NotFound creates a not-found error
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Conflict creates a conflict error
func Conflict(message string) *Error {
	return New(KindConflict, message)
}

// Locked creates a locked-voting error carrying the user-facing message
func Locked(message string) *Error {
	return New(KindLocked, message)
}

// Upstream wraps a payment-provider failure
func Upstream(message string, err error) *Error {
	return Wrap(KindUpstream, message, err)
}

// Auth creates an authentication error
func Auth(message string) *Error {
	return New(KindAuth, message)
}

// KindOf returns the kind of err, or KindInternal when unclassified
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// As extracts the classified error
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
