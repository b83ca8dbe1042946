package service

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure. The HTTP layer maps kinds to status codes.
type Kind int

const (
	KindStore Kind = iota
	KindValidation
	KindConflict
	KindAuth
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	default:
		return "store"
	}
}

// Error is the error type returned by every service. Message is safe to show
// to a client; Err carries the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches sentinels by kind and message so a wrapped copy of a sentinel
// still satisfies errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

var (
	ErrInvalidCredentials = &Error{Kind: KindAuth, Message: "Invalid credentials"}
	ErrInvalidToken       = &Error{Kind: KindAuth, Message: "Not authorized, token failed"}
	ErrUserNotFound       = &Error{Kind: KindNotFound, Message: "User not found"}
	ErrJobNotFound        = &Error{Kind: KindNotFound, Message: "Job not found"}
	ErrEmailTaken         = &Error{Kind: KindConflict, Message: "User already exists"}
)

// ErrNoJobsToExport is not a failure: the export matched nothing and the
// caller should answer with an informational message instead of a file.
var ErrNoJobsToExport = errors.New("No jobs to export")

func validationError(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

// storeError wraps an unexpected storage failure. msg is the client facing
// summary; err only reaches the logs.
func storeError(msg string, err error) error {
	return &Error{Kind: KindStore, Message: msg, Err: err}
}

// wrap attaches cause to a copy of sentinel.
func wrap(sentinel *Error, cause error) error {
	return &Error{Kind: sentinel.Kind, Message: sentinel.Message, Err: cause}
}

// KindOf reports the Kind of err. Errors that are not *Error count as store
// failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStore
}

// MessageOf returns the client facing message for err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Server error"
}
