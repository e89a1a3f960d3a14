// Package errors defines the error kinds surfaced by domain operations.
// Every failure reaching a caller carries exactly one of these kinds, while the
// underlying backend error stays reachable through errors.As.
package errors

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// Kind classifies a failure for the presentation layer.
type Kind string

const (
	KindUnknown                Kind = ""
	KindRemote                 Kind = "REMOTE"
	KindAuth                   Kind = "AUTH"
	KindNotFound               Kind = "NOT_FOUND"
	KindUpload                 Kind = "UPLOAD"
	KindPersist                Kind = "PERSIST"
	KindAccountSetupIncomplete Kind = "ACCOUNT_SETUP_INCOMPLETE"
	KindIntegrityViolation     Kind = "INTEGRITY_VIOLATION"
	KindValidation             Kind = "VALIDATION"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Failure classification
	ErrorCode() string // Business error code
	Message() string   // Short error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
// Sentinels are compared by error code, so a copy carrying a cause or details
// still matches its sentinel under errors.Is.
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
	cause     error
	alias     *BaseError
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	msg := e.message
	if e.details != "" {
		msg += " (" + e.details + ")"
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}

	return msg
}

// Is matches any error carrying the same code, or the code of its alias.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}
	if t.errorCode == e.errorCode {
		return true
	}

	return e.alias != nil && e.alias.errorCode == t.errorCode
}

// Unwrap exposes the cause.
func (e *BaseError) Unwrap() error {
	return e.cause
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the failure classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the short error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	c := *e
	c.details = details

	return &c
}

// WithCause returns a copy of e that wraps cause. The result carries a stack trace.
func (e *BaseError) WithCause(cause error) error {
	c := *e
	c.cause = cause

	return errors.WithStack(&c)
}

func (e *BaseError) aliasOf(other *BaseError) *BaseError {
	e.alias = other

	return e
}

// Predefined error kinds
var (
	// ErrRemote is a network or service failure reported by the backend.
	ErrRemote = NewBaseError(KindRemote, "REMOTE_ERROR", "remote service request failed")

	// ErrAuth covers bad credentials and missing sessions.
	ErrAuth = NewBaseError(KindAuth, "AUTH_FAILED", "authentication failed")

	// ErrNotFound is returned for zero or ambiguous lookup results.
	ErrNotFound = NewBaseError(KindNotFound, "NOT_FOUND", "resource not found")

	// ErrUpload is a file upload or preview URL derivation failure.
	ErrUpload = NewBaseError(KindUpload, "UPLOAD_FAILED", "file upload failed")

	// ErrPersist is a document write failure.
	ErrPersist = NewBaseError(KindPersist, "PERSIST_FAILED", "document write failed")

	// ErrAccountSetupIncomplete means the account exists but its profile document does not.
	ErrAccountSetupIncomplete = NewBaseError(KindAccountSetupIncomplete, "ACCOUNT_SETUP_INCOMPLETE", "account created but profile setup failed")

	// ErrIntegrityViolation flags duplicate or ambiguous records. It also matches
	// ErrNotFound, since an ambiguous lookup found no single answer.
	ErrIntegrityViolation = NewBaseError(KindIntegrityViolation, "INTEGRITY_VIOLATION", "duplicate or ambiguous records").aliasOf(ErrNotFound)

	// ErrValidationFailed rejects malformed input before any remote call.
	ErrValidationFailed = NewBaseError(KindValidation, "VALIDATION_FAILED", "input validation failed")
)

func asAppError(err error, target *AppError) bool {
	return stderrors.As(err, target)
}

// KindOf returns the kind of the outermost AppError in err's chain.
func KindOf(err error) Kind {
	var appErr AppError
	if asAppError(err, &appErr) {
		return appErr.Kind()
	}

	return KindUnknown
}
