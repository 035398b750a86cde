package types

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates the failure classes surfaced by the SDK.
// Callers can switch on Kind exhaustively instead of string-matching.
type ErrorKind string

const (
	// KindFormat: an identifier failed pre-flight shape validation; no
	// network I/O occurred.
	KindFormat ErrorKind = "format"
	// KindValidation: the service returned a structured per-field
	// validation payload (status 422).
	KindValidation ErrorKind = "validation"
	// KindRequest: the service returned a non-2xx status with a plain
	// error body, or no recognizable body.
	KindRequest ErrorKind = "request"
	// KindTimeout: a single request exceeded its deadline, or the poll
	// loop exceeded its governing bound.
	KindTimeout ErrorKind = "timeout"
	// KindNotFound: the service explicitly reported the resource missing.
	KindNotFound ErrorKind = "not_found"
	// KindTransport: network failure, decode failure, or any other
	// transport-level fault.
	KindTransport ErrorKind = "transport"
)

// Fixed messages the API contract pins down.
const (
	MsgValidationFailed  = "Validation failed"
	MsgOperationNotFound = "Operation not found"
	MsgUnknownError      = "unknown error"
)

// Error is the single normalized error type every SDK failure surfaces as.
type Error struct {
	Kind        ErrorKind
	Message     string
	StatusCode  int                 // 0 when no HTTP status applies
	FieldErrors map[string][]string // per-field validation messages, 422 only
	cause       error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("meshwallet: %s (status %d)", e.Message, e.StatusCode)
	}
	return "meshwallet: " + e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// NewFormatError builds a pre-flight format error.
func NewFormatError(format string, args ...any) *Error {
	return &Error{Kind: KindFormat, Message: fmt.Sprintf(format, args...)}
}

// NewValidationError builds a 422 validation error. An empty message takes
// the fixed "Validation failed" default; fieldErrors is kept verbatim.
func NewValidationError(message string, fieldErrors map[string][]string) *Error {
	if message == "" {
		message = MsgValidationFailed
	}
	return &Error{
		Kind:        KindValidation,
		Message:     message,
		StatusCode:  422,
		FieldErrors: fieldErrors,
	}
}

// NewRequestError builds a generic non-2xx error. An empty message takes
// the "Request failed with status N" default.
func NewRequestError(statusCode int, message string) *Error {
	if message == "" {
		message = fmt.Sprintf("Request failed with status %d", statusCode)
	}
	return &Error{Kind: KindRequest, Message: message, StatusCode: statusCode}
}

// NewTimeoutError builds a poll/request timeout error.
func NewTimeoutError(format string, args ...any) *Error {
	return &Error{Kind: KindTimeout, Message: fmt.Sprintf(format, args...)}
}

// NewNotFoundError builds a not-found error with the fixed message.
func NewNotFoundError() *Error {
	return &Error{Kind: KindNotFound, Message: MsgOperationNotFound, StatusCode: 404}
}

// NewTransportError normalizes a transport-level failure. A nil or
// message-less cause falls back to the fixed "unknown error" string.
func NewTransportError(cause error) *Error {
	message := MsgUnknownError
	if cause != nil && cause.Error() != "" {
		message = cause.Error()
	}
	return &Error{Kind: KindTransport, Message: message, cause: cause}
}

// kindOf extracts the ErrorKind from err, or "" when err is not an *Error.
func kindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return kindOf(err) == KindNotFound }

// IsTimeout reports whether err is a timeout error.
func IsTimeout(err error) bool { return kindOf(err) == KindTimeout }

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return kindOf(err) == KindValidation }

// IsFormat reports whether err is a pre-flight format error.
func IsFormat(err error) bool { return kindOf(err) == KindFormat }
