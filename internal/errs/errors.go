// Package errs provides unified error handling for all of SiaRi.
//
// Every error that crosses a package boundary is wrapped in *Error so that
// callers can branch on the kind without string matching. Errors raised by
// a renterd API response also carry the HTTP status that triggered them.
package errs

import (
	"errors"
	"fmt"
)

// ErrKind classifies an error so callers can branch without string matching.
type ErrKind int

const (
	// ErrKindUnknown is the zero value; avoid using it directly.
	ErrKindUnknown ErrKind = iota

	// ErrKindAuthFailed signals a rejected API password (HTTP 401).
	ErrKindAuthFailed

	// ErrKindNotFound signals a missing object, bucket or other resource.
	ErrKindNotFound

	// ErrKindHTTPError signals a non-2xx API response outside the cases above.
	ErrKindHTTPError

	// ErrKindInvalidData signals a response that does not match the expected
	// shape: malformed JSON, bad header values, unparseable typed ids.
	ErrKindInvalidData

	// ErrKindNotSeekable signals a range read on an object whose server copy
	// does not support byte ranges.
	ErrKindNotSeekable

	// ErrKindUnsupported signals an operation the selected driver cannot do.
	ErrKindUnsupported

	// ErrKindTimeout signals a deadline or context cancellation.
	ErrKindTimeout

	// ErrKindConnectionFailed signals dial/handshake problems.
	ErrKindConnectionFailed

	// ErrKindInvalidInput signals bad arguments from the caller.
	ErrKindInvalidInput
)

// String implements fmt.Stringer.
func (k ErrKind) String() string {
	switch k {
	case ErrKindAuthFailed:
		return "auth_failed"
	case ErrKindNotFound:
		return "not_found"
	case ErrKindHTTPError:
		return "http_error"
	case ErrKindInvalidData:
		return "invalid_data"
	case ErrKindNotSeekable:
		return "not_seekable"
	case ErrKindUnsupported:
		return "unsupported"
	case ErrKindTimeout:
		return "timeout"
	case ErrKindConnectionFailed:
		return "connection_failed"
	case ErrKindInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Error is the single error type SiaRi returns across package boundaries.
type Error struct {
	Kind    ErrKind
	Message string

	// Status is the HTTP status code for errors raised by an API response.
	// Zero when the error did not originate from a response.
	Status int

	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error { return e.Cause }

// New creates an *Error without a cause.
func New(kind ErrKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Newf creates an *Error without a cause, formatting the message.
func Newf(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an *Error around cause.
func Wrap(kind ErrKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// NewHTTP creates an *Error for a non-2xx API response. The body is the
// trimmed response text the server sent alongside the status.
func NewHTTP(status int, body string) *Error {
	return &Error{
		Kind:    ErrKindHTTPError,
		Message: fmt.Sprintf("server responded with status %d: %s", status, body),
		Status:  status,
	}
}

// StatusOf returns the HTTP status carried by err, or zero when err does not
// wrap an *Error raised from a response.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// IsAuthFailed reports whether err is an *Error with ErrKindAuthFailed.
func IsAuthFailed(err error) bool { return kindOf(err) == ErrKindAuthFailed }

// IsNotFound reports whether err is an *Error with ErrKindNotFound.
func IsNotFound(err error) bool { return kindOf(err) == ErrKindNotFound }

// IsHTTPError reports whether err is an *Error with ErrKindHTTPError.
func IsHTTPError(err error) bool { return kindOf(err) == ErrKindHTTPError }

// IsInvalidData reports whether err is an *Error with ErrKindInvalidData.
func IsInvalidData(err error) bool { return kindOf(err) == ErrKindInvalidData }

// IsNotSeekable reports whether err is an *Error with ErrKindNotSeekable.
func IsNotSeekable(err error) bool { return kindOf(err) == ErrKindNotSeekable }

// IsUnsupported reports whether err is an *Error with ErrKindUnsupported.
func IsUnsupported(err error) bool { return kindOf(err) == ErrKindUnsupported }

// IsTimeout reports whether err is an *Error with ErrKindTimeout.
func IsTimeout(err error) bool { return kindOf(err) == ErrKindTimeout }

// IsConnectionFailed reports whether err is an *Error with ErrKindConnectionFailed.
func IsConnectionFailed(err error) bool { return kindOf(err) == ErrKindConnectionFailed }

// IsInvalidInput reports whether err is an *Error with ErrKindInvalidInput.
func IsInvalidInput(err error) bool { return kindOf(err) == ErrKindInvalidInput }

func kindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrKindUnknown
}
