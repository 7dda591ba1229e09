// Package errors is the project error type: a code, a message, an
// optional field for validation failures, and a wrapped cause.
// Import it as perr everywhere
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an error for wire responses and logging.
// Values are stable once shipped, append only
type ErrorCode uint16

const (
	// ErrorCodeUnknown covers anything not classified below
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodePanic marks panics recovered by middleware
	ErrorCodePanic

	// ErrorCodeUnavailable marks transient failures where a retry may succeed
	ErrorCodeUnavailable

	// ErrorCodeConflict marks state conflicts beyond duplicate keys,
	// e.g. a sync run already in progress or an overlapping period
	ErrorCodeConflict

	// ErrorCodeUnauthorized marks missing or bad credentials
	ErrorCodeUnauthorized

	// ErrorCodeForbidden marks access control failures
	ErrorCodeForbidden

	// ErrorCodeInvalidArgument marks bad input parameters
	ErrorCodeInvalidArgument

	// ErrorCodeValidation marks failed payload validation
	ErrorCodeValidation

	// ErrorCodeJSON marks JSON decode failures
	ErrorCodeJSON

	// ErrorCodeNotFound marks missing resources
	ErrorCodeNotFound

	// ErrorCodeDuplicateKey marks unique constraint violations
	ErrorCodeDuplicateKey

	// ErrorCodeDB marks other database errors
	ErrorCodeDB
)

// Error carries a machine code, a developer-facing message, an optional
// offending field, and the wrapped cause
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.orig)
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error {
	return e.orig
}

// Code returns the error code
func (e *Error) Code() ErrorCode {
	return e.code
}

// Field returns the offending field, if any
func (e *Error) Field() string {
	return e.field
}

// New returns an *Error with the given code and message
func New(code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg}
}

// Newf returns an *Error with the given code and formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns an *Error wrapping orig
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{orig: orig, code: code, msg: msg}
}

// Wrapf is Wrap with a formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{orig: orig, code: code, msg: fmt.Sprintf(format, a...)}
}

// Shorthand constructors for the codes that come up constantly.

// NotFoundf returns a not found error
func NotFoundf(format string, a ...any) error {
	return Newf(ErrorCodeNotFound, format, a...)
}

// InvalidArgf returns an invalid argument error
func InvalidArgf(format string, a ...any) error {
	return Newf(ErrorCodeInvalidArgument, format, a...)
}

// JSONErrf returns a JSON decode error
func JSONErrf(format string, a ...any) error {
	return Newf(ErrorCodeJSON, format, a...)
}

// PanicErrf returns a recovered-panic error
func PanicErrf(format string, a ...any) error {
	return Newf(ErrorCodePanic, format, a...)
}

// Unauthorizedf returns an unauthorized error
func Unauthorizedf(format string, a ...any) error {
	return Newf(ErrorCodeUnauthorized, format, a...)
}

// Conflictf returns a conflict error
func Conflictf(format string, a ...any) error {
	return Newf(ErrorCodeConflict, format, a...)
}

// ErrNotFound is the shared not-found sentinel
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// As unwraps and returns (*Error, true) when err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf extracts the ErrorCode from any error, Unknown when foreign
func CodeOf(err error) ErrorCode {
	e, ok := As(err)
	if !ok {
		return ErrorCodeUnknown
	}
	return e.code
}

// IsCode reports whether err carries the given code
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// Root walks the Unwrap chain and returns the deepest cause
func Root(err error) error {
	for err != nil {
		next := stderrs.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

// WithField attaches a field name to an *Error without mutating the
// original. Foreign errors pass through unchanged
func WithField(err error, field string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	c.field = field
	return &c
}

// Wire is the JSON shape returned to API clients
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// ToWire converts the error to its wire payload
func (e *Error) ToWire() Wire {
	return Wire{Code: e.code, Message: e.msg, Field: e.field}
}

// WireFrom converts any error into a Wire payload. Foreign errors come
// out as Unknown; nil returns the zero Wire
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// HTTPStatusCode maps an ErrorCode to its HTTP status
func HTTPStatusCode(c ErrorCode) int {
	switch c {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeInvalidArgument:
		return http.StatusUnprocessableEntity
	case ErrorCodeDuplicateKey, ErrorCodeConflict:
		return http.StatusConflict
	case ErrorCodeValidation, ErrorCodeJSON:
		return http.StatusBadRequest
	case ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrorCodeForbidden:
		return http.StatusForbidden
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// HTTPStatus returns the mapped HTTP status for any error
func HTTPStatus(err error) int {
	return HTTPStatusCode(CodeOf(err))
}
