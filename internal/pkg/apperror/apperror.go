// internal/pkg/apperror/apperror.go
package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an error for the API boundary
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
)

// Error is a domain error with a stable machine-readable code
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Validation creates an error for missing or malformed input
func Validation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

// NotFound creates an error for absent (or not owned) resources
func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

// Conflict creates an error for operations rejected by the current state
func Conflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

// Unauthorized creates an error for failed authentication
func Unauthorized(code, message string) *Error {
	return &Error{Kind: KindUnauthorized, Code: code, Message: message}
}

// WithMessage returns a copy of e carrying a more specific message.
// errors.Is still matches the original sentinel.
func (e *Error) WithMessage(message string) error {
	return &detailed{err: &Error{Kind: e.Kind, Code: e.Code, Message: message}, sentinel: e}
}

type detailed struct {
	err      *Error
	sentinel *Error
}

func (d *detailed) Error() string {
	return d.err.Message
}

func (d *detailed) Unwrap() error {
	return d.sentinel
}

// As extracts the outermost *Error in err's chain
func As(err error) (*Error, bool) {
	var d *detailed
	if errors.As(err, &d) {
		return d.err, true
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of err, KindInternal when err is not a domain error
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus maps a kind to its response status code
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
