// Package apperr carries the error taxonomy shared by services and the
// HTTP boundary. Services classify failures with a Code; handlers map
// the code to a status and never leak internal detail for Internal.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Code int

const (
	Internal Code = iota
	InvalidArgument
	Unauthenticated
	NotFound
	Conflict
)

type Error struct {
	Code    Code
	Message string
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

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf returns the code of the outermost *Error in err's chain, or
// Internal for unclassified errors.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return Internal
}

// MessageOf returns the client-safe message for err. Unclassified
// errors get a generic message; the full error is for server-side logs.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Code != Internal {
		return appErr.Message
	}
	return "Something went wrong!"
}

func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case InvalidArgument, Conflict:
		return http.StatusBadRequest
	case Unauthenticated:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
