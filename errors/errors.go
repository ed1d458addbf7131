// Package errors defines the error type that crosses the API boundary.
// Per-item transcript failures never use it; they are reported inside
// 200-level result records. AppError only covers request-level failures.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError pairs a caller-facing message with the HTTP status it maps to.
// Op and Err are for logs only; Message is the only serialized field.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Op      string `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// InvalidInput marks a structurally invalid request (HTTP 400).
func InvalidInput(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// Internal marks an unexpected failure outside the per-item flow (HTTP 500).
func Internal(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// From returns err unchanged when it already is an *AppError and wraps
// anything else as Internal, so response writing has a single path.
func From(op string, err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return Internal(op, err, "Internal server error")
}
