package domain

import (
	"errors"
	"net/http"
)

// Error codes for application errors.
const (
	CodeNotFound   = 1
	CodeValidation = 2
	CodeInternal   = 3
	CodeUpstream   = 4
)

// AppError carries an error code, a caller-safe message and an optional cause.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the wrapped error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined errors. Match categories with the Is* helpers rather than
// errors.Is, which only matches these exact pointers.
var (
	ErrNotFound = &AppError{Code: CodeNotFound, Message: "not found"}
	ErrInternal = &AppError{Code: CodeInternal, Message: "internal error"}
)

// NewAppError creates a new AppError with the given code, message, and wrapped error.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsNotFound reports whether err is or wraps an AppError with CodeNotFound.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsUpstream reports whether err is or wraps an AppError with CodeUpstream.
func IsUpstream(err error) bool {
	return hasCode(err, CodeUpstream)
}

func hasCode(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// HTTPStatusCode maps an error to an HTTP status code.
// Errors that are not an *AppError map to http.StatusInternalServerError.
func HTTPStatusCode(err error) int {
	var appErr *AppError
	if err != nil && errors.As(err, &appErr) {
		switch appErr.Code {
		case CodeNotFound:
			return http.StatusNotFound
		case CodeValidation:
			return http.StatusBadRequest
		case CodeInternal:
			return http.StatusInternalServerError
		case CodeUpstream:
			return http.StatusBadGateway
		}
	}
	return http.StatusInternalServerError
}
