package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies an AppError for callers and transport mapping
type ErrorKind string

// Error kinds exposed by the order services
const (
	KindUnauthenticated           ErrorKind = "Unauthenticated"
	KindForbidden                 ErrorKind = "Forbidden"
	KindNotFound                  ErrorKind = "NotFound"
	KindInvalidRequest            ErrorKind = "InvalidRequest"
	KindInvalidState              ErrorKind = "InvalidState"
	KindConflict                  ErrorKind = "Conflict"
	KindPaymentVerificationFailed ErrorKind = "PaymentVerificationFailed"
	KindInternal                  ErrorKind = "Internal"
)

var kindStatus = map[ErrorKind]int{
	KindUnauthenticated:           http.StatusUnauthorized,
	KindForbidden:                 http.StatusForbidden,
	KindNotFound:                  http.StatusNotFound,
	KindInvalidRequest:            http.StatusBadRequest,
	KindInvalidState:              http.StatusBadRequest,
	KindConflict:                  http.StatusConflict,
	KindPaymentVerificationFailed: http.StatusBadRequest,
	KindInternal:                  http.StatusInternalServerError,
}

// AppError represents an application error
type AppError struct {
	Kind    ErrorKind `json:"kind"`
	Code    int       `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the caller may retry the failed operation.
// Only store-level failures qualify; domain rule violations never do.
func (e *AppError) Retryable() bool {
	return e.Kind == KindInternal
}

// NewAppError creates a new AppError of the given kind
func NewAppError(kind ErrorKind, message string, err error) *AppError {
	code, ok := kindStatus[kind]
	if !ok {
		code = http.StatusInternalServerError
	}
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// UnauthenticatedError creates an error for a missing principal
func UnauthenticatedError(message string) *AppError {
	return NewAppError(KindUnauthenticated, message, nil)
}

// ForbiddenError creates a 403 Forbidden error
func ForbiddenError(message string) *AppError {
	return NewAppError(KindForbidden, message, nil)
}

// NotFoundError creates a 404 Not Found error
func NotFoundError(message string, err error) *AppError {
	return NewAppError(KindNotFound, message, err)
}

// InvalidRequestError creates an error for malformed input
func InvalidRequestError(message string, err error) *AppError {
	return NewAppError(KindInvalidRequest, message, err)
}

// InvalidStateError creates an error for a rejected state transition
func InvalidStateError(message string, err error) *AppError {
	return NewAppError(KindInvalidState, message, err)
}

// ConflictError creates a 409 Conflict error
func ConflictError(message string, err error) *AppError {
	return NewAppError(KindConflict, message, err)
}

// PaymentVerificationError creates an error for a gateway signature mismatch
func PaymentVerificationError(message string) *AppError {
	return NewAppError(KindPaymentVerificationFailed, message, nil)
}

// InternalError creates an error for store or infrastructure failures
func InternalError(message string, err error) *AppError {
	return NewAppError(KindInternal, message, err)
}

// GetAppError returns the AppError in err's chain, if any
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

// KindOf returns the kind of err; unknown errors are Internal
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind checks if err is an AppError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
