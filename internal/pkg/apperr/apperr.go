// internal/pkg/apperr/apperr.go
package apperr

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// Code identifies a failure category that clients can branch on.
type Code string

const (
	CodeValidation              Code = "VALIDATION_ERROR"
	CodeEmptyCart               Code = "EMPTY_CART"
	CodeOutOfStock              Code = "OUT_OF_STOCK"
	CodeAlienUnavailable        Code = "ALIEN_UNAVAILABLE"
	CodePaymentFailed           Code = "PAYMENT_FAILED"
	CodeCannotCancelOrder       Code = "CANNOT_CANCEL_ORDER"
	CodeInvalidStatusTransition Code = "INVALID_STATUS_TRANSITION"

	CodeNoToken            Code = "NO_TOKEN"
	CodeInvalidToken       Code = "INVALID_TOKEN"
	CodeTokenExpired       Code = "TOKEN_EXPIRED"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"

	CodeAdminRequired        Code = "ADMIN_REQUIRED"
	CodeCannotRemoveOwnAdmin Code = "CANNOT_REMOVE_OWN_ADMIN"

	CodeAlienNotFound Code = "ALIEN_NOT_FOUND"
	CodeOrderNotFound Code = "ORDER_NOT_FOUND"
	CodeUserNotFound  Code = "USER_NOT_FOUND"

	CodeUserExists        Code = "USER_EXISTS"
	CodeAlreadyInWishlist Code = "ALREADY_IN_WISHLIST"
	CodeDuplicateField    Code = "DUPLICATE_FIELD"

	CodeInternal Code = "INTERNAL_ERROR"
)

// Error is the single error shape the API surfaces. Every failure that
// reaches a handler is either an *Error or gets wrapped into one by the
// error middleware.
type Error struct {
	Code    Code        `json:"code"`
	Status  int         `json:"-"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetails attaches field-level detail (validation errors etc.).
func (e *Error) WithDetails(details interface{}) *Error {
	clone := *e
	clone.Details = details
	return &clone
}

// WithCause attaches the underlying error without leaking it to clients.
func (e *Error) WithCause(err error) *Error {
	clone := *e
	clone.cause = err
	return &clone
}

// New creates an application error with an explicit HTTP status.
func New(code Code, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Common constructors follow the taxonomy: validation (400), auth (401),
// authorization (403), not-found (404), conflict (409), business rule (400),
// unexpected (500).

func Validation(message string) *Error {
	return New(CodeValidation, http.StatusBadRequest, message)
}

func BusinessRule(code Code, message string) *Error {
	return New(code, http.StatusBadRequest, message)
}

func Unauthorized(code Code, message string) *Error {
	return New(code, http.StatusUnauthorized, message)
}

func Forbidden(code Code, message string) *Error {
	return New(code, http.StatusForbidden, message)
}

func NotFound(code Code, message string) *Error {
	return New(code, http.StatusNotFound, message)
}

func Conflict(code Code, message string) *Error {
	return New(code, http.StatusConflict, message)
}

// Internal wraps an unexpected error behind a generic message. Database
// unique violations are recognized and surface as DUPLICATE_FIELD
// conflicts instead of opaque 500s.
func Internal(err error) *Error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return Conflict(CodeDuplicateField, "A record with that value already exists").WithCause(err)
	}
	return &Error{
		Code:    CodeInternal,
		Status:  http.StatusInternalServerError,
		Message: "An unexpected error occurred",
		cause:   err,
	}
}

// From extracts an *Error from err, or wraps it as an internal error.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
