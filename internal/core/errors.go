// MentorHive | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// AppError is a business failure that maps onto an HTTP status and a stable
// machine-readable code. Handlers translate everything else to a 500.
type AppError struct {
	Err     error
	Message string
	Status  int
	Code    string
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(err error, message string, status int, code string) *AppError {
	return &AppError{
		Err:     err,
		Message: message,
		Status:  status,
		Code:    code,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func NoTokenError() *AppError {
	return NewAppError(
		ErrUnauthorized,
		"authentication token required",
		http.StatusUnauthorized,
		"NO_TOKEN",
	)
}

func TokenExpiredError() *AppError {
	return NewAppError(
		ErrTokenExpired,
		"token has expired",
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
	)
}

func TokenInvalidError() *AppError {
	return NewAppError(
		ErrTokenInvalid,
		"invalid authentication token",
		http.StatusUnauthorized,
		"INVALID_TOKEN",
	)
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(
		ErrUnauthorized,
		message,
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
	)
}

func ForbiddenError(message string) *AppError {
	return NewAppError(
		ErrForbidden,
		message,
		http.StatusForbidden,
		"INSUFFICIENT_PERMISSIONS",
	)
}

// NotFoundError derives its code from the missing entity kind, e.g.
// "doubt" -> DOUBT_NOT_FOUND.
func NotFoundError(kind string) *AppError {
	code := strings.ToUpper(strings.ReplaceAll(kind, " ", "_")) + "_NOT_FOUND"
	return NewAppError(
		ErrNotFound,
		kind+" not found",
		http.StatusNotFound,
		code,
	)
}

func DuplicateError(field string) *AppError {
	return NewAppError(
		ErrDuplicateKey,
		fmt.Sprintf("%s already exists", field),
		http.StatusConflict,
		strings.ToUpper(field)+"_EXISTS",
	)
}

func InvalidSecretKeyError() *AppError {
	return NewAppError(
		ErrForbidden,
		"invalid secret key for admin registration",
		http.StatusForbidden,
		"INVALID_SECRET_KEY",
	)
}
