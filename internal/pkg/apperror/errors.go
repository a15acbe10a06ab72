package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/marcos-nsantos/thumbgate/internal/domain"
)

const (
	MsgInvalidSize   = "Invalid size."
	MsgNotAuthorized = "You are not authorized to view this file."
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
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

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: http.StatusNotFound,
	}
}

func BadRequest(message string) *AppError {
	return &AppError{
		Code:       "BAD_REQUEST",
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func Unauthorized(message string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func Forbidden(message string) *AppError {
	return &AppError{
		Code:       "FORBIDDEN",
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

func BadGateway(message string) *AppError {
	return &AppError{
		Code:       "BAD_GATEWAY",
		Message:    message,
		StatusCode: http.StatusBadGateway,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "an internal error occurred",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// FromDomain maps a domain sentinel to its HTTP form. Unknown errors become
// internal errors.
func FromDomain(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var mapped *AppError
	switch {
	case errors.Is(err, domain.ErrInvalidSizeToken):
		mapped = New("INVALID_SIZE", MsgInvalidSize, http.StatusForbidden)
	case errors.Is(err, domain.ErrForbidden):
		mapped = Forbidden(MsgNotAuthorized)
	case errors.Is(err, domain.ErrInvalidReference):
		mapped = BadRequest("invalid image reference")
	case errors.Is(err, domain.ErrInvalidSignature):
		mapped = New("INVALID_SIGNATURE", "invalid signature", http.StatusForbidden)
	case errors.Is(err, domain.ErrTokenInvalid):
		mapped = Unauthorized("invalid or expired token")
	case errors.Is(err, domain.ErrNotFound):
		mapped = NotFound("image")
	case errors.Is(err, domain.ErrUnauthorized):
		mapped = Unauthorized("image source denied access")
	case errors.Is(err, domain.ErrUpstreamFailure):
		mapped = BadGateway("image source unavailable")
	case errors.Is(err, domain.ErrProxyDisabled):
		mapped = New("PROXY_DISABLED", "image proxy disabled", http.StatusServiceUnavailable)
	default:
		return Internal(err)
	}
	mapped.Err = err
	return mapped
}
