package domain

import "errors"

var (
	ErrInvalidReference   = errors.New("invalid image reference")
	ErrInvalidSizeToken   = errors.New("invalid size token")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrUpstreamFailure    = errors.New("upstream failure")
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrInvalidSignature   = errors.New("invalid signature")
	ErrProxyDisabled      = errors.New("image proxy disabled")
)
