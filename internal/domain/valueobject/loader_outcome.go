package valueobject

import (
	"errors"

	"github.com/marcos-nsantos/thumbgate/internal/domain"
)

type ErrorKind int

const (
	ErrorKindNone ErrorKind = iota
	ErrorKindNotFound
	ErrorKindUnauthorized
	ErrorKindUpstreamFailure
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindNotFound:
		return "not_found"
	case ErrorKindUnauthorized:
		return "unauthorized"
	case ErrorKindUpstreamFailure:
		return "upstream_failure"
	default:
		return "none"
	}
}

// Err returns the domain error matching the kind, nil for ErrorKindNone.
func (k ErrorKind) Err() error {
	switch k {
	case ErrorKindNotFound:
		return domain.ErrNotFound
	case ErrorKindUnauthorized:
		return domain.ErrUnauthorized
	case ErrorKindUpstreamFailure:
		return domain.ErrUpstreamFailure
	default:
		return nil
	}
}

type LoaderOutcome struct {
	Successful  bool
	ErrorKind   ErrorKind
	Body        []byte
	ContentType string
}

func SuccessOutcome(img Image) LoaderOutcome {
	return LoaderOutcome{
		Successful:  true,
		Body:        img.Body,
		ContentType: img.ContentType,
	}
}

func (o LoaderOutcome) Image() Image {
	return NewImage(o.Body, o.ContentType)
}

func NotFoundOutcome() LoaderOutcome {
	return LoaderOutcome{ErrorKind: ErrorKindNotFound}
}

// FailedOutcome classifies a loader error. Anything that is not a known
// domain error counts as an upstream failure.
func FailedOutcome(err error) LoaderOutcome {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return LoaderOutcome{ErrorKind: ErrorKindNotFound}
	case errors.Is(err, domain.ErrUnauthorized):
		return LoaderOutcome{ErrorKind: ErrorKindUnauthorized}
	default:
		return LoaderOutcome{ErrorKind: ErrorKindUpstreamFailure}
	}
}
