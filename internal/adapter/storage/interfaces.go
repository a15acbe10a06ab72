package storage

import (
	"context"

	"github.com/marcos-nsantos/thumbgate/internal/domain/valueobject"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

// ImageLoader fetches the original bytes of an image from one backend.
// Implementations return domain.ErrNotFound, domain.ErrUnauthorized or
// domain.ErrUpstreamFailure (possibly wrapped).
type ImageLoader interface {
	Load(ctx context.Context, path string) (valueobject.Image, error)
}

type ImageTransformer interface {
	Transform(img valueobject.Image, req valueobject.SigningRequest) (valueobject.Image, error)
}

type ThumbnailCache interface {
	Get(ctx context.Context, key string) (valueobject.Image, bool, error)
	Set(ctx context.Context, key string, img valueobject.Image) error
}
