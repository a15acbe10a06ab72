package handler

import (
	"context"

	"github.com/marcos-nsantos/thumbgate/internal/domain/valueobject"
	"github.com/marcos-nsantos/thumbgate/internal/usecase/thumbnail"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type ThumbnailService interface {
	Resolve(ctx context.Context, input thumbnail.ResolveInput) (string, error)
}

type ImageProxyService interface {
	Render(ctx context.Context, signedPath string) (valueobject.Image, error)
}
