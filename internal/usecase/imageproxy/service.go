package imageproxy

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/marcos-nsantos/thumbgate/internal/adapter/storage"
	"github.com/marcos-nsantos/thumbgate/internal/domain"
	"github.com/marcos-nsantos/thumbgate/internal/domain/valueobject"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/thumbor"
)

//go:generate mockgen -source=service.go -destination=../../mocks/imageproxy_mocks.go -package=mocks

type Verifier interface {
	Verify(signedPath string) (string, error)
}

type Loader interface {
	Load(ctx context.Context, reference string) valueobject.LoaderOutcome
}

type Service struct {
	verifier    Verifier
	loader      Loader
	transformer storage.ImageTransformer
	cache       storage.ThumbnailCache
	group       singleflight.Group
	logger      *zap.Logger
}

func NewService(
	verifier Verifier,
	loader Loader,
	transformer storage.ImageTransformer,
	cache storage.ThumbnailCache,
	logger *zap.Logger,
) *Service {
	return &Service{
		verifier:    verifier,
		loader:      loader,
		transformer: transformer,
		cache:       cache,
		logger:      logger,
	}
}

// Render verifies a signed path, loads the referenced image and applies the
// requested transformation. Concurrent renders of the same path share one
// load, which outlives the cancellation of whichever caller started it.
func (s *Service) Render(ctx context.Context, signedPath string) (valueobject.Image, error) {
	plain, err := s.verifier.Verify(signedPath)
	if err != nil {
		return valueobject.Image{}, err
	}

	req, err := thumbor.ParsePlainURL(plain)
	if err != nil {
		return valueobject.Image{}, err
	}

	key := cacheKey(plain)
	if img, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("thumbnail cache read failed", zap.Error(err))
	} else if ok {
		return img, nil
	}

	v, err, shared := s.group.Do(key, func() (any, error) {
		return s.render(context.WithoutCancel(ctx), key, req)
	})
	if err != nil {
		return valueobject.Image{}, err
	}
	if shared {
		s.logger.Debug("shared in-flight render", zap.String("key", key))
	}
	return v.(valueobject.Image), nil
}

func (s *Service) render(ctx context.Context, key string, req valueobject.SigningRequest) (valueobject.Image, error) {
	outcome := s.loader.Load(ctx, req.ImageURL)
	if !outcome.Successful {
		return valueobject.Image{}, outcomeError(outcome)
	}

	img, err := s.transformer.Transform(outcome.Image(), req)
	if err != nil {
		return valueobject.Image{}, fmt.Errorf("transforming image: %w", err)
	}

	if err := s.cache.Set(ctx, key, img); err != nil {
		s.logger.Warn("thumbnail cache write failed", zap.Error(err))
	}
	return img, nil
}

func outcomeError(outcome valueobject.LoaderOutcome) error {
	if err := outcome.ErrorKind.Err(); err != nil {
		return err
	}
	return domain.ErrUpstreamFailure
}

func cacheKey(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
