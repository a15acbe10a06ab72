package thumbnail

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/thumbgate/internal/adapter/repository"
	"github.com/marcos-nsantos/thumbgate/internal/domain"
	"github.com/marcos-nsantos/thumbgate/internal/domain/entity"
	"github.com/marcos-nsantos/thumbgate/internal/domain/valueobject"
)

//go:generate mockgen -source=service.go -destination=../../mocks/thumbnail_mocks.go -package=mocks

type Signer interface {
	Sign(normalizedPath string, sourceType valueobject.SourceType, dims valueobject.Dimensions) string
}

// SafeContentRewriter routes plain http content through a content proxy.
type SafeContentRewriter interface {
	Rewrite(rawURL string) string
}

type Settings struct {
	// ProxyHost empty disables signing.
	ProxyHost string
	// Colocated keeps generated URLs relative to the current origin.
	Colocated   bool
	RoutePrefix string
}

type Service struct {
	attachments repository.AttachmentRepository
	classifier  *SourceClassifier
	signer      Signer
	rewriter    SafeContentRewriter
	settings    Settings
	logger      *zap.Logger
}

func NewService(
	attachments repository.AttachmentRepository,
	classifier *SourceClassifier,
	signer Signer,
	rewriter SafeContentRewriter,
	settings Settings,
	logger *zap.Logger,
) *Service {
	if settings.RoutePrefix == "" {
		settings.RoutePrefix = "/thumbor"
	}
	return &Service{
		attachments: attachments,
		classifier:  classifier,
		signer:      signer,
		rewriter:    rewriter,
		settings:    settings,
		logger:      logger,
	}
}

type ResolveInput struct {
	Principal entity.Principal
	Reference string
	Size      string
}

// Resolve validates the request and returns the URL the caller should be
// redirected to.
func (s *Service) Resolve(ctx context.Context, input ResolveInput) (string, error) {
	dims, err := valueobject.ParseSizeToken(input.Size)
	if err != nil {
		return "", err
	}

	path := strings.TrimPrefix(input.Reference, "/")
	if path == "" {
		return "", fmt.Errorf("%w: empty reference", domain.ErrInvalidReference)
	}

	ref := s.classifier.Reference(path, input.Size)
	if err := s.authorize(ctx, input.Principal, ref); err != nil {
		return "", err
	}

	return s.referenceURL(ref, dims)
}

func (s *Service) authorize(ctx context.Context, principal entity.Principal, ref valueobject.ImageReference) error {
	if !ref.IsUpload() {
		return nil
	}

	attachment, err := s.attachments.GetByPathID(ctx, ref.PathID())
	if err != nil {
		if errors.Is(err, domain.ErrAttachmentNotFound) {
			return domain.ErrForbidden
		}
		return fmt.Errorf("looking up attachment: %w", err)
	}

	if !attachment.CanBeViewedBy(principal.UserID, principal.RealmID) {
		s.logger.Info("thumbnail access denied",
			zap.String("path_id", ref.PathID()),
			zap.String("user_id", principal.UserID.String()),
		)
		return domain.ErrForbidden
	}
	return nil
}

// GenerateURL builds the thumbnail URL for an already authorized path.
func (s *Service) GenerateURL(path string, dims valueobject.Dimensions) (string, error) {
	return s.referenceURL(s.classifier.Reference(path, dims.SizeToken()), dims)
}

func (s *Service) referenceURL(ref valueobject.ImageReference, dims valueobject.Dimensions) (string, error) {
	if s.settings.ProxyHost == "" {
		return s.unproxiedURL(ref.RawPath), nil
	}

	if ref.IsStatic() {
		return "/" + ref.RawPath, nil
	}

	target := ref.RawPath
	if ref.IsUpload() {
		target = ref.PathID()
	}

	normalized, err := Normalize(target)
	if err != nil {
		return "", err
	}

	thumbnailURL := s.settings.RoutePrefix + s.signer.Sign(normalized, ref.SourceType, dims)
	if s.settings.Colocated {
		return thumbnailURL, nil
	}
	return joinURL(s.settings.ProxyHost, thumbnailURL)
}

func (s *Service) unproxiedURL(path string) string {
	switch {
	case strings.HasPrefix(path, "https"):
		return path
	case strings.HasPrefix(path, "http"):
		return s.rewriter.Rewrite(path)
	default:
		return "/" + path
	}
}

func joinURL(base, ref string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parsing proxy host: %w", err)
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("parsing thumbnail path: %w", err)
	}
	return baseURL.ResolveReference(refURL).String(), nil
}
