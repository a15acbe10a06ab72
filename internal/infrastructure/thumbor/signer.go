package thumbor

import (
	"github.com/marcos-nsantos/thumbgate/internal/domain/valueobject"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/metrics"
)

// Signer produces the signed path segment for a normalized reference.
type Signer struct {
	crypto *CryptoURL
}

func NewSigner(key string) *Signer {
	return &Signer{crypto: NewCryptoURL(key)}
}

func (s *Signer) Sign(normalizedPath string, sourceType valueobject.SourceType, dims valueobject.Dimensions) string {
	req := valueobject.NewSigningRequest(ComposeImageURL(normalizedPath, sourceType), dims)
	metrics.RecordSignedURL(sourceType.Tag())
	return s.crypto.Generate(req)
}
