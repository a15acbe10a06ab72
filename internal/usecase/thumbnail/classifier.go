package thumbnail

import (
	"strings"

	"github.com/marcos-nsantos/thumbgate/internal/domain/valueobject"
)

// SourceClassifier decides where an image reference lives.
type SourceClassifier struct {
	localUploads bool
}

func NewSourceClassifier(localUploads bool) *SourceClassifier {
	return &SourceClassifier{localUploads: localUploads}
}

func (c *SourceClassifier) Classify(rawPath string) valueobject.SourceType {
	if !strings.HasPrefix(rawPath, valueobject.UploadPrefix) {
		return valueobject.SourceTypeExternal
	}
	if c.localUploads {
		return valueobject.SourceTypeLocal
	}
	return valueobject.SourceTypeRemote
}

// Reference classifies rawPath and binds it to the requested size token.
func (c *SourceClassifier) Reference(rawPath, sizeToken string) valueobject.ImageReference {
	return valueobject.NewImageReference(rawPath, c.Classify(rawPath), sizeToken)
}
