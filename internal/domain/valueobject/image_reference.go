package valueobject

import "strings"

const (
	UploadPrefix = "user_uploads/"
	StaticPrefix = "static/"
)

// ImageReference is a requested image path with the source type its
// classifier derived for it.
type ImageReference struct {
	RawPath    string
	SourceType SourceType
	SizeToken  string
}

func NewImageReference(rawPath string, sourceType SourceType, sizeToken string) ImageReference {
	return ImageReference{
		RawPath:    rawPath,
		SourceType: sourceType,
		SizeToken:  sizeToken,
	}
}

func (r ImageReference) IsUpload() bool {
	return r.SourceType == SourceTypeLocal || r.SourceType == SourceTypeRemote
}

func (r ImageReference) IsStatic() bool {
	return strings.HasPrefix(r.RawPath, StaticPrefix)
}

// PathID is the storage key of an uploaded file, empty for other references.
func (r ImageReference) PathID() string {
	if !r.IsUpload() {
		return ""
	}
	return strings.TrimPrefix(r.RawPath, UploadPrefix)
}
