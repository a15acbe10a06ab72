package valueobject

type SourceType int

const (
	SourceTypeInvalid SourceType = iota
	SourceTypeLocal
	SourceTypeRemote
	SourceTypeExternal
)

// Wire tags understood by the image proxy.
const (
	LocalFileTag = "local_file"
	S3Tag        = "s3"
	ExternalTag  = "external"
)

func (t SourceType) Tag() string {
	switch t {
	case SourceTypeLocal:
		return LocalFileTag
	case SourceTypeRemote:
		return S3Tag
	case SourceTypeExternal:
		return ExternalTag
	default:
		return ""
	}
}

func (t SourceType) String() string {
	if tag := t.Tag(); tag != "" {
		return tag
	}
	return "invalid"
}

// ParseSourceType maps a wire tag back to a SourceType. Unknown tags yield
// SourceTypeInvalid.
func ParseSourceType(tag string) SourceType {
	switch tag {
	case LocalFileTag:
		return SourceTypeLocal
	case S3Tag:
		return SourceTypeRemote
	case ExternalTag:
		return SourceTypeExternal
	default:
		return SourceTypeInvalid
	}
}
