package valueobject

type Image struct {
	Body        []byte
	ContentType string
}

func NewImage(body []byte, contentType string) Image {
	return Image{Body: body, ContentType: contentType}
}
