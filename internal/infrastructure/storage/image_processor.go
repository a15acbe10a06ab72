package storage

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/marcos-nsantos/thumbgate/internal/domain/valueobject"
)

const (
	MaxImageWidth  = 4096
	MaxImageHeight = 4096
	JPEGQuality    = 85
)

// ImageProcessor resizes loaded originals according to a signing request.
type ImageProcessor struct {
	maxWidth  int
	maxHeight int
	quality   int
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{
		maxWidth:  MaxImageWidth,
		maxHeight: MaxImageHeight,
		quality:   JPEGQuality,
	}
}

// Transform returns img unchanged when no resize is needed or the body is not
// a decodable still image.
func (p *ImageProcessor) Transform(img valueobject.Image, req valueobject.SigningRequest) (valueobject.Image, error) {
	if req.Dimensions().IsOriginal() {
		return img, nil
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(img.Body))
	if err != nil || format == "gif" {
		return img, nil
	}

	width, height := p.targetSize(cfg.Width, cfg.Height, req)
	if width == cfg.Width && height == cfg.Height {
		return img, nil
	}

	src, err := imaging.Decode(bytes.NewReader(img.Body), imaging.AutoOrientation(true))
	if err != nil {
		return img, nil
	}

	var dst image.Image
	switch {
	case width == 0 || height == 0:
		dst = imaging.Resize(src, width, height, imaging.Lanczos)
	case req.Smart:
		dst = imaging.Fill(src, width, height, imaging.Center, imaging.Lanczos)
	default:
		dst = imaging.Resize(src, width, height, imaging.Lanczos)
	}

	outFormat, err := imaging.FormatFromExtension(format)
	if err != nil {
		outFormat = imaging.JPEG
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, dst, outFormat, imaging.JPEGQuality(p.quality)); err != nil {
		return valueobject.Image{}, fmt.Errorf("encoding %s: %w", format, err)
	}

	contentType := "image/" + format
	if outFormat == imaging.JPEG {
		contentType = "image/jpeg"
	}
	return valueobject.NewImage(buf.Bytes(), contentType), nil
}

// targetSize applies the processor bounds and the no_upscale() filter. A zero
// side keeps the aspect ratio.
func (p *ImageProcessor) targetSize(srcWidth, srcHeight int, req valueobject.SigningRequest) (int, int) {
	width, height := int(req.Width), int(req.Height)
	if width > p.maxWidth {
		width = p.maxWidth
	}
	if height > p.maxHeight {
		height = p.maxHeight
	}

	if req.HasFilter(valueobject.NoUpscaleFilter) {
		if width > srcWidth || height > srcHeight {
			return srcWidth, srcHeight
		}
	}

	if width == 0 && height == srcHeight || height == 0 && width == srcWidth {
		return srcWidth, srcHeight
	}
	return width, height
}
