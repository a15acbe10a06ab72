package valueobject

import (
	"fmt"

	"github.com/marcos-nsantos/thumbgate/internal/domain"
)

const (
	SizeOriginal  = "original"
	SizeThumbnail = "thumbnail"

	ThumbnailHeight = 100
)

type Dimensions struct {
	Width  uint
	Height uint
}

func NewDimensions(width, height uint) Dimensions {
	return Dimensions{Width: width, Height: height}
}

// ParseSizeToken accepts only the public size tokens.
func ParseSizeToken(token string) (Dimensions, error) {
	switch token {
	case SizeOriginal:
		return Dimensions{}, nil
	case SizeThumbnail:
		return Dimensions{Width: 0, Height: ThumbnailHeight}, nil
	default:
		return Dimensions{}, domain.ErrInvalidSizeToken
	}
}

func (d Dimensions) IsOriginal() bool {
	return d.Width == 0 && d.Height == 0
}

// SizeToken is the public token for d, or its WxH form when no token
// matches.
func (d Dimensions) SizeToken() string {
	switch {
	case d.IsOriginal():
		return SizeOriginal
	case d.Width == 0 && d.Height == ThumbnailHeight:
		return SizeThumbnail
	default:
		return d.String()
	}
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}
