package thumbnail_test

import "github.com/marcos-nsantos/thumbgate/internal/domain/valueobject"

func thumbnailDims() valueobject.Dimensions {
	dims, _ := valueobject.ParseSizeToken(valueobject.SizeThumbnail)
	return dims
}

func originalDims() valueobject.Dimensions {
	dims, _ := valueobject.ParseSizeToken(valueobject.SizeOriginal)
	return dims
}
