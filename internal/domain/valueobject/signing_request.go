package valueobject

const NoUpscaleFilter = "no_upscale()"

type SigningRequest struct {
	ImageURL string
	Width    uint
	Height   uint
	Smart    bool
	Filters  []string
}

// NewSigningRequest builds the request used for every thumbnail: smart
// cropping on, upscaling off.
func NewSigningRequest(imageURL string, dims Dimensions) SigningRequest {
	return SigningRequest{
		ImageURL: imageURL,
		Width:    dims.Width,
		Height:   dims.Height,
		Smart:    true,
		Filters:  []string{NoUpscaleFilter},
	}
}

func (r SigningRequest) Dimensions() Dimensions {
	return NewDimensions(r.Width, r.Height)
}

func (r SigningRequest) HasFilter(name string) bool {
	for _, f := range r.Filters {
		if f == name {
			return true
		}
	}
	return false
}
