package request

type ThumbnailRequest struct {
	Size string `form:"size" binding:"required,max=32"`
}
