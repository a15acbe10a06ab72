package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/thumbgate/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/thumbgate/internal/domain"
	"github.com/marcos-nsantos/thumbgate/internal/pkg/apperror"
	"github.com/marcos-nsantos/thumbgate/internal/pkg/httputil"
	"github.com/marcos-nsantos/thumbgate/internal/usecase/thumbnail"
)

type ThumbnailHandler struct {
	thumbnailSvc ThumbnailService
}

func NewThumbnailHandler(thumbnailSvc ThumbnailService) *ThumbnailHandler {
	return &ThumbnailHandler{thumbnailSvc: thumbnailSvc}
}

// Get godoc
//
//	@Summary		Redirect to a thumbnail
//	@Description	Authorizes access to the referenced image and redirects to a signed image proxy URL
//	@Tags			thumbnail
//	@Produce		plain
//	@Security		BearerAuth
//	@Param			reference	path		string	true	"Image reference (user_uploads/..., static/... or an external URL)"
//	@Param			size		query		string	true	"Size token"	Enums(original, thumbnail)
//	@Success		302
//	@Failure		400			{string}	string	"Invalid reference"
//	@Failure		401			{object}	httputil.ErrorResponse
//	@Failure		403			{string}	string	"Invalid size. / You are not authorized to view this file."
//	@Router			/thumbnail/{reference} [get]
func (h *ThumbnailHandler) Get(c *gin.Context) {
	var req request.ThumbnailRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.String(http.StatusForbidden, apperror.MsgInvalidSize)
		return
	}

	principal, ok := httputil.GetPrincipal(c)
	if !ok {
		httputil.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	target, err := h.thumbnailSvc.Resolve(c.Request.Context(), thumbnail.ResolveInput{
		Principal: principal,
		Reference: c.Param("reference"),
		Size:      req.Size,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSizeToken),
			errors.Is(err, domain.ErrForbidden),
			errors.Is(err, domain.ErrInvalidReference):
			httputil.HandleErrorText(c, err)
		default:
			_ = c.Error(err)
			httputil.InternalError(c)
		}
		return
	}

	c.Redirect(http.StatusFound, target)
}
