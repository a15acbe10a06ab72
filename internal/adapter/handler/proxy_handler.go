package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/thumbgate/internal/pkg/apperror"
	"github.com/marcos-nsantos/thumbgate/internal/pkg/httputil"
)

const proxyCacheControl = "public, max-age=86400"

type ProxyHandler struct {
	proxySvc    ImageProxyService
	routePrefix string
}

func NewProxyHandler(proxySvc ImageProxyService, routePrefix string) *ProxyHandler {
	return &ProxyHandler{proxySvc: proxySvc, routePrefix: strings.TrimSuffix(routePrefix, "/")}
}

// Serve renders the image behind a signed proxy path. The signature covers the
// path exactly as the client sent it, so the escaped form is used rather than
// the decoded route parameter.
func (h *ProxyHandler) Serve(c *gin.Context) {
	signedPath := strings.TrimPrefix(c.Request.URL.EscapedPath(), h.routePrefix)
	if signedPath == "" || signedPath == "/" {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "BAD_REQUEST", "missing signed path")
		return
	}

	img, err := h.proxySvc.Render(c.Request.Context(), signedPath)
	if err != nil {
		appErr := apperror.FromDomain(err)
		if appErr.StatusCode >= http.StatusInternalServerError {
			_ = c.Error(err)
		}
		httputil.HandleError(c, appErr)
		return
	}

	c.Header("Cache-Control", proxyCacheControl)
	c.Data(http.StatusOK, img.ContentType, img.Body)
}
