package httputil

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/thumbgate/internal/domain/entity"
	"github.com/marcos-nsantos/thumbgate/internal/pkg/apperror"
)

const (
	PrincipalKey = "principal"
	RequestIDKey = "request_id"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{
		Error:     message,
		RequestID: GetRequestID(c),
	})
}

func ErrorWithCode(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: GetRequestID(c),
	})
}

func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:     "internal server error",
		Code:      "INTERNAL_ERROR",
		RequestID: GetRequestID(c),
	})
}

func HandleError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.StatusCode, ErrorResponse{
			Error:     appErr.Message,
			Code:      appErr.Code,
			RequestID: GetRequestID(c),
		})
		return
	}
	InternalError(c)
}

// HandleErrorText writes the mapped error message as a plain text body.
func HandleErrorText(c *gin.Context, err error) {
	appErr := apperror.FromDomain(err)
	c.String(appErr.StatusCode, appErr.Message)
}

func GetPrincipal(c *gin.Context) (entity.Principal, bool) {
	if v, exists := c.Get(PrincipalKey); exists {
		principal, ok := v.(entity.Principal)
		return principal, ok
	}
	return entity.Principal{}, false
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
