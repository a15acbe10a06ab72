package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/marcos-nsantos/thumbgate/internal/adapter/handler"
	"github.com/marcos-nsantos/thumbgate/internal/domain"
	"github.com/marcos-nsantos/thumbgate/internal/domain/entity"
	"github.com/marcos-nsantos/thumbgate/internal/mocks"
	"github.com/marcos-nsantos/thumbgate/internal/pkg/httputil"
	"github.com/marcos-nsantos/thumbgate/internal/usecase/thumbnail"
)

func thumbnailRouter(h *handler.ThumbnailHandler, principal *entity.Principal) *gin.Engine {
	router := setupRouter()
	router.GET("/thumbnail/*reference", func(c *gin.Context) {
		if principal != nil {
			c.Set(httputil.PrincipalKey, *principal)
		}
		h.Get(c)
	})
	return router
}

func TestThumbnailHandler_Get(t *testing.T) {
	principal := entity.Principal{UserID: uuid.New(), RealmID: 1}

	t.Run("redirects to signed url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mocks.NewMockThumbnailService(ctrl)
		router := thumbnailRouter(handler.NewThumbnailHandler(svc), &principal)

		svc.EXPECT().Resolve(gomock.Any(), thumbnail.ResolveInput{
			Principal: principal,
			Reference: "/user_uploads/1/ab/zulip.jpeg",
			Size:      "thumbnail",
		}).Return("/thumbor/sig=/0x100/smart/filters:no_upscale()/1/ab/zulip.jpeg/source_type/s3", nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/thumbnail/user_uploads/1/ab/zulip.jpeg?size=thumbnail", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/thumbor/sig=/0x100/smart/filters:no_upscale()/1/ab/zulip.jpeg/source_type/s3", w.Header().Get("Location"))
	})

	t.Run("returns forbidden with text body on invalid size", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mocks.NewMockThumbnailService(ctrl)
		router := thumbnailRouter(handler.NewThumbnailHandler(svc), &principal)

		svc.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return("", domain.ErrInvalidSizeToken)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/thumbnail/https://www.google.com/images/srpr/logo4w.png?size=foo", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Invalid size.", w.Body.String())
	})

	t.Run("returns forbidden when size is missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mocks.NewMockThumbnailService(ctrl)
		router := thumbnailRouter(handler.NewThumbnailHandler(svc), &principal)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/thumbnail/user_uploads/1/ab/zulip.jpeg", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Invalid size.", w.Body.String())
	})

	t.Run("returns forbidden when not authorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mocks.NewMockThumbnailService(ctrl)
		router := thumbnailRouter(handler.NewThumbnailHandler(svc), &principal)

		svc.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return("", domain.ErrForbidden)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/thumbnail/user_uploads/1/ab/other.jpeg?size=original", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "You are not authorized to view this file.", w.Body.String())
	})

	t.Run("returns bad request for empty reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mocks.NewMockThumbnailService(ctrl)
		router := thumbnailRouter(handler.NewThumbnailHandler(svc), &principal)

		svc.EXPECT().Resolve(gomock.Any(), gomock.Any()).
			Return("", fmt.Errorf("%w: empty reference", domain.ErrInvalidReference))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/thumbnail/?size=original", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns internal error on repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mocks.NewMockThumbnailService(ctrl)
		router := thumbnailRouter(handler.NewThumbnailHandler(svc), &principal)

		svc.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return("", errors.New("connection refused"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/thumbnail/user_uploads/1/ab/zulip.jpeg?size=original", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("returns unauthorized without principal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mocks.NewMockThumbnailService(ctrl)
		router := thumbnailRouter(handler.NewThumbnailHandler(svc), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/thumbnail/user_uploads/1/ab/zulip.jpeg?size=original", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
