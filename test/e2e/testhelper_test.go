package e2e_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/thumbgate/internal/adapter/handler"
	pgRepo "github.com/marcos-nsantos/thumbgate/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/thumbgate/internal/domain/entity"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/auth"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/cache"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/camo"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/database"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/loader"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/server"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/storage"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/thumbor"
	"github.com/marcos-nsantos/thumbgate/internal/usecase/imageproxy"
	"github.com/marcos-nsantos/thumbgate/internal/usecase/thumbnail"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "testdb"
	testJWTSecret  = "test-secret-key-for-e2e-tests"
	testThumborKey = "test-thumbor-key"
	routePrefix    = "/thumbor"
)

type TestApp struct {
	API         *httptest.Server
	Proxy       *httptest.Server
	Origin      *httptest.Server
	Pool        *pgxpool.Pool
	Container   testcontainers.Container
	Attachments *pgRepo.AttachmentRepo
	FileRoot    string
	jwtSvc      *auth.JWTService
	httpClient  *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	err = database.RunMigrations(ctx, pool, getMigrationsPath())
	require.NoError(t, err)

	logger, _ := zap.NewDevelopment()

	// Plain http origin for external references.
	pic := testPNG(t, 200, 150)
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pic.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pic)
	}))

	// Image proxy
	fileRoot := t.TempDir()
	dispatcher := imageproxy.NewDispatcher(imageproxy.Loaders{
		File: loader.NewFileLoader(fileRoot, 1<<20),
		HTTP: loader.NewHTTPLoader(&http.Client{Timeout: 5 * time.Second}, 1<<20, "thumbgate-e2e"),
	}, 5*time.Second, logger)

	memCache, err := cache.NewMemoryThumbnailCache(16, time.Minute)
	require.NoError(t, err)

	proxySvc := imageproxy.NewService(
		thumbor.NewCryptoURL(testThumborKey),
		dispatcher,
		storage.NewImageProcessor(),
		memCache,
		logger,
	)
	proxyRouter := server.NewProxyRouter(server.ProxyRouterConfig{
		ProxyHandler: handler.NewProxyHandler(proxySvc, routePrefix),
		RoutePrefix:  routePrefix,
		Logger:       logger,
		Environment:  "test",
	})
	proxy := httptest.NewServer(proxyRouter.Engine())

	// API, signing for the proxy above
	attachmentRepo := pgRepo.NewAttachmentRepo(pool)
	jwtSvc := auth.NewJWTService(testJWTSecret, 15*time.Minute)

	thumbnailSvc := thumbnail.NewService(
		attachmentRepo,
		thumbnail.NewSourceClassifier(true),
		thumbor.NewSigner(testThumborKey),
		camo.NewRewriter("https://camo.example.com/", "camo-key"),
		thumbnail.Settings{
			ProxyHost:   proxy.URL,
			Colocated:   false,
			RoutePrefix: routePrefix,
		},
		logger,
	)

	router := server.NewRouter(server.RouterConfig{
		ThumbnailHandler: handler.NewThumbnailHandler(thumbnailSvc),
		AuthMiddleware:   middleware.NewAuthMiddleware(jwtSvc),
		Logger:           logger,
		Environment:      "test",
	})
	api := httptest.NewServer(router.Engine())

	return &TestApp{
		API:         api,
		Proxy:       proxy,
		Origin:      origin,
		Pool:        pool,
		Container:   pgContainer,
		Attachments: attachmentRepo,
		FileRoot:    fileRoot,
		jwtSvc:      jwtSvc,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.API.Close()
	app.Proxy.Close()
	app.Origin.Close()
	app.Pool.Close()

	ctx := context.Background()
	if err := app.Container.Terminate(ctx); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) token(t *testing.T, principal entity.Principal) string {
	t.Helper()
	token, _, err := app.jwtSvc.GenerateAccessToken(principal)
	require.NoError(t, err)
	return token
}

// storeUpload writes an image under the proxy file root and registers its
// attachment row.
func (app *TestApp) storeUpload(t *testing.T, pathID string, owner entity.Principal, body []byte) *entity.Attachment {
	t.Helper()

	full := filepath.Join(app.FileRoot, imageproxy.LocalRootPrefix, filepath.FromSlash(pathID))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, body, 0o644))

	attachment := entity.NewAttachment(pathID, owner.UserID, owner.RealmID, int64(len(body)))
	require.NoError(t, app.Attachments.Create(context.Background(), attachment))
	return attachment
}

func (app *TestApp) thumbnail(t *testing.T, reference, size, token string) *http.Response {
	t.Helper()

	url := app.API.URL + "/thumbnail/" + reference
	if size != "" {
		url += "?size=" + size
	}
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.httpClient.Do(req)
	require.NoError(t, err)
	return resp
}

func (app *TestApp) fetch(t *testing.T, url string) *http.Response {
	t.Helper()

	resp, err := app.httpClient.Get(url)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return body
}

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := range width {
		for y := range height {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// getMigrationsPath returns the absolute path to the migrations directory
func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)
	return filepath.Join(testDir, "..", "..", "migrations")
}
