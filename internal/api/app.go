package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"

	"github.com/nemoai/user-data-api/internal/config"
	"github.com/nemoai/user-data-api/internal/csvproc"
	"github.com/nemoai/user-data-api/internal/httpx"
	"github.com/nemoai/user-data-api/internal/users"
)

// ArchiveStore persists raw uploads and reports bucket readiness.
type ArchiveStore interface {
	Archive(ctx context.Context, content []byte, filename string) (string, error)
	Exists(ctx context.Context) bool
}

// RecordStore bulk-persists parsed rows and reports table readiness.
type RecordStore interface {
	WriteRows(ctx context.Context, rows []csvproc.ParsedRow, sourceKey string) (int, error)
	IsReady(ctx context.Context) bool
}

// Services groups the store clients built once at cold start.
type Services struct {
	Archive ArchiveStore
	Records RecordStore
}

// App holds the application state shared across invocations.
type App struct {
	cfg     config.Config
	log     zerolog.Logger
	users   users.Store
	svc     *Services
	initErr error
}

// New constructs the App. A nil svc together with a non-nil initErr puts the
// CSV endpoints into the degraded ServiceUnavailable mode while the rest of
// the API stays up.
func New(cfg config.Config, log zerolog.Logger, userStore users.Store, svc *Services, initErr error) *App {
	return &App{
		cfg:     cfg,
		log:     log,
		users:   userStore,
		svc:     svc,
		initErr: initErr,
	}
}

// Handle dispatches one API Gateway request to its handler.
func (a *App) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (resp events.APIGatewayV2HTTPResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error().Any("panic", r).Str("path", req.RawPath).Msg("handler panicked")
			resp, err = httpx.ErrorMessage(http.StatusInternalServerError,
				"InternalServerError", "An unexpected error occurred")
		}
	}()

	method := req.RequestContext.HTTP.Method
	path := req.RawPath
	if path == "" {
		path = req.RequestContext.HTTP.Path
	}

	a.log.Debug().Str("method", method).Str("path", path).Msg("dispatching request")

	switch {
	case method == http.MethodGet && path == "/":
		return a.index()
	case method == http.MethodGet && path == "/ping":
		return a.ping()
	case method == http.MethodGet && path == "/hello":
		return a.hello(req)
	case method == http.MethodGet && path == "/status":
		return a.status(ctx)
	case method == http.MethodGet && strings.HasPrefix(path, "/users/"):
		return a.getUser(req, strings.TrimPrefix(path, "/users/"))
	case method == http.MethodPost && path == "/users":
		return a.createUser(req)
	case method == http.MethodPost && path == "/csv-preview":
		return a.csvPreview(ctx, req)
	case method == http.MethodPost && path == "/csv-submit":
		return a.csvSubmit(ctx, req)
	}

	return httpx.ErrorMessage(http.StatusNotFound, "NotFound", "Route not found")
}

// header retrieves a header value in a case-insensitive manner.
func header(h map[string]string, key string) string {
	lk := strings.ToLower(key)
	for k, v := range h {
		if strings.ToLower(k) == lk {
			return v
		}
	}
	return ""
}
