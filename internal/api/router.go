package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-Id"

// RouteRegistrar is implemented by components that add routes to the router.
type RouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

// RouterOptions configures the middleware stack built by NewRouter.
type RouterOptions struct {
	Logger         zerolog.Logger
	AllowedOrigins []string
	RequestTimeout time.Duration
	MaxBodyBytes   int64
}

// NewRouter returns the API router with logging, CORS, body limit and timeout
// middleware installed, plus GET /health.
func NewRouter(opts RouterOptions, registrars ...RouteRegistrar) http.Handler {
	mux := chi.NewRouter()

	mux.Use(middleware.RealIP)
	mux.Use(hlog.NewHandler(opts.Logger))
	mux.Use(requestID)
	mux.Use(hlog.RemoteAddrHandler("remote"))
	mux.Use(hlog.AccessHandler(accessLog))
	mux.Use(middleware.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{RequestIDHeader},
	}))
	if opts.MaxBodyBytes > 0 {
		mux.Use(middleware.RequestSize(opts.MaxBodyBytes))
	}
	if opts.RequestTimeout > 0 {
		mux.Use(middleware.Timeout(opts.RequestTimeout))
	}

	for _, registrar := range registrars {
		registrar.RegisterRoutes(mux)
	}

	mux.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, Response{Error: "not found"})
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, Response{Error: "method not allowed"})
	})

	return mux
}

// requestID reuses an inbound X-Request-Id or mints a UUID, echoes it on the
// response and adds it to the request logger.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		zerolog.Ctx(r.Context()).UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", id)
		})
		next.ServeHTTP(w, r)
	})
}

func accessLog(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
}
