package server

import (
	"net/http"
	"time"

	"fjacquet/pacs2mt/internal/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the API routes behind the standard middleware stack.
func NewRouter(h *Handler, logger logging.Logger, timeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	r.Get("/healthz", h.Health)
	r.Post("/api/convert", h.Convert)

	return r
}

// requestLogger logs one line per request through logger.
func requestLogger(logger logging.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("Request served",
				logging.F(logging.FieldMethod, r.Method),
				logging.F(logging.FieldPath, r.URL.Path),
				logging.F(logging.FieldStatus, ww.Status()),
				logging.F(logging.FieldRequestID, middleware.GetReqID(r.Context())),
				logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))
		})
	}
}
