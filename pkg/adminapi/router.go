package adminapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oryxlabs/realmcore/internal/logger"
	adminMiddleware "github.com/oryxlabs/realmcore/pkg/adminapi/middleware"
	"github.com/oryxlabs/realmcore/pkg/metrics"
)

// NewRouter builds the chi router serving s's admin endpoints, with the
// usual request-ID/real-IP/logger/recoverer/timeout middleware stack.
//
// Routes:
//   - GET  /health                   - liveness, unauthenticated
//   - GET  /mappings                 - current wire Mappings, unauthenticated
//   - GET  /parameters                - last-extracted Parameters, unauthenticated
//   - POST /admin/mappings/reload     - re-extract and hot-swap, JWT bearer
//   - GET  /metrics                   - Prometheus exposition, when enabled
func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", s.handleHealth)
	r.Get("/mappings", s.handleMappings)
	r.Get("/parameters", s.handleParameters)

	r.Route("/admin", func(r chi.Router) {
		r.Use(adminMiddleware.JWTAuth(s.jwtService))
		r.Post("/mappings/reload", s.handleReload)
	})

	if metrics.IsEnabled() {
		r.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
	}

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := middleware.GetReqID(r.Context())

		logger.Debug("adminapi request started",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		logger.Info("adminapi request completed",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).String(),
		)
	})
}
