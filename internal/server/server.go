package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/focusnest/focusgate/internal/database"
	"github.com/focusnest/focusgate/internal/handler"
	"github.com/focusnest/focusgate/internal/logger"
	"github.com/focusnest/focusgate/internal/metrics"
)

type Server struct {
	httpServer *http.Server
	db         database.DB
}

// NewServer creates a new Server instance
func NewServer(addr string, db database.DB, h *handler.Handler) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(LoopbackOnlyMiddleware)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(db))

	// Version endpoint (for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/gate/{appID}", func(r chi.Router) {
			r.Get("/", h.HandleGateState)
			r.Post("/tier", h.HandleSelectTier)
			r.Post("/path", h.HandleSwitchPath)
			r.Post("/challenge/answer", h.HandleSubmitAnswer)
			r.Post("/spend", h.HandleSpend)
			r.Post("/session/end", h.HandleEndSession)
		})

		r.Route("/plant", func(r chi.Router) {
			r.Get("/", h.HandlePlantState)
			r.Post("/earn", h.HandleEarn)
			r.Post("/activity", h.HandleEarnActivity)
		})

		r.Get("/adaptive/suggestion", h.HandleAdaptiveSuggestion)

		r.Route("/apps", func(r chi.Router) {
			r.Get("/", h.HandleListApps)
			r.Get("/usage", h.HandleAppUsage)
			r.Put("/locked", h.HandleSetLockedApps)
			r.Get("/permissions", h.HandlePermissions)
			r.Post("/permissions/request", h.HandleRequestPermission)
			r.Post("/lock-service/start", h.HandleStartLockService)
			r.Post("/lock-service/stop", h.HandleStopLockService)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		db: db,
	}
}

// Handler exposes the configured router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
