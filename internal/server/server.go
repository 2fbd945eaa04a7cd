package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/CrashSite_Go/internal/database"
	"github.com/osse101/CrashSite_Go/internal/game"
	"github.com/osse101/CrashSite_Go/internal/handler"
	"github.com/osse101/CrashSite_Go/internal/job"
	"github.com/osse101/CrashSite_Go/internal/logger"
	"github.com/osse101/CrashSite_Go/internal/metrics"
	"github.com/osse101/CrashSite_Go/internal/runner"
	"github.com/osse101/CrashSite_Go/internal/save"
	"github.com/osse101/CrashSite_Go/internal/sse"
)

// Deps are the services the HTTP API serves. DBPool and Saver may be nil.
type Deps struct {
	Port           int
	APIKey         string
	TrustedProxies []string

	DBPool  database.Pool
	Manager *game.Manager
	Runner  runner.Service
	Jobs    job.Service
	Saver   save.Service
	Rewards handler.RewardSource
	Hub     *sse.Hub
	Journal handler.JournalSource
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(deps Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", deps.Port),
			Handler:           NewRouter(deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router. Middleware runs outermost first.
func NewRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	detector := NewSuspiciousActivityDetector()
	if deps.APIKey == "" {
		slog.Warn(LogMsgAuthDisabled)
	}

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(deps.APIKey, deps.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(deps.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	gameHandler := handler.NewGameHandler(deps.Manager, deps.Runner, deps.Saver, deps.Rewards)
	jobHandler := handler.NewJobHandler(deps.Jobs)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", gameHandler.HandleGetState)
		r.Get("/story/{key}", gameHandler.HandleGetStory)
		r.Post("/save", gameHandler.HandleSave)

		r.Route("/actions", func(r chi.Router) {
			r.Get("/", gameHandler.HandleListActions)
			r.Post("/cancel", gameHandler.HandleCancelAction)
			r.Post("/{id}/start", gameHandler.HandleStartAction)
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", jobHandler.HandleListJobs)
			r.Post("/{id}/assign", jobHandler.HandleAssign)
			r.Post("/{id}/unassign", jobHandler.HandleUnassign)
		})

		if deps.Journal != nil {
			r.Get("/journal", handler.NewJournalHandler(deps.Journal).HandleRecent)
		}
		if deps.Hub != nil {
			r.Get("/events", sse.Handler(deps.Hub))
		}
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
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
		statusCode:     http.StatusOK,
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

// Flush lets the event stream push through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitized := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitized[k] = []string{RedactedValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

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

// Start starts the server. It returns http.ErrServerClosed after Stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
