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

	"github.com/greenlegacy-ng/greenlegacy/internal/donation"
	"github.com/greenlegacy-ng/greenlegacy/internal/eventlog"
	"github.com/greenlegacy-ng/greenlegacy/internal/handler"
	"github.com/greenlegacy-ng/greenlegacy/internal/logger"
	"github.com/greenlegacy-ng/greenlegacy/internal/metrics"
	"github.com/greenlegacy-ng/greenlegacy/internal/repository"
	"github.com/greenlegacy-ng/greenlegacy/internal/sse"
	"github.com/greenlegacy-ng/greenlegacy/internal/stats"
	"github.com/greenlegacy-ng/greenlegacy/internal/tree"
)

// Options holds the transport-level settings for the HTTP server
type Options struct {
	Port           int
	AdminAPIKey    string
	TrustedProxies []string
	RateLimit      int
	MapAccessToken string
	Version        string
	Environment    string
}

// Services are the dependencies the routes dispatch to
type Services struct {
	Trees     tree.Service
	Donations donation.Service
	Stats     stats.Service
	EventLog  eventlog.Service
	Store     repository.Pinger
	Hub       *sse.Hub
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(opts.RateLimit, RateLimitWindow)

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.Store))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion(opts.Version, opts.Environment))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	admin := AdminAuthMiddleware(opts.AdminAPIKey, opts.TrustedProxies, detector)
	api := apiRoutes(opts, svc, admin)
	r.Route("/api/v1", api)
	// Unversioned alias kept for the existing site frontend
	r.Route("/api", api)

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: r,
	}
}

func apiRoutes(opts Options, svc Services, admin func(http.Handler) http.Handler) func(chi.Router) {
	return func(r chi.Router) {
		r.Route("/trees", func(r chi.Router) {
			r.Get("/", handler.HandleListTrees(svc.Trees))
			r.Get("/status-counts", handler.HandleTreeStatusCounts(svc.Trees))
			r.Get("/{id}", handler.HandleGetTree(svc.Trees))

			r.Group(func(r chi.Router) {
				r.Use(admin)
				r.Post("/", handler.HandleCreateTree(svc.Trees))
				r.Put("/{id}", handler.HandleUpdateTree(svc.Trees))
				r.Delete("/{id}", handler.HandleDeleteTree(svc.Trees))
			})
		})

		r.Route("/stats", func(r chi.Router) {
			r.Get("/", handler.HandleGetStats(svc.Stats))
			r.Get("/live", handler.HandleGetLiveStats(svc.Stats))
		})

		r.Route("/donations", func(r chi.Router) {
			r.Get("/", handler.HandleListDonations(svc.Donations))
			r.Post("/", handler.HandleCreateDonation(svc.Donations))
			r.Get("/impact", handler.HandleDonationImpact(svc.Donations))
		})

		r.Route("/tiers", func(r chi.Router) {
			r.Get("/", handler.HandleListTiers(svc.Donations))
			r.Get("/{id}", handler.HandleGetTier(svc.Donations))
		})

		r.Get("/activity/stream", sse.Handler(svc.Hub))
		r.With(admin).Get("/events", handler.HandleListEvents(svc.EventLog))
		r.Get("/config/map", handler.HandleMapConfig(opts.MapAccessToken))
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
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

// Flush keeps the activity stream working through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func isQuietPath(path string) bool {
	for _, prefix := range QuietPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		// Honour an upstream request id so logs line up across hops
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
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
