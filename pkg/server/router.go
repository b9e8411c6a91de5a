package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vango-dev/dashml/pkg/middleware"
)

// Middleware is a function that wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

// RouterConfig configures NewRouter.
type RouterConfig struct {
	// Metrics installs the Prometheus middleware and serves /metrics.
	Metrics bool

	// MetricsOptions configure the Prometheus middleware.
	MetricsOptions []middleware.MetricsOption

	// Gatherer backs the /metrics endpoint.
	// Default: prometheus.DefaultGatherer
	Gatherer prometheus.Gatherer

	// Tracing installs the OpenTelemetry middleware.
	Tracing bool

	// TracingOptions configure the OpenTelemetry middleware.
	TracingOptions []middleware.OTelOption

	// Middleware is appended after the built-in middleware.
	Middleware []Middleware

	// Logger receives request logs. Nil disables request logging.
	Logger *slog.Logger
}

// NewRouter creates a chi router with request IDs and panic recovery, plus
// the metrics and tracing middleware selected by cfg. With metrics enabled
// the router serves /metrics.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if cfg.Logger != nil {
		r.Use(requestLogger(cfg.Logger))
	}
	r.Use(chimw.Recoverer)
	if cfg.Tracing {
		r.Use(middleware.OpenTelemetry(cfg.TracingOptions...))
	}
	if cfg.Metrics {
		r.Use(middleware.Prometheus(cfg.MetricsOptions...))
	}
	for _, mw := range cfg.Middleware {
		r.Use(mw)
	}

	if cfg.Metrics {
		gatherer := cfg.Gatherer
		if gatherer == nil {
			gatherer = prometheus.DefaultGatherer
		}
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

// requestLogger logs one line per request with its chi request ID.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"request_id", chimw.GetReqID(r.Context()),
			)
		})
	}
}
