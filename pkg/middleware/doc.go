// Package middleware provides HTTP observability middleware for dashml
// servers.
//
// Both middlewares are plain func(http.Handler) http.Handler values, so
// they plug into chi (r.Use) or wrap any handler directly.
//
// # OpenTelemetry Middleware
//
// The OpenTelemetry middleware starts a server span for every request and
// names it after the matched chi route:
//
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("my-site"),
//	    middleware.WithFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// Page functions reach the span through the request context:
//
//	middleware.SpanFromContext(r.Context()).SetAttributes(...)
//
// # Prometheus Metrics
//
// The Prometheus middleware collects:
//   - dashml_requests_total: Requests by route pattern and status code
//   - dashml_request_duration_seconds: Request duration histogram
//   - dashml_response_bytes: Rendered response size histogram
//
//	r.Use(middleware.Prometheus())
//	r.Handle("/metrics", promhttp.Handler())
package middleware
