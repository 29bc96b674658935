package server

import (
	"strconv"
	"time"

	"edgeorigin/pkg/routing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// resolutionsTotal counts origin resolutions by outcome. Category and
	// region are small fixed enumerations, so cardinality stays bounded.
	resolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edgeorigin_resolutions_total",
			Help: "Origin resolutions served, by resolved category and region",
		},
		[]string{"category", "region"},
	)

	// httpRequestsTotal counts HTTP requests to the resolver API.
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edgeorigin_http_requests_total",
			Help: "HTTP requests to the resolver API",
		},
		[]string{"method", "path", "status"},
	)

	// httpRequestDuration observes HTTP request latency.
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "edgeorigin_http_request_duration_seconds",
			Help:    "HTTP request latency of the resolver API in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// observeResolution records one resolution outcome.
func observeResolution(resolution routing.Resolution) {
	resolutionsTotal.WithLabelValues(string(resolution.Category), string(resolution.Region)).Inc()
}

// httpMetricsMiddleware records request counts and latency per route.
// The route template (not the raw URL) is used as the path label to keep
// cardinality bounded.
func httpMetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			path := ctx.Path()
			if path == "" {
				path = ctx.Request().URL.Path
			}
			status := ctx.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}

			httpRequestsTotal.WithLabelValues(ctx.Request().Method, path, strconv.Itoa(status)).Inc()
			httpRequestDuration.WithLabelValues(ctx.Request().Method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
