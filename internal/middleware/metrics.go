package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spliteasy_http_requests_total",
			Help: "Total HTTP requests by method, path pattern, and status.",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "spliteasy_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path pattern.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Metrics records a request counter and latency histogram for every
// request. Paths are labeled by the mux route pattern rather than the
// raw URL to keep cardinality bounded, so the middleware needs the mux
// the request will eventually be routed by.
func Metrics(mux *http.ServeMux, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		_, pattern := mux.Handler(r)
		if pattern == "" {
			pattern = "unmatched"
		}
		requestDuration.WithLabelValues(r.Method, pattern).Observe(time.Since(start).Seconds())
		requestsTotal.WithLabelValues(r.Method, pattern, strconv.Itoa(rec.status)).Inc()
	})
}
