package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests by method, path and status.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by method and path.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	AuthSuccesses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gallery_auth_success_total",
		Help: "Successful client gallery authentications.",
	})

	AuthFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gallery_auth_failure_total",
		Help: "Rejected client gallery authentications (collapsed failures and throttles).",
	})

	ViewIncrements = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gallery_view_increments_total",
		Help: "Gallery view counter increments applied.",
	})
)
