package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Total number of HTTP requests served, by method, path and status
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests served",
	}, []string{"method", "path", "status"})

	// Latency of HTTP request handling
	HTTPRequestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Latency of HTTP request handling",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of failed sales-tax rate lookups
	RateLookupFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_lookup_failures_total",
		Help: "Total number of failed sales-tax rate lookups",
	})
)

func Init() {
	prometheus.MustRegister(
		HTTPRequests,
		HTTPRequestDuration,
		RateLookupFailures,
	)
}
