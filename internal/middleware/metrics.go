package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ordersvc/order-total/pkg/metrics"
)

// Metrics middleware records request counts and latency
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(ww, r)

		metrics.HTTPRequests.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(ww.statusCode)).Inc()
		metrics.HTTPRequestDuration.Observe(time.Since(start).Seconds())
	})
}
