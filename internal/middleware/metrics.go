package middleware

import (
	"net/http"
	"time"

	"github.com/vangoframework/frame/internal/metrics"
)

// Metrics records request counts and latency.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := wrap(w)
		next.ServeHTTP(rw, r)

		metrics.ObserveRequest(r.Method, rw.status, time.Since(start))
	})
}
