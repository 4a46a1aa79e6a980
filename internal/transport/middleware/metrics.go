package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/prodcost-backend/internal/observability"
)

// Metrics records request counts and latencies labelled by the ServeMux
// route pattern. It must wrap the mux directly: the mux stores the matched
// pattern on the request it receives, and outer middleware that derive a new
// request via WithContext would not see it.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		observability.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
		observability.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
