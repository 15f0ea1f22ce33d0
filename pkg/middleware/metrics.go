package middleware

import (
	"net/http"
	"strings"
	"time"

	"cemdon/pkg/metrics"
)

// Metrics records request count and latency per route.
func Metrics(m *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := wrapResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			m.ObserveRequest(r.Method, RouteLabel(r.URL.Path), wrapped.statusCode, time.Since(start).Seconds())
		})
	}
}

// RouteLabel replaces path parameters with placeholders to keep label
// cardinality bounded: session tokens become ":token" and numeric segments
// ":index".
func RouteLabel(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		switch {
		case i > 0 && segments[i-1] == "sessions" && seg != "":
			segments[i] = ":token"
		case seg != "" && isDigits(seg):
			segments[i] = ":index"
		}
	}
	return strings.Join(segments, "/")
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
