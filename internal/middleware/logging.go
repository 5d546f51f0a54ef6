package middleware

import (
	"log"
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request ID in both directions
const RequestIDHeader = "X-Request-ID"

// Logging logs one line per request and tags the response with a request ID.
// An incoming X-Request-ID is reused.
func Logging(logger *log.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, reqID)

			m := httpsnoop.CaptureMetrics(next, w, r)
			logger.Printf("%s %s %d %s id=%s", r.Method, r.URL.Path, m.Code, m.Duration, reqID)
		})
	}
}
