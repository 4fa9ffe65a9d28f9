package http

import (
	"net/http"
	"time"

	"github.com/ndanilov/shelf-viewer/internal/logger"
)

// withLogging emits one access-log line per request with the status and body
// size captured by [responseWriter]. It runs after withTraceID, so the line
// carries the request's trace_id field.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
