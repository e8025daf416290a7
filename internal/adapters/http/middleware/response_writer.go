// Package middleware provides HTTP middleware for the serve-mode request
// pipeline. The router applies them in this order:
//
//	Recovery → RequestID → OpenTelemetry → Logging → Timeout → Handler
//
// Each middleware is a func(http.Handler) http.Handler and can be composed
// with Chain.
package middleware

import "net/http"

// responseWriter wraps http.ResponseWriter to capture the status code and
// bytes written for recovery, otel, and logging.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader records the first status code and ignores later calls.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(code)
}

// Write delegates to the underlying writer; a first Write implies 200 OK.
func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
