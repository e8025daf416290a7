package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/go-transform-demo/internal/platform/telemetry"
)

// Chain composes multiple middleware into a single middleware. The first
// argument becomes the outermost middleware (executed first on request,
// last on response):
//
//	Chain(Recovery, RequestID, Logging)(handler)
//
// is equivalent to:
//
//	Recovery(RequestID(Logging(handler)))
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// Stack returns the serve-mode middleware in application order, ready to
// pass to the router. A nil metrics skips metric recording and a
// non-positive requestTimeout disables the timeout.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics, requestTimeout time.Duration) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		OpenTelemetry(metrics),
		Logging(logger),
		Timeout(requestTimeout),
	}
}
