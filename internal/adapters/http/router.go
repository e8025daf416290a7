// Package http provides the serve-mode HTTP adapter including routing and
// server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-transform-demo/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-transform-demo/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-transform-demo/internal/domain"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Unknown routes get a
// problem+json 404.
func NewRouter(
	demoHandler *handlers.DemoHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, domain.ErrNotFound)
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes. All are read-only.
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", demoHandler.Products)
		r.Get("/checks", demoHandler.Checks)
		r.Get("/compose", demoHandler.Compose)
		r.Get("/benchmark", demoHandler.Benchmark)
	})

	return r
}
