// Package handlers provides HTTP request handlers for the serve-mode API.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-transform-demo/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-transform-demo/internal/platform/logging"
	"github.com/jsamuelsen11/go-transform-demo/internal/ports"
)

// DemoHandler exposes the demo operations over HTTP.
type DemoHandler struct {
	svc              ports.DemoService
	defaultThreshold float64
	defaultSize      int
}

// NewDemoHandler creates a DemoHandler. defaultThreshold and defaultSize are
// used when the min_price and size query parameters are absent.
func NewDemoHandler(svc ports.DemoService, defaultThreshold float64, defaultSize int) *DemoHandler {
	return &DemoHandler{
		svc:              svc,
		defaultThreshold: defaultThreshold,
		defaultSize:      defaultSize,
	}
}

// Products handles GET /api/v1/products?min_price=.
func (h *DemoHandler) Products(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseProductsQuery(r.URL.Query(), h.defaultThreshold)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	names := h.svc.ExpensiveProducts(r.Context(), q.MinPrice)
	writeJSON(w, r, http.StatusOK, dto.ToProductListResponse(q.MinPrice, names))
}

// Checks handles GET /api/v1/checks. Failed checks are reported in the body
// with a 200 status.
func (h *DemoHandler) Checks(w http.ResponseWriter, r *http.Request) {
	report := h.svc.RunChecks(r.Context())
	writeJSON(w, r, http.StatusOK, dto.ToCheckReportResponse(report))
}

// Compose handles GET /api/v1/compose?input=.
func (h *DemoHandler) Compose(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseComposeQuery(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToComposeResponse(h.svc.Compose(r.Context(), q.Input)))
}

// Benchmark handles GET /api/v1/benchmark?size=.
func (h *DemoHandler) Benchmark(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseBenchmarkQuery(r.URL.Query(), h.defaultSize)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	report, err := h.svc.Benchmark(r.Context(), q.Size)
	if err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "benchmark request failed",
			slog.String("operation", "Benchmark"),
			slog.Int("size", q.Size),
			slog.Any("error", err),
		)
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBenchmarkResponse(report))
}
