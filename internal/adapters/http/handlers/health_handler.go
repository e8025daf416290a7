package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-transform-demo/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// ReadinessResponse is the body of GET /health/ready.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
	Failed int               `json:"failed"`
}

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Returns 200 if every registered
// checker passes and 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := ReadinessResponse{
		Status: statusReady,
		Checks: make(map[string]string, len(results)),
	}
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Failed++
			continue
		}
		resp.Checks[name] = statusOK
	}

	code := http.StatusOK
	if resp.Failed > 0 {
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, code, resp)
}
