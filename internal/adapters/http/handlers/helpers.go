package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-transform-demo/internal/platform/logging"
)

// writeJSON writes a JSON response with the given status code. Encoding
// failures are logged with the request-scoped logger.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
}
