package handlers

import (
	"net/http"

	"route-optimizer-service/internal/api/dto"
)

// HealthHandler exposes the root health/info endpoint.
type HealthHandler struct {
	Service  string
	MockMode bool
}

func (h *HealthHandler) Info(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}

	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := dto.HealthResponse{
		OK:       true,
		Service:  h.Service,
		MockMode: h.MockMode,
	}
	writeJSON(w, r, http.StatusOK, res)
}
