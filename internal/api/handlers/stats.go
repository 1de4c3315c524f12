package handlers

import (
	"log"
	"net/http"

	"route-optimizer-service/internal/api/dto"
	"route-optimizer-service/internal/ports"
)

// StatsHandler exposes aggregate audit metrics for operators.
type StatsHandler struct {
	Store ports.AuditStore
}

func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if h.Store == nil {
		writeError(w, r, http.StatusServiceUnavailable, "audit store not configured")
		return
	}

	sum, err := h.Store.Summary(r.Context())
	if err != nil {
		log.Printf("audit summary failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.StatsResponse{
		TotalRequests:       sum.TotalRequests,
		MockRequests:        sum.MockRequests,
		AvgDistancePctSaved: sum.AvgDistancePctSaved,
	}
	writeJSON(w, r, http.StatusOK, res)
}
