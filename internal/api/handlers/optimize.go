package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"route-optimizer-service/internal/api/dto"
	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/ports"
	"route-optimizer-service/internal/services"
)

// OptimizeHandler serves route optimization requests. Each request is
// handled synchronously end-to-end: normalize, validate, compare via the
// selected provider, record an audit summary, respond.
type OptimizeHandler struct {
	Provider ports.DirectionsProvider
	Mock     ports.DirectionsProvider
	Audit    ports.AuditStore
	// MockMode forces the mock provider for every request (no credential
	// configured at startup).
	MockMode bool
}

func (h *OptimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		// CORS preflight; headers are set by middleware.
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		w.Header().Set("Allow", "POST, OPTIONS")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OptimizeRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	addresses := services.NormalizeAddresses(req.AddressesText)

	useMock := h.MockMode || req.Mock
	provider := h.Provider
	if useMock {
		log.Printf("running in mock mode (no directions API key or forced)")
		provider = h.Mock
	}

	result, err := services.CompareRoutes(r.Context(), addresses, provider)
	if err != nil {
		h.writeCompareError(w, r, err)
		return
	}

	if h.Audit != nil {
		rec := ports.OptimizationRecord{
			CreatedAt:            time.Now().UTC(),
			StopCount:            len(addresses),
			Mock:                 useMock,
			DistanceMetersSaved:  result.Savings.DistanceMetersSaved,
			DistancePctSaved:     result.Savings.DistancePctSaved,
			DurationSecondsSaved: result.Savings.DurationSecondsSaved,
		}
		// Audit writes are best-effort; a storage hiccup must not fail the
		// request.
		if err := h.Audit.Record(r.Context(), rec); err != nil {
			log.Printf("audit write failed: %v", err)
		}
	}

	writeJSON(w, r, http.StatusOK, toOptimizeResponse(result, useMock))
}

func (h *OptimizeHandler) writeCompareError(w http.ResponseWriter, r *http.Request, err error) {
	var invalid *services.InvalidInputError
	var perr *ports.ProviderError

	switch {
	case errors.As(err, &invalid):
		writeError(w, r, http.StatusBadRequest, invalid.Reason)
	case errors.As(err, &perr) && perr.Kind == ports.ProviderTimeout:
		writeError(w, r, http.StatusGatewayTimeout, "request to the directions provider timed out; try again")
	case errors.As(err, &perr):
		writeErrorDetails(w, r, http.StatusBadGateway, perr.Message, perr.Body)
	default:
		log.Printf("optimize failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func toOptimizeResponse(result *domain.OptimizationResult, mock bool) dto.OptimizeResponse {
	res := dto.OptimizeResponse{
		OK:   true,
		Mock: mock,
		Original: dto.RouteMetricsResponse{
			Order:           result.Original.Order,
			DistanceMeters:  result.Original.DistanceMeters,
			DurationSeconds: result.Original.DurationSeconds,
		},
		Optimized: dto.RouteMetricsResponse{
			Order:                result.Optimized.Order,
			DistanceMeters:       result.Optimized.DistanceMeters,
			DurationSeconds:      result.Optimized.DurationSeconds,
			WaypointOrderIndices: result.Optimized.WaypointOrder,
		},
		Savings: dto.SavingsResponse{
			DistanceMetersSaved:  result.Savings.DistanceMetersSaved,
			DistancePctSaved:     result.Savings.DistancePctSaved,
			DurationSecondsSaved: result.Savings.DurationSecondsSaved,
		},
		DriverLink: result.DriverLink,
	}

	if mock {
		res.Note = "mock mode (no directions API key)"
	}

	return res
}
