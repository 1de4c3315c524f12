package api

import (
	"net/http"

	"route-optimizer-service/internal/api/handlers"
	"route-optimizer-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	provider ports.DirectionsProvider,
	mock ports.DirectionsProvider,
	store ports.AuditStore,
	service string,
	mockMode bool,
) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{Service: service, MockMode: mockMode}
	optimizeHandler := &handlers.OptimizeHandler{
		Provider: provider,
		Mock:     mock,
		Audit:    store,
		MockMode: mockMode,
	}
	statsHandler := &handlers.StatsHandler{Store: store}

	mux.HandleFunc("/", healthHandler.Info)
	mux.HandleFunc("/optimize", optimizeHandler.Optimize)
	mux.HandleFunc("/stats", statsHandler.Summary)

	return requestIDMiddleware(loggingMiddleware(corsMiddleware(mux)))
}
