package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"route-optimizer-service/internal/adapters/directions"
	"route-optimizer-service/internal/ports"
)

type nopAuditStore struct{}

func (nopAuditStore) Record(ctx context.Context, rec ports.OptimizationRecord) error {
	return nil
}

func (nopAuditStore) Summary(ctx context.Context) (ports.AuditSummary, error) {
	return ports.AuditSummary{}, nil
}

func newTestRouter() http.Handler {
	mock := directions.NewMockDirectionsProvider()
	return NewRouter(mock, mock, nopAuditStore{}, "route-optimizer-service", true)
}

func TestRouterHealthWithMiddleware(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS allow-origin header")
	}
}

func TestRouterStats(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRouterOptimizePreflight(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/optimize", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("missing CORS allow-methods header")
	}
}
