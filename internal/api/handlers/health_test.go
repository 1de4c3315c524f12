package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"route-optimizer-service/internal/api/dto"
	"route-optimizer-service/internal/ports"
)

func TestHealthInfo(t *testing.T) {
	h := &HealthHandler{Service: "route-optimizer-service", MockMode: true}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Info(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !res.OK || res.Service != "route-optimizer-service" || !res.MockMode {
		t.Fatalf("response = %+v", res)
	}
}

func TestHealthUnknownPath(t *testing.T) {
	h := &HealthHandler{Service: "svc"}

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	h.Info(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestStatsSummary(t *testing.T) {
	store := &fakeAuditStore{summary: ports.AuditSummary{
		TotalRequests:       7,
		MockRequests:        3,
		AvgDistancePctSaved: 12.5,
	}}
	h := &StatsHandler{Store: store}

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	h.Summary(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.StatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.TotalRequests != 7 || res.MockRequests != 3 || res.AvgDistancePctSaved != 12.5 {
		t.Fatalf("response = %+v", res)
	}
}

func TestStatsRejectsPost(t *testing.T) {
	h := &StatsHandler{Store: &fakeAuditStore{}}

	req := httptest.NewRequest(http.MethodPost, "/stats", nil)
	rec := httptest.NewRecorder()
	h.Summary(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
