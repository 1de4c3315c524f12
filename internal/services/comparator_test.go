package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"route-optimizer-service/internal/adapters/directions"
	"route-optimizer-service/internal/ports"
)

// countingProvider records calls and fails after a configured number of
// successes.
type countingProvider struct {
	calls    int
	failFrom int
	err      error
	route    ports.DirectionsRoute
}

func (p *countingProvider) GetRoute(ctx context.Context, origin, destination string, waypoints []string, optimize bool) (ports.DirectionsRoute, error) {
	p.calls++
	if p.failFrom > 0 && p.calls >= p.failFrom {
		return ports.DirectionsRoute{}, p.err
	}
	return p.route, nil
}

func TestCompareRoutesWithMockProvider(t *testing.T) {
	addresses := []string{"A", "B", "C", "D", "E"}
	provider := directions.NewMockDirectionsProvider()

	result, err := CompareRoutes(context.Background(), addresses, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOriginal := []string{"A", "B", "C", "D", "E"}
	for i := range wantOriginal {
		if result.Original.Order[i] != wantOriginal[i] {
			t.Fatalf("original order = %v, want %v", result.Original.Order, wantOriginal)
		}
	}

	wantOptimized := []string{"A", "D", "C", "B", "E"}
	for i := range wantOptimized {
		if result.Optimized.Order[i] != wantOptimized[i] {
			t.Fatalf("optimized order = %v, want %v", result.Optimized.Order, wantOptimized)
		}
	}

	if result.Original.DistanceMeters != 12000 {
		t.Errorf("original distance = %d, want 12000", result.Original.DistanceMeters)
	}
	if result.Optimized.DistanceMeters != 10200 {
		t.Errorf("optimized distance = %d, want 10200", result.Optimized.DistanceMeters)
	}
	if result.Original.DurationSeconds != 2400 {
		t.Errorf("original duration = %d, want 2400", result.Original.DurationSeconds)
	}
	if result.Optimized.DurationSeconds != 2112 {
		t.Errorf("optimized duration = %d, want 2112", result.Optimized.DurationSeconds)
	}

	if result.Savings.DistanceMetersSaved != 1800 {
		t.Errorf("distance saved = %d, want 1800", result.Savings.DistanceMetersSaved)
	}
	if result.Savings.DistancePctSaved != 15.0 {
		t.Errorf("pct saved = %v, want 15.0", result.Savings.DistancePctSaved)
	}
	if result.Savings.DurationSecondsSaved != 288 {
		t.Errorf("duration saved = %d, want 288", result.Savings.DurationSecondsSaved)
	}

	if !strings.Contains(result.DriverLink, "waypoints=D%7CC%7CB") {
		t.Errorf("driver link %q missing optimized waypoints", result.DriverLink)
	}
}

func TestCompareRoutesValidatesBeforeCalling(t *testing.T) {
	provider := &countingProvider{}

	_, err := CompareRoutes(context.Background(), []string{"A", "B", "C", "D"}, provider)

	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want InvalidInputError", err)
	}
	if provider.calls != 0 {
		t.Fatalf("provider called %d times before validation", provider.calls)
	}
}

func TestCompareRoutesStopsAfterFirstFailure(t *testing.T) {
	provider := &countingProvider{
		failFrom: 1,
		err:      &ports.ProviderError{Kind: ports.ProviderUpstream, HTTPStatus: 500, Message: "boom"},
	}

	_, err := CompareRoutes(context.Background(), []string{"A", "B", "C", "D", "E"}, provider)
	if err == nil {
		t.Fatal("expected error")
	}

	var perr *ports.ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want wrapped ProviderError", err)
	}
	if provider.calls != 1 {
		t.Fatalf("provider called %d times, want 1 (no second call after failure)", provider.calls)
	}
}

func TestCompareRoutesFallsBackOnMalformedPermutation(t *testing.T) {
	provider := &countingProvider{
		route: ports.DirectionsRoute{
			Legs:          []ports.RouteLeg{{DistanceMeters: 1000, DurationSeconds: 100}},
			WaypointOrder: []int{2, 0, 5},
		},
	}

	result, err := CompareRoutes(context.Background(), []string{"O", "W0", "W1", "W2", "D"}, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"O", "W0", "W1", "W2", "D"}
	for i := range want {
		if result.Optimized.Order[i] != want[i] {
			t.Fatalf("optimized order = %v, want fallback to %v", result.Optimized.Order, want)
		}
	}
}
