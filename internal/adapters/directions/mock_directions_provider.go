package directions

import (
	"context"

	"route-optimizer-service/internal/ports"
)

// Synthetic per-leg metrics and the pretend savings applied on optimized
// calls. 15% of 3000 and 12% of 600 are whole numbers, so the per-leg
// reductions reproduce the floor-truncated route totals exactly.
const (
	mockLegMeters  = 3000
	mockLegSeconds = 600

	mockOptimizedLegMeters  = mockLegMeters - mockLegMeters*15/100
	mockOptimizedLegSeconds = mockLegSeconds - mockLegSeconds*12/100
)

// MockDirectionsProvider is the deterministic offline fallback used when
// no directions credential is configured or when a request forces mock
// mode. It never performs network calls: the unoptimized route gets fixed
// per-leg metrics, and the optimized route reverses the waypoint order.
type MockDirectionsProvider struct{}

func NewMockDirectionsProvider() *MockDirectionsProvider {
	return &MockDirectionsProvider{}
}

func (p *MockDirectionsProvider) GetRoute(
	ctx context.Context,
	origin string,
	destination string,
	waypoints []string,
	optimize bool,
) (ports.DirectionsRoute, error) {
	legCount := max(1, len(waypoints)+1)

	meters := mockLegMeters
	seconds := mockLegSeconds

	route := ports.DirectionsRoute{Legs: make([]ports.RouteLeg, 0, legCount)}

	if optimize {
		meters = mockOptimizedLegMeters
		seconds = mockOptimizedLegSeconds

		order := make([]int, len(waypoints))
		for i := range order {
			order[i] = len(waypoints) - 1 - i
		}
		route.WaypointOrder = order
	}

	for i := 0; i < legCount; i++ {
		route.Legs = append(route.Legs, ports.RouteLeg{
			DistanceMeters:  meters,
			DurationSeconds: seconds,
		})
	}

	return route, nil
}
