package services

import (
	"context"
	"fmt"

	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/ports"
)

// CompareRoutes measures the route as given against a provider-optimized
// reordering of the same stops.
//
// The first address is the origin, the last the destination, everything in
// between a waypoint. The provider is called twice, sequentially: once
// unoptimized to measure the baseline, then (only if that succeeded) with
// waypoint optimization enabled. The optimized permutation is reconciled
// back onto address strings, savings are computed from the two totals, and
// a driver deep link is built from the final order.
//
// The actual traveling-salesman work happens inside the provider; this
// service only validates, orchestrates and reconciles.
func CompareRoutes(
	ctx context.Context,
	addresses []string,
	provider ports.DirectionsProvider,
) (*domain.OptimizationResult, error) {
	if err := ValidateStops(addresses); err != nil {
		return nil, err
	}

	origin := addresses[0]
	destination := addresses[len(addresses)-1]
	waypoints := addresses[1 : len(addresses)-1]

	baseline, err := provider.GetRoute(ctx, origin, destination, waypoints, false)
	if err != nil {
		return nil, fmt.Errorf("compare routes: unoptimized directions: %w", err)
	}

	optimized, err := provider.GetRoute(ctx, origin, destination, waypoints, true)
	if err != nil {
		return nil, fmt.Errorf("compare routes: optimized directions: %w", err)
	}

	origMeters, origSeconds := SumLegs(baseline.Legs)
	optMeters, optSeconds := SumLegs(optimized.Legs)

	originalOrder := make([]string, 0, len(addresses))
	originalOrder = append(originalOrder, origin)
	originalOrder = append(originalOrder, waypoints...)
	originalOrder = append(originalOrder, destination)

	optimizedOrder := ReconcileWaypointOrder(origin, waypoints, destination, optimized.WaypointOrder)

	result := &domain.OptimizationResult{
		Original: domain.RouteMetrics{
			Order:           originalOrder,
			DistanceMeters:  origMeters,
			DurationSeconds: origSeconds,
		},
		Optimized: domain.RouteMetrics{
			Order:           optimizedOrder,
			DistanceMeters:  optMeters,
			DurationSeconds: optSeconds,
			WaypointOrder:   optimized.WaypointOrder,
		},
		Savings:    ComputeSavings(origMeters, optMeters, origSeconds, optSeconds),
		DriverLink: DriverLink(origin, destination, optimizedOrder[1:len(optimizedOrder)-1]),
	}

	return result, nil
}
