package domain

// RouteMetrics describes one measured route: the stop visiting order and
// the distance/duration totals summed across its legs. For the optimized
// route, WaypointOrder carries the provider's returned permutation of the
// original waypoint indices. RouteMetrics is immutable planning data and
// contains no side effects.
type RouteMetrics struct {
	Order           []string
	DistanceMeters  int
	DurationSeconds int
	WaypointOrder   []int
}

// Savings compares the optimized route against the route as given.
// Absolute figures are clamped at zero; the percentage keeps its sign so
// a regression (optimized route longer than the original) stays visible.
type Savings struct {
	DistanceMetersSaved  int
	DistancePctSaved     float64
	DurationSecondsSaved int
}

// OptimizationResult is the output of one route comparison. It is
// constructed per request, returned to the caller and discarded;
// results are never persisted.
type OptimizationResult struct {
	Original   RouteMetrics
	Optimized  RouteMetrics
	Savings    Savings
	DriverLink string
}
