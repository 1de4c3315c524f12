package services

// ReconcileWaypointOrder maps the provider's returned waypoint permutation
// back onto address strings.
//
// Each index in order refers to a position in the original waypoints list
// (origin and destination excluded). Out-of-range indices are skipped
// rather than treated as an error. If the reconciled order ends up with a
// different length than the original (a malformed or partial permutation),
// the original order is returned verbatim: a corrupted reorder must never
// drop or duplicate a stop.
func ReconcileWaypointOrder(origin string, waypoints []string, destination string, order []int) []string {
	original := make([]string, 0, len(waypoints)+2)
	original = append(original, origin)
	original = append(original, waypoints...)
	original = append(original, destination)

	optimized := make([]string, 0, len(original))
	optimized = append(optimized, origin)
	for _, idx := range order {
		if idx >= 0 && idx < len(waypoints) {
			optimized = append(optimized, waypoints[idx])
		}
	}
	optimized = append(optimized, destination)

	if len(optimized) != len(original) {
		return original
	}

	return optimized
}
