package services

import (
	"math"

	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/ports"
)

// SumLegs totals distance and duration across a route's legs. It is applied
// identically to the unoptimized and the optimized response.
func SumLegs(legs []ports.RouteLeg) (meters int, seconds int) {
	for _, leg := range legs {
		meters += leg.DistanceMeters
		seconds += leg.DurationSeconds
	}
	return meters, seconds
}

// ComputeSavings derives savings metrics from the two route totals.
// The absolute figures clamp at zero because the provider's two calls are
// independent and can disagree. The percentage keeps the raw numerator and
// may come out negative; the denominator floors at 1 so a zero-distance
// original cannot divide by zero.
func ComputeSavings(origMeters, optMeters, origSeconds, optSeconds int) domain.Savings {
	pct := 100 * float64(origMeters-optMeters) / float64(max(1, origMeters))
	pct = math.Round(pct*100) / 100

	return domain.Savings{
		DistanceMetersSaved:  max(0, origMeters-optMeters),
		DistancePctSaved:     pct,
		DurationSecondsSaved: max(0, origSeconds-optSeconds),
	}
}
