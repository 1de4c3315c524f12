package ports

import (
	"context"
	"fmt"
)

// One leg of a returned route, in base units.
type RouteLeg struct {
	DistanceMeters  int
	DurationSeconds int
}

// A single route as returned by a directions provider. WaypointOrder is
// only populated on optimized calls and indexes into the waypoint list
// that was sent with the request.
type DirectionsRoute struct {
	Legs          []RouteLeg
	WaypointOrder []int
}

// Contract for retrieving a driving route through an ordered set of stops.
type DirectionsProvider interface {
	// Return the route from origin to destination through waypoints.
	// With optimize set, the provider may reorder the waypoints and must
	// report the chosen permutation in WaypointOrder.
	GetRoute(ctx context.Context, origin string, destination string, waypoints []string, optimize bool) (DirectionsRoute, error)
}

type ProviderErrorKind int

const (
	// The provider returned an HTTP error or a non-OK payload status.
	ProviderUpstream ProviderErrorKind = iota
	// The call exceeded the external request deadline.
	ProviderTimeout
)

// ProviderError carries everything an operator needs to debug a failed
// provider call: the HTTP status, the provider's own status field and
// message, and the raw response body.
type ProviderError struct {
	Kind       ProviderErrorKind
	HTTPStatus int
	Status     string
	Message    string
	Body       string
}

func (e *ProviderError) Error() string {
	if e.Kind == ProviderTimeout {
		return "directions provider timeout: " + e.Message
	}
	if e.Status != "" {
		return fmt.Sprintf("directions provider error (HTTP %d, status %s): %s", e.HTTPStatus, e.Status, e.Message)
	}
	return fmt.Sprintf("directions provider error (HTTP %d): %s", e.HTTPStatus, e.Message)
}
