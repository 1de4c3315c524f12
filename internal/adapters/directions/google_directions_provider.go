package directions

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"route-optimizer-service/internal/platform/obs"
	"route-optimizer-service/internal/ports"
)

// GoogleDirectionsProvider implements DirectionsProvider using the Google
// Directions API.
//
// It issues one GET per route request, parses the response into typed
// structs at the boundary, and maps failures onto ports.ProviderError.
// No retries are attempted; failures surface to the caller immediately.
//
// The provider is safe for concurrent use.
type GoogleDirectionsProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	mode    string
	units   string
}

func NewGoogleDirectionsProvider(apiKey string, timeout time.Duration) (*GoogleDirectionsProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("directions api key is empty")
	}

	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	provider := &GoogleDirectionsProvider{
		session: &http.Client{Timeout: timeout},
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com/maps/api/directions",
		mode:    "driving",
		units:   "metric",
	}

	return provider, nil
}

// buildParams assembles the query for one directions call. The optimized
// variant prefixes the pipe-joined waypoint list with the optimize token.
func (g *GoogleDirectionsProvider) buildParams(origin, destination string, waypoints []string, optimize bool) url.Values {
	q := url.Values{}
	q.Set("origin", origin)
	q.Set("destination", destination)
	q.Set("key", g.apiKey)
	q.Set("mode", g.mode)
	q.Set("units", g.units)

	if len(waypoints) > 0 {
		wp := strings.Join(waypoints, "|")
		if optimize {
			wp = "optimize:true|" + wp
		}
		q.Set("waypoints", wp)
	}

	return q
}

// GetRoute fetches one route and reduces it to typed legs plus the
// waypoint permutation (optimized calls only).
func (g *GoogleDirectionsProvider) GetRoute(
	ctx context.Context,
	origin string,
	destination string,
	waypoints []string,
	optimize bool,
) (_ ports.DirectionsRoute, err error) {
	defer obs.Time(ctx, "directions.GetRoute")(&err)

	if origin == "" || destination == "" {
		return ports.DirectionsRoute{}, errors.New("get route: origin and destination must be non-empty")
	}

	endpoint := g.baseURL + "/json?" + g.buildParams(origin, destination, waypoints, optimize).Encode()

	decoded, err := g.fetchDirections(ctx, endpoint)
	if err != nil {
		return ports.DirectionsRoute{}, err
	}

	if len(decoded.Routes) == 0 {
		return ports.DirectionsRoute{}, errors.New("get route: directions response contains no routes")
	}

	first := decoded.Routes[0]
	legs := make([]ports.RouteLeg, 0, len(first.Legs))
	for _, leg := range first.Legs {
		legs = append(legs, ports.RouteLeg{
			DistanceMeters:  intValue(leg.Distance.Value),
			DurationSeconds: intValue(leg.Duration.Value),
		})
	}

	return ports.DirectionsRoute{Legs: legs, WaypointOrder: first.WaypointOrder}, nil
}
