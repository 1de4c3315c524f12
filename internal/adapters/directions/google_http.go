package directions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"route-optimizer-service/internal/ports"
)

// Wire schema for the directions endpoint. Metrics come back as floats
// and may be absent; absent values contribute zero. Nothing downstream of
// this file touches raw JSON.
type directionsResponse struct {
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message"`
	Routes       []directionsRoute `json:"routes"`
}

type directionsRoute struct {
	Legs          []directionsLeg `json:"legs"`
	WaypointOrder []int           `json:"waypoint_order"`
}

type directionsLeg struct {
	Distance metricValue `json:"distance"`
	Duration metricValue `json:"duration"`
}

type metricValue struct {
	Value *float64 `json:"value"`
}

func intValue(v *float64) int {
	if v == nil {
		return 0
	}
	return int(*v)
}

// fetchDirections performs one HTTP call and a strict parse of the body.
// Exceeding the client deadline maps to ProviderTimeout; HTTP errors and
// non-OK payload statuses map to ProviderUpstream with the raw body
// attached for operator debugging.
func (g *GoogleDirectionsProvider) fetchDirections(ctx context.Context, endpoint string) (*directionsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create directions request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.session.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &ports.ProviderError{
				Kind:    ports.ProviderTimeout,
				Message: "directions request exceeded deadline",
			}
		}
		return nil, fmt.Errorf("execute directions request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read directions response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &ports.ProviderError{
			Kind:       ports.ProviderUpstream,
			HTTPStatus: resp.StatusCode,
			Message:    "directions HTTP error",
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var decoded directionsResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}

	if decoded.Status != "OK" {
		msg := "directions API error: " + decoded.Status
		if decoded.ErrorMessage != "" {
			msg += ": " + decoded.ErrorMessage
		}

		return nil, &ports.ProviderError{
			Kind:       ports.ProviderUpstream,
			HTTPStatus: resp.StatusCode,
			Status:     decoded.Status,
			Message:    msg,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return &decoded, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
