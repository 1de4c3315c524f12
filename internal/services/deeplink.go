package services

import (
	"net/url"
	"strings"
)

const driverLinkBase = "https://www.google.com/maps/dir/?api=1"

// DriverLink composes a single clickable Google Maps directions URL for
// the final visiting order. Waypoints exclude origin and destination and
// are joined with pipes before encoding.
func DriverLink(origin, destination string, waypoints []string) string {
	q := url.Values{}
	q.Set("origin", origin)
	q.Set("destination", destination)
	if len(waypoints) > 0 {
		q.Set("waypoints", strings.Join(waypoints, "|"))
	}

	// url.Values encodes spaces as "+"; maps URLs conventionally carry %20.
	// Literal plus signs were already escaped to %2B by Encode.
	encoded := strings.ReplaceAll(q.Encode(), "+", "%20")

	return driverLinkBase + "&" + encoded
}
