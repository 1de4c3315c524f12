package services

import (
	"net/url"
	"strings"
	"testing"
)

func TestDriverLinkEncodesStops(t *testing.T) {
	link := DriverLink("1 Main St", "2 Oak St", []string{"3 Elm St"})

	if !strings.HasPrefix(link, "https://www.google.com/maps/dir/?api=1&") {
		t.Fatalf("link %q has unexpected base", link)
	}
	if !strings.Contains(link, "origin=1%20Main%20St") {
		t.Errorf("link %q missing encoded origin", link)
	}
	if !strings.Contains(link, "destination=2%20Oak%20St") {
		t.Errorf("link %q missing encoded destination", link)
	}
	if !strings.Contains(link, "waypoints=3%20Elm%20St") {
		t.Errorf("link %q missing encoded waypoint", link)
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	q := parsed.Query()
	if q.Get("origin") != "1 Main St" {
		t.Errorf("parsed origin = %q", q.Get("origin"))
	}
	if q.Get("waypoints") != "3 Elm St" {
		t.Errorf("parsed waypoints = %q", q.Get("waypoints"))
	}
}

func TestDriverLinkJoinsWaypointsWithPipes(t *testing.T) {
	link := DriverLink("A", "B", []string{"W1", "W2", "W3"})

	if !strings.Contains(link, "waypoints=W1%7CW2%7CW3") {
		t.Fatalf("link %q does not pipe-join waypoints", link)
	}
}

func TestDriverLinkWithoutWaypoints(t *testing.T) {
	link := DriverLink("A", "B", nil)

	if strings.Contains(link, "waypoints=") {
		t.Fatalf("link %q must not carry a waypoints parameter", link)
	}
}
