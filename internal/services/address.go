package services

import (
	"fmt"
	"strings"
)

// Stop count bounds enforced before any external call.
const (
	MinStops = 5
	MaxStops = 10
)

// NormalizeAddresses splits raw multi-line text into an ordered address
// list: lines are trimmed, empties dropped, and duplicates removed
// case-insensitively while preserving first-seen order. The operation is
// idempotent.
func NormalizeAddresses(raw string) []string {
	lines := strings.Split(raw, "\n")

	seen := make(map[string]struct{}, len(lines))
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key := strings.ToLower(line)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		cleaned = append(cleaned, line)
	}

	return cleaned
}

// ValidateStops checks the normalized address list against the stop count
// bounds. It returns InvalidInputError describing the actual count so the
// caller can surface it verbatim.
func ValidateStops(addresses []string) error {
	if len(addresses) == 0 {
		return &InvalidInputError{Reason: "no addresses provided; paste 5-10 addresses, one per line"}
	}

	if len(addresses) < MinStops || len(addresses) > MaxStops {
		return &InvalidInputError{Reason: fmt.Sprintf(
			"provide between %d and %d unique addresses (you gave %d)",
			MinStops, MaxStops, len(addresses),
		)}
	}

	return nil
}
