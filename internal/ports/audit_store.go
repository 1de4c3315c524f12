package ports

import (
	"context"
	"time"
)

// Summary metrics for one served optimization request. Records carry
// counts and savings only; addresses and stop order are never stored.
type OptimizationRecord struct {
	CreatedAt            time.Time
	StopCount            int
	Mock                 bool
	DistanceMetersSaved  int
	DistancePctSaved     float64
	DurationSecondsSaved int
}

// Aggregate view over all recorded requests.
type AuditSummary struct {
	TotalRequests       int
	MockRequests        int
	AvgDistancePctSaved float64
}

// Port: a boundary for persisting per-request optimization summaries.
type AuditStore interface {
	// Append one request summary.
	Record(ctx context.Context, rec OptimizationRecord) error
	// Return aggregate metrics across all recorded requests.
	Summary(ctx context.Context) (AuditSummary, error)
}
