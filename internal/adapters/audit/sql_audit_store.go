package audit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"route-optimizer-service/internal/platform/obs"
	"route-optimizer-service/internal/ports"
)

// SQLAuditStore is the Postgres-backed audit store variant.
// Schema management lives in cmd/dbtool.
type SQLAuditStore struct {
	DB *sql.DB
}

func NewSQLAuditStore(db *sql.DB) *SQLAuditStore {
	return &SQLAuditStore{DB: db}
}

// Initialize the Postgres audit schema.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createAuditQuery := `
	CREATE TABLE IF NOT EXISTS optimization_audit (
		id BIGSERIAL PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL,
		stop_count INTEGER NOT NULL,
		mock BOOLEAN NOT NULL,
		distance_m_saved INTEGER NOT NULL,
		distance_pct_saved DOUBLE PRECISION NOT NULL,
		duration_s_saved INTEGER NOT NULL
	);
	`

	if _, err := db.Exec(createAuditQuery); err != nil {
		return fmt.Errorf("init schema: create optimization_audit: %w", err)
	}

	return nil
}

// Append one request summary.
func (s *SQLAuditStore) Record(ctx context.Context, rec ports.OptimizationRecord) (err error) {
	defer obs.Time(ctx, "audit.Record")(&err)

	if s.DB == nil {
		return errors.New("audit store: db is nil")
	}

	q := `
	INSERT INTO optimization_audit (
		created_at,
		stop_count,
		mock,
		distance_m_saved,
		distance_pct_saved,
		duration_s_saved
	)
	VALUES ($1, $2, $3, $4, $5, $6);
	`

	_, err = s.DB.ExecContext(
		ctx, q,
		rec.CreatedAt.UTC(),
		rec.StopCount,
		rec.Mock,
		rec.DistanceMetersSaved,
		rec.DistancePctSaved,
		rec.DurationSecondsSaved,
	)
	if err != nil {
		return fmt.Errorf("record audit row: %w", err)
	}

	return nil
}

// Return aggregate metrics across all recorded requests.
func (s *SQLAuditStore) Summary(ctx context.Context) (_ ports.AuditSummary, err error) {
	defer obs.Time(ctx, "audit.Summary")(&err)

	if s.DB == nil {
		return ports.AuditSummary{}, errors.New("audit store: db is nil")
	}

	q := `
	SELECT
		COUNT(*),
		COUNT(*) FILTER (WHERE mock),
		COALESCE(AVG(distance_pct_saved), 0)
	FROM optimization_audit;
	`

	var out ports.AuditSummary
	row := s.DB.QueryRowContext(ctx, q)
	if err := row.Scan(&out.TotalRequests, &out.MockRequests, &out.AvgDistancePctSaved); err != nil {
		return ports.AuditSummary{}, fmt.Errorf("audit summary: scan row: %w", err)
	}

	return out, nil
}
