package audit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"route-optimizer-service/internal/ports"
)

// SQLite-backed audit store for per-request optimization summaries.
// This is the default store for local runs; the Postgres variant in
// sql_audit_store.go is selected when DATABASE_URL is set.
type SqliteAuditStore struct {
	DB *sql.DB
}

func NewSqliteAuditStore(db *sql.DB) *SqliteAuditStore {
	return &SqliteAuditStore{DB: db}
}

// Initialize the SQLite audit schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createAuditQuery := `
	CREATE TABLE IF NOT EXISTS optimization_audit (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		stop_count INTEGER NOT NULL,
		mock INTEGER NOT NULL,
		distance_m_saved INTEGER NOT NULL,
		distance_pct_saved REAL NOT NULL,
		duration_s_saved INTEGER NOT NULL
	);
	`

	if _, err := db.Exec(createAuditQuery); err != nil {
		return fmt.Errorf("init schema: create optimization_audit: %w", err)
	}

	return nil
}

// Append one request summary.
func (s *SqliteAuditStore) Record(ctx context.Context, rec ports.OptimizationRecord) error {
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
	VALUES (?, ?, ?, ?, ?, ?);
	`

	mock := 0
	if rec.Mock {
		mock = 1
	}

	_, err := s.DB.ExecContext(
		ctx, q,
		rec.CreatedAt.UTC().Format(time.RFC3339),
		rec.StopCount,
		mock,
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
func (s *SqliteAuditStore) Summary(ctx context.Context) (ports.AuditSummary, error) {
	if s.DB == nil {
		return ports.AuditSummary{}, errors.New("audit store: db is nil")
	}

	q := `
	SELECT
		COUNT(*),
		COALESCE(SUM(mock), 0),
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
