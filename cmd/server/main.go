package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"route-optimizer-service/internal/adapters/audit"
	"route-optimizer-service/internal/adapters/directions"
	"route-optimizer-service/internal/api"
	"route-optimizer-service/internal/config"
	"route-optimizer-service/internal/platform/db"
	"route-optimizer-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (directions provider, audit store) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()

	mock := directions.NewMockDirectionsProvider()

	var provider ports.DirectionsProvider = mock
	if !cfg.MockMode() {
		real, err := directions.NewGoogleDirectionsProvider(cfg.GoogleAPIKey, cfg.RequestTimeout)
		if err != nil {
			log.Fatal(err)
		}
		provider = real
	}

	store, closeStore, err := openAuditStore(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeStore()

	router := api.NewRouter(provider, mock, store, cfg.ServiceName, cfg.MockMode())

	// Write timeout covers two sequential 15s provider calls plus slack.
	log.Printf("Server listening addr=:%s mock_mode=%v", cfg.Port, cfg.MockMode())
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openAuditStore selects the Postgres store when DATABASE_URL is set
// (schema managed by cmd/dbtool) and falls back to a local SQLite file
// otherwise.
func openAuditStore(cfg config.Config) (ports.AuditStore, func(), error) {
	if cfg.DatabaseURL != "" {
		pg, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open audit store: %w", err)
		}
		return audit.NewSQLAuditStore(pg), func() { pg.Close() }, nil
	}

	if dir := filepath.Dir(cfg.AuditDBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("open audit store: create %q: %w", dir, err)
		}
	}

	sq, err := sql.Open("sqlite", cfg.AuditDBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open audit store: open sqlite database %q: %w", cfg.AuditDBPath, err)
	}

	if err := sq.Ping(); err != nil {
		sq.Close()
		return nil, nil, fmt.Errorf("open audit store: verify sqlite connection to %q: %w", cfg.AuditDBPath, err)
	}

	if err := audit.InitSchema(sq); err != nil {
		sq.Close()
		return nil, nil, fmt.Errorf("open audit store: %w", err)
	}

	return audit.NewSqliteAuditStore(sq), func() { sq.Close() }, nil
}
