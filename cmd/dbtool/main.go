package main

import (
	"context"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"route-optimizer-service/internal/adapters/audit"
	"route-optimizer-service/internal/platform/db"
)

// dbtool manages the Postgres audit schema and prints the current
// aggregate summary.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing audit schema...")
	if err := audit.InitPostgresSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	store := audit.NewSQLAuditStore(conn)
	sum, err := store.Summary(context.Background())
	if err != nil {
		log.Fatalf("audit summary failed: %v", err)
	}

	log.Printf(
		"audit summary: total=%d mock=%d avg_distance_pct_saved=%.2f",
		sum.TotalRequests, sum.MockRequests, sum.AvgDistancePctSaved,
	)
}
