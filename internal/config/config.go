package config

import (
	"os"
	"strings"
	"time"
)

// Config holds all runtime settings, built once at startup from the
// environment and passed into components by parameter. Logic code never
// reads the environment directly.
type Config struct {
	ServiceName    string
	Port           string
	GoogleAPIKey   string
	AuditDBPath    string
	DatabaseURL    string
	RequestTimeout time.Duration
}

func Load() Config {
	return Config{
		ServiceName:    Get("SERVICE_NAME", "route-optimizer-service"),
		Port:           Get("PORT", "8080"),
		GoogleAPIKey:   strings.TrimSpace(os.Getenv("GOOGLE_MAPS_API_KEY")),
		AuditDBPath:    Get("AUDIT_DB_PATH", "data/audit.db"),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RequestTimeout: 15 * time.Second,
	}
}

// MockMode reports whether the service must run offline: without a
// directions API credential every optimization request is served by the
// deterministic mock provider.
func (c Config) MockMode() bool {
	return c.GoogleAPIKey == ""
}

func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
