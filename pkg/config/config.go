package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the server.
type Config struct {
	Port        string
	DatabaseURL string

	// ArchiveAfter is how long a completed task rests before the nightly job
	// archives it. Zero disables archiving.
	ArchiveAfter time.Duration
	// ArchiveAt is the local HH:MM time the archive job runs.
	ArchiveAt string
}

// Load reads configuration from .env (if present) and environment variables.
func Load() *Config {
	_ = godotenv.Load()

	archiveAfter := time.Duration(0)
	if raw := os.Getenv("ARCHIVE_AFTER"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			archiveAfter = parsed
		}
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  strings.TrimSpace(getEnv("DATABASE_URL", "taskflow.db")),
		ArchiveAfter: archiveAfter,
		ArchiveAt:    getEnv("ARCHIVE_AT", "03:00"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
