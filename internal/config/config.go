// Package config loads process configuration from the environment.
// A .env file is honored when present (local development); real
// environments set the variables directly.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// tokenTTL is how long issued session tokens remain valid.
const tokenTTL = 7 * 24 * time.Hour

// Config holds everything the server needs at startup.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// MongoURI is the document store connection string.
	MongoURI string

	// DBName is the database holding the user and bill collections.
	DBName string

	// SecretKey signs session tokens. Process-wide; compromise of it
	// invalidates the entire trust boundary.
	SecretKey string

	// TokenTTL is the validity window of issued tokens.
	TokenTTL time.Duration
}

// Load reads configuration from the environment, loading .env first if
// one exists. SECRET_KEY and MONGODB_URI are required; everything else
// has a default.
func Load() (*Config, error) {
	_ = godotenv.Load() // ok if missing

	cfg := &Config{
		Port:      getEnv("PORT", "5000"),
		MongoURI:  os.Getenv("MONGODB_URI"),
		DBName:    getEnv("DB_NAME", "billkeeper"),
		SecretKey: os.Getenv("SECRET_KEY"),
		TokenTTL:  tokenTTL,
	}

	for name, v := range map[string]string{
		"SECRET_KEY":  cfg.SecretKey,
		"MONGODB_URI": cfg.MongoURI,
	} {
		if v == "" {
			return nil, fmt.Errorf("missing required env %s", name)
		}
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
