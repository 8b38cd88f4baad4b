package config

import (
	"fmt"
	"os"
	"time"
)

// DefaultSecretKey is the insecure fallback for session signing. Any
// real deployment must override it via SECRET_KEY.
const DefaultSecretKey = "change-me-in-prod"

// Config holds application configuration
type Config struct {
	Port       string
	DBConn     string
	LogLevel   string
	SecretKey  string
	SessionTTL time.Duration
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		DBConn:    getEnv("DB_CONN", "host=localhost port=5432 user=auth password=auth dbname=auth sslmode=disable"),
		LogLevel:  getEnv("LOG_LEVEL", "INFO"),
		SecretKey: getEnv("SECRET_KEY", DefaultSecretKey),
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	cfg.SessionTTL = ttl

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is required")
	}

	return cfg, nil
}

// InsecureSecret reports whether the session secret is still the
// hardcoded fallback.
func (c *Config) InsecureSecret() bool {
	return c.SecretKey == DefaultSecretKey
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
