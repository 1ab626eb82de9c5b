// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting for the server. Values come from
// environment variables with sensible development defaults; a local .env
// file is loaded by the entrypoint before parsing.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int `env:"PORT" envDefault:"8080"`

	// DBPath is the SQLite database file path.
	DBPath string `env:"DB_PATH" envDefault:"./data/spliteasy.db"`

	// JWTSecret signs and verifies bearer tokens. The default exists
	// only for local development.
	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`

	// TokenTTL is how long issued tokens remain valid.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
