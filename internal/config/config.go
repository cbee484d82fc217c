// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting for the server binary
type Config struct {
	Host           string        `env:"HOST" envDefault:""`
	Port           int           `env:"PORT" envDefault:"8080"`
	StorageType    string        `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL       string        `env:"REDIS_URL" envDefault:"redis://localhost:6379"`
	GameSessionTTL time.Duration `env:"GAME_SESSION_TTL" envDefault:"24h"`
	LogLevel       slog.Level    `env:"LOG_LEVEL" envDefault:"INFO"`
}

// Load parses the configuration from environment variables
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
