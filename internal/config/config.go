package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr    string        `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath      string        `env:"DB_PATH" envDefault:"data/capitals.db"`
	DatasetPath string        `env:"DATASET_PATH" envDefault:"data/countries.json"`
	RedisURL    string        `env:"REDIS_URL"`
	SessionTTL  time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	LogLevel    slog.Level    `env:"LOG_LEVEL" envDefault:"INFO"`

	// Bcrypt hash guarding the dataset reload endpoint; empty disables it.
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
