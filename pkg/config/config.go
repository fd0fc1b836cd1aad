package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Loads a local .env file into the process environment, if one exists.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "FORUM_"

type Config struct {
	Env         string         `koanf:"env" validate:"required"`
	Port        string         `koanf:"port" validate:"required"`
	MetricsPort string         `koanf:"metrics_port"`
	LogLevel    string         `koanf:"log_level" validate:"required"`
	Database    DatabaseConfig `koanf:"database" validate:"required"`
}

// DatabaseConfig selects the storage engine. Path is used by sqlite, DSN by postgres.
type DatabaseConfig struct {
	Driver string `koanf:"driver" validate:"required,oneof=sqlite postgres"`
	Path   string `koanf:"path" validate:"required_if=Driver sqlite"`
	DSN    string `koanf:"dsn" validate:"required_if=Driver postgres"`
}

func defaults() *Config {
	return &Config{
		Env:         "development",
		Port:        "8080",
		MetricsPort: "9090",
		LogLevel:    "info",
		Database: DatabaseConfig{
			Driver: "sqlite",
			Path:   "questions.db",
		},
	}
}

// Load reads FORUM_* environment variables on top of the defaults.
// FORUM_DATABASE_PATH maps to database.path, FORUM_LOG_LEVEL to log_level.
func Load() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		if rest, ok := strings.CutPrefix(key, "database_"); ok {
			return "database." + rest
		}
		return key
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
