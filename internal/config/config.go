// Package config loads drill settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const DefaultFile = "drill.yaml"

// Config is the top-level structure of drill.yaml. Environment variables
// override file values.
type Config struct {
	UserID       string        `yaml:"user_id" env:"USER_ID"`
	LogLevel     string        `yaml:"log_level" env:"LOG_LEVEL"`
	TickInterval time.Duration `yaml:"tick_interval" env:"TICK_INTERVAL"`
	SaveTimeout  time.Duration `yaml:"save_timeout" env:"SAVE_TIMEOUT"`
	CatalogPath  string        `yaml:"catalog_path" env:"CATALOG_PATH"`
	Storage      StorageConfig `yaml:"storage" envPrefix:"STORAGE_"`
}

// StorageConfig selects the completion history backend.
type StorageConfig struct {
	Driver string `yaml:"driver" env:"DRIVER"`
	DSN    string `yaml:"dsn" env:"DSN"`
}

const envPrefix = "DRILL_"

var validDrivers = map[string]bool{
	"sqlite3":  true,
	"postgres": true,
	"memory":   true,
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		TickInterval: time.Second,
		SaveTimeout:  5 * time.Second,
		Storage: StorageConfig{
			Driver: "sqlite3",
			DSN:    "drill.db",
		},
	}
}

// Load reads path over the defaults, then applies DRILL_* environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("invalid config: tick_interval must be positive, got %s", c.TickInterval)
	}
	if c.SaveTimeout <= 0 {
		return fmt.Errorf("invalid config: save_timeout must be positive, got %s", c.SaveTimeout)
	}
	if !validDrivers[c.Storage.Driver] {
		return fmt.Errorf("invalid config: unknown storage driver %q", c.Storage.Driver)
	}
	return nil
}
