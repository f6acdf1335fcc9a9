package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Prefix namespaces the environment variables, e.g. INVENTORY_SERVER_PORT.
// The short names (PORT, LOG_LEVEL, ...) are accepted as well.
const Prefix = "inventory"

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server           ServerConfig
	CORS             CORSConfig
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"`
	SeedSampleData   bool   `envconfig:"SEED_SAMPLE_DATA" default:"true"`
	RecentOperations int    `envconfig:"RECENT_OPERATIONS" default:"5"`
}

type ServerConfig struct {
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Port            string        `envconfig:"PORT" default:"5000"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// Addr returns host:port for the HTTP listener
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, errors.Wrap(err, "read environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("PORT is required")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return errors.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	if c.RecentOperations <= 0 {
		return errors.Errorf("RECENT_OPERATIONS must be positive, got %d", c.RecentOperations)
	}

	return nil
}
