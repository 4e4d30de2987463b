package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds settings read from RITUALIST_* environment variables.
type Config struct {
	Environment  string        `envconfig:"ENVIRONMENT" default:"production"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"warn"`
	DBPath       string        `envconfig:"DB_PATH"`
	CatalogPath  string        `envconfig:"CATALOG_PATH"`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"60s"`
	Timezone     string        `envconfig:"TIMEZONE"`
	MetricsAddr  string        `envconfig:"METRICS_ADDR"`
}

// Load reads the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("ritualist", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", c.PollInterval)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Development reports whether human-readable console logging should be used.
func (c *Config) Development() bool {
	return strings.EqualFold(c.Environment, "development")
}

// Location resolves the configured time zone used for calendar dates.
// An empty value means the process-local zone.
func (c *Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Timezone)
	if tz == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}
	return loc, nil
}
