// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds themectl configuration.
// Fields are populated from environment variables.
type Config struct {
	// Resolution defaults, overridable per invocation by flags
	EnabledCultures []string // opt-in theme names, comma separated in THEME_CULTURES
	UserRegion      string   // region identifier, e.g. "IL"

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text
}

// Load reads configuration from environment variables.
// A .env file is loaded first if present; in deployed environments the
// variables are set directly and the file load is a no-op.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		EnabledCultures: getEnvList("THEME_CULTURES"),
		UserRegion:      getEnv("THEME_REGION", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all configuration values are usable.
func (c *Config) Validate() error {
	var errs []error

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	switch c.LogFormat {
	case "json", "text":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvList reads a comma-separated environment variable, trimming
// whitespace and dropping empty items.
func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
