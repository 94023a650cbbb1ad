// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
)

// Config holds all configuration values for the Pack Buddy CLI.
// Values are populated by Load from environment variables.
type Config struct {
	// DBPath is the filesystem path of the SQLite database.
	// Defaults to "packbuddy.db" in the working directory.
	// Set PACKBUDDY_DB_PATH to override.
	DBPath string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error when a variable is set to an unusable value; unset
// variables fall back to defaults.
func Load() (Config, error) {
	cfg := Config{
		DBPath:   getEnv("PACKBUDDY_DB_PATH", "packbuddy.db"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("invalid LOG_LEVEL %q: must be one of debug, info, warn, error", cfg.LogLevel)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
