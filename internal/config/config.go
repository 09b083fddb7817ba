// ABOUTME: Centralized configuration for the projectkb server
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/harper/projectkb/internal/storage/sqlite"
)

// Config holds all configuration for the knowledge store
type Config struct {
	// Storage settings
	DBPath string

	// Web server settings
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		DBPath:          getEnv("PROJECTKB_DB_PATH", sqlite.DefaultDBPath()),
		Addr:            getEnv("PROJECTKB_ADDR", ":8372"),
		ReadTimeout:     getEnvDuration("PROJECTKB_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvDuration("PROJECTKB_WRITE_TIMEOUT", 15*time.Second),
		ShutdownTimeout: getEnvDuration("PROJECTKB_SHUTDOWN_TIMEOUT", 10*time.Second),
		LogLevel:        getEnv("PROJECTKB_LOG_LEVEL", "info"),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("PROJECTKB_DB_PATH must not be empty")
	}
	if !strings.Contains(c.Addr, ":") {
		return fmt.Errorf("PROJECTKB_ADDR must be host:port, got %q", c.Addr)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("PROJECTKB_LOG_LEVEL must be debug/info/warn/error, got %q", c.LogLevel)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
