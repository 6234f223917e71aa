// Package config loads CLI configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/fakturo/druckwerk/internal/logger"
)

// Config holds all environment-provided settings.
type Config struct {
	// FontDir must contain the regular and bold document faces.
	FontDir string
	// AssetDir is the root for resolving relative image paths such as
	// company logos. Optional; without it only absolute paths resolve.
	AssetDir string

	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	config := &Config{
		FontDir:       getEnv("DRUCKWERK_FONT_DIR", "assets/fonts"),
		AssetDir:      getEnv("DRUCKWERK_ASSET_DIR", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stderr"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.FontDir == "" {
		return fmt.Errorf("DRUCKWERK_FONT_DIR is required")
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
