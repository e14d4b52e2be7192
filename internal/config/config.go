package config

import (
	"os"

	"doc-text-extractor/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	LogLevel string
}

// NewConfig creates a new configuration instance with default values.
// Only diagnostics are configurable; extraction behavior takes no knobs.
func NewConfig() domain.Config {
	return &AppConfig{
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// Helper function for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
