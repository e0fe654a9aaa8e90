package config

import (
	"os"
	"strings"

	"brevetalign/constants"
)

// AppConfig holds process-wide configuration: logging mode and CLI
// defaults. Per-brevet alignment thresholds are their own record,
// brevet.Config, since they vary per request rather than per process.
type AppConfig struct {
	LogMode  string
	SkipTrim bool
}

// NewAppConfig creates a new configuration instance with values from
// environment variables.
func NewAppConfig() *AppConfig {
	return &AppConfig{
		LogMode:  getEnvOrDefault(constants.EnvLogMode, "console"),
		SkipTrim: constants.DefaultSkipTrim,
	}
}

// IsProductionMode returns true if running in production mode
func (c *AppConfig) IsProductionMode() bool {
	env := strings.ToLower(os.Getenv(constants.EnvGoEnv))
	return env == "production" || env == "prod"
}

// IsDevelopmentMode returns true if running in development mode
func (c *AppConfig) IsDevelopmentMode() bool {
	return !c.IsProductionMode()
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
