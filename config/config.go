// Package config has the configuration file for the data preparation tools
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	DataDir            string // Directory holding downloaded resources and cleaned CSV outputs
	ManifestPath       string // Path to the JSON resource manifest
	LogDir             string // Directory for run log files
	LogLevel           string
	HTTPTimeoutSeconds int // Timeout for a single resource download
}

// Load loads and validates configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		DataDir:            getEnvWithDefault("DATA_DIR", "data"),
		ManifestPath:       getEnvWithDefault("MANIFEST_PATH", "data.json"),
		LogDir:             getEnvWithDefault("LOG_DIR", "logs"),
		LogLevel:           getEnvWithDefault("LOG_LEVEL", "info"),
		HTTPTimeoutSeconds: getIntEnvWithDefault("HTTP_TIMEOUT_SECONDS", 300),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// validateConfig validates all configuration values
func validateConfig(cfg *Config) error {
	if err := validatePath(cfg.DataDir, "DATA_DIR"); err != nil {
		return err
	}

	if err := validatePath(cfg.ManifestPath, "MANIFEST_PATH"); err != nil {
		return err
	}

	if err := validatePath(cfg.LogDir, "LOG_DIR"); err != nil {
		return err
	}

	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if err := validateTimeout(cfg.HTTPTimeoutSeconds); err != nil {
		return fmt.Errorf("invalid HTTP_TIMEOUT_SECONDS: %w", err)
	}

	return nil
}

// validatePath validates a configured filesystem path
func validatePath(path string, configName string) error {
	if path == "" {
		return fmt.Errorf("%s cannot be empty", configName)
	}

	if !filepath.IsAbs(path) && strings.HasPrefix(filepath.Clean(path), "..") {
		return fmt.Errorf("%s must not escape the working directory, got: %s", configName, path)
	}

	return nil
}

// validateLogLevel validates the LOG_LEVEL environment variable
func validateLogLevel(logLevel string) error {
	if logLevel == "" {
		return fmt.Errorf("LOG_LEVEL cannot be empty")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	logLevel = strings.ToLower(logLevel)

	for _, level := range validLevels {
		if logLevel == level {
			return nil
		}
	}

	return fmt.Errorf("LOG_LEVEL must be one of: %v, got: %s", validLevels, logLevel)
}

// validateTimeout validates the HTTP_TIMEOUT_SECONDS environment variable
func validateTimeout(seconds int) error {
	if seconds <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT_SECONDS must be positive, got: %d", seconds)
	}

	if seconds > 3600 {
		return fmt.Errorf("HTTP_TIMEOUT_SECONDS is too large (max 3600), got: %d", seconds)
	}

	return nil
}

// getEnvWithDefault gets an environment variable with a default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnvWithDefault gets an environment variable as int with a default value
func getIntEnvWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
