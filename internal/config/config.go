// Package config loads service configuration from CERTIFAI_* environment
// variables with working defaults, so a bare `certifai serve` starts a
// functional instance (minus LLM credentials).
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/realnamesareboring/certifai/internal/llm"
)

// Config holds all configuration for the certifai service.
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	CORS   CORSConfig
	LLM    llm.Config
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string
	Port int
}

// StoreConfig holds the event store location.
type StoreConfig struct {
	// Path is the SQLite database file. Empty disables the event store.
	Path string
}

// CORSConfig holds cross-origin settings for the frontend collaborator.
type CORSConfig struct {
	AllowedOrigins []string
}

// Load builds the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("CERTIFAI_HOST", "0.0.0.0"),
			Port: getEnvAsInt("CERTIFAI_PORT", 8080),
		},
		Store: StoreConfig{
			Path: getEnv("CERTIFAI_DB_PATH", "certifai.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{getEnv("CERTIFAI_CORS_ORIGIN", "*")},
		},
		LLM: llm.ConfigFromEnv(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
