package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server      ServerConfig
	RateService RateServiceConfig
	LogLevel    string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// RateServiceConfig describes the external sales-tax rate lookup endpoint.
// The URL is resolved once at startup and handed to the client explicitly;
// nothing reads it again after Load returns.
type RateServiceConfig struct {
	URL            string
	TimeoutSeconds int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Populate the environment from a local .env file when present
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8002"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		RateService: RateServiceConfig{
			URL:            getEnv("SALES_TAX_RATE_SERVICE", "http://localhost:8001/find_rate"),
			TimeoutSeconds: getEnvAsInt("RATE_LOOKUP_TIMEOUT", 10),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.RateService.URL == "" {
		return fmt.Errorf("SALES_TAX_RATE_SERVICE is required")
	}
	if _, err := url.ParseRequestURI(c.RateService.URL); err != nil {
		return fmt.Errorf("invalid SALES_TAX_RATE_SERVICE url: %w", err)
	}

	if c.RateService.TimeoutSeconds <= 0 {
		return fmt.Errorf("RATE_LOOKUP_TIMEOUT must be positive")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
