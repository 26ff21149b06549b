package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the catalog service and the dashboard.
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Dashboard DashboardConfig
	LogLevel  string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type StoreConfig struct {
	Driver string // sqlite or postgres
	DSN    string
}

type DashboardConfig struct {
	Port       string
	Host       string
	CatalogURL string // list endpoint of the catalog service
	Timeout    int    // upstream request timeout in seconds
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8000"),
			Host:            getEnv("HOST", "127.0.0.1"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getEnv("STORE_DRIVER", "sqlite")),
			DSN:    getEnv("STORE_DSN", "file:products.db?_pragma=busy_timeout(5000)&_txlock=immediate"),
		},
		Dashboard: DashboardConfig{
			Port:       getEnv("DASHBOARD_PORT", "8501"),
			Host:       getEnv("DASHBOARD_HOST", "127.0.0.1"),
			CatalogURL: getEnv("CATALOG_URL", "http://127.0.0.1:8000/products/"),
			Timeout:    getEnvAsInt("CATALOG_TIMEOUT", 10),
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

	if c.Dashboard.Port == "" {
		return fmt.Errorf("DASHBOARD_PORT is required")
	}

	switch c.Store.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("invalid store driver: %s (must be sqlite or postgres)", c.Store.Driver)
	}

	if c.Store.DSN == "" {
		return fmt.Errorf("STORE_DSN is required")
	}

	u, err := url.Parse(c.Dashboard.CatalogURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid CATALOG_URL: %q (must be an absolute http or https URL)", c.Dashboard.CatalogURL)
	}

	if c.Dashboard.Timeout <= 0 {
		return fmt.Errorf("CATALOG_TIMEOUT must be positive")
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
