package config

import (
	"os"
	"strconv"

	"thyroidrisk/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Dashboard DashboardConfig
	Database  DatabaseConfig
	Profiling ProfilingConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds the dataset locations and the synthetic fallback settings
type DataConfig struct {
	PrimaryFile  string
	FallbackFile string
	SampleRows   int
	SampleSeed   int64
}

// DashboardConfig holds presentation settings
type DashboardConfig struct {
	HeadRows int
}

// DatabaseConfig holds the optional load-history database
type DatabaseConfig struct {
	URL string
}

// Enabled reports whether load history should be recorded
func (d DatabaseConfig) Enabled() bool {
	return d.URL != ""
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Data: DataConfig{
			PrimaryFile:  getEnvOrDefault("PRIMARY_DATA_FILE", "thyroid_cancer_risk_data_cleaned.csv"),
			FallbackFile: getEnvOrDefault("FALLBACK_DATA_FILE", "thyroid_cancer_risk_data.csv"),
			SampleRows:   getEnvIntOrDefault("SAMPLE_ROWS", 100),
			SampleSeed:   int64(getEnvIntOrDefault("SAMPLE_SEED", 42)),
		},
		Dashboard: DashboardConfig{
			HeadRows: getEnvIntOrDefault("HEAD_ROWS", 10),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Profiling: ProfilingConfig{
			Port:    getEnvOrDefault("PPROF_PORT", "6060"),
			Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Validate checks the settings that would otherwise fail later at render time
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if c.Data.PrimaryFile == "" && c.Data.FallbackFile == "" {
		return errors.ConfigInvalid("at least one data file path is required")
	}
	if c.Data.SampleRows <= 0 {
		return errors.ConfigInvalid("SAMPLE_ROWS must be positive")
	}
	if c.Dashboard.HeadRows <= 0 {
		return errors.ConfigInvalid("HEAD_ROWS must be positive")
	}
	if c.Profiling.Enabled && c.Profiling.Port == "" {
		return errors.ConfigInvalid("PPROF_PORT is required when profiling is enabled")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
