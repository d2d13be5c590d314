package config

import (
	"os"
	"strconv"

	"datareport/internal"
	"datareport/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Log    LogConfig
	Report ReportConfig
	Data   DataConfig
}

// LogConfig holds logging settings
type LogConfig struct {
	Level internal.LogLevel
}

// ReportConfig holds defaults applied to statistics, intervals and tests
type ReportConfig struct {
	Confidence float64 // default confidence level for intervals
	Workers    int     // concurrent report block evaluation
}

// DataConfig holds table import settings
type DataConfig struct {
	File       string // default input file
	Sheet      string // xlsx sheet; empty means the first sheet
	HasHeaders bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	logConfig, err := loadLogConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load log configuration")
	}

	config := &Config{
		Log:    *logConfig,
		Report: *loadReportConfig(),
		Data:   *loadDataConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadLogConfig() (*LogConfig, error) {
	raw := getEnvOrDefault("LOG_LEVEL", "INFO")
	level, ok := internal.ParseLogLevel(raw)
	if !ok {
		return nil, errors.ConfigInvalid("LOG_LEVEL must be one of ERROR, WARN, INFO, DEBUG, TRACE (got " + raw + ")")
	}
	return &LogConfig{Level: level}, nil
}

func loadReportConfig() *ReportConfig {
	return &ReportConfig{
		Confidence: getEnvFloatOrDefault("REPORT_CONFIDENCE", 0.95),
		Workers:    getEnvIntOrDefault("REPORT_WORKERS", 4),
	}
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		File:       getEnvOrDefault("REPORT_DATA_FILE", ""),
		Sheet:      getEnvOrDefault("REPORT_SHEET", ""),
		HasHeaders: getEnvBoolOrDefault("REPORT_HAS_HEADERS", true),
	}
}

func validateConfig(config *Config) error {
	if config.Report.Confidence <= 0 || config.Report.Confidence >= 1 {
		return errors.ConfigInvalid("REPORT_CONFIDENCE must be between 0 and 1")
	}
	if config.Report.Workers < 1 {
		return errors.ConfigInvalid("REPORT_WORKERS must be at least 1")
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

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
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
