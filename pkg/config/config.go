package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Ingest        IngestConfig
	Search        SearchConfig
	Archive       ArchiveConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
}

type IngestConfig struct {
	OCRLanguage  string
	MaxFileSize  int
	DefaultMime  string
	CurrencyCode string
}

type SearchConfig struct {
	Enabled    bool
	MaxResults int
}

type ArchiveConfig struct {
	Enabled bool
	Path    string
}

type ObservabilityConfig struct {
	MetricsEnabled bool
	MetricsPort    int
}

type ProfilingConfig struct {
	Enabled bool
	Port    int
}

// Load reads configuration from environment variables. A .env file in
// the working directory is loaded first; variables already set in the
// environment win.
func Load() (*Config, error) {
	// A missing .env file is fine; the caller may set everything directly.
	_ = godotenv.Load()

	cfg := &Config{
		Ingest: IngestConfig{
			OCRLanguage:  getEnv("OCR_LANGUAGE", "eng"),
			MaxFileSize:  getEnvAsInt("MAX_FILE_SIZE_BYTES", 10<<20),
			DefaultMime:  getEnv("DEFAULT_MIME_TYPE", "application/pdf"),
			CurrencyCode: getEnv("CURRENCY_CODE", "INR"),
		},
		Search: SearchConfig{
			Enabled:    getEnvAsBool("SEARCH_ENABLED", true),
			MaxResults: getEnvAsInt("SEARCH_MAX_RESULTS", 20),
		},
		Archive: ArchiveConfig{
			Enabled: getEnvAsBool("ARCHIVE_ENABLED", false),
			Path:    getEnv("ARCHIVE_PATH", "./archive"),
		},
		Observability: ObservabilityConfig{
			MetricsEnabled: getEnvAsBool("METRICS_ENABLED", true),
			MetricsPort:    getEnvAsInt("METRICS_PORT", 9090),
		},
		Profiling: ProfilingConfig{
			Enabled: getEnvAsBool("PPROF_ENABLED", false),
			Port:    getEnvAsInt("PPROF_PORT", 6060),
		},
	}

	if cfg.Ingest.MaxFileSize <= 0 {
		return nil, errors.New("MAX_FILE_SIZE_BYTES must be positive")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
