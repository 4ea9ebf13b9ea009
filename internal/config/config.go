package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all pipeline settings, populated from environment variables.
type Config struct {
	SourceURL  string
	RawPath    string
	OutputPath string

	FetchTimeout time.Duration
	SkipFetch    bool

	HTTPEnabled     bool
	HTTPAddr        string
	ShutdownTimeout time.Duration

	LogLevel  string
	LogFormat string

	// Opt-in row filters recovered from the original cleaning script.
	DropIncomplete   bool
	MinCategoryCount int
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file in the working directory is loaded first when
// present; variables already set in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	fetchTimeout, err := parseDuration("FETCH_TIMEOUT", "60s")
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	minCategoryCount, err := parseInt("MIN_CATEGORY_COUNT", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		SourceURL:  envOrDefault("SOURCE_URL", "https://www.sharkattackfile.net/spreadsheets/GSAF5.csv"),
		RawPath:    envOrDefault("RAW_PATH", "data/raw/gsaf.csv"),
		OutputPath: envOrDefault("OUTPUT_PATH", "data/clean/gsaf_clean.csv"),

		FetchTimeout: fetchTimeout,
		SkipFetch:    envBool("SKIP_FETCH"),

		HTTPEnabled:     envBool("HTTP_ENABLED"),
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		ShutdownTimeout: shutdownTimeout,

		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "json"),

		DropIncomplete:   envBool("DROP_INCOMPLETE"),
		MinCategoryCount: minCategoryCount,
	}

	if cfg.SourceURL == "" && !cfg.SkipFetch {
		return nil, errors.New("SOURCE_URL is required unless SKIP_FETCH is set")
	}
	if cfg.RawPath == "" {
		return nil, errors.New("RAW_PATH is required")
	}
	if cfg.OutputPath == "" {
		return nil, errors.New("OUTPUT_PATH is required")
	}
	if cfg.MinCategoryCount < 0 {
		return nil, errors.New("MIN_CATEGORY_COUNT must not be negative")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	return os.Getenv(key) == "true"
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}
