package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Search modes for substring filters.
const (
	SearchModeLiteral = "literal"
	SearchModeRegex   = "regex"
)

// Preference storage backends.
const (
	PrefsBackendFile   = "file"
	PrefsBackendRedis  = "redis"
	PrefsBackendMemory = "memory"
)

// Config holds all configuration for the application.
type Config struct {
	DBPath    string
	APIPort   string
	LogLevel  slog.Level
	LogFormat string

	SearchMode       string
	PatternCacheSize int
	MaxPageLimit     int

	DataDir         string
	ImportBatchSize int

	APIBaseURL    string
	ClientTimeout time.Duration
	PrefsBackend  string
	PrefsPath     string
	RedisURL      string
	PrefsUser     string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates enumerated and numeric fields.
// If a .env file exists in the current directory or one of its parents, it is loaded.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ {
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		DBPath:       getEnv("DB_PATH", "./data/quran-explorer.db"),
		APIPort:      getEnv("API_PORT", "5000"),
		LogFormat:    strings.ToLower(getEnv("LOG_FORMAT", "text")),
		SearchMode:   strings.ToLower(getEnv("SEARCH_MODE", SearchModeLiteral)),
		DataDir:      getEnv("DATA_DIR", "./data/corpus"),
		APIBaseURL:   strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:5000/api"), "/"),
		PrefsBackend: strings.ToLower(getEnv("PREFS_BACKEND", PrefsBackendFile)),
		PrefsPath:    getEnv("PREFS_PATH", "./data/prefs.json"),
		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379/0"),
		PrefsUser:    getEnv("PREFS_USER", "default"),
	}

	level, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}
	if cfg.SearchMode != SearchModeLiteral && cfg.SearchMode != SearchModeRegex {
		return nil, fmt.Errorf("SEARCH_MODE must be %s or %s, got %q", SearchModeLiteral, SearchModeRegex, cfg.SearchMode)
	}
	switch cfg.PrefsBackend {
	case PrefsBackendFile, PrefsBackendRedis, PrefsBackendMemory:
	default:
		return nil, fmt.Errorf("PREFS_BACKEND must be file, redis or memory, got %q", cfg.PrefsBackend)
	}

	if cfg.PatternCacheSize, err = getPositiveInt("PATTERN_CACHE_SIZE", 256); err != nil {
		return nil, err
	}
	if cfg.MaxPageLimit, err = getPositiveInt("MAX_PAGE_LIMIT", 500); err != nil {
		return nil, err
	}
	if cfg.ImportBatchSize, err = getPositiveInt("IMPORT_BATCH_SIZE", 100); err != nil {
		return nil, err
	}

	timeout, err := time.ParseDuration(getEnv("CLIENT_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("CLIENT_TIMEOUT must be a valid duration: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("CLIENT_TIMEOUT must be greater than 0")
	}
	cfg.ClientTimeout = timeout

	// Create the database directory so sqlite can create the file
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getPositiveInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}
	return n, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error: %w", err)
	}
	return level, nil
}
