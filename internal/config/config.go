// Package config reads engine settings from the environment, loading a .env
// file first when one is present.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/violet-to-doctrine/parser/internal/export"
)

// Environment variables read by Load.
const (
	EnvLogLevel     = "DIAGRAM_LOG_LEVEL"
	EnvMaxBytes     = "DIAGRAM_MAX_BYTES"
	EnvMaxDepth     = "DIAGRAM_MAX_DEPTH"
	EnvCacheSize    = "DIAGRAM_CACHE_SIZE"
	EnvExportFormat = "DIAGRAM_EXPORT_FORMAT"
)

const (
	DefaultMaxDocumentBytes int64 = 8 << 20
	DefaultMaxDepth               = 64
	DefaultCacheSize              = 128
)

type Config struct {
	LogLevel         slog.Level
	MaxDocumentBytes int64
	MaxDepth         int
	CacheSize        int
	ExportFormat     export.Format
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		LogLevel:         slog.LevelInfo,
		MaxDocumentBytes: DefaultMaxDocumentBytes,
		MaxDepth:         DefaultMaxDepth,
		CacheSize:        DefaultCacheSize,
		ExportFormat:     export.FormatJSON,
	}
}

// Load reads the configuration. Unset or invalid values keep their defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if raw := strings.TrimSpace(os.Getenv(EnvLogLevel)); raw != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(raw)); err == nil {
			cfg.LogLevel = lvl
		}
	}
	if n, ok := positive(EnvMaxBytes); ok {
		cfg.MaxDocumentBytes = int64(n)
	}
	if n, ok := positive(EnvMaxDepth); ok {
		cfg.MaxDepth = n
	}
	if n, ok := positive(EnvCacheSize); ok {
		cfg.CacheSize = n
	}
	if raw := os.Getenv(EnvExportFormat); raw != "" {
		if f, err := export.ParseFormat(raw); err == nil {
			cfg.ExportFormat = f
		}
	}
	return cfg, nil
}

func positive(key string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
