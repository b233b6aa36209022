// Package config loads arcade settings from defaults, an optional YAML file
// and ARCADE_* environment variables, in that order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/dataKh4n/arcadeKh4n/internal/store"
)

// DefaultDBName is the database file created beside the executable.
const DefaultDBName = "highscores.db"

// LogLevels lists the accepted values for Config.LogLevel.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds settings shared by every arcade command.
type Config struct {
	// DBPath is the SQLite file holding the high score table.
	DBPath string `yaml:"db_path" env:"ARCADE_DB"`

	// BusyTimeout bounds the wait on a database locked by another process.
	BusyTimeout time.Duration `yaml:"busy_timeout" env:"ARCADE_BUSY_TIMEOUT"`

	// ExportLimit caps the rows written by an export.
	ExportLimit int `yaml:"export_limit" env:"ARCADE_EXPORT_LIMIT"`

	// DefaultPlayer is recorded when a player leaves their name blank.
	DefaultPlayer string `yaml:"default_player" env:"ARCADE_DEFAULT_PLAYER"`

	// LogLevel is one of LogLevels.
	LogLevel string `yaml:"log_level" env:"ARCADE_LOG_LEVEL"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DBPath:        DefaultDBPath(),
		BusyTimeout:   store.DefaultBusyTimeout,
		ExportLimit:   store.DefaultExportLimit,
		DefaultPlayer: store.DefaultPlayer,
		LogLevel:      "warn",
	}
}

// DefaultDBPath places the database beside the running executable, falling
// back to the working directory when the executable path is unknown.
func DefaultDBPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultDBName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), DefaultDBName)
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is non-empty), then environment variables. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := mergeFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mergeFile overlays the fields present in the YAML file onto cfg.
// Unknown fields are rejected so typos don't silently fall back to defaults.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		// An empty file decodes to io.EOF; keep the defaults.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("db_path must not be empty")
	}
	if c.BusyTimeout <= 0 {
		return fmt.Errorf("busy_timeout must be positive, got %s", c.BusyTimeout)
	}
	if c.ExportLimit <= 0 {
		return fmt.Errorf("export_limit must be positive, got %d", c.ExportLimit)
	}
	if strings.TrimSpace(c.DefaultPlayer) == "" {
		return errors.New("default_player must not be empty")
	}
	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q: must be one of %v", c.LogLevel, LogLevels)
	}
	return nil
}

// StoreOptions translates the configuration into store options.
func (c Config) StoreOptions() []store.Option {
	return []store.Option{
		store.WithBusyTimeout(c.BusyTimeout),
		store.WithExportLimit(c.ExportLimit),
		store.WithDefaultPlayer(c.DefaultPlayer),
	}
}

// SlogLevel maps LogLevel onto a slog level. Unknown values map to warn.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func isValidLogLevel(level string) bool {
	for _, l := range LogLevels {
		if l == level {
			return true
		}
	}
	return false
}
