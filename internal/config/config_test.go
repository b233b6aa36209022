package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arcade.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultDBName, filepath.Base(cfg.DBPath))
	assert.Equal(t, 5*time.Second, cfg.BusyTimeout)
	assert.Equal(t, 1000, cfg.ExportLimit)
	assert.Equal(t, "Player", cfg.DefaultPlayer)
	assert.Equal(t, "warn", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
db_path: /var/lib/arcade/scores.db
busy_timeout: 250ms
export_limit: 50
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/arcade/scores.db", cfg.DBPath)
	assert.Equal(t, 250*time.Millisecond, cfg.BusyTimeout)
	assert.Equal(t, 50, cfg.ExportLimit)
	// Untouched fields keep their defaults
	assert.Equal(t, "Player", cfg.DefaultPlayer)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
db_path: from-file.db
default_player: FileName
`)
	t.Setenv("ARCADE_DB", "from-env.db")
	t.Setenv("ARCADE_BUSY_TIMEOUT", "2s")
	t.Setenv("ARCADE_EXPORT_LIMIT", "10")
	t.Setenv("ARCADE_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env.db", cfg.DBPath)
	assert.Equal(t, 2*time.Second, cfg.BusyTimeout)
	assert.Equal(t, 10, cfg.ExportLimit)
	assert.Equal(t, "FileName", cfg.DefaultPlayer)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		errMsg  string
	}{
		{
			name:    "unknown field",
			content: "db_pth: typo.db\n",
			errMsg:  "field db_pth not found",
		},
		{
			name:    "malformed yaml",
			content: "db_path: [unterminated\n",
			errMsg:  "failed to parse config file",
		},
		{
			name:    "negative export limit",
			content: "export_limit: -1\n",
			errMsg:  "export_limit must be positive",
		},
		{
			name:    "zero busy timeout",
			content: "busy_timeout: 0s\n",
			errMsg:  "busy_timeout must be positive",
		},
		{
			name:    "bad log level",
			content: "log_level: loud\n",
			errMsg:  "invalid log_level",
		},
		{
			name:    "blank default player",
			content: "default_player: \"  \"\n",
			errMsg:  "default_player must not be empty",
		},
		{
			name:   "bad env duration",
			env:    map[string]string{"ARCADE_BUSY_TIMEOUT": "soon"},
			errMsg: "parse env",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := writeConfig(t, tt.content)

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := Default()
	cfg.DBPath = " "
	assert.EqualError(t, cfg.Validate(), "db_path must not be empty")
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelWarn,
	}
	for level, want := range tests {
		assert.Equal(t, want, Config{LogLevel: level}.SlogLevel(), "level %q", level)
	}
}

func TestStoreOptions(t *testing.T) {
	assert.Len(t, Default().StoreOptions(), 3)
}
