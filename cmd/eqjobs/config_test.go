package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "eqjobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	assert.Equal(t, 10_000_000, cfg.NumJobs)
	assert.Equal(t, 4, cfg.ConcurrentJobs)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
num_jobs: 5000
concurrent_jobs: 8
log_level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, Config{NumJobs: 5000, ConcurrentJobs: 8, LogLevel: slog.LevelDebug}, cfg)
}

func TestLoadConfig_partial(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(writeConfig(t, "concurrent_jobs: 0\n"))
	require.NoError(t, err)

	assert.Equal(t, defaultNumJobs, cfg.NumJobs)
	assert.Equal(t, 0, cfg.ConcurrentJobs)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadConfig_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"zero jobs", "num_jobs: 0\n", errInvalidConfig},
		{"negative workers", "concurrent_jobs: -2\n", errInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadConfig(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("bad yaml", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(writeConfig(t, "num_jobs: [1, 2\n"))
		assert.Error(t, err)
	})

	t.Run("bad level", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(writeConfig(t, "log_level: loud\n"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
