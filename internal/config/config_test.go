package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "http://gmapi.azurewebsites.net", cfg.Vendor.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Vendor.ConnTimeout)
	assert.Equal(t, int32(5), cfg.Retry.MaxRetries)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GATEWAY_VENDOR__BASE_URL", "http://localhost:9090")
	t.Setenv("GATEWAY_RETRY__MAX_RETRIES", "2")
	t.Setenv("GATEWAY_LOGGER__LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9090", cfg.Vendor.BaseURL)
	assert.Equal(t, int32(2), cfg.Retry.MaxRetries)
	assert.Equal(t, "debug", cfg.Logger.Level)
	// Untouched keys keep their defaults.
	assert.Equal(t, "3000", cfg.Server.Port)
}

func TestLoadConfig_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.yaml")
	contents := []byte("server:\n  port: \"8080\"\nvendor:\n  conn_timeout: 2s\n")
	require.NoError(t, os.WriteFile(path, contents, 0o600))
	t.Setenv("GATEWAY_CONFIG_FILE", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Vendor.ConnTimeout)
}

func TestLoadConfig_MissingFileFails(t *testing.T) {
	t.Setenv("GATEWAY_CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_ValidationFailure(t *testing.T) {
	t.Setenv("GATEWAY_VENDOR__BASE_URL", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level   string
		enabled slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := LoggerConfig{Level: tt.level}.NewLogger()
			assert.True(t, logger.Enabled(context.Background(), tt.enabled))
		})
	}
}
