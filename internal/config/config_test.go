package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchpad/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "launchpad-escrow", cfg.Launchpad.EscrowAccount)
	assert.Empty(t, cfg.Launchpad.Operators)
	assert.False(t, cfg.Launchpad.InMemory())
	assert.Equal(t, 5*time.Second, cfg.Launchpad.LockTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LAUNCHPAD_OPERATORS", "ops1,ops2")
	t.Setenv("LAUNCHPAD_STORAGE", "Memory")
	t.Setenv("LAUNCHPAD_ESCROW_ACCOUNT", "vault")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, []string{"ops1", "ops2"}, cfg.Launchpad.Operators)
	assert.True(t, cfg.Launchpad.InMemory())
	assert.Equal(t, "vault", cfg.Launchpad.EscrowAccount)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("LAUNCHPAD_STORAGE", "redis")
	t.Setenv("LAUNCHPAD_LOCK_TIMEOUT", "-1s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LAUNCHPAD_STORAGE")
	assert.Contains(t, err.Error(), "LAUNCHPAD_LOCK_TIMEOUT")
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{Log: configs.Logger{Level: "warn", Format: "json"}}
	logger := cfg.Log.NewLogger(&buf)

	logger.Info("dropped")
	logger.Warn("kept", slog.String("asset", "DEMO"))

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"msg":"kept"`)
	assert.Contains(t, out, `"asset":"DEMO"`)
}
