package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "sqlite://corebreaker.db", cfg.DatabaseURL)
	assert.Equal(t, "default", cfg.SaveSlot)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, int64(0), cfg.Seed)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("COREBREAKER_DATABASE_URL", "memory://")
	t.Setenv("COREBREAKER_HTTP_PORT", "9090")
	t.Setenv("COREBREAKER_SEED", "42")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "memory://", cfg.DatabaseURL)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestLoad_DotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("COREBREAKER_SAVE_SLOT=from-file\nCOREBREAKER_LOG_LEVEL=debug\n"), 0o644))
	// registered so the values loaded from the file are cleared afterwards
	t.Setenv("COREBREAKER_SAVE_SLOT", "")
	os.Unsetenv("COREBREAKER_SAVE_SLOT")
	t.Setenv("COREBREAKER_LOG_LEVEL", "trace")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.SaveSlot)
	assert.Equal(t, "trace", cfg.LogLevel)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("COREBREAKER_HTTP_PORT", "eighty")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
