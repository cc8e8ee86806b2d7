package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_ProcessEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(envDriver, "pgx")
	t.Setenv(envDatabaseDSN, "postgres://env")
	t.Setenv(envLogLevel, "error")
	t.Setenv(envLogBackend, "zap")
	t.Setenv(envMigrate, "false")

	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.EnvFile = ""
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, &Config{
		Driver:      "pgx",
		DatabaseDSN: "postgres://env",
		LogLevel:    "error",
		LogBackend:  "zap",
		Migrate:     false,
	}, cfg)
}

func TestParseEnv_DotEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(envLogLevel, "debug")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"# local overrides\nUSERSTORE_LOG_LEVEL=warn\nUSERSTORE_MIGRATE=0\nUSERSTORE_DRIVER=pgx\n"), 0o600))

	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.EnvFile = path
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "debug", cfg.LogLevel, "process environment wins over the file")
	assert.Equal(t, "pgx", cfg.Driver)
	assert.False(t, cfg.Migrate)

	_, set := os.LookupEnv(envDriver)
	assert.True(t, set)
	assert.Empty(t, os.Getenv(envDriver), "file values must not leak into the process environment")
}

func TestParseEnv_MissingFileIgnored(t *testing.T) {
	clearEnv(t)

	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.EnvFile = filepath.Join(t.TempDir(), "absent.env")
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "sqlite", cfg.Driver)
}

func TestParseEnv_BadMigrate(t *testing.T) {
	clearEnv(t)
	t.Setenv(envMigrate, "sometimes")

	cfg := &Config{}
	err := parseEnv(cfg)
	require.ErrorContains(t, err, envMigrate)
}
