package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every USERSTORE_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{envDriver, envDatabaseDSN, envLogLevel, envLogBackend, envMigrate} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Empty(t, cmp.Diff(Config{
		Driver:      "sqlite",
		DatabaseDSN: "file:data/userstore.db?_pragma=foreign_keys(1)",
		LogLevel:    "info",
		LogBackend:  "slog",
		Migrate:     true,
		EnvFile:     ".env",
	}, c))
}

func TestLoadConfig_UsesDefaultsWithoutOverrides(t *testing.T) {
	clearEnv(t)

	c, err := LoadConfig(nil)
	require.NoError(t, err)
	require.NotNil(t, c)

	var want Config
	want.LoadDefaults()
	assert.Empty(t, cmp.Diff(&want, c))
}

func TestLoadConfig_Precedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("USERSTORE_LOG_LEVEL=warn\nUSERSTORE_DATABASE_DSN=from-env-file\n"), 0o600))

	jsonFile := filepath.Join(dir, "cfg.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(`{
		"driver": "pgx",
		"database_dsn": "from-json",
		"log_level": "debug",
		"log_backend": "zap",
		"env_file": "`+envFile+`"
	}`), 0o600))

	t.Setenv(envDatabaseDSN, "from-env")

	c, err := LoadConfig([]string{"-c", jsonFile, "-r", "sqlite", "-m=false"})
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(&Config{
		Driver:      "sqlite",
		DatabaseDSN: "from-env",
		LogLevel:    "warn",
		LogBackend:  "zap",
		Migrate:     false,
		EnvFile:     envFile,
	}, c))
}

func TestLoadConfig_BadFlag(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig([]string{"-m=maybe"})
	require.Error(t, err)
}

func TestLoadConfig_MissingJSONFile(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig([]string{"-config", filepath.Join(t.TempDir(), "nope.json")})
	require.ErrorContains(t, err, "read config file")
}
