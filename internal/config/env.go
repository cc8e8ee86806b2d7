package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	envDriver      = "USERSTORE_DRIVER"
	envDatabaseDSN = "USERSTORE_DATABASE_DSN"
	envLogLevel    = "USERSTORE_LOG_LEVEL"
	envLogBackend  = "USERSTORE_LOG_BACKEND"
	envMigrate     = "USERSTORE_MIGRATE"
)

// parseEnv overlays USERSTORE_* variables. Values from config.EnvFile are
// used only for variables not set in the process environment; a missing
// file is not an error.
func parseEnv(config *Config) error {
	fileVals := map[string]string{}
	if config.EnvFile != "" {
		vals, err := godotenv.Read(config.EnvFile)
		switch {
		case err == nil:
			fileVals = vals
		case errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("read env file %s: %w", config.EnvFile, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok && v != ""
	}

	if v, ok := lookup(envDriver); ok {
		config.Driver = v
	}
	if v, ok := lookup(envDatabaseDSN); ok {
		config.DatabaseDSN = v
	}
	if v, ok := lookup(envLogLevel); ok {
		config.LogLevel = v
	}
	if v, ok := lookup(envLogBackend); ok {
		config.LogBackend = v
	}
	if v, ok := lookup(envMigrate); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envMigrate, err)
		}
		config.Migrate = b
	}
	return nil
}
