package config

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/dmitrijs2005/userstore/internal/flagx"
)

// JsonConfig is the on-disk shape of the JSON config file. Absent fields leave
// the current values untouched.
type JsonConfig struct {
	Driver      string `json:"driver"`
	DatabaseDSN string `json:"database_dsn"`
	LogLevel    string `json:"log_level"`
	LogBackend  string `json:"log_backend"`
	Migrate     *bool  `json:"migrate"`
	EnvFile     string `json:"env_file"`
}

// parseJson overlays the file named by -c or -config, if any.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setIfNotEmpty(&config.Driver, c.Driver)
	setIfNotEmpty(&config.DatabaseDSN, c.DatabaseDSN)
	setIfNotEmpty(&config.LogLevel, c.LogLevel)
	setIfNotEmpty(&config.LogBackend, c.LogBackend)
	setIfNotEmpty(&config.EnvFile, c.EnvFile)
	if c.Migrate != nil {
		config.Migrate = *c.Migrate
	}
	return nil
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
