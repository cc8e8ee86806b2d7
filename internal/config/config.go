// Package config handles runtime configuration for userstore: defaults, an
// optional JSON file, environment variables (optionally from a .env file)
// and command-line flags, applied in that order.
package config

import "github.com/dmitrijs2005/userstore/internal/dbx"

// Config holds runtime settings.
//
// Fields:
//   - Driver: database/sql driver name, "sqlite" or "pgx".
//   - DatabaseDSN: data source name for Driver.
//   - LogLevel: debug, info, warn or error.
//   - LogBackend: "slog" or "zap".
//   - Migrate: apply embedded schema migrations on startup.
//   - EnvFile: dotenv file consulted for USERSTORE_* variables.
type Config struct {
	Driver      string
	DatabaseDSN string
	LogLevel    string
	LogBackend  string
	Migrate     bool
	EnvFile     string
}

// DefaultSQLiteDSN keeps the database under ./data with foreign keys enforced.
const DefaultSQLiteDSN = "file:data/userstore.db?_pragma=foreign_keys(1)"

// LoadDefaults populates Config with local development defaults.
func (c *Config) LoadDefaults() {
	c.Driver = dbx.DriverSQLite
	c.DatabaseDSN = DefaultSQLiteDSN
	c.LogLevel = "info"
	c.LogBackend = "slog"
	c.Migrate = true
	c.EnvFile = ".env"
}

// LoadConfig builds a Config from defaults, then overlays values from an
// optional JSON file (-c/-config), the environment and finally the flags in
// args (usually os.Args[1:]).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
