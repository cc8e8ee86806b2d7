package config

import (
	"flag"

	"github.com/dmitrijs2005/userstore/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-r string   database/sql driver ("sqlite" or "pgx")
//	-d string   database DSN
//	-l string   log level
//	-b string   log backend ("slog" or "zap")
//	-m bool     run schema migrations on startup
//
// Arguments not listed above (including -c/-config) are filtered out first.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, flagx.Flags{"-r": true, "-d": true, "-l": true, "-b": true, "-m": false})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Driver, "r", config.Driver, "database driver (sqlite, pgx)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogBackend, "b", config.LogBackend, "log backend (slog, zap)")
	fs.BoolVar(&config.Migrate, "m", config.Migrate, "run schema migrations on startup")

	return fs.Parse(args)
}
