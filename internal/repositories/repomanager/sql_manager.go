// Package repomanager provides a RepositoryManager for the supported SQL
// drivers, wiring together repository constructors and database migrations
// (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/userstore/internal/dbx"
	"github.com/dmitrijs2005/userstore/internal/migrations"
	"github.com/dmitrijs2005/userstore/internal/repositories/users"
)

// SQLRepositoryManager vends repositories speaking one SQL dialect and
// exposes the matching schema migration hook.
type SQLRepositoryManager struct {
	gooseDialect  string
	migrationsDir string
	users         *users.SQLRepository
}

// Users returns the users.Repository for the manager's driver.
func (m *SQLRepositoryManager) Users() users.Repository {
	return m.users
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations for the driver and
// runs them against the provided database connection.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(m.gooseDialect); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, m.migrationsDir); err != nil {
		return err
	}
	return nil
}

// NewSQLRepositoryManager constructs a RepositoryManager for a database/sql
// driver name (dbx.DriverSQLite or dbx.DriverPostgres).
func NewSQLRepositoryManager(driver string) (RepositoryManager, error) {
	m := &SQLRepositoryManager{}

	switch driver {
	case dbx.DriverSQLite:
		m.gooseDialect, m.migrationsDir = "sqlite3", "sqlite"
	case dbx.DriverPostgres:
		m.gooseDialect, m.migrationsDir = "pgx", "postgres"
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	repo, err := users.NewSQLRepository(driver)
	if err != nil {
		return nil, err
	}
	m.users = repo

	return m, nil
}
