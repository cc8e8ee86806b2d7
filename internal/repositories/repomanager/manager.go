package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/userstore/internal/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users() users.Repository
}
