package users

import (
	"context"

	"github.com/dmitrijs2005/userstore/internal/dbx"
	"github.com/dmitrijs2005/userstore/internal/models"
)

// Repository describes CRUD operations on User records over a caller-owned
// session.
type Repository interface {
	// Insert stores user and sets user.ID on success.
	Insert(ctx context.Context, s dbx.Session, user *models.User) error

	// Delete removes the user with the given id. A missing id is not an error.
	Delete(ctx context.Context, s dbx.Session, id int64) error

	// Update copies Name, Email and RegistrationDate from user onto the stored
	// record with the given id. A missing id is not an error.
	Update(ctx context.Context, s dbx.Session, id int64, user *models.User) error

	// FindByID returns the user and true, or nil and false when absent.
	FindByID(ctx context.Context, s dbx.Session, id int64) (*models.User, bool, error)

	// FindAll returns every stored user, or an empty slice.
	FindAll(ctx context.Context, s dbx.Session) ([]*models.User, error)
}
