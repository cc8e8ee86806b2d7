// Package services holds the persistence service that owns the session
// factory and runs every user operation on a session of its own.
package services

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/userstore/internal/common"
	"github.com/dmitrijs2005/userstore/internal/dbx"
	"github.com/dmitrijs2005/userstore/internal/logging"
	"github.com/dmitrijs2005/userstore/internal/models"
	"github.com/dmitrijs2005/userstore/internal/repositories/repomanager"
)

// UserService exposes CRUD over users. It owns factory: Shutdown closes it and
// every later call fails with common.ErrServiceClosed.
//
// Errors returned by the repository (common.ErrPersistenceFailure and
// friends) are passed through unchanged.
type UserService struct {
	factory     dbx.SessionFactory
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	closed      atomic.Bool
}

func NewUserService(factory dbx.SessionFactory, m repomanager.RepositoryManager, logger logging.Logger) *UserService {
	return &UserService{
		factory:     factory,
		repomanager: m,
		logger:      logger.With("component", "user_service"),
	}
}

// Insert validates user, stores it and sets user.ID.
func (s *UserService) Insert(ctx context.Context, user *models.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	return s.withSession(ctx, "insert", func(ctx context.Context, sess dbx.Session) error {
		if err := s.repomanager.Users().Insert(ctx, sess, user); err != nil {
			return err
		}
		s.logger.Info(ctx, "user inserted", "id", user.ID)
		return nil
	})
}

// Delete removes the user with the given id; a missing id is not an error.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.withSession(ctx, "delete", func(ctx context.Context, sess dbx.Session) error {
		return s.repomanager.Users().Delete(ctx, sess, id)
	})
}

// Update validates user and copies its Name, Email and RegistrationDate onto
// the stored user with the given id; a missing id is not an error.
func (s *UserService) Update(ctx context.Context, id int64, user *models.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	return s.withSession(ctx, "update", func(ctx context.Context, sess dbx.Session) error {
		return s.repomanager.Users().Update(ctx, sess, id, user)
	})
}

// FindByID returns the user with the given id, or nil and false.
func (s *UserService) FindByID(ctx context.Context, id int64) (*models.User, bool, error) {
	var (
		user  *models.User
		found bool
	)
	err := s.withSession(ctx, "find_by_id", func(ctx context.Context, sess dbx.Session) error {
		var err error
		user, found, err = s.repomanager.Users().FindByID(ctx, sess, id)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return user, found, nil
}

// FindAll returns every stored user.
func (s *UserService) FindAll(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := s.withSession(ctx, "find_all", func(ctx context.Context, sess dbx.Session) error {
		var err error
		users, err = s.repomanager.Users().FindAll(ctx, sess)
		return err
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Shutdown releases the session factory. It may be called once; later calls
// return common.ErrServiceClosed.
func (s *UserService) Shutdown() error {
	if !s.closed.CompareAndSwap(false, true) {
		return common.ErrServiceClosed
	}

	if err := s.factory.Close(); err != nil {
		return fmt.Errorf("close session factory: %w", err)
	}
	s.logger.Info(context.Background(), "session factory closed")
	return nil
}

// withSession opens a session, runs fn on it and closes it on every path.
func (s *UserService) withSession(ctx context.Context, op string, fn func(ctx context.Context, sess dbx.Session) error) error {
	if s.closed.Load() {
		return common.ErrServiceClosed
	}

	conn, err := s.factory.Connx(ctx)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}

	ctx = logging.ContextWithSessionID(ctx, uuid.NewString())
	s.logger.Debug(ctx, "session opened", "op", op)

	defer func() {
		if cerr := conn.Close(); cerr != nil {
			s.logger.Warn(ctx, "session close failed", "op", op, "error", cerr)
		}
	}()

	if err := fn(ctx, conn); err != nil {
		s.logger.Error(ctx, "operation failed", "op", op, "error", err)
		return err
	}
	return nil
}
