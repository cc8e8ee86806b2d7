package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jmoiron/sqlx"

	"github.com/dmitrijs2005/userstore/internal/common"
	"github.com/dmitrijs2005/userstore/internal/dbx"
	"github.com/dmitrijs2005/userstore/internal/models"
)

const (
	usersTable = "users"
	loansTable = "loans"
)

var userColumns = []any{"id", "name", "email", "registration_date"}

// SQLRepository implements Repository on top of sqlx sessions.
type SQLRepository struct {
	dialect dialect
}

// NewSQLRepository returns a SQLRepository that speaks the SQL dialect of the
// given database/sql driver.
func NewSQLRepository(driver string) (*SQLRepository, error) {
	d, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}
	return &SQLRepository{dialect: d}, nil
}

// Insert persists user in its own transaction and assigns user.ID once the
// transaction has committed.
func (r *SQLRepository) Insert(ctx context.Context, s dbx.Session, user *models.User) error {
	if user == nil {
		return fmt.Errorf("%w: nil user", common.ErrValidation)
	}

	var id int64
	err := dbx.WithTx(ctx, s, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		id, err = r.insert(ctx, tx, user)
		return err
	})
	if err != nil {
		return persistenceFailure("insert user", err)
	}

	user.ID = id
	return nil
}

// Delete removes the user with the given id. When no such user exists the
// transaction commits without changes.
func (r *SQLRepository) Delete(ctx context.Context, s dbx.Session, id int64) error {
	err := dbx.WithTx(ctx, s, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := r.get(ctx, tx, id); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil
			}
			return err
		}

		query, args, err := r.dialect.Delete(usersTable).Prepared(true).
			Where(goqu.C("id").Eq(id)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build delete: %w", err)
		}

		_, err = tx.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		return persistenceFailure("delete user", err)
	}
	return nil
}

// Update merges the mutable fields of incoming into the stored user. When no
// such user exists the transaction commits without changes.
func (r *SQLRepository) Update(ctx context.Context, s dbx.Session, id int64, incoming *models.User) error {
	if incoming == nil {
		return fmt.Errorf("%w: nil user", common.ErrValidation)
	}

	err := dbx.WithTx(ctx, s, nil, func(ctx context.Context, tx dbx.DBTX) error {
		existing, err := r.get(ctx, tx, id)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil
			}
			return err
		}

		existing.CopyFrom(incoming)

		query, args, err := r.dialect.Update(usersTable).Prepared(true).
			Set(goqu.Record{
				"name":              existing.Name,
				"email":             existing.Email,
				"registration_date": existing.RegistrationDate,
			}).
			Where(goqu.C("id").Eq(id)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build update: %w", err)
		}

		_, err = tx.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		return persistenceFailure("update user", err)
	}
	return nil
}

// FindByID reads a single user together with its loan ids.
func (r *SQLRepository) FindByID(ctx context.Context, s dbx.Session, id int64) (*models.User, bool, error) {
	user, err := r.get(ctx, s, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	loans, err := r.loanIDs(ctx, s, goqu.C("user_id").Eq(id))
	if err != nil {
		return nil, false, err
	}
	user.Loans = loans[id]

	return user, true, nil
}

// FindAll lists every user ordered by id.
func (r *SQLRepository) FindAll(ctx context.Context, s dbx.Session) ([]*models.User, error) {
	query, args, err := r.dialect.From(usersTable).Prepared(true).
		Select(userColumns...).
		Order(goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	users := []*models.User{}
	if err := sqlx.SelectContext(ctx, s, &users, query, args...); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if len(users) == 0 {
		return users, nil
	}

	loans, err := r.loanIDs(ctx, s, goqu.C("user_id").IsNotNull())
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		u.Loans = loans[u.ID]
	}

	return users, nil
}

func (r *SQLRepository) insert(ctx context.Context, tx dbx.DBTX, u *models.User) (int64, error) {
	ds := r.dialect.Insert(usersTable).Prepared(true).Rows(goqu.Record{
		"name":              u.Name,
		"email":             u.Email,
		"registration_date": u.RegistrationDate,
	})

	if r.dialect.returning {
		query, args, err := ds.Returning("id").ToSQL()
		if err != nil {
			return 0, fmt.Errorf("build insert: %w", err)
		}

		var id int64
		if err := tx.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert: %w", err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// get returns common.ErrorNotFound when no row matches.
func (r *SQLRepository) get(ctx context.Context, db dbx.DBTX, id int64) (*models.User, error) {
	query, args, err := r.dialect.From(usersTable).Prepared(true).
		Select(userColumns...).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	user := &models.User{}
	if err := sqlx.GetContext(ctx, db, user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

// loanIDs groups loan ids by user id, ascending.
func (r *SQLRepository) loanIDs(ctx context.Context, db dbx.DBTX, filter exp.Expression) (map[int64][]int64, error) {
	query, args, err := r.dialect.From(loansTable).Prepared(true).
		Select("id", "user_id").
		Where(filter).
		Order(goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select loans: %w", err)
	}
	defer rows.Close()

	byUser := make(map[int64][]int64)
	for rows.Next() {
		var loanID, userID int64
		if err := rows.Scan(&loanID, &userID); err != nil {
			return nil, err
		}
		byUser[userID] = append(byUser[userID], loanID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return byUser, nil
}

func persistenceFailure(op string, err error) error {
	if dbx.IsUniqueViolation(err) {
		err = fmt.Errorf("%w: %w", common.ErrAlreadyExists, err)
	}
	return fmt.Errorf("%w: %s: %w", common.ErrPersistenceFailure, op, err)
}
