// Package models defines the records persisted by userstore.
package models

import (
	"database/sql/driver"
	"fmt"
	"reflect"

	"github.com/dmitrijs2005/userstore/internal/common"
	"github.com/go-playground/validator/v10"
)

// User is the record managed by the users repository.
//
// ID is assigned by the database on the first successful insert and never
// changes afterwards. Loans lists the identifiers of the user's loans in
// ascending order; the relation is owned by the loans table and is read-only
// from this side.
type User struct {
	ID               int64   `db:"id" json:"id"`
	Name             string  `db:"name" json:"name" validate:"required"`
	Email            string  `db:"email" json:"email" validate:"required,email"`
	RegistrationDate Date    `db:"registration_date" json:"registration_date" validate:"required"`
	Loans            []int64 `db:"-" json:"loans,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(valuerValue, Date{})
	return v
}

// valuerValue lets `required` see NULL-able types through their driver value.
func valuerValue(field reflect.Value) any {
	if valuer, ok := field.Interface().(driver.Valuer); ok {
		val, err := valuer.Value()
		if err == nil {
			return val
		}
	}
	return nil
}

// NewUser builds a User that satisfies the required-field contract.
func NewUser(name, email string, registered Date) (*User, error) {
	u := &User{Name: name, Email: email, RegistrationDate: registered}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate checks that Name, Email and RegistrationDate are set and that
// Email is a well-formed address.
func (u *User) Validate() error {
	if u == nil {
		return fmt.Errorf("%w: nil user", common.ErrValidation)
	}
	if err := validate.Struct(u); err != nil {
		return fmt.Errorf("%w: %w", common.ErrValidation, err)
	}
	return nil
}

// CopyFrom overwrites the mutable fields with the ones from src.
// ID and Loans are left untouched.
func (u *User) CopyFrom(src *User) {
	u.Name = src.Name
	u.Email = src.Email
	u.RegistrationDate = src.RegistrationDate
}
