// Package common defines sentinel errors shared by the repository and service
// layers of userstore. Callers should use errors.Is to match these values;
// most of them arrive wrapped with additional context.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// ErrPersistenceFailure marks a transactional write (insert, update,
	// delete) that did not commit. The underlying cause is wrapped alongside.
	ErrPersistenceFailure = errors.New("persistence failure")

	// Service-level errors.
	ErrServiceClosed = errors.New("service closed")
	ErrValidation    = errors.New("validation error")
)
