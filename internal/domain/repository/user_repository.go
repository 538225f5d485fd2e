// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/drbearcub/jw-deployable-app/internal/domain/entity"
)

// Domain-specific errors for credential persistence. The application layer
// handles these outcomes without depending on database-specific errors.
var (
	// ErrUserNotFound is returned when no identity record exists for a lookup key.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an insert collides with the unique
	// email index. The index is the sole arbiter of concurrent signups; the
	// service's own existence check is only a best-effort pre-check.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository is the narrow contract against the user-record collection.
// The auth service consumes it; it does not own the records beyond creation.
type UserRepository interface {
	// FindByEmail retrieves a single identity record by its login key.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Insert persists a new identity record and assigns its ID.
	Insert(ctx context.Context, user *entity.User) error
}
