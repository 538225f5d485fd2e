package repository

import (
	"context"
	"errors"

	"github.com/drbearcub/jw-deployable-app/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrConfigNotFound is returned when a config does not exist or does not
// belong to the requesting owner. The two cases are indistinguishable on
// purpose: configs are strictly owner-scoped.
var ErrConfigNotFound = errors.New("config not found")

// ConfigRepository defines the standard operations for course configuration persistence.
type ConfigRepository interface {
	// Insert persists a new course configuration and assigns its ID.
	Insert(ctx context.Context, cfg *entity.CourseConfig) error

	// FindByID retrieves a configuration by ID, scoped to its owner.
	FindByID(ctx context.Context, id entity.ConfigID, ownerID uuid.UUID) (*entity.CourseConfig, error)

	// ListByOwner retrieves all configurations owned by a user. When active
	// is non-nil the result is filtered on the active flag.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, active *bool) ([]*entity.CourseConfig, error)

	// UpdateDocument replaces the stored deployment document, scoped to the owner.
	UpdateDocument(ctx context.Context, id entity.ConfigID, ownerID uuid.UUID, doc entity.ConfigDocument) error

	// SetActive flips the active flag, scoped to the owner.
	SetActive(ctx context.Context, id entity.ConfigID, ownerID uuid.UUID, active bool) error

	// Delete removes a configuration, scoped to the owner.
	Delete(ctx context.Context, id entity.ConfigID, ownerID uuid.UUID) error
}
