package usecase

import (
	"context"

	"github.com/drbearcub/jw-deployable-app/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateConfigInput defines the data required to create a course configuration.
type CreateConfigInput struct {
	CourseName string               `json:"course_name" validate:"required"`
	Metadata   CreateConfigMetadata `json:"metadata" validate:"required"`
	Plugin     string               `json:"plugin" validate:"required"`
}

// CreateConfigMetadata carries the course descriptors for a new configuration.
type CreateConfigMetadata struct {
	Term         string `json:"term" validate:"required"`
	Number       string `json:"number" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Organization string `json:"organization" validate:"required"`
	StartDate    string `json:"start_date" validate:"required"`
	EndDate      string `json:"end_date" validate:"required"`
}

// CreateConfigOutput returns the identifier of the created configuration.
type CreateConfigOutput struct {
	ConfigID string `json:"config_id"`
}

// ConfigUsecase defines owner-scoped operations over course configurations.
// Every operation takes the resolved owner identity explicitly; a
// configuration owned by someone else behaves as if it does not exist.
type ConfigUsecase interface {
	CreateConfig(ctx context.Context, ownerID uuid.UUID, input *CreateConfigInput) (*CreateConfigOutput, error)
	ListConfigs(ctx context.Context, ownerID uuid.UUID, active *bool) ([]*entity.CourseConfig, error)
	GetConfig(ctx context.Context, ownerID uuid.UUID, rawID string) (*entity.CourseConfig, error)
	UpdateConfig(ctx context.Context, ownerID uuid.UUID, rawID string, doc entity.ConfigDocument) error
	DeactivateConfig(ctx context.Context, ownerID uuid.UUID, rawID string) error
	DeleteConfig(ctx context.Context, ownerID uuid.UUID, rawID string) error
}
