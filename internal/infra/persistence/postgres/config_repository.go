package postgres

import (
	"context"

	"github.com/drbearcub/jw-deployable-app/internal/domain/entity"
	"github.com/drbearcub/jw-deployable-app/internal/domain/repository"
	"github.com/drbearcub/jw-deployable-app/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// configRepository implements the repository.ConfigRepository interface using GORM.
type configRepository struct {
	db *gorm.DB
}

// NewConfigRepository is the constructor for configRepository.
func NewConfigRepository(db *gorm.DB) repository.ConfigRepository {
	return &configRepository{db: db}
}

// Insert persists a new course configuration.
func (repo *configRepository) Insert(ctx context.Context, cfg *entity.CourseConfig) error {
	cfgM := fromConfigDomain(cfg)

	if err := repo.db.WithContext(ctx).Create(cfgM).Error; err != nil {
		return errors.Wrap(err, "failed to insert course config")
	}

	cfg.ID = entity.ConfigID(cfgM.ID)
	cfg.CreatedAt = cfgM.CreatedAt
	cfg.UpdatedAt = cfgM.UpdatedAt

	return nil
}

// FindByID retrieves a configuration scoped to its owner. A config owned by
// someone else is reported the same way as a missing one.
func (repo *configRepository) FindByID(ctx context.Context, id entity.ConfigID, ownerID uuid.UUID) (*entity.CourseConfig, error) {
	var cfgM model.CourseConfigModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id.UUID(), ownerID).
		First(&cfgM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConfigNotFound
		}

		return nil, errors.Wrap(err, "failed to find course config by id")
	}

	return toConfigDomain(&cfgM), nil
}

// ListByOwner retrieves all configurations owned by a user, optionally
// filtered on the active flag.
func (repo *configRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, active *bool) ([]*entity.CourseConfig, error) {
	query := repo.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if active != nil {
		query = query.Where("active = ?", *active)
	}

	var models []model.CourseConfigModel
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list course configs")
	}

	configs := make([]*entity.CourseConfig, 0, len(models))
	for i := range models {
		configs = append(configs, toConfigDomain(&models[i]))
	}

	return configs, nil
}

// UpdateDocument replaces the stored deployment document, scoped to the owner.
func (repo *configRepository) UpdateDocument(ctx context.Context, id entity.ConfigID, ownerID uuid.UUID, doc entity.ConfigDocument) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CourseConfigModel{}).
		Where("id = ? AND owner_id = ?", id.UUID(), ownerID).
		Updates(map[string]any{
			"document": datatypes.NewJSONType(doc),
			"name":     doc.CourseName,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update course config document")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConfigNotFound
	}

	return nil
}

// SetActive flips the active flag, scoped to the owner.
func (repo *configRepository) SetActive(ctx context.Context, id entity.ConfigID, ownerID uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CourseConfigModel{}).
		Where("id = ? AND owner_id = ?", id.UUID(), ownerID).
		Update("active", active)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set course config active flag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConfigNotFound
	}

	return nil
}

// Delete removes a configuration, scoped to the owner.
func (repo *configRepository) Delete(ctx context.Context, id entity.ConfigID, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id.UUID(), ownerID).
		Delete(&model.CourseConfigModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete course config")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConfigNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toConfigDomain(data *model.CourseConfigModel) *entity.CourseConfig {
	if data == nil {
		return nil
	}

	return &entity.CourseConfig{
		ID:        entity.ConfigID(data.ID),
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		Document:  data.Document.Data(),
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromConfigDomain(data *entity.CourseConfig) *model.CourseConfigModel {
	if data == nil {
		return nil
	}

	return &model.CourseConfigModel{
		ID:       data.ID.UUID(),
		OwnerID:  data.OwnerID,
		Name:     data.Name,
		Document: datatypes.NewJSONType(data.Document),
		Active:   data.Active,
	}
}
