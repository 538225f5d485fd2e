package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/drbearcub/jw-deployable-app/config"
	deliverycontext "github.com/drbearcub/jw-deployable-app/internal/delivery/context"
	"github.com/drbearcub/jw-deployable-app/internal/domain/entity"
	domainerrors "github.com/drbearcub/jw-deployable-app/internal/domain/errors"
	"github.com/drbearcub/jw-deployable-app/internal/domain/repository"
	"github.com/drbearcub/jw-deployable-app/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	metadataDateLayout = "2006-01-02"

	defaultStorageType     = "Directory"
	defaultStorageLocation = "~/.cache/vtagpt/"
)

// configService implements the ConfigUsecase interface.
type configService struct {
	configRepo repository.ConfigRepository
	plugins    map[string]config.PluginCredentials
	logger     *slog.Logger
}

// ConfigServiceParams holds dependencies for ConfigService, injected by Fx.
type ConfigServiceParams struct {
	fx.In

	ConfigRepo repository.ConfigRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewConfigService is the constructor for configService.
func NewConfigService(params ConfigServiceParams) usecase.ConfigUsecase {
	plugins := map[string]config.PluginCredentials{}
	if params.Config != nil {
		plugins = params.Config.Plugins
	}

	return &configService{
		configRepo: params.ConfigRepo,
		plugins:    plugins,
		logger:     params.Logger,
	}
}

func (srv *configService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateConfig builds the deployment document from the submitted course
// descriptors and persists it as active.
func (srv *configService) CreateConfig(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateConfigInput) (*usecase.CreateConfigOutput, error) {
	if !slices.Contains(entity.PluginTypes(), input.Plugin) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown plugin type: " + input.Plugin)
	}

	metadata, err := buildCourseMetadata(&input.Metadata)
	if err != nil {
		return nil, err
	}

	document := entity.ConfigDocument{
		CourseName:     input.CourseName,
		CollectionName: input.CourseName,
		Metadata:       *metadata,
		Documents:      []entity.DocumentRef{},
		Plugin:         srv.buildPluginConfig(input.Plugin),
		Storage: entity.StorageConfig{
			Type:     defaultStorageType,
			Location: defaultStorageLocation,
		},
	}

	cfg := &entity.CourseConfig{
		OwnerID:  ownerID,
		Name:     input.CourseName,
		Document: document,
		Active:   true,
	}

	if err := srv.configRepo.Insert(ctx, cfg); err != nil {
		srv.log(ctx).Error("Failed to insert course config", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create config")
	}

	srv.log(ctx).Info("Course config created", slog.Any("configID", cfg.ID), slog.Any("ownerID", ownerID))

	return &usecase.CreateConfigOutput{ConfigID: cfg.ID.String()}, nil
}

// ListConfigs returns the owner's configurations, newest first, optionally
// filtered on the active flag.
func (srv *configService) ListConfigs(ctx context.Context, ownerID uuid.UUID, active *bool) ([]*entity.CourseConfig, error) {
	configs, err := srv.configRepo.ListByOwner(ctx, ownerID, active)
	if err != nil {
		srv.log(ctx).Error("Failed to list course configs", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list configs")
	}

	return configs, nil
}

// GetConfig retrieves a single configuration scoped to its owner.
func (srv *configService) GetConfig(ctx context.Context, ownerID uuid.UUID, rawID string) (*entity.CourseConfig, error) {
	id, err := entity.ParseConfigID(rawID)
	if err != nil {
		return nil, domainerrors.ErrInvalidConfigID
	}

	cfg, err := srv.configRepo.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, srv.translateLookupError(ctx, err, id, ownerID)
	}

	return cfg, nil
}

// UpdateConfig replaces the stored deployment document wholesale.
func (srv *configService) UpdateConfig(ctx context.Context, ownerID uuid.UUID, rawID string, doc entity.ConfigDocument) error {
	id, err := entity.ParseConfigID(rawID)
	if err != nil {
		return domainerrors.ErrInvalidConfigID
	}

	if err := srv.configRepo.UpdateDocument(ctx, id, ownerID, doc); err != nil {
		return srv.translateLookupError(ctx, err, id, ownerID)
	}

	srv.log(ctx).Info("Course config updated", slog.Any("configID", id), slog.Any("ownerID", ownerID))

	return nil
}

// DeactivateConfig retains the configuration but excludes it from deployment.
func (srv *configService) DeactivateConfig(ctx context.Context, ownerID uuid.UUID, rawID string) error {
	id, err := entity.ParseConfigID(rawID)
	if err != nil {
		return domainerrors.ErrInvalidConfigID
	}

	if err := srv.configRepo.SetActive(ctx, id, ownerID, false); err != nil {
		return srv.translateLookupError(ctx, err, id, ownerID)
	}

	srv.log(ctx).Info("Course config deactivated", slog.Any("configID", id), slog.Any("ownerID", ownerID))

	return nil
}

// DeleteConfig removes the configuration permanently.
func (srv *configService) DeleteConfig(ctx context.Context, ownerID uuid.UUID, rawID string) error {
	id, err := entity.ParseConfigID(rawID)
	if err != nil {
		return domainerrors.ErrInvalidConfigID
	}

	if err := srv.configRepo.Delete(ctx, id, ownerID); err != nil {
		return srv.translateLookupError(ctx, err, id, ownerID)
	}

	srv.log(ctx).Info("Course config deleted", slog.Any("configID", id), slog.Any("ownerID", ownerID))

	return nil
}

// translateLookupError maps repository failures onto the error taxonomy.
// Missing and foreign-owned configs are indistinguishable to the caller.
func (srv *configService) translateLookupError(ctx context.Context, err error, id entity.ConfigID, ownerID uuid.UUID) error {
	if errors.Is(err, repository.ErrConfigNotFound) {
		return domainerrors.ErrConfigNotFound
	}

	srv.log(ctx).Error("Course config store operation failed", slog.Any("configID", id), slog.Any("ownerID", ownerID), slog.Any("error", err))

	return domainerrors.NewDatabaseExecuteError(err, "config store operation failed")
}

// buildPluginConfig attaches platform credentials to every plugin except
// CommandLine, which runs locally and needs none. Missing credentials fall
// back to recognizable placeholders rather than failing the create.
func (srv *configService) buildPluginConfig(pluginType string) entity.PluginConfig {
	plugin := entity.PluginConfig{Type: pluginType}
	if pluginType == entity.PluginCommandLine {
		return plugin
	}

	name := strings.ToLower(pluginType)
	creds := srv.plugins[name]

	plugin.APIKey = creds.APIKey
	if plugin.APIKey == "" {
		plugin.APIKey = name + "_api_key"
	}
	plugin.ContextID = creds.ContextID
	if plugin.ContextID == "" {
		plugin.ContextID = name + "_context_id"
	}

	return plugin
}

func buildCourseMetadata(input *usecase.CreateConfigMetadata) (*entity.CourseMetadata, error) {
	startDate, err := time.Parse(metadataDateLayout, input.StartDate)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("start_date must be formatted as YYYY-MM-DD")
	}

	endDate, err := time.Parse(metadataDateLayout, input.EndDate)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("end_date must be formatted as YYYY-MM-DD")
	}

	return &entity.CourseMetadata{
		Term:         input.Term,
		Number:       input.Number,
		Name:         input.Name,
		Organization: input.Organization,
		StartDate:    startDate,
		EndDate:      endDate,
	}, nil
}
