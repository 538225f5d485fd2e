package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/drbearcub/jw-deployable-app/config"
	"github.com/drbearcub/jw-deployable-app/internal/domain/entity"
	domainerrors "github.com/drbearcub/jw-deployable-app/internal/domain/errors"
	"github.com/drbearcub/jw-deployable-app/internal/domain/repository"
	mockRepo "github.com/drbearcub/jw-deployable-app/internal/mocks/repository"
	"github.com/drbearcub/jw-deployable-app/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// configServiceFixtures holds all test dependencies for config service tests.
type configServiceFixtures struct {
	service    usecase.ConfigUsecase
	configRepo *mockRepo.MockConfigRepository
}

func createTestConfigService(t *testing.T) configServiceFixtures {
	configRepo := mockRepo.NewMockConfigRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewConfigService(ConfigServiceParams{
		ConfigRepo: configRepo,
		Config: &config.Config{
			Plugins: map[string]config.PluginCredentials{
				"canvaslti": {APIKey: "canvas-key", ContextID: "canvas-ctx"},
			},
		},
		Logger: logger,
	})

	return configServiceFixtures{
		service:    svc,
		configRepo: configRepo,
	}
}

func validCreateConfigInput() *usecase.CreateConfigInput {
	return &usecase.CreateConfigInput{
		CourseName: "CS 6750",
		Metadata: usecase.CreateConfigMetadata{
			Term:         "Fall 2026",
			Number:       "CS-6750",
			Name:         "Human-Computer Interaction",
			Organization: "Georgia Institute of Technology",
			StartDate:    "2026-08-17",
			EndDate:      "2026-12-10",
		},
		Plugin: entity.PluginCanvasLTI,
	}
}

func TestConfigService_CreateConfig_Success(t *testing.T) {
	fx := createTestConfigService(t)
	ownerID := uuid.New()
	assignedID := entity.ConfigID(uuid.New())

	fx.configRepo.EXPECT().
		Insert(mock.Anything, mock.AnythingOfType("*entity.CourseConfig")).
		Run(func(ctx context.Context, cfg *entity.CourseConfig) {
			assert.Equal(t, ownerID, cfg.OwnerID)
			assert.Equal(t, "CS 6750", cfg.Name)
			assert.True(t, cfg.Active)

			doc := cfg.Document
			assert.Equal(t, "CS 6750", doc.CourseName)
			assert.Equal(t, "CS 6750", doc.CollectionName)
			assert.Equal(t, "Fall 2026", doc.Metadata.Term)
			assert.Equal(t, time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC), doc.Metadata.StartDate)
			assert.NotNil(t, doc.Documents)
			assert.Empty(t, doc.Documents)
			assert.Equal(t, entity.PluginCanvasLTI, doc.Plugin.Type)
			assert.Equal(t, "canvas-key", doc.Plugin.APIKey)
			assert.Equal(t, "canvas-ctx", doc.Plugin.ContextID)
			assert.Equal(t, "Directory", doc.Storage.Type)
			assert.Equal(t, "~/.cache/vtagpt/", doc.Storage.Location)

			cfg.ID = assignedID
		}).
		Return(nil)

	output, err := fx.service.CreateConfig(context.Background(), ownerID, validCreateConfigInput())

	require.NoError(t, err)
	assert.Equal(t, assignedID.String(), output.ConfigID)
}

func TestConfigService_CreateConfig_CommandLinePluginHasNoCredentials(t *testing.T) {
	fx := createTestConfigService(t)

	input := validCreateConfigInput()
	input.Plugin = entity.PluginCommandLine

	fx.configRepo.EXPECT().
		Insert(mock.Anything, mock.AnythingOfType("*entity.CourseConfig")).
		Run(func(ctx context.Context, cfg *entity.CourseConfig) {
			assert.Equal(t, entity.PluginCommandLine, cfg.Document.Plugin.Type)
			assert.Empty(t, cfg.Document.Plugin.APIKey)
			assert.Empty(t, cfg.Document.Plugin.ContextID)
		}).
		Return(nil)

	_, err := fx.service.CreateConfig(context.Background(), uuid.New(), input)

	require.NoError(t, err)
}

func TestConfigService_CreateConfig_MissingCredentialsFallBackToPlaceholders(t *testing.T) {
	fx := createTestConfigService(t)

	input := validCreateConfigInput()
	input.Plugin = entity.PluginEdStem

	fx.configRepo.EXPECT().
		Insert(mock.Anything, mock.AnythingOfType("*entity.CourseConfig")).
		Run(func(ctx context.Context, cfg *entity.CourseConfig) {
			assert.Equal(t, "edstem_api_key", cfg.Document.Plugin.APIKey)
			assert.Equal(t, "edstem_context_id", cfg.Document.Plugin.ContextID)
		}).
		Return(nil)

	_, err := fx.service.CreateConfig(context.Background(), uuid.New(), input)

	require.NoError(t, err)
}

func TestConfigService_CreateConfig_UnknownPlugin(t *testing.T) {
	fx := createTestConfigService(t)

	input := validCreateConfigInput()
	input.Plugin = "Moodle"

	output, err := fx.service.CreateConfig(context.Background(), uuid.New(), input)

	assert.Nil(t, output)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestConfigService_CreateConfig_BadDateFormat(t *testing.T) {
	fx := createTestConfigService(t)

	input := validCreateConfigInput()
	input.Metadata.StartDate = "08/17/2026"

	output, err := fx.service.CreateConfig(context.Background(), uuid.New(), input)

	assert.Nil(t, output)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestConfigService_GetConfig_Success(t *testing.T) {
	fx := createTestConfigService(t)
	ownerID := uuid.New()
	id := entity.ConfigID(uuid.New())

	expected := &entity.CourseConfig{ID: id, OwnerID: ownerID, Name: "CS 6750"}
	fx.configRepo.EXPECT().FindByID(mock.Anything, id, ownerID).Return(expected, nil)

	got, err := fx.service.GetConfig(context.Background(), ownerID, id.String())

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestConfigService_GetConfig_InvalidID(t *testing.T) {
	fx := createTestConfigService(t)

	got, err := fx.service.GetConfig(context.Background(), uuid.New(), "not-a-uuid")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidConfigID)
}

func TestConfigService_GetConfig_NotFound(t *testing.T) {
	fx := createTestConfigService(t)
	ownerID := uuid.New()
	id := entity.ConfigID(uuid.New())

	fx.configRepo.EXPECT().
		FindByID(mock.Anything, id, ownerID).
		Return(nil, repository.ErrConfigNotFound)

	got, err := fx.service.GetConfig(context.Background(), ownerID, id.String())

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrConfigNotFound)
}

func TestConfigService_ListConfigs_PassesActiveFilter(t *testing.T) {
	fx := createTestConfigService(t)
	ownerID := uuid.New()
	active := true

	expected := []*entity.CourseConfig{{Name: "CS 6750"}}
	fx.configRepo.EXPECT().ListByOwner(mock.Anything, ownerID, &active).Return(expected, nil)

	got, err := fx.service.ListConfigs(context.Background(), ownerID, &active)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestConfigService_UpdateConfig_Success(t *testing.T) {
	fx := createTestConfigService(t)
	ownerID := uuid.New()
	id := entity.ConfigID(uuid.New())
	doc := entity.ConfigDocument{CourseName: "CS 6750 v2"}

	fx.configRepo.EXPECT().UpdateDocument(mock.Anything, id, ownerID, doc).Return(nil)

	err := fx.service.UpdateConfig(context.Background(), ownerID, id.String(), doc)

	require.NoError(t, err)
}

func TestConfigService_DeactivateConfig_NotFound(t *testing.T) {
	fx := createTestConfigService(t)
	ownerID := uuid.New()
	id := entity.ConfigID(uuid.New())

	fx.configRepo.EXPECT().
		SetActive(mock.Anything, id, ownerID, false).
		Return(repository.ErrConfigNotFound)

	err := fx.service.DeactivateConfig(context.Background(), ownerID, id.String())

	assert.ErrorIs(t, err, domainerrors.ErrConfigNotFound)
}

func TestConfigService_DeleteConfig_StoreFailure(t *testing.T) {
	fx := createTestConfigService(t)
	ownerID := uuid.New()
	id := entity.ConfigID(uuid.New())

	fx.configRepo.EXPECT().
		Delete(mock.Anything, id, ownerID).
		Return(errors.New("connection refused"))

	err := fx.service.DeleteConfig(context.Background(), ownerID, id.String())

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}
