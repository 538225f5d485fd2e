package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "github.com/drbearcub/jw-deployable-app/internal/delivery/context"
	"github.com/drbearcub/jw-deployable-app/internal/domain/entity"
	domainerrors "github.com/drbearcub/jw-deployable-app/internal/domain/errors"
	"github.com/drbearcub/jw-deployable-app/internal/domain/repository"
	"github.com/drbearcub/jw-deployable-app/internal/domain/service"
	"github.com/drbearcub/jw-deployable-app/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// documentService implements the DocumentUsecase interface.
type documentService struct {
	configRepo repository.ConfigRepository
	store      service.DocumentStore
	logger     *slog.Logger
}

// DocumentServiceParams holds dependencies for DocumentService, injected by Fx.
type DocumentServiceParams struct {
	fx.In

	ConfigRepo repository.ConfigRepository
	Store      service.DocumentStore
	Logger     *slog.Logger
}

// NewDocumentService is the constructor for documentService.
func NewDocumentService(params DocumentServiceParams) usecase.DocumentUsecase {
	return &documentService{
		configRepo: params.ConfigRepo,
		store:      params.Store,
		logger:     params.Logger,
	}
}

func (srv *documentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AttachDocuments uploads the submitted files and appends their references to
// the configuration. All names are checked before anything is uploaded so a
// rejected file does not leave earlier uploads half-attached.
func (srv *documentService) AttachDocuments(ctx context.Context, ownerID uuid.UUID, rawConfigID string, uploads []usecase.DocumentUpload) ([]entity.DocumentRef, error) {
	cfg, err := srv.loadConfig(ctx, ownerID, rawConfigID)
	if err != nil {
		return nil, err
	}

	for _, upload := range uploads {
		if !strings.HasSuffix(strings.ToLower(upload.Name), ".pdf") {
			return nil, domainerrors.ErrNotPDF.WithDetails(upload.Name + " is not a pdf file")
		}
	}

	attached := make([]entity.DocumentRef, 0, len(uploads))
	for _, upload := range uploads {
		address, err := srv.store.Upload(ctx, upload.Name, upload.Body)
		if err != nil {
			srv.log(ctx).Error("Failed to upload document", slog.String("name", upload.Name), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to upload document")
		}

		attached = append(attached, entity.DocumentRef{Name: upload.Name, Address: address})
	}

	cfg.Document.Documents = append(cfg.Document.Documents, attached...)

	if err := srv.configRepo.UpdateDocument(ctx, cfg.ID, ownerID, cfg.Document); err != nil {
		return nil, srv.translateDocumentStoreError(ctx, err, cfg.ID, ownerID)
	}

	srv.log(ctx).Info("Documents attached", slog.Any("configID", cfg.ID), slog.Int("count", len(attached)))

	return attached, nil
}

// DetachDocument removes a previously attached document from object storage
// and from the configuration's document list.
func (srv *documentService) DetachDocument(ctx context.Context, ownerID uuid.UUID, rawConfigID string, name string) error {
	cfg, err := srv.loadConfig(ctx, ownerID, rawConfigID)
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(cfg.Document.Documents, func(ref entity.DocumentRef) bool {
		return ref.Name == name
	})
	if idx < 0 {
		return domainerrors.ErrDocumentNotFound
	}

	ref := cfg.Document.Documents[idx]
	if err := srv.store.Remove(ctx, ref.Address); err != nil {
		// The reference is still dropped from the config; an orphaned object
		// is preferable to a dangling reference.
		srv.log(ctx).Warn("Failed to remove document from storage", slog.String("address", ref.Address), slog.Any("error", err))
	}

	cfg.Document.Documents = slices.Delete(cfg.Document.Documents, idx, idx+1)

	if err := srv.configRepo.UpdateDocument(ctx, cfg.ID, ownerID, cfg.Document); err != nil {
		return srv.translateDocumentStoreError(ctx, err, cfg.ID, ownerID)
	}

	srv.log(ctx).Info("Document detached", slog.Any("configID", cfg.ID), slog.String("name", name))

	return nil
}

func (srv *documentService) loadConfig(ctx context.Context, ownerID uuid.UUID, rawConfigID string) (*entity.CourseConfig, error) {
	id, err := entity.ParseConfigID(rawConfigID)
	if err != nil {
		return nil, domainerrors.ErrInvalidConfigID
	}

	cfg, err := srv.configRepo.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, srv.translateDocumentStoreError(ctx, err, id, ownerID)
	}

	return cfg, nil
}

func (srv *documentService) translateDocumentStoreError(ctx context.Context, err error, id entity.ConfigID, ownerID uuid.UUID) error {
	if errors.Is(err, repository.ErrConfigNotFound) {
		return domainerrors.ErrConfigNotFound
	}

	srv.log(ctx).Error("Config store operation failed", slog.Any("configID", id), slog.Any("ownerID", ownerID), slog.Any("error", err))

	return domainerrors.NewDatabaseExecuteError(err, "config store operation failed")
}
