package usecase

import (
	"context"
	"io"

	"github.com/drbearcub/jw-deployable-app/internal/domain/entity"

	"github.com/google/uuid"
)

// DocumentUpload is one file submitted for attachment.
type DocumentUpload struct {
	Name string
	Body io.Reader
}

// DocumentUsecase manages the reference documents attached to a course
// configuration.
type DocumentUsecase interface {
	// AttachDocuments uploads each file and appends its reference to the
	// configuration. Only PDF files are accepted.
	AttachDocuments(ctx context.Context, ownerID uuid.UUID, rawConfigID string, uploads []DocumentUpload) ([]entity.DocumentRef, error)
	// DetachDocument removes a previously attached document from storage and
	// from the configuration.
	DetachDocument(ctx context.Context, ownerID uuid.UUID, rawConfigID string, name string) error
}
