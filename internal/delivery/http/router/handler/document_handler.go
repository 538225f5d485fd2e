package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/drbearcub/jw-deployable-app/internal/delivery/http/middleware"
	"github.com/drbearcub/jw-deployable-app/internal/delivery/http/response"
	"github.com/drbearcub/jw-deployable-app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DocumentHandler holds dependencies for reference document handlers.
type DocumentHandler struct {
	uc     usecase.DocumentUsecase
	logger *slog.Logger
}

// NewDocumentHandler is the constructor for DocumentHandler, injected by Fx.
func NewDocumentHandler(uc usecase.DocumentUsecase, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		uc:     uc,
		logger: logger,
	}
}

// Attach handles multipart uploads of reference documents onto a config.
func (h *DocumentHandler) Attach(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Expected multipart form with files")
	}

	files := form.File["files"]
	if len(files) == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "No files submitted")
	}

	uploads := make([]usecase.DocumentUpload, 0, len(files))
	opened := make([]multipart.File, 0, len(files))
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()

	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			return errors.Wrap(err, "failed to open uploaded file")
		}
		opened = append(opened, file)

		uploads = append(uploads, usecase.DocumentUpload{
			Name: fileHeader.Filename,
			Body: file,
		})
	}

	attached, err := h.uc.AttachDocuments(c.Request().Context(), user.ID, c.Param("config_id"), uploads)
	if err != nil {
		return errors.WithStack(err)
	}

	urls := make([]string, 0, len(attached))
	for _, ref := range attached {
		urls = append(urls, ref.Address)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":       "Documents added successfully",
		"document_urls": urls,
	})
}

type detachDocumentInput struct {
	DocumentName string `json:"document_name" validate:"required"`
}

// Detach removes a reference document from a config.
func (h *DocumentHandler) Detach(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input detachDocumentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid document input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DetachDocument(c.Request().Context(), user.ID, c.Param("config_id"), input.DocumentName); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Document deleted successfully"})
}
