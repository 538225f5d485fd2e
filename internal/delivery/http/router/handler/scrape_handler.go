package handler

import (
	"log/slog"
	"net/http"

	"github.com/drbearcub/jw-deployable-app/internal/delivery/http/response"
	"github.com/drbearcub/jw-deployable-app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ScrapeHandler holds dependencies for the scrape-to-PDF handler.
type ScrapeHandler struct {
	uc     usecase.ScrapeUsecase
	logger *slog.Logger
}

// NewScrapeHandler is the constructor for ScrapeHandler, injected by Fx.
func NewScrapeHandler(uc usecase.ScrapeUsecase, logger *slog.Logger) *ScrapeHandler {
	return &ScrapeHandler{
		uc:     uc,
		logger: logger,
	}
}

type scrapeInput struct {
	URL string `json:"url" validate:"required,url"`
}

// ScrapeAndGenerate fetches the given page and responds with the path of the
// generated PDF summary.
func (h *ScrapeHandler) ScrapeAndGenerate(c echo.Context) error {
	var input scrapeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scrape input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.ScrapeAndRender(c.Request().Context(), input.URL)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message":  "PDF generated",
		"pdf_path": output.PDFPath,
	})
}
