package handler

import (
	"net/http"
	"time"

	"github.com/drbearcub/jw-deployable-app/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// MetadataHandler serves the static enumerations the frontend populates its
// course form from.
type MetadataHandler struct{}

// NewMetadataHandler is the constructor for MetadataHandler.
func NewMetadataHandler() *MetadataHandler {
	return &MetadataHandler{}
}

// TermYears lists the selectable terms.
func (h *MetadataHandler) TermYears(c echo.Context) error {
	return c.JSON(http.StatusOK, entity.TermYears(time.Now()))
}

// Organizations lists the institutions a course can belong to.
func (h *MetadataHandler) Organizations(c echo.Context) error {
	return c.JSON(http.StatusOK, entity.Organizations())
}

// PluginTypes lists the supported plugin types.
func (h *MetadataHandler) PluginTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, entity.PluginTypes())
}
