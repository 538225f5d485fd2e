package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/drbearcub/jw-deployable-app/internal/delivery/http/middleware"
	"github.com/drbearcub/jw-deployable-app/internal/delivery/http/response"
	"github.com/drbearcub/jw-deployable-app/internal/domain/entity"
	"github.com/drbearcub/jw-deployable-app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ConfigHandler holds dependencies for course configuration handlers.
type ConfigHandler struct {
	uc     usecase.ConfigUsecase
	logger *slog.Logger
}

// NewConfigHandler is the constructor for ConfigHandler, injected by Fx.
func NewConfigHandler(uc usecase.ConfigUsecase, logger *slog.Logger) *ConfigHandler {
	return &ConfigHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the course configuration creation request.
func (h *ConfigHandler) Create(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.CreateConfigInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid config input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateConfig(c.Request().Context(), user.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"config_id": output.ConfigID,
		"message":   "Config created successfully",
	})
}

// List returns the caller's configurations, optionally filtered on active.
func (h *ConfigHandler) List(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var active *bool
	if raw := c.QueryParam("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "active must be true or false")
		}
		active = &parsed
	}

	configs, err := h.uc.ListConfigs(c.Request().Context(), user.ID, active)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, configs)
}

// Get returns a single configuration.
func (h *ConfigHandler) Get(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	cfg, err := h.uc.GetConfig(c.Request().Context(), user.ID, c.Param("config_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, cfg)
}

// Update replaces the stored deployment document.
func (h *ConfigHandler) Update(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var doc entity.ConfigDocument
	if err := c.Bind(&doc); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid config document")
	}

	rawID := c.Param("config_id")
	if err := h.uc.UpdateConfig(c.Request().Context(), user.ID, rawID, doc); err != nil {
		return errors.WithStack(err)
	}

	cfg, err := h.uc.GetConfig(c.Request().Context(), user.ID, rawID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, cfg)
}

// Deactivate retains the configuration but excludes it from deployment.
func (h *ConfigHandler) Deactivate(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeactivateConfig(c.Request().Context(), user.ID, c.Param("config_id")); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Config deactivated successfully"})
}

// Delete removes the configuration permanently.
func (h *ConfigHandler) Delete(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteConfig(c.Request().Context(), user.ID, c.Param("config_id")); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Config deleted successfully"})
}
