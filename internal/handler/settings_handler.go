package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pressroom/internal/model"
	"pressroom/internal/service"
)

// SettingsHandler exposes the organization configuration endpoints.
type SettingsHandler struct {
	settings service.SettingsService
}

// NewSettingsHandler creates a handler layer over the settings service.
func NewSettingsHandler(settings service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// SettingsRequest replaces the organization configuration wholesale.
type SettingsRequest struct {
	Name       string   `json:"name" validate:"required"`
	Subtitle   string   `json:"subtitle"`
	Categories []string `json:"categories" validate:"required"`
}

// GetSettings godoc
// @Summary Organization settings
// @Description Public: the login page shows the masthead before any session exists.
// @Tags settings
// @Produce json
// @Success 200 {object} model.OrgSettings
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.settings.Get(c.Request().Context()))
}

// UpdateSettings godoc
// @Summary Replace organization settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SettingsRequest true "New settings"
// @Success 200 {object} model.OrgSettings
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /settings [put]
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	actor, ok := CurrentAccount(c)
	if !ok {
		return unauthorized()
	}
	var req SettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.settings.Update(c.Request().Context(), actor, model.OrgSettings{
		Name:       req.Name,
		Subtitle:   req.Subtitle,
		Categories: req.Categories,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, updated)
}
