package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"pressroom/internal/model"
	"pressroom/internal/service"
)

// NewspaperHandler exposes the issue composition and archive endpoints.
type NewspaperHandler struct {
	publication service.PublicationService
	settings    service.SettingsService
}

// NewNewspaperHandler creates a handler layer over the publication service.
func NewNewspaperHandler(publication service.PublicationService, settings service.SettingsService) *NewspaperHandler {
	return &NewspaperHandler{publication: publication, settings: settings}
}

// PublishRequest carries a composed issue to finalize. Articles lists the
// selected article ids in the order they were picked.
type PublishRequest struct {
	Title       string      `json:"title"`
	PublishDate string      `json:"publish_date" validate:"omitempty,datetime=2006-01-02"`
	Layout      string      `json:"layout" validate:"omitempty,oneof=classic magazine grid"`
	Articles    []uuid.UUID `json:"articles"`
}

// IssuePage is a rendered issue plus the organization masthead.
type IssuePage struct {
	Org      model.OrgSettings `json:"org"`
	Issue    model.Newspaper   `json:"issue"`
	Articles []model.Article   `json:"articles"`
}

// ListNewspapers godoc
// @Summary List published issues
// @Tags newspapers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Newspaper
// @Router /newspapers [get]
func (h *NewspaperHandler) ListNewspapers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.publication.List(c.Request().Context()))
}

// Publish godoc
// @Summary Compose and publish an issue
// @Tags newspapers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PublishRequest true "Issue composition"
// @Success 201 {object} model.Newspaper
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /newspapers [post]
func (h *NewspaperHandler) Publish(c echo.Context) error {
	actor, ok := CurrentAccount(c)
	if !ok {
		return unauthorized()
	}
	var req PublishRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.PublishDate == "" {
		req.PublishDate = time.Now().Format("2006-01-02")
	}
	draft := service.NewIssueDraft(req.Title, req.PublishDate, model.Layout(req.Layout))
	for _, id := range req.Articles {
		draft.Toggle(id)
	}

	issue, err := h.publication.Finalize(c.Request().Context(), actor, draft)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, issue)
}

// GetNewspaper godoc
// @Summary Get a published issue
// @Tags newspapers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Newspaper ID"
// @Success 200 {object} model.Newspaper
// @Failure 404 {object} errors.ErrorResponse
// @Router /newspapers/{id} [get]
func (h *NewspaperHandler) GetNewspaper(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid newspaper id")
	}
	issue, err := h.publication.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, issue)
}

// RenderNewspaper godoc
// @Summary Render an issue with its articles resolved
// @Description Articles deleted since publication are omitted.
// @Tags newspapers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Newspaper ID"
// @Success 200 {object} IssuePage
// @Failure 404 {object} errors.ErrorResponse
// @Router /newspapers/{id}/render [get]
func (h *NewspaperHandler) RenderNewspaper(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid newspaper id")
	}
	rendered, err := h.publication.Render(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, IssuePage{
		Org:      h.settings.Get(c.Request().Context()),
		Issue:    rendered.Issue,
		Articles: rendered.Articles,
	})
}
