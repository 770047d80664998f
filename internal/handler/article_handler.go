package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"pressroom/internal/model"
	"pressroom/internal/service"
)

// ArticleHandler exposes the article lifecycle endpoints.
type ArticleHandler struct {
	editorial service.EditorialService
}

// NewArticleHandler creates a handler layer over the editorial service.
func NewArticleHandler(editorial service.EditorialService) *ArticleHandler {
	return &ArticleHandler{editorial: editorial}
}

// ArticleRequest carries the editable fields of an article. Status is the
// save target: "draft" keeps working privately, "pending" submits for review.
type ArticleRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Status   string `json:"status" validate:"required,oneof=draft pending"`
}

func (r ArticleRequest) input() service.ArticleInput {
	return service.ArticleInput{
		Title:    r.Title,
		Content:  r.Content,
		Category: r.Category,
		Image:    r.Image,
		Status:   model.ArticleStatus(r.Status),
	}
}

// ReviewRequest carries a review decision.
type ReviewRequest struct {
	Approve *bool `json:"approve" validate:"required"`
}

// ListArticles godoc
// @Summary List articles
// @Description With mine=true, only the acting account's articles.
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param mine query bool false "Only own articles"
// @Success 200 {array} model.Article
// @Router /articles [get]
func (h *ArticleHandler) ListArticles(c echo.Context) error {
	actor, ok := CurrentAccount(c)
	if !ok {
		return unauthorized()
	}
	if c.QueryParam("mine") == "true" {
		return c.JSON(http.StatusOK, h.editorial.ListByAuthor(c.Request().Context(), actor.ID))
	}
	return c.JSON(http.StatusOK, h.editorial.List(c.Request().Context()))
}

// GetArticle godoc
// @Summary Get an article
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 200 {object} model.Article
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{id} [get]
func (h *ArticleHandler) GetArticle(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid article id")
	}
	article, err := h.editorial.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, article)
}

// CreateArticle godoc
// @Summary Write a new article
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ArticleRequest true "Article fields"
// @Success 201 {object} model.Article
// @Failure 400 {object} errors.ErrorResponse
// @Router /articles [post]
func (h *ArticleHandler) CreateArticle(c echo.Context) error {
	actor, ok := CurrentAccount(c)
	if !ok {
		return unauthorized()
	}
	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.editorial.Create(c.Request().Context(), actor, req.input())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, article)
}

// UpdateArticle godoc
// @Summary Edit an article
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Param request body ArticleRequest true "Article fields"
// @Success 200 {object} model.Article
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{id} [put]
func (h *ArticleHandler) UpdateArticle(c echo.Context) error {
	actor, ok := CurrentAccount(c)
	if !ok {
		return unauthorized()
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid article id")
	}
	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.editorial.Update(c.Request().Context(), actor, id, req.input())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, article)
}

// DeleteArticle godoc
// @Summary Delete an article
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{id} [delete]
func (h *ArticleHandler) DeleteArticle(c echo.Context) error {
	actor, ok := CurrentAccount(c)
	if !ok {
		return unauthorized()
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid article id")
	}
	if err := h.editorial.Delete(c.Request().Context(), actor, id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "article deleted"})
}

// ReviewArticle godoc
// @Summary Approve or reject a pending article
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Param request body ReviewRequest true "Decision"
// @Success 200 {object} model.Article
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{id}/review [post]
func (h *ArticleHandler) ReviewArticle(c echo.Context) error {
	actor, ok := CurrentAccount(c)
	if !ok {
		return unauthorized()
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid article id")
	}
	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.editorial.Review(c.Request().Context(), actor, id, *req.Approve)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, article)
}

// PendingQueue godoc
// @Summary Review queue of pending articles
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Article
// @Failure 403 {object} errors.ErrorResponse
// @Router /articles/queue/pending [get]
func (h *ArticleHandler) PendingQueue(c echo.Context) error {
	actor, ok := CurrentAccount(c)
	if !ok {
		return unauthorized()
	}
	articles, err := h.editorial.ListPending(c.Request().Context(), actor)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, articles)
}

// ApprovedPool godoc
// @Summary Approved articles available for publication
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Article
// @Router /articles/pool/approved [get]
func (h *ArticleHandler) ApprovedPool(c echo.Context) error {
	return c.JSON(http.StatusOK, h.editorial.ListApproved(c.Request().Context()))
}
