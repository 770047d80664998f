package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"pressroom/internal/errors"
	"pressroom/internal/model"
	"pressroom/internal/policy"
	"pressroom/internal/service"
)

// UserHandler exposes the member management endpoints.
type UserHandler struct {
	identity service.IdentityService
}

// NewUserHandler creates a handler layer over the identity service.
func NewUserHandler(identity service.IdentityService) *UserHandler {
	return &UserHandler{identity: identity}
}

// AssignRoleRequest names the new role for a member.
type AssignRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// MemberResponse is an account with its human-readable role name, for the
// member management screen.
type MemberResponse struct {
	model.Account
	RoleName string `json:"role_name"`
}

// ListUsers godoc
// @Summary List newsroom members
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} MemberResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	actor, ok := CurrentAccount(c)
	if !ok {
		return unauthorized()
	}
	if !policy.Allows(actor, policy.ManageUsers) {
		return domainError(errors.ErrPermissionDenied)
	}

	accounts := h.identity.Accounts(c.Request().Context())
	members := make([]MemberResponse, 0, len(accounts))
	for _, account := range accounts {
		members = append(members, MemberResponse{Account: account, RoleName: account.Role.DisplayName()})
	}
	return c.JSON(http.StatusOK, members)
}

// AssignRole godoc
// @Summary Change a member's role
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param request body AssignRoleRequest true "New role"
// @Success 200 {object} model.Account
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/role [put]
func (h *UserHandler) AssignRole(c echo.Context) error {
	actor, ok := CurrentAccount(c)
	if !ok {
		return unauthorized()
	}
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid account id")
	}

	var req AssignRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.identity.AssignRole(c.Request().Context(), actor, targetID, model.Role(req.Role))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, account)
}
