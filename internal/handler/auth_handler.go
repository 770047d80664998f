package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pressroom/internal/auth"
	"pressroom/internal/model"
	"pressroom/internal/service"
)

// AuthHandler handles login, signup and session endpoints.
type AuthHandler struct {
	identity service.IdentityService
	jwt      *auth.JWTService
	sessions auth.SessionStoreInterface
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(identity service.IdentityService, jwt *auth.JWTService, sessions auth.SessionStoreInterface) *AuthHandler {
	return &AuthHandler{identity: identity, jwt: jwt, sessions: sessions}
}

// LoginRequest represents a login request. There is no credential: the
// newsroom trusts its members and login is an exact email match.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// QuickLoginRequest logs in as the first account holding a role, a demo
// convenience.
type QuickLoginRequest struct {
	Role string `json:"role" validate:"required,oneof=admin chief_editor editor reporter"`
}

// SignupRequest represents a self-registration request.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	MemberID string `json:"member_id"`
}

// SessionResponse is returned by the login endpoints.
type SessionResponse struct {
	Token   string        `json:"token"`
	Account model.Account `json:"account"`
}

func (h *AuthHandler) startSession(c echo.Context, account *model.Account) error {
	tokenID, token, err := h.jwt.GenerateSessionToken(*account)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to start session")
	}
	if err := h.sessions.Create(c.Request().Context(), tokenID, account.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to start session")
	}
	return c.JSON(http.StatusOK, SessionResponse{Token: token, Account: *account})
}

// Login godoc
// @Summary Log in by email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login email"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.identity.Login(c.Request().Context(), req.Email)
	if err != nil {
		return domainError(err)
	}
	return h.startSession(c, account)
}

// QuickLogin godoc
// @Summary Log in as the first account holding a role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body QuickLoginRequest true "Role"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/quick-login [post]
func (h *AuthHandler) QuickLogin(c echo.Context) error {
	var req QuickLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.identity.QuickLogin(c.Request().Context(), model.Role(req.Role))
	if err != nil {
		return domainError(err)
	}
	return h.startSession(c, account)
}

// Signup godoc
// @Summary Register a new member
// @Description Self-registration always creates a reporter.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Member details"
// @Success 201 {object} model.Account
// @Failure 400 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.identity.Signup(c.Request().Context(), req.Name, req.Email, req.MemberID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, account)
}

// Logout godoc
// @Summary End the current session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	// Ending an already-ended session is a no-op, not an error.
	if claims, ok := c.Get("user").(*auth.Claims); ok {
		_ = h.sessions.Delete(c.Request().Context(), claims.ID)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out",
	})
}

// Me godoc
// @Summary Current account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Account
// @Failure 401 {object} errors.ErrorResponse
// @Router /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	account, ok := CurrentAccount(c)
	if !ok {
		return unauthorized()
	}
	return c.JSON(http.StatusOK, account)
}
