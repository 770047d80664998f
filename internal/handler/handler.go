package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pressroom/internal/errors"
	"pressroom/internal/model"
)

// accountContextKey is where the session middleware stores the acting account.
const accountContextKey = "account"

// CurrentAccount returns the acting account placed on the context by the
// session middleware.
func CurrentAccount(c echo.Context) (model.Account, bool) {
	account, ok := c.Get(accountContextKey).(model.Account)
	return account, ok
}

// SetCurrentAccount is used by the session middleware (and tests) to attach
// the acting account to the request context.
func SetCurrentAccount(c echo.Context, account model.Account) {
	c.Set(accountContextKey, account)
}

// domainError translates a service error into an echo HTTP error with the
// standard response body.
func domainError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func unauthorized() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{Error: "no active session", Code: "NO_SESSION"})
}
