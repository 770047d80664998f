package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"pressroom/internal/auth"
	"pressroom/internal/handler"
	"pressroom/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	sessions auth.SessionStoreInterface,
	identity service.IdentityService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	articleHandler *handler.ArticleHandler,
	newspaperHandler *handler.NewspaperHandler,
	settingsHandler *handler.SettingsHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/quick-login", authHandler.QuickLogin)
	api.POST("/auth/signup", authHandler.Signup)
	api.GET("/settings", settingsHandler.GetSettings)

	// Secured routes: a valid token signature AND a live session are both
	// required, so logout is effective before token expiry.
	secured := api.Group("",
		echojwt.WithConfig(echojwt.Config{
			TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
			ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
				return jwtService.ValidateToken(token)
			},
		}),
		sessionMiddleware(sessions, identity),
	)

	secured.POST("/auth/logout", authHandler.Logout)
	secured.GET("/me", authHandler.Me)

	// Member management
	secured.GET("/users", userHandler.ListUsers)
	secured.PUT("/users/:id/role", userHandler.AssignRole)

	// Articles
	secured.GET("/articles", articleHandler.ListArticles)
	secured.POST("/articles", articleHandler.CreateArticle)
	secured.GET("/articles/:id", articleHandler.GetArticle)
	secured.PUT("/articles/:id", articleHandler.UpdateArticle)
	secured.DELETE("/articles/:id", articleHandler.DeleteArticle)
	secured.POST("/articles/:id/review", articleHandler.ReviewArticle)
	secured.GET("/articles/queue/pending", articleHandler.PendingQueue)
	secured.GET("/articles/pool/approved", articleHandler.ApprovedPool)

	// Newspapers
	secured.GET("/newspapers", newspaperHandler.ListNewspapers)
	secured.POST("/newspapers", newspaperHandler.Publish)
	secured.GET("/newspapers/:id", newspaperHandler.GetNewspaper)
	secured.GET("/newspapers/:id/render", newspaperHandler.RenderNewspaper)

	// Settings
	secured.PUT("/settings", settingsHandler.UpdateSettings)
}

// sessionMiddleware resolves the validated token to its account: the JTI
// must still be live in the session store and the account must still
// exist. The account is attached to the request context for handlers.
func sessionMiddleware(sessions auth.SessionStoreInterface, identity service.IdentityService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*auth.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
			}
			accountID, live := sessions.Lookup(c.Request().Context(), claims.ID)
			if !live {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}
			account, err := identity.GetAccount(c.Request().Context(), accountID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unknown account")
			}
			handler.SetCurrentAccount(c, *account)
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
