package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "tribalbridge/backend/docs"
	"tribalbridge/backend/internal/handler"
	"tribalbridge/backend/internal/service"
)

func NewRouter(
	authHandler *handler.AuthHandler,
	translationHandler *handler.TranslationHandler,
	languageHandler *handler.LanguageHandler,
	analyticsHandler *handler.AnalyticsHandler,
	authService service.AuthService,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(RequestIDMiddleware())
	e.Use(RequestLoggerMiddleware())

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")

	authHandler.RegisterPublicRoutes(api)
	languageHandler.RegisterRoutes(api)
	analyticsHandler.RegisterPublicRoutes(api)

	// Translate is open to anonymous callers but picks up the account
	// when a token is supplied, so results land in history.
	optional := api.Group("", OptionalJWTAuthMiddleware(authService))
	translationHandler.RegisterPublicRoutes(optional)

	protected := api.Group("", JWTAuthMiddleware(authService))
	authHandler.RegisterProtectedRoutes(protected)
	translationHandler.RegisterProtectedRoutes(protected)
	analyticsHandler.RegisterProtectedRoutes(protected)

	return e
}
