package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tribalbridge/backend/internal/service"
)

type AnalyticsHandler struct {
	service service.AnalyticsService
}

func NewAnalyticsHandler(service service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// RegisterPublicRoutes registers stats routes open to anonymous callers.
func (h *AnalyticsHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/stats/global", h.Global)
	g.GET("/stats/languages/:code", h.Language)
}

// RegisterProtectedRoutes registers routes that require authentication.
func (h *AnalyticsHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/stats/me", h.Me)
}

// Global returns platform-wide usage statistics.
// @Summary Global statistics
// @Description Get platform-wide translation statistics
// @Tags stats
// @Produce json
// @Success 200 {object} service.GlobalStats
// @Router /stats/global [get]
func (h *AnalyticsHandler) Global(c echo.Context) error {
	stats, err := h.service.GlobalStats(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// Language returns usage statistics for one language.
// @Summary Language statistics
// @Description Get usage statistics for a single language
// @Tags stats
// @Produce json
// @Param code path string true "Language code"
// @Success 200 {object} service.LanguageUsage
// @Failure 404 {object} errorResponse
// @Router /stats/languages/{code} [get]
func (h *AnalyticsHandler) Language(c echo.Context) error {
	usage, err := h.service.LanguageStats(c.Request().Context(), c.Param("code"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, usage)
}

// Me returns the caller's usage statistics.
// @Summary My statistics
// @Description Get the authenticated user's translation statistics
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param days query int false "Activity window in days (default 30)"
// @Success 200 {object} service.UserActivity
// @Failure 401 {object} errorResponse
// @Router /stats/me [get]
func (h *AnalyticsHandler) Me(c echo.Context) error {
	days, _ := parseQueryInt(c, "days")

	activity, err := h.service.UserActivity(c.Request().Context(), currentUserID(c), days)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, activity)
}
