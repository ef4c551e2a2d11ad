package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tribalbridge/backend/internal/model"
	"tribalbridge/backend/internal/service"
)

type LanguageHandler struct {
	service service.LanguageService
}

func NewLanguageHandler(service service.LanguageService) *LanguageHandler {
	return &LanguageHandler{service: service}
}

func (h *LanguageHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/languages", h.List)
	g.GET("/languages/tribal", h.Tribal)
	g.GET("/languages/search", h.Search)
	g.GET("/languages/region/:region", h.ByRegion)
	g.GET("/languages/:code", h.Get)
}

type languageListResponse struct {
	Languages []model.Language `json:"languages"`
}

// List returns the full language catalog.
// @Summary List languages
// @Description Get all supported languages
// @Tags languages
// @Produce json
// @Success 200 {object} languageListResponse
// @Router /languages [get]
func (h *LanguageHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, languageListResponse{Languages: h.service.List(c.Request().Context())})
}

// Tribal returns only the tribal languages.
// @Summary List tribal languages
// @Description Get the tribal subset of the language catalog
// @Tags languages
// @Produce json
// @Success 200 {object} languageListResponse
// @Router /languages/tribal [get]
func (h *LanguageHandler) Tribal(c echo.Context) error {
	return c.JSON(http.StatusOK, languageListResponse{Languages: h.service.Tribal(c.Request().Context())})
}

// Search finds languages by name.
// @Summary Search languages
// @Description Search languages by name or native name
// @Tags languages
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} languageListResponse
// @Router /languages/search [get]
func (h *LanguageHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusOK, languageListResponse{Languages: []model.Language{}})
	}
	return c.JSON(http.StatusOK, languageListResponse{Languages: h.service.Search(c.Request().Context(), query)})
}

// ByRegion returns languages spoken in a region.
// @Summary List languages by region
// @Description Get languages filtered by region name
// @Tags languages
// @Produce json
// @Param region path string true "Region name"
// @Success 200 {object} languageListResponse
// @Router /languages/region/{region} [get]
func (h *LanguageHandler) ByRegion(c echo.Context) error {
	return c.JSON(http.StatusOK, languageListResponse{Languages: h.service.ByRegion(c.Request().Context(), c.Param("region"))})
}

// Get returns one language by code.
// @Summary Get language
// @Description Get a single language by its code
// @Tags languages
// @Produce json
// @Param code path string true "Language code"
// @Success 200 {object} model.Language
// @Failure 404 {object} errorResponse
// @Router /languages/{code} [get]
func (h *LanguageHandler) Get(c echo.Context) error {
	lang, err := h.service.Get(c.Request().Context(), c.Param("code"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, lang)
}
