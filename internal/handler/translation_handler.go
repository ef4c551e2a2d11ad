package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"tribalbridge/backend/internal/model"
	"tribalbridge/backend/internal/service"
)

type TranslationHandler struct {
	service service.TranslationService
}

func NewTranslationHandler(service service.TranslationService) *TranslationHandler {
	return &TranslationHandler{service: service}
}

// RegisterPublicRoutes registers routes open to anonymous callers.
// Translate accepts an optional token; authenticated requests get
// their result persisted to history.
func (h *TranslationHandler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/translate", h.Translate)
}

// RegisterProtectedRoutes registers routes that require authentication.
func (h *TranslationHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/translations", h.History)
	g.DELETE("/translations/:id", h.Delete)
	g.POST("/translations/:id/favorite", h.ToggleFavorite)
}

type translateRequest struct {
	SourceLanguage  string `json:"sourceLanguage"`
	TargetLanguage  string `json:"targetLanguage"`
	Text            string `json:"text"`
	TranslationType string `json:"translationType,omitempty"`
}

type translationResponse struct {
	ID               string  `json:"id,omitempty"`
	SourceLanguage   string  `json:"sourceLanguage"`
	TargetLanguage   string  `json:"targetLanguage"`
	SourceText       string  `json:"sourceText"`
	TranslatedText   string  `json:"translatedText"`
	TranslationType  string  `json:"translationType"`
	ConfidenceScore  float64 `json:"confidenceScore"`
	AccuracyScore    float64 `json:"accuracyScore"`
	EfficiencyScore  float64 `json:"efficiencyScore"`
	ProcessingTimeMs int64   `json:"processingTimeMs"`
	CharacterCount   int     `json:"characterCount"`
	WordCount        int     `json:"wordCount"`
	ModelUsed        string  `json:"modelUsed"`
	IsFavorite       bool    `json:"isFavorite"`
	CreatedAt        string  `json:"createdAt"`
}

type translationListResponse struct {
	Translations []translationResponse `json:"translations"`
	HasMore      bool                  `json:"hasMore"`
}

// Translate translates text between two languages.
// @Summary Translate text
// @Description Translate text between languages, falling back from AI providers to the built-in dictionary
// @Tags translations
// @Accept json
// @Produce json
// @Param request body translateRequest true "Translation request"
// @Success 200 {object} translationResponse
// @Failure 400 {object} errorResponse
// @Router /translate [post]
func (h *TranslationHandler) Translate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}

	t, err := h.service.Translate(c.Request().Context(), service.TranslateParams{
		SourceLanguageCode: req.SourceLanguage,
		TargetLanguageCode: req.TargetLanguage,
		Text:               req.Text,
		TranslationType:    model.TranslationType(req.TranslationType),
		UserID:             currentUserID(c),
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, toTranslationResponse(t))
}

// History returns the caller's translation history.
// @Summary List translation history
// @Description Get the authenticated user's translations, newest first
// @Tags translations
// @Produce json
// @Security BearerAuth
// @Param language query string false "Filter by language code (source or target)"
// @Param favorites query bool false "Only return favorites"
// @Param limit query int false "Limit the number of records (default 50, max 200)"
// @Param offset query int false "Offset for pagination"
// @Success 200 {object} translationListResponse
// @Failure 401 {object} errorResponse
// @Router /translations [get]
func (h *TranslationHandler) History(c echo.Context) error {
	params := service.HistoryParams{UserID: currentUserID(c)}

	if raw := c.QueryParam("language"); raw != "" {
		params.LanguageCode = &raw
	}
	if c.QueryParam("favorites") == "true" {
		params.FavoritesOnly = true
	}
	if limit, err := parseQueryInt(c, "limit"); err == nil && limit > 0 {
		params.Limit = limit
	}
	if offset, err := parseQueryInt(c, "offset"); err == nil && offset > 0 {
		params.Offset = offset
	}

	translations, err := h.service.History(c.Request().Context(), params)
	if err != nil {
		return writeServiceError(c, err)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}

	response := translationListResponse{
		Translations: make([]translationResponse, len(translations)),
		HasMore:      len(translations) == limit,
	}
	for i, t := range translations {
		response.Translations[i] = toTranslationResponse(t)
	}

	return c.JSON(http.StatusOK, response)
}

// Delete removes one translation from the caller's history.
// @Summary Delete translation
// @Description Delete one of the authenticated user's translations
// @Tags translations
// @Param id path int true "Translation ID"
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /translations/{id} [delete]
func (h *TranslationHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.service.Delete(c.Request().Context(), id, currentUserID(c)); err != nil {
		return writeServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ToggleFavorite flips the favorite flag on one translation.
// @Summary Toggle favorite
// @Description Toggle the favorite flag on one of the authenticated user's translations
// @Tags translations
// @Produce json
// @Param id path int true "Translation ID"
// @Security BearerAuth
// @Success 200 {object} translationResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /translations/{id}/favorite [post]
func (h *TranslationHandler) ToggleFavorite(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid id")
	}

	t, err := h.service.ToggleFavorite(c.Request().Context(), id, currentUserID(c))
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, toTranslationResponse(t))
}

func toTranslationResponse(t model.Translation) translationResponse {
	resp := translationResponse{
		SourceLanguage:   t.SourceLanguageCode,
		TargetLanguage:   t.TargetLanguageCode,
		SourceText:       t.SourceText,
		TranslatedText:   t.TranslatedText,
		TranslationType:  string(t.TranslationType),
		ConfidenceScore:  t.ConfidenceScore,
		AccuracyScore:    t.AccuracyScore,
		EfficiencyScore:  t.EfficiencyScore,
		ProcessingTimeMs: t.ProcessingTimeMs,
		CharacterCount:   t.CharacterCount,
		WordCount:        t.WordCount,
		ModelUsed:        t.ModelUsed,
		IsFavorite:       t.IsFavorite,
		CreatedAt:        t.CreatedAt.UTC().Format(time.RFC3339),
	}

	// Anonymous results are never persisted and carry no id.
	if t.ID != 0 {
		resp.ID = idToString(t.ID)
	}

	return resp
}
