package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"tribalbridge/backend/internal/handler"
	"tribalbridge/backend/internal/model"
	"tribalbridge/backend/internal/service"
)

type stubTranslationService struct {
	translateErr error
	deleteErr    error
}

func (s *stubTranslationService) Translate(ctx context.Context, params service.TranslateParams) (model.Translation, error) {
	return model.Translation{}, s.translateErr
}

func (s *stubTranslationService) History(ctx context.Context, params service.HistoryParams) ([]model.Translation, error) {
	return nil, nil
}

func (s *stubTranslationService) Delete(ctx context.Context, id, userID int64) error {
	return s.deleteErr
}

func (s *stubTranslationService) ToggleFavorite(ctx context.Context, id, userID int64) (model.Translation, error) {
	return model.Translation{}, nil
}

func newTranslateContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/translate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestTranslationHandler_TranslateEmptyText(t *testing.T) {
	h := handler.NewTranslationHandler(&stubTranslationService{translateErr: service.ErrEmptyText})
	c, rec := newTranslateContext(`{"sourceLanguage":"en","targetLanguage":"nv","text":""}`)

	require.NoError(t, h.Translate(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"text is required"}`, rec.Body.String())
}

func TestTranslationHandler_DeleteInvalidID(t *testing.T) {
	h := handler.NewTranslationHandler(&stubTranslationService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/translations/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"invalid id"}`, rec.Body.String())
}

func TestTranslationHandler_DeleteNotFound(t *testing.T) {
	h := handler.NewTranslationHandler(&stubTranslationService{deleteErr: service.ErrNotFound})

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/translations/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"resource not found"}`, rec.Body.String())
}
