package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"tribalbridge/backend/internal/config"
	"tribalbridge/backend/internal/dictionary"
	"tribalbridge/backend/internal/logger"
	"tribalbridge/backend/internal/model"
	"tribalbridge/backend/internal/provider"
	"tribalbridge/backend/internal/repository"
)

// Score tiers. The values are fixed per engine path so scores stay
// comparable across records; the dashboard depends on that.
const (
	providerConfidence = 0.85
	providerAccuracy   = 0.88
	providerEfficiency = 1.2

	dictionaryConfidence = 0.75
	dictionaryAccuracy   = 0.80
	dictionaryEfficiency = 1.5
)

const (
	historyDefaultLimit = 50
	historyMaxLimit     = 200
)

// TranslateParams is one translation request. UserID is zero for
// anonymous callers; their results are returned but never persisted.
type TranslateParams struct {
	SourceLanguageCode string
	TargetLanguageCode string
	Text               string
	TranslationType    model.TranslationType
	UserID             int64
}

// HistoryParams narrows a history listing.
type HistoryParams struct {
	UserID        int64
	LanguageCode  *string
	FavoritesOnly bool
	Limit         int
	Offset        int
}

// LanguageNames resolves language codes to display names.
type LanguageNames interface {
	DisplayName(code string) string
}

type TranslationService interface {
	Translate(ctx context.Context, params TranslateParams) (model.Translation, error)
	History(ctx context.Context, params HistoryParams) ([]model.Translation, error)
	Delete(ctx context.Context, id, userID int64) error
	ToggleFavorite(ctx context.Context, id, userID int64) (model.Translation, error)
}

type translationService struct {
	repo       repository.TranslationRepository
	names      LanguageNames
	dictionary *dictionary.Engine
	adapters   []provider.Adapter // tried in order; first success wins
	limiter    *provider.RateLimiter
}

// NewTranslationService creates the translation orchestrator. The
// adapter slice defines the fallback order.
func NewTranslationService(
	repo repository.TranslationRepository,
	names LanguageNames,
	engine *dictionary.Engine,
	adapters []provider.Adapter,
	limiter *provider.RateLimiter,
) TranslationService {
	return &translationService{
		repo:       repo,
		names:      names,
		dictionary: engine,
		adapters:   adapters,
		limiter:    limiter,
	}
}

// Translate runs the provider chain and falls back to the dictionary
// engine. It always produces a translation; provider failures degrade
// the result, they never fail the request.
func (s *translationService) Translate(ctx context.Context, params TranslateParams) (model.Translation, error) {
	text := strings.TrimSpace(params.Text)
	if text == "" {
		return model.Translation{}, ErrEmptyText
	}
	if params.SourceLanguageCode == "" || params.TargetLanguageCode == "" {
		return model.Translation{}, ErrInvalid
	}

	translationType := params.TranslationType
	if translationType == "" {
		translationType = model.TranslationTypeText
	}
	if !translationType.Valid() {
		return model.Translation{}, ErrInvalid
	}

	start := time.Now()

	req := provider.Request{
		SourceCode: params.SourceLanguageCode,
		TargetCode: params.TargetLanguageCode,
		SourceName: s.names.DisplayName(params.SourceLanguageCode),
		TargetName: s.names.DisplayName(params.TargetLanguageCode),
		Text:       text,
	}

	translated, modelUsed, fromProvider, err := s.tryProviders(ctx, req)
	if err != nil {
		return model.Translation{}, err
	}

	t := model.Translation{
		UserID:             params.UserID,
		SourceLanguageCode: params.SourceLanguageCode,
		TargetLanguageCode: params.TargetLanguageCode,
		SourceText:         text,
		TranslationType:    translationType,
		CharacterCount:     utf8.RuneCountInString(text),
		WordCount:          len(strings.Fields(text)),
	}

	if fromProvider {
		t.TranslatedText = translated
		t.ModelUsed = modelUsed
		t.ConfidenceScore = providerConfidence
		t.AccuracyScore = providerAccuracy
		t.EfficiencyScore = providerEfficiency
	} else {
		t.TranslatedText = s.dictionary.Translate(params.SourceLanguageCode, params.TargetLanguageCode, text)
		t.ModelUsed = config.ModelIdentifier
		t.ConfidenceScore = dictionaryConfidence
		t.AccuracyScore = dictionaryAccuracy
		t.EfficiencyScore = dictionaryEfficiency
	}

	t.ProcessingTimeMs = time.Since(start).Milliseconds()

	if params.UserID != 0 {
		saved, err := s.repo.Create(ctx, t)
		if err != nil {
			// History is best effort; the user still gets their result.
			logger.Warn("persist translation failed", "module", "translation", "action", "create", "resource", "translation", "result", "error", "error", err)
		} else {
			t = saved
		}
	}

	logger.Info("translation completed",
		"module", "translation", "action", "translate", "resource", "translation", "result", "ok",
		"source", params.SourceLanguageCode, "target", params.TargetLanguageCode,
		"model", t.ModelUsed, "duration_ms", t.ProcessingTimeMs)

	return t, nil
}

// tryProviders walks the adapter chain in priority order and returns
// the first successful result. A context error aborts the request;
// everything else just moves on to the next adapter.
func (s *translationService) tryProviders(ctx context.Context, req provider.Request) (text, modelUsed string, ok bool, err error) {
	for _, adapter := range s.adapters {
		if !adapter.Configured() {
			logger.Debug("provider not configured, skipping", "module", "translation", "action", "translate", "resource", adapter.Name(), "result", "skipped")
			continue
		}

		if err := s.limiter.Wait(ctx); err != nil {
			return "", "", false, err
		}

		attempt := adapter.Translate(ctx, req)
		switch attempt.Status {
		case provider.StatusTranslated:
			return attempt.Text, adapter.Name(), true, nil
		case provider.StatusFailed:
			if ctx.Err() != nil {
				return "", "", false, ctx.Err()
			}
			logger.Warn("provider attempt failed", "module", "translation", "action", "translate", "resource", adapter.Name(), "result", "error", "error", attempt.Err)
		}
	}
	return "", "", false, nil
}

func (s *translationService) History(ctx context.Context, params HistoryParams) ([]model.Translation, error) {
	if params.UserID == 0 {
		return nil, ErrInvalid
	}

	limit := params.Limit
	if limit <= 0 {
		limit = historyDefaultLimit
	}
	if limit > historyMaxLimit {
		limit = historyMaxLimit
	}

	return s.repo.List(ctx, repository.TranslationListFilter{
		UserID:        params.UserID,
		LanguageCode:  params.LanguageCode,
		FavoritesOnly: params.FavoritesOnly,
		Limit:         limit,
		Offset:        params.Offset,
	})
}

func (s *translationService) Delete(ctx context.Context, id, userID int64) error {
	found, err := s.repo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}

	logger.Info("translation deleted", "module", "translation", "action", "delete", "resource", "translation", "result", "ok", "id", id)
	return nil
}

func (s *translationService) ToggleFavorite(ctx context.Context, id, userID int64) (model.Translation, error) {
	t, err := s.repo.ToggleFavorite(ctx, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Translation{}, ErrNotFound
		}
		return model.Translation{}, err
	}
	return t, nil
}
