package service

import (
	"context"
	"strings"

	"tribalbridge/backend/internal/catalog"
	"tribalbridge/backend/internal/model"
)

// LanguageService exposes the embedded language catalog.
type LanguageService interface {
	List(ctx context.Context) []model.Language
	Get(ctx context.Context, code string) (model.Language, error)
	Tribal(ctx context.Context) []model.Language
	ByRegion(ctx context.Context, region string) []model.Language
	Search(ctx context.Context, query string) []model.Language
}

type languageService struct {
	catalog *catalog.Catalog
}

// NewLanguageService creates a new language service.
func NewLanguageService(c *catalog.Catalog) LanguageService {
	return &languageService{catalog: c}
}

func (s *languageService) List(ctx context.Context) []model.Language {
	return s.catalog.All()
}

func (s *languageService) Get(ctx context.Context, code string) (model.Language, error) {
	lang, ok := s.catalog.ByCode(strings.ToLower(strings.TrimSpace(code)))
	if !ok {
		return model.Language{}, ErrNotFound
	}
	return lang, nil
}

func (s *languageService) Tribal(ctx context.Context) []model.Language {
	return s.catalog.Tribal()
}

func (s *languageService) ByRegion(ctx context.Context, region string) []model.Language {
	return s.catalog.ByRegion(region)
}

func (s *languageService) Search(ctx context.Context, query string) []model.Language {
	return s.catalog.Search(query)
}
