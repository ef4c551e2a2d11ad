package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"tribalbridge/backend/internal/catalog"
	"tribalbridge/backend/internal/model"
	"tribalbridge/backend/internal/repository"
)

const topPairsLimit = 10

// PairStat is one (source, target) pair with its usage count.
type PairStat struct {
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
	Count          int    `json:"count"`
}

// DayStat is the number of translations created on one day.
type DayStat struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// GlobalStats aggregates platform-wide usage. All values are zero on
// an empty database, never an error.
type GlobalStats struct {
	TotalTranslations int        `json:"totalTranslations"`
	TotalUsers        int        `json:"totalUsers"`
	TotalLanguages    int        `json:"totalLanguages"`
	AvgConfidence     float64    `json:"avgConfidence"`
	TopPairs          []PairStat `json:"topPairs"`
}

// LanguageUsage is one language's catalog entry plus its usage counts.
type LanguageUsage struct {
	Language      model.Language `json:"language"`
	AsSource      int            `json:"asSource"`
	AsTarget      int            `json:"asTarget"`
	AvgConfidence float64        `json:"avgConfidence"`
}

// UserActivity aggregates one user's history for the dashboard.
type UserActivity struct {
	TotalTranslations int        `json:"totalTranslations"`
	FavoriteCount     int        `json:"favoriteCount"`
	TotalCharacters   int64      `json:"totalCharacters"`
	TotalWords        int64      `json:"totalWords"`
	AvgConfidence     float64    `json:"avgConfidence"`
	AvgProcessingMs   float64    `json:"avgProcessingMs"`
	TopPairs          []PairStat `json:"topPairs"`
	Activity          []DayStat  `json:"activity"`
}

// AnalyticsService computes usage statistics over persisted
// translations.
type AnalyticsService interface {
	GlobalStats(ctx context.Context) (GlobalStats, error)
	LanguageStats(ctx context.Context, code string) (LanguageUsage, error)
	UserActivity(ctx context.Context, userID int64, days int) (UserActivity, error)
}

type analyticsService struct {
	translations repository.TranslationRepository
	users        repository.UserRepository
	catalog      *catalog.Catalog
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(
	translations repository.TranslationRepository,
	users repository.UserRepository,
	c *catalog.Catalog,
) AnalyticsService {
	return &analyticsService{translations: translations, users: users, catalog: c}
}

func (s *analyticsService) GlobalStats(ctx context.Context) (GlobalStats, error) {
	stats := GlobalStats{
		TotalLanguages: s.catalog.Len(),
		TopPairs:       []PairStat{},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.translations.CountAll(ctx)
		stats.TotalTranslations = count
		return err
	})
	g.Go(func() error {
		count, err := s.users.Count(ctx)
		stats.TotalUsers = count
		return err
	})
	g.Go(func() error {
		avg, err := s.translations.AvgConfidence(ctx)
		stats.AvgConfidence = avg
		return err
	})
	g.Go(func() error {
		pairs, err := s.translations.TopPairs(ctx, topPairsLimit)
		if err != nil {
			return err
		}
		stats.TopPairs = pairStats(pairs)
		return nil
	})

	if err := g.Wait(); err != nil {
		return GlobalStats{}, err
	}
	return stats, nil
}

func (s *analyticsService) LanguageStats(ctx context.Context, code string) (LanguageUsage, error) {
	code = strings.ToLower(strings.TrimSpace(code))

	lang, ok := s.catalog.ByCode(code)
	if !ok {
		return LanguageUsage{}, ErrNotFound
	}

	usage, err := s.translations.GetLanguageStats(ctx, code)
	if err != nil {
		return LanguageUsage{}, err
	}

	return LanguageUsage{
		Language:      lang,
		AsSource:      usage.AsSource,
		AsTarget:      usage.AsTarget,
		AvgConfidence: usage.AvgConfidence,
	}, nil
}

func (s *analyticsService) UserActivity(ctx context.Context, userID int64, days int) (UserActivity, error) {
	if userID == 0 {
		return UserActivity{}, ErrInvalid
	}
	if days <= 0 {
		days = 30
	}

	activity := UserActivity{
		TopPairs: []PairStat{},
		Activity: []DayStat{},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.translations.GetUserStats(ctx, userID)
		if err != nil {
			return err
		}
		activity.TotalTranslations = stats.TotalTranslations
		activity.FavoriteCount = stats.FavoriteCount
		activity.TotalCharacters = stats.TotalCharacters
		activity.TotalWords = stats.TotalWords
		activity.AvgConfidence = stats.AvgConfidence
		activity.AvgProcessingMs = stats.AvgProcessingMs
		return nil
	})
	g.Go(func() error {
		pairs, err := s.translations.TopPairsForUser(ctx, userID, topPairsLimit)
		if err != nil {
			return err
		}
		activity.TopPairs = pairStats(pairs)
		return nil
	})
	g.Go(func() error {
		byDay, err := s.translations.ActivityByDay(ctx, userID, days)
		if err != nil {
			return err
		}
		days := make([]DayStat, 0, len(byDay))
		for _, d := range byDay {
			days = append(days, DayStat{Day: d.Day, Count: d.Count})
		}
		activity.Activity = days
		return nil
	})

	if err := g.Wait(); err != nil {
		return UserActivity{}, err
	}
	return activity, nil
}

func pairStats(pairs []repository.PairCount) []PairStat {
	out := make([]PairStat, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, PairStat{
			SourceLanguage: p.SourceLanguageCode,
			TargetLanguage: p.TargetLanguageCode,
			Count:          p.Count,
		})
	}
	return out
}
