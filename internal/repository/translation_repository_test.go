package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tribalbridge/backend/internal/model"
	"tribalbridge/backend/internal/repository"
	"tribalbridge/backend/internal/repository/testutil"
)

func TestTranslationRepository_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(db)
	ctx := context.Background()

	userID := testutil.SeedUser(t, db, "alice")

	created, err := repo.Create(ctx, model.Translation{
		UserID:             userID,
		SourceLanguageCode: "en",
		TargetLanguageCode: "gon",
		SourceText:         "water",
		TranslatedText:     "पानी",
		TranslationType:    model.TranslationTypeText,
		ConfidenceScore:    0.75,
		AccuracyScore:      0.80,
		EfficiencyScore:    1.5,
		ProcessingTimeMs:   3,
		CharacterCount:     5,
		WordCount:          1,
		ModelUsed:          "TribalBridge-AI-v2.1",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, userID, fetched.UserID)
	require.Equal(t, "पानी", fetched.TranslatedText)
	require.Equal(t, 0.75, fetched.ConfidenceScore)
	require.False(t, fetched.IsFavorite)
}

func TestTranslationRepository_List_NewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(db)
	ctx := context.Background()

	userID := testutil.SeedUser(t, db, "alice")
	now := time.Now().UTC()

	testutil.SeedTranslation(t, db, model.Translation{UserID: userID, SourceText: "old", CreatedAt: now.Add(-2 * time.Hour)})
	testutil.SeedTranslation(t, db, model.Translation{UserID: userID, SourceText: "new", CreatedAt: now})

	list, err := repo.List(ctx, repository.TranslationListFilter{UserID: userID})
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "new", list[0].SourceText)
	require.Equal(t, "old", list[1].SourceText)
}

func TestTranslationRepository_List_Filters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(db)
	ctx := context.Background()

	alice := testutil.SeedUser(t, db, "alice")
	bob := testutil.SeedUser(t, db, "bob")

	testutil.SeedTranslation(t, db, model.Translation{UserID: alice, TargetLanguageCode: "gon", IsFavorite: true})
	testutil.SeedTranslation(t, db, model.Translation{UserID: alice, TargetLanguageCode: "nv"})
	testutil.SeedTranslation(t, db, model.Translation{UserID: bob, TargetLanguageCode: "gon"})

	// Scoped to owner
	list, err := repo.List(ctx, repository.TranslationListFilter{UserID: alice})
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Favorites only
	list, err = repo.List(ctx, repository.TranslationListFilter{UserID: alice, FavoritesOnly: true})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.True(t, list[0].IsFavorite)

	// By language, matching source or target
	code := "nv"
	list, err = repo.List(ctx, repository.TranslationListFilter{UserID: alice, LanguageCode: &code})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "nv", list[0].TargetLanguageCode)

	// Limit
	list, err = repo.List(ctx, repository.TranslationListFilter{UserID: alice, Limit: 1})
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestTranslationRepository_Delete_ScopedToOwner(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(db)
	ctx := context.Background()

	alice := testutil.SeedUser(t, db, "alice")
	bob := testutil.SeedUser(t, db, "bob")
	id := testutil.SeedTranslation(t, db, model.Translation{UserID: alice})

	// Another user cannot delete it
	found, err := repo.Delete(ctx, id, bob)
	require.NoError(t, err)
	require.False(t, found)

	// Owner can
	found, err = repo.Delete(ctx, id, alice)
	require.NoError(t, err)
	require.True(t, found)

	list, err := repo.List(ctx, repository.TranslationListFilter{UserID: alice})
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestTranslationRepository_ToggleFavorite(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(db)
	ctx := context.Background()

	alice := testutil.SeedUser(t, db, "alice")
	bob := testutil.SeedUser(t, db, "bob")
	id := testutil.SeedTranslation(t, db, model.Translation{UserID: alice})

	toggled, err := repo.ToggleFavorite(ctx, id, alice)
	require.NoError(t, err)
	require.True(t, toggled.IsFavorite)

	toggled, err = repo.ToggleFavorite(ctx, id, alice)
	require.NoError(t, err)
	require.False(t, toggled.IsFavorite)

	// Another user cannot toggle it
	_, err = repo.ToggleFavorite(ctx, id, bob)
	require.Error(t, err)
}

func TestTranslationRepository_Aggregates(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(db)
	ctx := context.Background()

	alice := testutil.SeedUser(t, db, "alice")

	testutil.SeedTranslation(t, db, model.Translation{
		UserID: alice, SourceLanguageCode: "en", TargetLanguageCode: "gon",
		ConfidenceScore: 0.8, CharacterCount: 10, WordCount: 2, IsFavorite: true,
	})
	testutil.SeedTranslation(t, db, model.Translation{
		UserID: alice, SourceLanguageCode: "en", TargetLanguageCode: "gon",
		ConfidenceScore: 0.6, CharacterCount: 20, WordCount: 4,
	})
	testutil.SeedTranslation(t, db, model.Translation{
		UserID: alice, SourceLanguageCode: "gon", TargetLanguageCode: "en",
		ConfidenceScore: 1.0, CharacterCount: 5, WordCount: 1,
	})

	count, err := repo.CountAll(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, count)

	avg, err := repo.AvgConfidence(ctx)
	require.NoError(t, err)
	require.InDelta(t, 0.8, avg, 1e-9)

	pairs, err := repo.TopPairs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	require.Equal(t, repository.PairCount{SourceLanguageCode: "en", TargetLanguageCode: "gon", Count: 2}, pairs[0])

	langStats, err := repo.GetLanguageStats(ctx, "gon")
	require.NoError(t, err)
	require.Equal(t, 1, langStats.AsSource)
	require.Equal(t, 2, langStats.AsTarget)

	userStats, err := repo.GetUserStats(ctx, alice)
	require.NoError(t, err)
	require.Equal(t, 3, userStats.TotalTranslations)
	require.Equal(t, 1, userStats.FavoriteCount)
	require.Equal(t, int64(35), userStats.TotalCharacters)
	require.Equal(t, int64(7), userStats.TotalWords)
}

func TestTranslationRepository_AggregatesOnEmptyDB(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(db)
	ctx := context.Background()

	count, err := repo.CountAll(ctx)
	require.NoError(t, err)
	require.Zero(t, count)

	avg, err := repo.AvgConfidence(ctx)
	require.NoError(t, err)
	require.Zero(t, avg)

	pairs, err := repo.TopPairs(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, pairs)

	stats, err := repo.GetUserStats(ctx, 42)
	require.NoError(t, err)
	require.Zero(t, stats.TotalTranslations)
}

func TestTranslationRepository_ActivityByDay(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(db)
	ctx := context.Background()

	alice := testutil.SeedUser(t, db, "alice")
	now := time.Now().UTC()

	testutil.SeedTranslation(t, db, model.Translation{UserID: alice, CreatedAt: now})
	testutil.SeedTranslation(t, db, model.Translation{UserID: alice, CreatedAt: now})
	testutil.SeedTranslation(t, db, model.Translation{UserID: alice, CreatedAt: now.AddDate(0, 0, -60)})

	activity, err := repo.ActivityByDay(ctx, alice, 30)
	require.NoError(t, err)
	require.Len(t, activity, 1)
	require.Equal(t, now.Format("2006-01-02"), activity[0].Day)
	require.Equal(t, 2, activity[0].Count)
}

func TestTranslationRepository_CreateAnonymous(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.Translation{
		SourceLanguageCode: "en",
		TargetLanguageCode: "nv",
		SourceText:         "water",
		TranslatedText:     "Tó",
		TranslationType:    model.TranslationTypeText,
		ModelUsed:          "ollama",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Zero(t, got.UserID)
	require.Equal(t, "water", got.SourceText)
}

func TestTranslationRepository_AnonymousNotListed(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(db)
	ctx := context.Background()

	alice := testutil.SeedUser(t, db, "alice")
	testutil.SeedTranslation(t, db, model.Translation{UserID: 0, SourceText: "anon"})
	testutil.SeedTranslation(t, db, model.Translation{UserID: alice, SourceText: "mine"})

	list, err := repo.List(ctx, repository.TranslationListFilter{UserID: alice})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "mine", list[0].SourceText)
}
