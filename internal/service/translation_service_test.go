package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tribalbridge/backend/internal/catalog"
	"tribalbridge/backend/internal/dictionary"
	"tribalbridge/backend/internal/model"
	"tribalbridge/backend/internal/provider"
	"tribalbridge/backend/internal/repository/mock"
	"tribalbridge/backend/internal/service"
)

// fakeAdapter is a scripted provider adapter for orchestrator tests.
type fakeAdapter struct {
	name       string
	configured bool
	attempt    provider.Attempt
	calls      int
}

func (f *fakeAdapter) Name() string     { return f.name }
func (f *fakeAdapter) Configured() bool { return f.configured }
func (f *fakeAdapter) Translate(ctx context.Context, req provider.Request) provider.Attempt {
	f.calls++
	return f.attempt
}

func newService(t *testing.T, repo *mock.MockTranslationRepository, adapters ...provider.Adapter) service.TranslationService {
	t.Helper()
	languages := catalog.New()
	engine := dictionary.NewEngine(dictionary.DefaultTable(), languages)
	return service.NewTranslationService(repo, languages, engine, adapters, provider.NewRateLimiter(1000))
}

func TestTranslationService_FirstConfiguredProviderWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := &fakeAdapter{name: "first", configured: true, attempt: provider.Translated("from first")}
	second := &fakeAdapter{name: "second", configured: true, attempt: provider.Translated("from second")}
	svc := newService(t, mock.NewMockTranslationRepository(ctrl), first, second)

	got, err := svc.Translate(context.Background(), service.TranslateParams{
		SourceLanguageCode: "en",
		TargetLanguageCode: "gon",
		Text:               "water",
	})
	require.NoError(t, err)
	require.Equal(t, "from first", got.TranslatedText)
	require.Equal(t, "first", got.ModelUsed)
	require.Equal(t, 1, first.calls)
	require.Zero(t, second.calls, "lower-priority adapter must not be called after a success")

	// Provider score tier
	require.Equal(t, 0.85, got.ConfidenceScore)
	require.Equal(t, 0.88, got.AccuracyScore)
	require.Equal(t, 1.2, got.EfficiencyScore)
}

func TestTranslationService_UnconfiguredSkippedWithoutAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	skipped := &fakeAdapter{name: "skipped", configured: false, attempt: provider.Translated("never")}
	used := &fakeAdapter{name: "used", configured: true, attempt: provider.Translated("ok")}
	svc := newService(t, mock.NewMockTranslationRepository(ctrl), skipped, used)

	got, err := svc.Translate(context.Background(), service.TranslateParams{
		SourceLanguageCode: "en",
		TargetLanguageCode: "gon",
		Text:               "water",
	})
	require.NoError(t, err)
	require.Equal(t, "ok", got.TranslatedText)
	require.Zero(t, skipped.calls)
}

func TestTranslationService_FallsBackToDictionaryWhenAllFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	failing := &fakeAdapter{name: "failing", configured: true, attempt: provider.Failed(errors.New("boom"))}
	svc := newService(t, mock.NewMockTranslationRepository(ctrl), failing)

	got, err := svc.Translate(context.Background(), service.TranslateParams{
		SourceLanguageCode: "en",
		TargetLanguageCode: "gon",
		Text:               "water",
	})
	require.NoError(t, err)
	require.Equal(t, "पानी", got.TranslatedText)
	require.Equal(t, "TribalBridge-AI-v2.1", got.ModelUsed)

	// Dictionary score tier
	require.Equal(t, 0.75, got.ConfidenceScore)
	require.Equal(t, 0.80, got.AccuracyScore)
	require.Equal(t, 1.5, got.EfficiencyScore)
}

func TestTranslationService_NoAdaptersUsesDictionary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(t, mock.NewMockTranslationRepository(ctrl))

	got, err := svc.Translate(context.Background(), service.TranslateParams{
		SourceLanguageCode: "en",
		TargetLanguageCode: "xx",
		Text:               "hello world",
	})
	require.NoError(t, err)
	require.Equal(t, "[XX rendering]: hello world - (Cultural context preserved from English)", got.TranslatedText)
}

func TestTranslationService_EmptyTextRejectedBeforeProviders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adapter := &fakeAdapter{name: "a", configured: true, attempt: provider.Translated("x")}
	svc := newService(t, mock.NewMockTranslationRepository(ctrl), adapter)

	_, err := svc.Translate(context.Background(), service.TranslateParams{
		SourceLanguageCode: "en",
		TargetLanguageCode: "gon",
		Text:               "   \t  ",
	})
	require.ErrorIs(t, err, service.ErrEmptyText)
	require.Zero(t, adapter.calls)
}

func TestTranslationService_MissingLanguageCodes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(t, mock.NewMockTranslationRepository(ctrl))

	_, err := svc.Translate(context.Background(), service.TranslateParams{TargetLanguageCode: "gon", Text: "hi"})
	require.ErrorIs(t, err, service.ErrInvalid)

	_, err = svc.Translate(context.Background(), service.TranslateParams{SourceLanguageCode: "en", Text: "hi"})
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestTranslationService_CountsUseTrimmedInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(t, mock.NewMockTranslationRepository(ctrl))

	got, err := svc.Translate(context.Background(), service.TranslateParams{
		SourceLanguageCode: "en",
		TargetLanguageCode: "gon",
		Text:               "  hello water  ",
	})
	require.NoError(t, err)
	require.Equal(t, "hello water", got.SourceText)
	require.Equal(t, 11, got.CharacterCount)
	require.Equal(t, 2, got.WordCount)
}

func TestTranslationService_PersistsForAuthenticatedUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockTranslationRepository(ctrl)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, tr model.Translation) (model.Translation, error) {
			require.Equal(t, int64(7), tr.UserID)
			tr.ID = 12345
			return tr, nil
		})

	svc := newService(t, repo)

	got, err := svc.Translate(context.Background(), service.TranslateParams{
		SourceLanguageCode: "en",
		TargetLanguageCode: "gon",
		Text:               "water",
		UserID:             7,
	})
	require.NoError(t, err)
	require.Equal(t, int64(12345), got.ID)
}

func TestTranslationService_AnonymousNotPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Create expectation: any call would fail the test.
	svc := newService(t, mock.NewMockTranslationRepository(ctrl))

	got, err := svc.Translate(context.Background(), service.TranslateParams{
		SourceLanguageCode: "en",
		TargetLanguageCode: "gon",
		Text:               "water",
	})
	require.NoError(t, err)
	require.Zero(t, got.ID)
}

func TestTranslationService_PersistFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockTranslationRepository(ctrl)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(model.Translation{}, errors.New("disk full"))

	svc := newService(t, repo)

	got, err := svc.Translate(context.Background(), service.TranslateParams{
		SourceLanguageCode: "en",
		TargetLanguageCode: "gon",
		Text:               "water",
		UserID:             7,
	})
	require.NoError(t, err, "a failed save must not fail the translation")
	require.Equal(t, "पानी", got.TranslatedText)
}

func TestTranslationService_InvalidTranslationType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(t, mock.NewMockTranslationRepository(ctrl))

	_, err := svc.Translate(context.Background(), service.TranslateParams{
		SourceLanguageCode: "en",
		TargetLanguageCode: "gon",
		Text:               "water",
		TranslationType:    "video",
	})
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestTranslationService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockTranslationRepository(ctrl)
	repo.EXPECT().Delete(gomock.Any(), int64(1), int64(7)).Return(true, nil)
	repo.EXPECT().Delete(gomock.Any(), int64(2), int64(7)).Return(false, nil)

	svc := newService(t, repo)

	require.NoError(t, svc.Delete(context.Background(), 1, 7))
	require.ErrorIs(t, svc.Delete(context.Background(), 2, 7), service.ErrNotFound)
}

func TestTranslationService_HistoryRequiresUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(t, mock.NewMockTranslationRepository(ctrl))

	_, err := svc.History(context.Background(), service.HistoryParams{})
	require.ErrorIs(t, err, service.ErrInvalid)
}
