package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"tribalbridge/backend/internal/model"
	"tribalbridge/backend/internal/snowflake"
)

// TranslationListFilter narrows history queries. UserID is required;
// everything else is optional.
type TranslationListFilter struct {
	UserID        int64
	LanguageCode  *string // matches source or target
	FavoritesOnly bool
	Limit         int
	Offset        int
}

// PairCount is one (source, target) language pair with its usage count.
type PairCount struct {
	SourceLanguageCode string
	TargetLanguageCode string
	Count              int
}

// DayActivity is the number of translations created on one day.
type DayActivity struct {
	Day   string // YYYY-MM-DD
	Count int
}

// UserStats aggregates one user's translation history.
type UserStats struct {
	TotalTranslations int
	FavoriteCount     int
	TotalCharacters   int64
	TotalWords        int64
	AvgConfidence     float64
	AvgProcessingMs   float64
}

// LanguageStats aggregates usage of one language across all users.
type LanguageStats struct {
	AsSource      int
	AsTarget      int
	AvgConfidence float64
}

type TranslationRepository interface {
	Create(ctx context.Context, t model.Translation) (model.Translation, error)
	GetByID(ctx context.Context, id int64) (model.Translation, error)
	List(ctx context.Context, filter TranslationListFilter) ([]model.Translation, error)
	Delete(ctx context.Context, id, userID int64) (bool, error)
	ToggleFavorite(ctx context.Context, id, userID int64) (model.Translation, error)

	CountAll(ctx context.Context) (int, error)
	AvgConfidence(ctx context.Context) (float64, error)
	TopPairs(ctx context.Context, limit int) ([]PairCount, error)
	GetLanguageStats(ctx context.Context, code string) (LanguageStats, error)
	GetUserStats(ctx context.Context, userID int64) (UserStats, error)
	TopPairsForUser(ctx context.Context, userID int64, limit int) ([]PairCount, error)
	ActivityByDay(ctx context.Context, userID int64, days int) ([]DayActivity, error)
}

type translationRepository struct {
	db dbtx
}

func NewTranslationRepository(db dbtx) TranslationRepository {
	return &translationRepository{db: db}
}

const translationColumns = `id, user_id, source_language_code, target_language_code, source_text, translated_text,
	translation_type, confidence_score, accuracy_score, efficiency_score, processing_time_ms,
	character_count, word_count, model_used, is_favorite, created_at`

func (r *translationRepository) Create(ctx context.Context, t model.Translation) (model.Translation, error) {
	t.ID = snowflake.NextID()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	var userID interface{}
	if t.UserID != 0 {
		userID = t.UserID
	}

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO translations (`+translationColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID,
		userID,
		t.SourceLanguageCode,
		t.TargetLanguageCode,
		t.SourceText,
		t.TranslatedText,
		string(t.TranslationType),
		t.ConfidenceScore,
		t.AccuracyScore,
		t.EfficiencyScore,
		t.ProcessingTimeMs,
		t.CharacterCount,
		t.WordCount,
		t.ModelUsed,
		boolToInt(t.IsFavorite),
		formatTime(t.CreatedAt),
	)
	if err != nil {
		return model.Translation{}, err
	}
	return t, nil
}

func (r *translationRepository) GetByID(ctx context.Context, id int64) (model.Translation, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT `+translationColumns+` FROM translations WHERE id = ?`,
		id,
	)
	return scanTranslation(row)
}

func (r *translationRepository) List(ctx context.Context, filter TranslationListFilter) ([]model.Translation, error) {
	query := `SELECT ` + translationColumns + ` FROM translations`

	conditions := []string{"user_id = ?"}
	args := []interface{}{filter.UserID}

	if filter.LanguageCode != nil {
		conditions = append(conditions, "(source_language_code = ? OR target_language_code = ?)")
		args = append(args, *filter.LanguageCode, *filter.LanguageCode)
	}
	if filter.FavoritesOnly {
		conditions = append(conditions, "is_favorite = 1")
	}

	query += " WHERE " + strings.Join(conditions, " AND ")
	query += " ORDER BY created_at DESC, id DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var translations []model.Translation
	for rows.Next() {
		t, err := scanTranslationRows(rows)
		if err != nil {
			return nil, err
		}
		translations = append(translations, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return translations, nil
}

func (r *translationRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	res, err := r.db.ExecContext(
		ctx,
		`DELETE FROM translations WHERE id = ? AND user_id = ?`,
		id,
		userID,
	)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *translationRepository) ToggleFavorite(ctx context.Context, id, userID int64) (model.Translation, error) {
	res, err := r.db.ExecContext(
		ctx,
		`UPDATE translations SET is_favorite = 1 - is_favorite WHERE id = ? AND user_id = ?`,
		id,
		userID,
	)
	if err != nil {
		return model.Translation{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return model.Translation{}, err
	}
	if affected == 0 {
		return model.Translation{}, sql.ErrNoRows
	}
	return r.GetByID(ctx, id)
}

func (r *translationRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM translations`).Scan(&count)
	return count, err
}

func (r *translationRepository) AvgConfidence(ctx context.Context) (float64, error) {
	var avg float64
	err := r.db.QueryRowContext(
		ctx,
		`SELECT COALESCE(AVG(confidence_score), 0) FROM translations`,
	).Scan(&avg)
	return avg, err
}

func (r *translationRepository) TopPairs(ctx context.Context, limit int) ([]PairCount, error) {
	return r.queryPairs(
		ctx,
		`SELECT source_language_code, target_language_code, COUNT(*) as count
		 FROM translations
		 GROUP BY source_language_code, target_language_code
		 ORDER BY count DESC, source_language_code, target_language_code
		 LIMIT ?`,
		limit,
	)
}

func (r *translationRepository) TopPairsForUser(ctx context.Context, userID int64, limit int) ([]PairCount, error) {
	return r.queryPairs(
		ctx,
		`SELECT source_language_code, target_language_code, COUNT(*) as count
		 FROM translations WHERE user_id = ?
		 GROUP BY source_language_code, target_language_code
		 ORDER BY count DESC, source_language_code, target_language_code
		 LIMIT ?`,
		userID,
		limit,
	)
}

func (r *translationRepository) queryPairs(ctx context.Context, query string, args ...interface{}) ([]PairCount, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairs []PairCount
	for rows.Next() {
		var p PairCount
		if err := rows.Scan(&p.SourceLanguageCode, &p.TargetLanguageCode, &p.Count); err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}

	return pairs, rows.Err()
}

func (r *translationRepository) GetLanguageStats(ctx context.Context, code string) (LanguageStats, error) {
	var s LanguageStats
	err := r.db.QueryRowContext(
		ctx,
		`SELECT
			COALESCE(SUM(CASE WHEN source_language_code = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN target_language_code = ? THEN 1 ELSE 0 END), 0),
			COALESCE(AVG(confidence_score), 0)
		 FROM translations
		 WHERE source_language_code = ? OR target_language_code = ?`,
		code, code, code, code,
	).Scan(&s.AsSource, &s.AsTarget, &s.AvgConfidence)
	return s, err
}

func (r *translationRepository) GetUserStats(ctx context.Context, userID int64) (UserStats, error) {
	var s UserStats
	err := r.db.QueryRowContext(
		ctx,
		`SELECT
			COUNT(*),
			COALESCE(SUM(is_favorite), 0),
			COALESCE(SUM(character_count), 0),
			COALESCE(SUM(word_count), 0),
			COALESCE(AVG(confidence_score), 0),
			COALESCE(AVG(processing_time_ms), 0)
		 FROM translations WHERE user_id = ?`,
		userID,
	).Scan(
		&s.TotalTranslations,
		&s.FavoriteCount,
		&s.TotalCharacters,
		&s.TotalWords,
		&s.AvgConfidence,
		&s.AvgProcessingMs,
	)
	return s, err
}

func (r *translationRepository) ActivityByDay(ctx context.Context, userID int64, days int) ([]DayActivity, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)

	rows, err := r.db.QueryContext(
		ctx,
		`SELECT substr(created_at, 1, 10) as day, COUNT(*) as count
		 FROM translations
		 WHERE user_id = ? AND created_at >= ?
		 GROUP BY day
		 ORDER BY day`,
		userID,
		formatTime(since),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activity []DayActivity
	for rows.Next() {
		var a DayActivity
		if err := rows.Scan(&a.Day, &a.Count); err != nil {
			return nil, err
		}
		activity = append(activity, a)
	}

	return activity, rows.Err()
}

func scanTranslation(row *sql.Row) (model.Translation, error) {
	var t model.Translation
	var userID sql.NullInt64
	var translationType, createdAt string
	var favoriteInt int

	err := row.Scan(
		&t.ID, &userID, &t.SourceLanguageCode, &t.TargetLanguageCode, &t.SourceText, &t.TranslatedText,
		&translationType, &t.ConfidenceScore, &t.AccuracyScore, &t.EfficiencyScore, &t.ProcessingTimeMs,
		&t.CharacterCount, &t.WordCount, &t.ModelUsed, &favoriteInt, &createdAt,
	)
	if err != nil {
		return model.Translation{}, err
	}

	if userID.Valid {
		t.UserID = userID.Int64
	}
	t.TranslationType = model.TranslationType(translationType)
	t.IsFavorite = favoriteInt == 1
	t.CreatedAt, _ = parseTime(createdAt)

	return t, nil
}

func scanTranslationRows(rows *sql.Rows) (model.Translation, error) {
	var t model.Translation
	var userID sql.NullInt64
	var translationType, createdAt string
	var favoriteInt int

	err := rows.Scan(
		&t.ID, &userID, &t.SourceLanguageCode, &t.TargetLanguageCode, &t.SourceText, &t.TranslatedText,
		&translationType, &t.ConfidenceScore, &t.AccuracyScore, &t.EfficiencyScore, &t.ProcessingTimeMs,
		&t.CharacterCount, &t.WordCount, &t.ModelUsed, &favoriteInt, &createdAt,
	)
	if err != nil {
		return model.Translation{}, err
	}

	if userID.Valid {
		t.UserID = userID.Int64
	}
	t.TranslationType = model.TranslationType(translationType)
	t.IsFavorite = favoriteInt == 1
	t.CreatedAt, _ = parseTime(createdAt)

	return t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
