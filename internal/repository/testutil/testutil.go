// Package testutil provides shared helpers for repository and service
// tests backed by an in-memory database.
package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tribalbridge/backend/internal/db"
	"tribalbridge/backend/internal/model"
	"tribalbridge/backend/internal/snowflake"
)

// NewTestDB opens a fresh in-memory database with the full schema
// applied. The database is closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflake.Init(1)

	conn, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

// SeedUser inserts a user directly and returns its id.
func SeedUser(t *testing.T, conn *sql.DB, username string) int64 {
	t.Helper()

	id := snowflake.NextID()
	_, err := conn.ExecContext(
		context.Background(),
		`INSERT INTO users (id, username, email, password_hash, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		id,
		username,
		username+"@example.com",
		"x",
		time.Now().UTC().Format(time.RFC3339),
	)
	require.NoError(t, err)
	return id
}

// SeedTranslation inserts a translation directly and returns its id.
// Zero-valued fields get sensible defaults.
func SeedTranslation(t *testing.T, conn *sql.DB, tr model.Translation) int64 {
	t.Helper()

	id := snowflake.NextID()
	if tr.SourceLanguageCode == "" {
		tr.SourceLanguageCode = "en"
	}
	if tr.TargetLanguageCode == "" {
		tr.TargetLanguageCode = "gon"
	}
	if tr.TranslationType == "" {
		tr.TranslationType = model.TranslationTypeText
	}
	if tr.CreatedAt.IsZero() {
		tr.CreatedAt = time.Now().UTC()
	}

	var userID interface{}
	if tr.UserID != 0 {
		userID = tr.UserID
	}

	favorite := 0
	if tr.IsFavorite {
		favorite = 1
	}

	_, err := conn.ExecContext(
		context.Background(),
		`INSERT INTO translations (id, user_id, source_language_code, target_language_code, source_text, translated_text,
			translation_type, confidence_score, accuracy_score, efficiency_score, processing_time_ms,
			character_count, word_count, model_used, is_favorite, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		userID,
		tr.SourceLanguageCode,
		tr.TargetLanguageCode,
		tr.SourceText,
		tr.TranslatedText,
		string(tr.TranslationType),
		tr.ConfidenceScore,
		tr.AccuracyScore,
		tr.EfficiencyScore,
		tr.ProcessingTimeMs,
		tr.CharacterCount,
		tr.WordCount,
		tr.ModelUsed,
		favorite,
		tr.CreatedAt.UTC().Format(time.RFC3339),
	)
	require.NoError(t, err)
	return id
}
