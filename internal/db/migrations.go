package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  email TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS translations (
  id INTEGER PRIMARY KEY,
  user_id INTEGER, -- NULL when the record has no owner
  source_language_code TEXT NOT NULL,
  target_language_code TEXT NOT NULL,
  source_text TEXT NOT NULL,
  translated_text TEXT NOT NULL,
  translation_type TEXT NOT NULL DEFAULT 'text',
  confidence_score REAL NOT NULL,
  accuracy_score REAL NOT NULL,
  efficiency_score REAL NOT NULL,
  processing_time_ms INTEGER NOT NULL,
  character_count INTEGER NOT NULL,
  word_count INTEGER NOT NULL,
  created_at TEXT NOT NULL,
  FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_translations_user_id ON translations(user_id);
CREATE INDEX IF NOT EXISTS idx_translations_created_at ON translations(created_at);
CREATE INDEX IF NOT EXISTS idx_translations_source_lang ON translations(source_language_code);
CREATE INDEX IF NOT EXISTS idx_translations_target_lang ON translations(target_language_code);

CREATE TABLE IF NOT EXISTS settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: Add is_favorite column to translations if not exists
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM pragma_table_info('translations') WHERE name = 'is_favorite'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("check is_favorite column: %w", err)
	}

	if count == 0 {
		if _, err := db.Exec(`ALTER TABLE translations ADD COLUMN is_favorite INTEGER NOT NULL DEFAULT 0`); err != nil {
			return fmt.Errorf("add is_favorite column: %w", err)
		}
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_translations_favorite ON translations(user_id, is_favorite)`); err != nil {
		return fmt.Errorf("create idx_translations_favorite: %w", err)
	}

	// Migration 2: Add model_used column so records carry the engine that produced them
	err = db.QueryRow(`
		SELECT COUNT(*) FROM pragma_table_info('translations') WHERE name = 'model_used'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("check model_used column: %w", err)
	}

	if count == 0 {
		if _, err := db.Exec(`ALTER TABLE translations ADD COLUMN model_used TEXT NOT NULL DEFAULT ''`); err != nil {
			return fmt.Errorf("add model_used column: %w", err)
		}
	}

	// Migration 3: Composite index for per-user history ordered by recency
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_translations_user_created ON translations(user_id, created_at DESC)`); err != nil {
		return fmt.Errorf("create idx_translations_user_created: %w", err)
	}

	return nil
}
