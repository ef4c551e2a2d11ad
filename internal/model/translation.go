package model

import "time"

// TranslationType classifies how the source text entered the system.
type TranslationType string

const (
	TranslationTypeText     TranslationType = "text"
	TranslationTypeAudio    TranslationType = "audio"
	TranslationTypeDocument TranslationType = "document"
)

// Valid reports whether t is one of the known translation types.
func (t TranslationType) Valid() bool {
	return t == TranslationTypeText || t == TranslationTypeAudio || t == TranslationTypeDocument
}

// Translation is a persisted, user-scoped record of one completed
// translation. Records are append-only; after creation only the
// favorite flag changes, and only through owner-scoped updates.
type Translation struct {
	ID                 int64
	UserID             int64
	SourceLanguageCode string
	TargetLanguageCode string
	SourceText         string
	TranslatedText     string
	TranslationType    TranslationType
	ConfidenceScore    float64
	AccuracyScore      float64
	EfficiencyScore    float64
	ProcessingTimeMs   int64
	CharacterCount     int
	WordCount          int
	ModelUsed          string
	IsFavorite         bool
	CreatedAt          time.Time
}
