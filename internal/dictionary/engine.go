// Package dictionary implements the embedded bilingual fallback
// translator: a whole-phrase lookup first, then word-by-word
// substitution, then a deterministic placeholder when nothing matches.
package dictionary

import (
	"fmt"
	"strings"
)

// trailingPunctuation is the set stripped from a token before lookup
// and reattached to the translated word.
const trailingPunctuation = ".,!?;:"

// Table maps source language code -> target language code ->
// lowercased phrase or word -> translation. Tables are loaded once and
// must never be mutated afterwards.
type Table map[string]map[string]map[string]string

// NameResolver resolves a language code to its display name.
// Implemented by catalog.Catalog.
type NameResolver interface {
	DisplayName(code string) string
}

// Engine is a pure function of (source, target, text) and the
// immutable table, so it is safe for unlimited concurrent use.
type Engine struct {
	table Table
	names NameResolver
}

func NewEngine(table Table, names NameResolver) *Engine {
	return &Engine{table: table, names: names}
}

// Translate renders text from the source into the target language.
// It never returns an empty string: fixed phrases win over word-level
// substitution, and a full miss produces a marked placeholder instead
// of silently echoing the input.
func (e *Engine) Translate(sourceCode, targetCode, text string) string {
	entries := e.entries(sourceCode, targetCode)
	normalized := strings.ToLower(strings.TrimSpace(text))

	// Whole-phrase match handles greetings and idioms that lose
	// meaning under word splitting.
	if phrase, ok := entries[normalized]; ok {
		return phrase
	}

	words := strings.Fields(normalized)
	translated := make([]string, len(words))
	changed := false

	for i, word := range words {
		core := strings.TrimRight(word, trailingPunctuation)
		suffix := word[len(core):]

		if mapped, ok := entries[core]; ok {
			translated[i] = mapped + suffix
			if mapped != core {
				changed = true
			}
			continue
		}
		translated[i] = word
	}

	if changed {
		return strings.Join(translated, " ")
	}

	return fmt.Sprintf("[%s rendering]: %s - (Cultural context preserved from %s)",
		e.names.DisplayName(targetCode), text, e.names.DisplayName(sourceCode))
}

// HasPair reports whether any entries exist for the language pair.
func (e *Engine) HasPair(sourceCode, targetCode string) bool {
	return len(e.entries(sourceCode, targetCode)) > 0
}

func (e *Engine) entries(sourceCode, targetCode string) map[string]string {
	targets, ok := e.table[sourceCode]
	if !ok {
		return nil
	}
	return targets[targetCode]
}
