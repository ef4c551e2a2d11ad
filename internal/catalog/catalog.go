// Package catalog holds the static language reference data. The catalog
// is built once at startup and never mutated afterwards, so it is safe
// for unlimited concurrent readers.
package catalog

import (
	"strings"

	"tribalbridge/backend/internal/model"
)

const searchLimit = 20

type Catalog struct {
	languages []model.Language
	byCode    map[string]model.Language
}

// New builds a catalog from the embedded language data.
func New() *Catalog {
	return fromLanguages(append(append([]model.Language{}, majorLanguages...), tribalLanguages...))
}

func fromLanguages(languages []model.Language) *Catalog {
	byCode := make(map[string]model.Language, len(languages))
	for _, lang := range languages {
		byCode[lang.Code] = lang
	}
	return &Catalog{languages: languages, byCode: byCode}
}

// ByCode returns the language for the given code.
func (c *Catalog) ByCode(code string) (model.Language, bool) {
	lang, ok := c.byCode[code]
	return lang, ok
}

// DisplayName returns the English display name for a language code.
// Unknown codes fall back to the uppercased code so callers never fail
// on an unregistered language.
func (c *Catalog) DisplayName(code string) string {
	if lang, ok := c.byCode[code]; ok {
		return lang.Name
	}
	return strings.ToUpper(code)
}

// All returns every catalog entry.
func (c *Catalog) All() []model.Language {
	return c.languages
}

// Tribal returns only the tribal/indigenous entries.
func (c *Catalog) Tribal() []model.Language {
	var out []model.Language
	for _, lang := range c.languages {
		if lang.Tribal {
			out = append(out, lang)
		}
	}
	return out
}

// ByRegion returns the entries whose region matches (case-insensitive).
func (c *Catalog) ByRegion(region string) []model.Language {
	var out []model.Language
	for _, lang := range c.languages {
		if strings.EqualFold(lang.Region, region) {
			out = append(out, lang)
		}
	}
	return out
}

// Search matches the query against name and native name,
// case-insensitively, returning at most 20 entries.
func (c *Catalog) Search(query string) []model.Language {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var out []model.Language
	for _, lang := range c.languages {
		if strings.Contains(strings.ToLower(lang.Name), query) ||
			strings.Contains(strings.ToLower(lang.NativeName), query) {
			out = append(out, lang)
			if len(out) == searchLimit {
				break
			}
		}
	}
	return out
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.languages)
}
