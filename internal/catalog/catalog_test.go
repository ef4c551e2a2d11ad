package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tribalbridge/backend/internal/catalog"
)

func TestCatalog_ByCode(t *testing.T) {
	c := catalog.New()

	lang, ok := c.ByCode("nv")
	require.True(t, ok)
	require.Equal(t, "Navajo", lang.Name)
	require.True(t, lang.Tribal)

	_, ok = c.ByCode("xx")
	require.False(t, ok)
}

func TestCatalog_DisplayNameFallsBackToUppercasedCode(t *testing.T) {
	c := catalog.New()

	require.Equal(t, "English", c.DisplayName("en"))
	require.Equal(t, "XX", c.DisplayName("xx"))
}

func TestCatalog_TribalSubset(t *testing.T) {
	c := catalog.New()

	tribal := c.Tribal()
	require.NotEmpty(t, tribal)
	require.Less(t, len(tribal), c.Len())
	for _, lang := range tribal {
		require.True(t, lang.Tribal, "language %s should be tribal", lang.Code)
	}
}

func TestCatalog_ByRegionIsCaseInsensitive(t *testing.T) {
	c := catalog.New()

	upper := c.ByRegion("SOUTHWEST US")
	lower := c.ByRegion("southwest us")
	require.NotEmpty(t, upper)
	require.Equal(t, upper, lower)
}

func TestCatalog_Search(t *testing.T) {
	c := catalog.New()

	results := c.Search("navajo")
	require.Len(t, results, 1)
	require.Equal(t, "nv", results[0].Code)

	// Matches native names too.
	results = c.Search("Diné")
	require.NotEmpty(t, results)

	require.Empty(t, c.Search(""))
	require.Empty(t, c.Search("nosuchlanguage"))
}

func TestCatalog_SearchLimit(t *testing.T) {
	c := catalog.New()

	// "a" matches nearly everything; results are capped.
	require.LessOrEqual(t, len(c.Search("a")), 20)
}
