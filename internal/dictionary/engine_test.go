package dictionary_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tribalbridge/backend/internal/catalog"
	"tribalbridge/backend/internal/dictionary"
)

func newEngine(t *testing.T) *dictionary.Engine {
	t.Helper()
	return dictionary.NewEngine(dictionary.DefaultTable(), catalog.New())
}

func TestEngine_PhraseBeatsWordSubstitution(t *testing.T) {
	e := newEngine(t)

	// "good morning" exists as a phrase; word-by-word would produce a
	// different (wrong) rendering.
	got := e.Translate("en", "gon", "Good Morning")
	require.Equal(t, "सुप्रभात", got)
}

func TestEngine_PhraseLookupIsCaseAndSpaceInsensitive(t *testing.T) {
	e := newEngine(t)

	require.Equal(t, e.Translate("en", "gon", "good morning"), e.Translate("en", "gon", "  GOOD MORNING  "))
}

func TestEngine_WordByWordKeepsUnknownWords(t *testing.T) {
	e := newEngine(t)

	got := e.Translate("en", "gon", "water zzz")
	require.Equal(t, "पानी zzz", got)
}

func TestEngine_TrailingPunctuationPreserved(t *testing.T) {
	e := newEngine(t)

	require.Equal(t, "पानी!", e.Translate("en", "gon", "water!"))
	require.Equal(t, "हाँ, पानी.", e.Translate("en", "gon", "Yes, water."))
}

func TestEngine_HelloHowAreYou(t *testing.T) {
	e := newEngine(t)

	// "hello," strips the comma before lookup; "how are you?" does not
	// match word-wise but "you" does.
	got := e.Translate("en", "gon", "Hello, how are you?")
	require.Equal(t, "नमस्कार, कैसे are तुम?", got)
}

func TestEngine_PlaceholderOnFullMiss(t *testing.T) {
	e := newEngine(t)

	got := e.Translate("en", "nv", "quantum entanglement")
	require.Equal(t, "[Navajo rendering]: quantum entanglement - (Cultural context preserved from English)", got)
}

func TestEngine_PlaceholderUsesUppercasedUnknownCode(t *testing.T) {
	e := newEngine(t)

	got := e.Translate("en", "xx", "hello world")
	require.Equal(t, "[XX rendering]: hello world - (Cultural context preserved from English)", got)
}

func TestEngine_PlaceholderKeepsOriginalCasing(t *testing.T) {
	e := newEngine(t)

	// The placeholder embeds the input as typed, not the normalized
	// lowercase form.
	got := e.Translate("en", "xx", "Hello World")
	require.Contains(t, got, "Hello World")
}

func TestEngine_ReverseDirection(t *testing.T) {
	e := newEngine(t)

	require.Equal(t, "hello", e.Translate("gon", "en", "नमस्कार"))
	require.Equal(t, "water", e.Translate("nv", "en", "Tó"))
}

func TestEngine_Deterministic(t *testing.T) {
	e := newEngine(t)

	first := e.Translate("en", "sat", "thank you my friend")
	for i := 0; i < 10; i++ {
		require.Equal(t, first, e.Translate("en", "sat", "thank you my friend"))
	}
}

func TestEngine_HasPair(t *testing.T) {
	e := newEngine(t)

	require.True(t, e.HasPair("en", "gon"))
	require.True(t, e.HasPair("chr", "en"))
	require.False(t, e.HasPair("en", "xx"))
	require.False(t, e.HasPair("gon", "sat"))
}
