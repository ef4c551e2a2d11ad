package provider_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tribalbridge/backend/internal/network"
	"tribalbridge/backend/internal/provider"
)

func ollamaServer(t *testing.T, response string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/generate", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, false, body["stream"])

		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{"response": response, "done": true})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testRequest(text string) provider.Request {
	return provider.Request{
		SourceCode: "en",
		TargetCode: "nv",
		SourceName: "English",
		TargetName: "Navajo",
		Text:       text,
	}
}

func TestOllamaAdapter_Success(t *testing.T) {
	srv := ollamaServer(t, "  Tó  ", http.StatusOK)
	adapter := provider.NewOllamaAdapter(srv.URL, "mistral", network.NewClientFactory(nil))

	attempt := adapter.Translate(context.Background(), testRequest("water"))
	require.Equal(t, provider.StatusTranslated, attempt.Status)
	require.Equal(t, "Tó", attempt.Text)
	require.NoError(t, attempt.Err)
}

func TestOllamaAdapter_EchoedInputFails(t *testing.T) {
	srv := ollamaServer(t, "water please", http.StatusOK)
	adapter := provider.NewOllamaAdapter(srv.URL, "mistral", network.NewClientFactory(nil))

	attempt := adapter.Translate(context.Background(), testRequest("water please"))
	require.Equal(t, provider.StatusFailed, attempt.Status)
	require.Error(t, attempt.Err)
}

func TestOllamaAdapter_ShortEchoAccepted(t *testing.T) {
	// Below four runes an identical output can be a legitimate
	// translation (shared short words), so it passes.
	srv := ollamaServer(t, "ok", http.StatusOK)
	adapter := provider.NewOllamaAdapter(srv.URL, "mistral", network.NewClientFactory(nil))

	attempt := adapter.Translate(context.Background(), testRequest("ok"))
	require.Equal(t, provider.StatusTranslated, attempt.Status)
}

func TestOllamaAdapter_EmptyResponseFails(t *testing.T) {
	srv := ollamaServer(t, "   ", http.StatusOK)
	adapter := provider.NewOllamaAdapter(srv.URL, "mistral", network.NewClientFactory(nil))

	attempt := adapter.Translate(context.Background(), testRequest("water"))
	require.Equal(t, provider.StatusFailed, attempt.Status)
}

func TestOllamaAdapter_ServerErrorFails(t *testing.T) {
	srv := ollamaServer(t, "", http.StatusInternalServerError)
	adapter := provider.NewOllamaAdapter(srv.URL, "mistral", network.NewClientFactory(nil))

	attempt := adapter.Translate(context.Background(), testRequest("water"))
	require.Equal(t, provider.StatusFailed, attempt.Status)
}

func TestOllamaAdapter_Unconfigured(t *testing.T) {
	adapter := provider.NewOllamaAdapter("", "mistral", network.NewClientFactory(nil))

	require.False(t, adapter.Configured())
	attempt := adapter.Translate(context.Background(), testRequest("water"))
	require.Equal(t, provider.StatusUnavailable, attempt.Status)
}

func TestGoogleTranslateAdapter_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "test-key", r.URL.Query().Get("key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "water", body["q"])
		require.Equal(t, "en", body["source"])
		require.Equal(t, "nv", body["target"])

		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"translations": []map[string]any{{"translatedText": "Tó"}},
			},
		})
	}))
	t.Cleanup(srv.Close)

	adapter := provider.NewGoogleTranslateAdapterForTest("test-key", srv.URL, network.NewClientFactory(nil))

	attempt := adapter.Translate(context.Background(), testRequest("water"))
	require.Equal(t, provider.StatusTranslated, attempt.Status)
	require.Equal(t, "Tó", attempt.Text)
}

func TestGoogleTranslateAdapter_NoTranslationsFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"translations": []any{}}})
	}))
	t.Cleanup(srv.Close)

	adapter := provider.NewGoogleTranslateAdapterForTest("test-key", srv.URL, network.NewClientFactory(nil))

	attempt := adapter.Translate(context.Background(), testRequest("water"))
	require.Equal(t, provider.StatusFailed, attempt.Status)
}

func TestGoogleTranslateAdapter_Unconfigured(t *testing.T) {
	adapter := provider.NewGoogleTranslateAdapter("", network.NewClientFactory(nil))

	require.False(t, adapter.Configured())
	attempt := adapter.Translate(context.Background(), testRequest("water"))
	require.Equal(t, provider.StatusUnavailable, attempt.Status)
}

func TestSDKAdapters_UnconfiguredWithoutKey(t *testing.T) {
	openai := provider.NewOpenAIAdapter("", "gpt-4o-mini")
	require.False(t, openai.Configured())
	require.Equal(t, provider.StatusUnavailable, openai.Translate(context.Background(), testRequest("hi")).Status)

	anthropic := provider.NewAnthropicAdapter("", "claude-3-5-haiku-latest")
	require.False(t, anthropic.Configured())
	require.Equal(t, provider.StatusUnavailable, anthropic.Translate(context.Background(), testRequest("hi")).Status)
}

func TestRateLimiter_Wait(t *testing.T) {
	limiter := provider.NewRateLimiter(1000)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, limiter.Wait(ctx))
}

func TestRateLimiter_CancelledContext(t *testing.T) {
	limiter := provider.NewRateLimiter(1)
	// Drain the initial burst.
	require.NoError(t, limiter.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, limiter.Wait(ctx))
}

func TestRateLimiter_SetLimit(t *testing.T) {
	limiter := provider.NewRateLimiter(0)
	require.Equal(t, provider.DefaultRateLimit, limiter.GetLimit())

	limiter.SetLimit(25)
	require.Equal(t, 25, limiter.GetLimit())
}
