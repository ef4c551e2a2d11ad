package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"tribalbridge/backend/internal/logger"
	"tribalbridge/backend/internal/network"
)

const googleTranslateEndpoint = "https://translation.googleapis.com/language/translate/v2"

// GoogleTranslateAdapter calls the Google Cloud Translation v2 REST
// API. It is the last backend in the chain and only useful for major
// language pairs; most tribal codes are unknown to it and fail over to
// the dictionary.
type GoogleTranslateAdapter struct {
	apiKey   string
	endpoint string
	clients  *network.ClientFactory
}

// NewGoogleTranslateAdapter creates a Google Translate adapter. apiKey
// may be empty, in which case the adapter reports itself as
// unconfigured.
func NewGoogleTranslateAdapter(apiKey string, clients *network.ClientFactory) *GoogleTranslateAdapter {
	return &GoogleTranslateAdapter{
		apiKey:   apiKey,
		endpoint: googleTranslateEndpoint,
		clients:  clients,
	}
}

// NewGoogleTranslateAdapterForTest creates an adapter pointed at a test
// server. This is only for use in tests.
func NewGoogleTranslateAdapterForTest(apiKey, endpoint string, clients *network.ClientFactory) *GoogleTranslateAdapter {
	return &GoogleTranslateAdapter{apiKey: apiKey, endpoint: endpoint, clients: clients}
}

func (a *GoogleTranslateAdapter) Name() string { return AdapterGoogle }

func (a *GoogleTranslateAdapter) Configured() bool { return a.apiKey != "" }

type googleTranslateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

func (a *GoogleTranslateAdapter) Translate(ctx context.Context, req Request) Attempt {
	if !a.Configured() {
		return Unavailable()
	}

	payload, err := json.Marshal(map[string]any{
		"q":      req.Text,
		"source": req.SourceCode,
		"target": req.TargetCode,
		"format": "text",
	})
	if err != nil {
		return Failed(fmt.Errorf("marshal request: %w", err))
	}

	endpoint := a.endpoint + "?key=" + url.QueryEscape(a.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return Failed(fmt.Errorf("create request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := a.clients.NewHTTPClient(ctx, defaultTimeout)
	resp, err := client.Do(httpReq)
	if err != nil {
		logger.Debug("google translate request failed", "module", "provider", "action", "translate", "resource", a.Name(), "result", "error", "error", err)
		return Failed(fmt.Errorf("call google translate: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Failed(fmt.Errorf("google translate returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(b))))
	}

	var decoded googleTranslateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Failed(fmt.Errorf("decode response: %w", err))
	}
	if len(decoded.Data.Translations) == 0 {
		return Failed(errors.New("google translate returned no translations"))
	}

	return finish(req.Text, decoded.Data.Translations[0].TranslatedText)
}
