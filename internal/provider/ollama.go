package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"tribalbridge/backend/internal/logger"
	"tribalbridge/backend/internal/network"
)

// OllamaAdapter calls a locally hosted Ollama instance. It is the
// highest-priority backend because it is free and private.
type OllamaAdapter struct {
	baseURL string
	model   string
	clients *network.ClientFactory
}

// NewOllamaAdapter creates an Ollama adapter. baseURL may be empty, in
// which case the adapter reports itself as unconfigured.
func NewOllamaAdapter(baseURL, model string, clients *network.ClientFactory) *OllamaAdapter {
	return &OllamaAdapter{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		clients: clients,
	}
}

func (a *OllamaAdapter) Name() string { return AdapterOllama }

func (a *OllamaAdapter) Configured() bool { return a.baseURL != "" && a.model != "" }

type ollamaGenerateRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	NumPredict  int     `json:"num_predict"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func (a *OllamaAdapter) Translate(ctx context.Context, req Request) Attempt {
	if !a.Configured() {
		return Unavailable()
	}

	body, err := json.Marshal(ollamaGenerateRequest{
		Model:  a.model,
		Prompt: GetLocalModelPrompt(req.SourceName, req.TargetName, req.Text),
		Stream: false,
		Options: ollamaOptions{
			Temperature: 0.3,
			TopP:        0.9,
			NumPredict:  500,
		},
	})
	if err != nil {
		return Failed(fmt.Errorf("marshal request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return Failed(fmt.Errorf("create request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := a.clients.NewHTTPClient(ctx, defaultTimeout)
	resp, err := client.Do(httpReq)
	if err != nil {
		logger.Debug("ollama request failed", "module", "provider", "action", "translate", "resource", a.Name(), "result", "error", "error", err)
		return Failed(fmt.Errorf("call ollama: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Failed(fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(b))))
	}

	var generated ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&generated); err != nil {
		return Failed(fmt.Errorf("decode response: %w", err))
	}

	return finish(req.Text, generated.Response)
}
