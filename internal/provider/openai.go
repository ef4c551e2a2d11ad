package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"tribalbridge/backend/internal/logger"
)

// OpenAIAdapter calls the OpenAI chat completions API.
type OpenAIAdapter struct {
	apiKey string
	model  string
	client openai.Client
}

// NewOpenAIAdapter creates an OpenAI adapter. apiKey may be empty, in
// which case the adapter reports itself as unconfigured.
func NewOpenAIAdapter(apiKey, model string) *OpenAIAdapter {
	return &OpenAIAdapter{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithRequestTimeout(defaultTimeout),
			option.WithMaxRetries(0), // fallback chain handles failures
		),
	}
}

func (a *OpenAIAdapter) Name() string { return AdapterOpenAI }

func (a *OpenAIAdapter) Configured() bool { return a.apiKey != "" }

func (a *OpenAIAdapter) Translate(ctx context.Context, req Request) Attempt {
	if !a.Configured() {
		return Unavailable()
	}

	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(a.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(GetTranslateSystemPrompt(req.SourceName, req.TargetName)),
			openai.UserMessage(req.Text),
		},
		Temperature: openai.Float(0.3),
		MaxTokens:   openai.Int(500),
	})
	if err != nil {
		logger.Debug("openai request failed", "module", "provider", "action", "translate", "resource", a.Name(), "result", "error", "error", err)
		return Failed(fmt.Errorf("call openai: %w", err))
	}

	if len(resp.Choices) == 0 {
		return Failed(errors.New("openai returned no choices"))
	}

	return finish(req.Text, resp.Choices[0].Message.Content)
}
