package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"tribalbridge/backend/internal/logger"
)

// AnthropicAdapter calls the Anthropic messages API.
type AnthropicAdapter struct {
	apiKey string
	model  string
	client anthropic.Client
}

// NewAnthropicAdapter creates an Anthropic adapter. apiKey may be
// empty, in which case the adapter reports itself as unconfigured.
func NewAnthropicAdapter(apiKey, model string) *AnthropicAdapter {
	return &AnthropicAdapter{
		apiKey: apiKey,
		model:  model,
		client: anthropic.NewClient(
			option.WithAPIKey(apiKey),
			option.WithRequestTimeout(defaultTimeout),
			option.WithMaxRetries(0), // fallback chain handles failures
		),
	}
}

func (a *AnthropicAdapter) Name() string { return AdapterAnthropic }

func (a *AnthropicAdapter) Configured() bool { return a.apiKey != "" }

func (a *AnthropicAdapter) Translate(ctx context.Context, req Request) Attempt {
	if !a.Configured() {
		return Unavailable()
	}

	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: 500,
		System: []anthropic.TextBlockParam{
			{Text: GetTranslateSystemPrompt(req.SourceName, req.TargetName)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Text)),
		},
		Temperature: anthropic.Float(0.3),
	})
	if err != nil {
		logger.Debug("anthropic request failed", "module", "provider", "action", "translate", "resource", a.Name(), "result", "error", "error", err)
		return Failed(fmt.Errorf("call anthropic: %w", err))
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	return finish(req.Text, sb.String())
}
