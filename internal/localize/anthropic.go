package localize

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// implements Rewriter using Anthropic Claude
type AnthropicRewriter struct {
	client  anthropic.Client
	model   anthropic.Model
	options Options
}

func NewAnthropicRewriter(
	ctx context.Context,
	apiKey string,
	opts Options,
) (*AnthropicRewriter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	model := anthropic.Model(opts.Model)
	if opts.Model == "" {
		model = anthropic.ModelClaudeHaiku4_5
	}

	return &AnthropicRewriter{
		client:  client,
		model:   model,
		options: opts,
	}, nil
}

func (r *AnthropicRewriter) Rewrite(
	ctx context.Context,
	items []Item,
) ([]Result, error) {
	if len(items) == 0 {
		return []Result{}, nil
	}

	prompt := BuildPrompt(r.options, items)

	message, err := r.client.Messages.New(
		ctx,
		anthropic.MessageNewParams{
			Model:     r.model,
			MaxTokens: 4096,
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(
					anthropic.NewTextBlock(prompt),
				),
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("localization failed: %w", err)
	}

	if message == nil || len(message.Content) == 0 {
		return nil, fmt.Errorf("empty response from Anthropic")
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText += block.Text
		}
	}

	if responseText == "" {
		return nil, fmt.Errorf("no text in Anthropic response")
	}

	return parseResponseText(responseText, len(items))
}
