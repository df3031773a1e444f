package localize

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// implements Rewriter using OpenAI Chat Completions
type OpenAIRewriter struct {
	client  openai.Client
	model   string
	options Options
}

func NewOpenAIRewriter(
	ctx context.Context,
	apiKey string,
	opts Options,
) (*OpenAIRewriter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	model := opts.Model
	if model == "" {
		model = "gpt-5-mini"
	}

	return &OpenAIRewriter{
		client:  client,
		model:   model,
		options: opts,
	}, nil
}

func (r *OpenAIRewriter) Rewrite(
	ctx context.Context,
	items []Item,
) ([]Result, error) {
	if len(items) == 0 {
		return []Result{}, nil
	}

	prompt := BuildPrompt(r.options, items)

	completion, err := r.client.Chat.Completions.New(
		ctx,
		openai.ChatCompletionNewParams{
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(prompt),
			},
			Model: r.model,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("localization failed: %w", err)
	}

	if completion == nil || len(completion.Choices) == 0 {
		return nil, fmt.Errorf("empty response from OpenAI")
	}

	responseText := completion.Choices[0].Message.Content
	if responseText == "" {
		return nil, fmt.Errorf("no text in OpenAI response")
	}

	return parseResponseText(responseText, len(items))
}
