package localize

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// single caption text to localize
type Item struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// localized caption text
type Result struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// interface for caption localization. Rewrite issues one API request for the
// given items; use RewriteAll for batching and concurrency.
type Rewriter interface {
	Rewrite(ctx context.Context, items []Item) ([]Result, error)
}

// localization service provider
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

const (
	DefaultBatchSize   = 50
	DefaultConcurrency = 3
)

type Options struct {
	SourceLanguage string
	TargetLanguage string
	Model          string
	Tone           string // optional register hint, e.g. "casual" or "formal"
	BatchSize      int    // items per API request (default 50)
}

// creates a Rewriter based on provider
func Factory(
	ctx context.Context,
	provider Provider,
	apiKey string,
	opts Options,
) (Rewriter, error) {
	if opts.TargetLanguage == "" {
		return nil, fmt.Errorf("target language is required")
	}

	switch provider {
	case ProviderGemini:
		return NewGeminiRewriter(ctx, apiKey, opts)
	case ProviderOpenAI:
		return NewOpenAIRewriter(ctx, apiKey, opts)
	case ProviderAnthropic:
		return NewAnthropicRewriter(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported localization provider: %s", provider)
	}
}

// BuildPrompt creates the localization prompt for LLM providers
func BuildPrompt(opts Options, items []Item) string {
	var sb strings.Builder

	if opts.SourceLanguage != "" {
		sb.WriteString(fmt.Sprintf(
			"Localize the following %s caption texts into %s.\n\n",
			opts.SourceLanguage,
			opts.TargetLanguage,
		))
	} else {
		sb.WriteString(fmt.Sprintf(
			"Localize the following caption texts into %s.\n\n",
			opts.TargetLanguage,
		))
	}

	sb.WriteString("IMPORTANT INSTRUCTIONS:\n")
	sb.WriteString(
		"1. These are on-screen captions: keep each text close to its original length so reading speed is preserved.\n",
	)
	sb.WriteString("2. Preserve line breaks (\\n) in the same positions.\n")
	sb.WriteString("3. Return ONLY a JSON array with the same structure.\n")
	sb.WriteString("4. Each object must have 'index' and 'text' fields.\n")
	sb.WriteString(
		"5. The 'index' values must match the input indices exactly.\n",
	)
	sb.WriteString("6. Do not add any explanation or markdown formatting.\n\n")

	if opts.Tone != "" {
		sb.WriteString(fmt.Sprintf("Use a %s tone.\n\n", opts.Tone))
	}

	sb.WriteString("Input JSON:\n")

	inputJSON, _ := json.MarshalIndent(items, "", "  ")
	sb.Write(inputJSON)

	sb.WriteString("\n\nOutput the localized JSON array only:")

	return sb.String()
}

// RewriteAll splits items into batches of batchSize, issues up to concurrency
// requests at a time and returns the merged results in index order. Any batch
// failure cancels the remaining requests.
func RewriteAll(
	ctx context.Context,
	rw Rewriter,
	items []Item,
	batchSize, concurrency int,
) ([]Result, error) {
	if len(items) == 0 {
		return []Result{}, nil
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var batches [][]Item
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		batches = append(batches, items[i:end])
	}

	if len(batches) == 1 {
		return rw.Rewrite(ctx, batches[0])
	}

	results := make([][]Result, len(batches))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, batch := range batches {
		g.Go(func() error {
			out, err := rw.Rewrite(ctx, batch)
			if err != nil {
				return fmt.Errorf("batch %d failed: %w", i, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Result
	for _, batch := range results {
		all = append(all, batch...)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Index < all[j].Index
	})

	return all, nil
}
