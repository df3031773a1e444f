package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soranowa/jimaku/internal/localize"
)

var localizeCmd = &cobra.Command{
	Use:   "localize [script_file]",
	Short: "Localize a narration script into another language using AI",
	Long: `Localize a narration script into another language before synthesis.

Each non-empty line of the script is one localization item, indexed by
its line number; a line holding several sentences is rewritten as a
whole, and --batch-size counts lines per API request. The provider keeps
the text close to its original length so the synthesized cue timings
stay usable. The localized script is written next to the input and can
be fed straight into the synth command.

Examples:
  jimaku localize script.txt --to english
  jimaku localize script.txt --to spanish --from japanese --tone casual
  jimaku localize script.txt --to french --provider anthropic -o script.fr.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runLocalize,
}

func init() {
	rootCmd.AddCommand(localizeCmd)

	localizeCmd.Flags().
		StringP("to", "t", "", "Target language (required)")
	localizeCmd.Flags().
		String("from", "", "Source language of the script")
	localizeCmd.Flags().
		String("provider", "gemini", "Localization provider (gemini, openai, anthropic)")
	localizeCmd.Flags().
		StringP("api-key", "k", "", "API key (or set the provider's env var)")
	localizeCmd.Flags().
		String("model", "", "Model to use (provider-specific, uses sensible defaults)")
	localizeCmd.Flags().
		String("tone", "", "Register hint for the rewrite (e.g. casual, formal)")
	localizeCmd.Flags().
		Int("batch-size", localize.DefaultBatchSize, "Number of script lines per API request")
	localizeCmd.Flags().
		Int("concurrency", localize.DefaultConcurrency, "Number of parallel localization workers")

	_ = localizeCmd.MarkFlagRequired("to")
}

func apiKeyEnvVar(provider localize.Provider) string {
	switch provider {
	case localize.ProviderGemini:
		return "GEMINI_API_KEY"
	case localize.ProviderOpenAI:
		return "OPENAI_API_KEY"
	case localize.ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return "API_KEY"
	}
}

func runLocalize(cmd *cobra.Command, args []string) error {
	scriptPath := args[0]
	ctx := context.Background()

	targetLang, _ := cmd.Flags().GetString("to")
	sourceLang, _ := cmd.Flags().GetString("from")
	providerStr, _ := cmd.Flags().GetString("provider")
	apiKey, _ := cmd.Flags().GetString("api-key")
	model, _ := cmd.Flags().GetString("model")
	tone, _ := cmd.Flags().GetString("tone")
	batchSize, _ := cmd.Flags().GetInt("batch-size")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	outputPath, _ := cmd.Flags().GetString("output")

	provider := localize.Provider(providerStr)

	if apiKey == "" {
		apiKey = os.Getenv(apiKeyEnvVar(provider))
	}
	if apiKey == "" {
		return fmt.Errorf(
			"API key is required: use --api-key flag or set %s",
			apiKeyEnvVar(provider),
		)
	}

	script, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}

	lines := strings.Split(string(script), "\n")
	var items []localize.Item
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, localize.Item{Index: i, Text: line})
	}
	if len(items) == 0 {
		return fmt.Errorf("script is empty: %s", scriptPath)
	}

	if outputPath == "" {
		ext := filepath.Ext(scriptPath)
		outputPath = strings.TrimSuffix(scriptPath, ext) +
			"." + strings.ToLower(targetLang) + ext
	}

	logger.Infow("Starting script localization",
		"input", scriptPath,
		"output", outputPath,
		"provider", providerStr,
		"target_language", targetLang,
		"lines", len(items),
	)

	opts := localize.Options{
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
		Model:          model,
		Tone:           tone,
		BatchSize:      batchSize,
	}

	rewriter, err := localize.Factory(ctx, provider, apiKey, opts)
	if err != nil {
		return fmt.Errorf("failed to create rewriter: %w", err)
	}

	results, err := localize.RewriteAll(ctx, rewriter, items, batchSize, concurrency)
	if err != nil {
		return fmt.Errorf("localization failed: %w", err)
	}

	for _, r := range results {
		if r.Index < 0 || r.Index >= len(lines) {
			logger.Warnw("Skipping invalid result index",
				"index", r.Index,
			)
			continue
		}
		lines[r.Index] = r.Text
	}

	logger.Infow("Localization complete",
		"lines", len(results),
	)

	output := strings.Join(lines, "\n")
	if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write localized script: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Script localized successfully: %s\n", absOutput)
	fmt.Printf("  Lines: %d\n", len(results))

	return nil
}
