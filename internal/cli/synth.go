package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soranowa/jimaku/internal/caption"
	"github.com/soranowa/jimaku/internal/config"
	"github.com/soranowa/jimaku/internal/video"
)

var synthCmd = &cobra.Command{
	Use:   "synth [script_file]",
	Short: "Synthesize timed captions from a narration script",
	Long: `Synthesize a caption file from the specified narration script.

The script is segmented into sentences, packed into cues under the layout
character budget and wrapped into display lines. Cue timings come from a
reading-speed model; pass --audio or --audio-duration to stretch the
timeline over a recorded narration instead.

Examples:
  jimaku synth script.txt
  jimaku synth script.txt --format ass -o captions.ass
  jimaku synth script.txt --audio narration.mp3
  jimaku synth script.txt -f vtt --max-chars 32 --max-lines 2`,
	Args: cobra.ExactArgs(1),
	RunE: runSynth,
}

func init() {
	rootCmd.AddCommand(synthCmd)

	synthCmd.Flags().
		StringP("format", "f", "srt", "Output caption format (srt, vtt, ass)")
	synthCmd.Flags().
		Int("max-chars", 0, "Maximum characters per display line")
	synthCmd.Flags().
		Int("max-lines", 0, "Maximum display lines per cue")
	synthCmd.Flags().
		Float64("reading-speed", 0, "Reading speed in characters per second")
	synthCmd.Flags().
		Float64("audio-duration", 0, "Narration length in seconds to stretch the timeline over")
	synthCmd.Flags().
		String("audio", "", "Narration media file to measure the timeline from")
}

func runSynth(cmd *cobra.Command, args []string) error {
	scriptPath := args[0]

	formatStr, _ := cmd.Flags().GetString("format")
	maxChars, _ := cmd.Flags().GetInt("max-chars")
	maxLines, _ := cmd.Flags().GetInt("max-lines")
	readingSpeed, _ := cmd.Flags().GetFloat64("reading-speed")
	audioDuration, _ := cmd.Flags().GetFloat64("audio-duration")
	audioPath, _ := cmd.Flags().GetString("audio")
	outputPath, _ := cmd.Flags().GetString("output")
	configPath, _ := cmd.Flags().GetString("config")

	format, err := caption.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	script, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("max-chars") {
		cfg.Layout.MaxCharsPerLine = maxChars
	}
	if cmd.Flags().Changed("max-lines") {
		cfg.Layout.MaxLines = maxLines
	}
	if cmd.Flags().Changed("reading-speed") {
		cfg.Timing.ReadingCharsPerSecond = readingSpeed
	}
	if cmd.Flags().Changed("audio-duration") {
		cfg.Timing.TargetDuration = audioDuration
	}

	if audioPath != "" {
		measured, err := video.Duration(audioPath)
		if err != nil {
			return fmt.Errorf("failed to measure narration: %w", err)
		}
		cfg.Timing.TargetDuration = measured
	}

	if outputPath == "" {
		baseName := strings.TrimSuffix(scriptPath, filepath.Ext(scriptPath))
		outputPath = baseName + caption.ExtensionForFormat(format)
	}

	logger.Infow("Starting caption synthesis",
		"input", scriptPath,
		"output", outputPath,
		"format", formatStr,
		"max_chars", cfg.Layout.MaxCharsPerLine,
		"max_lines", cfg.Layout.MaxLines,
	)

	synth, err := caption.NewSynthesizer(cfg)
	if err != nil {
		return err
	}

	cues, err := synth.Synthesize(string(script))
	if err != nil {
		return fmt.Errorf("synthesis failed: %w", err)
	}

	logger.Infow("Synthesis complete",
		"cues", len(cues),
		"duration", caption.TotalDuration(cues),
	)

	if err := caption.WriteFile(cues, format, cfg.Style, outputPath); err != nil {
		return fmt.Errorf("failed to write captions: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Captions synthesized successfully: %s\n", absOutput)
	fmt.Printf("  Cues: %d\n", len(cues))
	fmt.Printf("  Duration: %s\n", caption.FormatSRTTimestamp(caption.TotalDuration(cues)))

	return nil
}
