package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soranowa/jimaku/internal/video"
)

var burnCmd = &cobra.Command{
	Use:   "burn [video_file] [caption_file]",
	Short: "Burn a caption file into a video",
	Long: `Burn the specified caption file into a video as a hard subtitle track.

The video stream is re-encoded with the captions rendered into the
picture; the audio stream is copied untouched. Styled ASS captions keep
their fonts, colours and fades.

Examples:
  jimaku burn video.mp4 captions.ass
  jimaku burn video.mp4 captions.srt -o published.mp4
  jimaku burn video.mp4 captions.ass --crf 18 --preset slow`,
	Args: cobra.ExactArgs(2),
	RunE: runBurn,
}

func init() {
	rootCmd.AddCommand(burnCmd)

	burnCmd.Flags().
		Int("crf", 20, "x264 constant rate factor (lower means higher quality)")
	burnCmd.Flags().
		String("preset", "medium", "x264 encoding preset")
}

func runBurn(cmd *cobra.Command, args []string) error {
	videoPath := args[0]
	captionPath := args[1]
	ctx := context.Background()

	if !video.IsVideoFile(videoPath) {
		return fmt.Errorf(
			"unsupported file type: %s (expected a video file)",
			filepath.Ext(videoPath),
		)
	}
	if _, err := os.Stat(captionPath); os.IsNotExist(err) {
		return fmt.Errorf("caption file not found: %s", captionPath)
	}

	crf, _ := cmd.Flags().GetInt("crf")
	preset, _ := cmd.Flags().GetString("preset")
	outputPath, _ := cmd.Flags().GetString("output")

	if outputPath == "" {
		ext := filepath.Ext(videoPath)
		outputPath = strings.TrimSuffix(videoPath, ext) + ".captioned" + ext
	}

	opts := video.DefaultBurnOptions()
	opts.CRF = crf
	opts.Preset = preset

	logger.Infow("Burning captions into video",
		"video", videoPath,
		"captions", captionPath,
		"output", outputPath,
		"crf", crf,
		"preset", preset,
	)

	if err := video.Burn(ctx, videoPath, captionPath, outputPath, opts); err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Captions burned successfully: %s\n", absOutput)

	return nil
}
