package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/soranowa/jimaku/internal/logging"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "jimaku",
	Short: "Caption synthesis engine for narrated videos",
	Long: `Jimaku turns narration scripts into timed caption files.

It segments text into sentences, packs them into cues under a character
budget, wraps the display lines and assigns start/end times from a
reading-speed model. Cues can be rendered as SRT, WebVTT, or styled ASS,
burned into a video, or localized into another language.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringP("config", "c", "", "Path to a YAML configuration file")
}
