package caption

import "errors"

// represents one timed caption unit
type Cue struct {
	Index int     // 1-based ordinal, sequential, no gaps
	Start float64 // seconds from the start of the narration
	End   float64
	Text  string // wrapped display text, lines joined by "\n"
}

// represents supported caption container formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
	FormatASS Format = "ass"
)

// interface for rendering a finished cue list into one container format.
// Renderers are stateless with respect to the cue list and never mutate it.
type Renderer interface {
	Render(cues []Cue) (string, error)
}

var (
	// input text is empty or whitespace-only
	ErrEmptyInput = errors.New("caption: input text is empty")

	// configuration failed validation
	ErrInvalidConfig = errors.New("caption: invalid configuration")
)

// TotalDuration returns the end time of the last cue in seconds.
func TotalDuration(cues []Cue) float64 {
	if len(cues) == 0 {
		return 0
	}
	return cues[len(cues)-1].End
}
