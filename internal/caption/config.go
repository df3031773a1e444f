package caption

import (
	"fmt"
	"regexp"
)

// reading-speed model for cue durations
type TimingConfig struct {
	ReadingCharsPerSecond float64 `yaml:"reading_chars_per_second"`
	MinCueDuration        float64 `yaml:"min_cue_duration"` // seconds
	MaxCueDuration        float64 `yaml:"max_cue_duration"` // seconds

	// Measured narration length in seconds. When positive, the assigned
	// timeline is rescaled so the last cue ends here instead of at the
	// estimated total.
	TargetDuration float64 `yaml:"target_duration"`
}

// what happens to text past the line budget of a single cue
type OverflowMode string

const (
	// continue the overflow in follow-up cues
	OverflowSplit OverflowMode = "split"
	// drop the overflow, matching the legacy pipeline output
	OverflowTruncate OverflowMode = "truncate"
)

// line budgets for wrapped cue text
type LayoutConfig struct {
	MaxCharsPerLine int          `yaml:"max_chars_per_line"`
	MaxLines        int          `yaml:"max_lines"`
	Overflow        OverflowMode `yaml:"overflow"`
}

// emphasis markup settings, consumed only by the styled renderer
type HighlightConfig struct {
	Enabled bool   `yaml:"enabled"`
	Pattern string `yaml:"pattern"` // empty selects the built-in pattern
	Colour  string `yaml:"colour"`
}

// styled-format header fields and per-cue directives
type StyleConfig struct {
	FontName        string          `yaml:"font_name"`
	FontSize        int             `yaml:"font_size"`
	PrimaryColour   string          `yaml:"primary_colour"`
	SecondaryColour string          `yaml:"secondary_colour"`
	OutlineColour   string          `yaml:"outline_colour"`
	BackColour      string          `yaml:"back_colour"`
	Outline         float64         `yaml:"outline"`
	Shadow          float64         `yaml:"shadow"`
	Bold            bool            `yaml:"bold"`
	Alignment       int             `yaml:"alignment"`
	MarginLeft      float64         `yaml:"margin_left"`
	MarginRight     float64         `yaml:"margin_right"`
	MarginVertical  float64         `yaml:"margin_vertical"`
	FadeIn          float64         `yaml:"fade_in"`  // seconds
	FadeOut         float64         `yaml:"fade_out"` // seconds
	Highlight       HighlightConfig `yaml:"highlight"`
}

// full engine configuration
type Config struct {
	Timing TimingConfig `yaml:"timing"`
	Layout LayoutConfig `yaml:"layout"`
	Style  StyleConfig  `yaml:"style"`
}

// DefaultConfig returns the baseline configuration. Partial configurations
// (files, flags) are merged over this record before the engine runs, so no
// default literal lives inside the algorithms themselves.
func DefaultConfig() Config {
	return Config{
		Timing: TimingConfig{
			ReadingCharsPerSecond: 5.8,
			MinCueDuration:        1,
			MaxCueDuration:        7,
		},
		Layout: LayoutConfig{
			MaxCharsPerLine: 42, // Standard subtitle line length
			MaxLines:        2,  // Most players support 2 lines
			Overflow:        OverflowSplit,
		},
		Style: StyleConfig{
			FontName:        "Arial",
			FontSize:        20,
			PrimaryColour:   "&H00FFFFFF",
			SecondaryColour: "&H000000FF",
			OutlineColour:   "&H00000000",
			BackColour:      "&H00000000",
			Outline:         2,
			Shadow:          1,
			Alignment:       2,
			MarginLeft:      10,
			MarginRight:     10,
			MarginVertical:  10,
			FadeIn:          0.2,
			FadeOut:         0.2,
			Highlight: HighlightConfig{
				Colour: "&H0000FFFF",
			},
		},
	}
}

// Validate checks the configuration before any cue is produced. All failures
// wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Timing.ReadingCharsPerSecond <= 0 {
		return fmt.Errorf(
			"%w: reading speed must be positive, got %g",
			ErrInvalidConfig,
			c.Timing.ReadingCharsPerSecond,
		)
	}
	if c.Timing.MinCueDuration <= 0 {
		return fmt.Errorf(
			"%w: min cue duration must be positive, got %g",
			ErrInvalidConfig,
			c.Timing.MinCueDuration,
		)
	}
	if c.Timing.MinCueDuration > c.Timing.MaxCueDuration {
		return fmt.Errorf(
			"%w: min cue duration %g exceeds max %g",
			ErrInvalidConfig,
			c.Timing.MinCueDuration,
			c.Timing.MaxCueDuration,
		)
	}
	if c.Timing.TargetDuration < 0 {
		return fmt.Errorf(
			"%w: target duration must not be negative, got %g",
			ErrInvalidConfig,
			c.Timing.TargetDuration,
		)
	}
	if c.Layout.MaxCharsPerLine < 1 {
		return fmt.Errorf(
			"%w: max chars per line must be at least 1, got %d",
			ErrInvalidConfig,
			c.Layout.MaxCharsPerLine,
		)
	}
	if c.Layout.MaxLines < 1 {
		return fmt.Errorf(
			"%w: max lines must be at least 1, got %d",
			ErrInvalidConfig,
			c.Layout.MaxLines,
		)
	}
	switch c.Layout.Overflow {
	case OverflowSplit, OverflowTruncate:
	default:
		return fmt.Errorf(
			"%w: unknown overflow mode %q",
			ErrInvalidConfig,
			c.Layout.Overflow,
		)
	}
	if err := c.Style.validate(); err != nil {
		return err
	}
	return nil
}

func (s StyleConfig) validate() error {
	numeric := []struct {
		name  string
		value float64
	}{
		{"font_size", float64(s.FontSize)},
		{"outline", s.Outline},
		{"shadow", s.Shadow},
		{"alignment", float64(s.Alignment)},
		{"margin_left", s.MarginLeft},
		{"margin_right", s.MarginRight},
		{"margin_vertical", s.MarginVertical},
		{"fade_in", s.FadeIn},
		{"fade_out", s.FadeOut},
	}
	for _, f := range numeric {
		if f.value < 0 {
			return fmt.Errorf(
				"%w: style %s must not be negative, got %g",
				ErrInvalidConfig,
				f.name,
				f.value,
			)
		}
	}
	if s.Highlight.Enabled && s.Highlight.Pattern != "" {
		if _, err := regexp.Compile(s.Highlight.Pattern); err != nil {
			return fmt.Errorf(
				"%w: malformed highlight pattern: %v",
				ErrInvalidConfig,
				err,
			)
		}
	}
	return nil
}
