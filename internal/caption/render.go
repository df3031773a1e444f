package caption

import (
	"fmt"
	"strings"
)

// NewRenderer returns the renderer for a format. The style block is only
// consumed by the ASS renderer; the plain formats ignore it.
func NewRenderer(format Format, style StyleConfig) (Renderer, error) {
	switch format {
	case FormatSRT:
		return &SRTRenderer{}, nil
	case FormatVTT:
		return &VTTRenderer{}, nil
	case FormatASS:
		return NewASSRenderer(style)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// SubRip format
type SRTRenderer struct{}

// renders cues as SRT blocks: index, comma-decimal timing line, wrapped
// text, blank line between cues
func (r *SRTRenderer) Render(cues []Cue) (string, error) {
	var sb strings.Builder
	for _, cue := range cues {
		sb.WriteString(fmt.Sprintf("%d\n", cue.Index))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			FormatSRTTimestamp(cue.Start),
			FormatSRTTimestamp(cue.End)))
		sb.WriteString(cue.Text)
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}

// WebVTT format
type VTTRenderer struct{}

// renders cues as WebVTT: fixed header, dot-decimal timing lines, text
// joined onto a single line, no index numbers
func (r *VTTRenderer) Render(cues []Cue) (string, error) {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")
	for _, cue := range cues {
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			FormatVTTTimestamp(cue.Start),
			FormatVTTTimestamp(cue.End)))
		sb.WriteString(strings.ReplaceAll(cue.Text, "\n", " "))
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}

// ParseFormat maps a user-supplied format name onto a Format tag.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "srt":
		return FormatSRT, nil
	case "vtt":
		return FormatVTT, nil
	case "ass":
		return FormatASS, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use srt, vtt, or ass", s)
	}
}

// ExtensionForFormat returns the file extension for a format.
func ExtensionForFormat(format Format) string {
	switch format {
	case FormatVTT:
		return ".vtt"
	case FormatASS:
		return ".ass"
	default:
		return ".srt"
	}
}
