package caption

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Advanced SubStation Alpha format
type ASSRenderer struct {
	style       StyleConfig
	highlighter *highlighter // nil when highlighting is disabled
}

// NewASSRenderer builds the styled renderer. A malformed highlight pattern
// fails here, before any cue is rendered.
func NewASSRenderer(style StyleConfig) (*ASSRenderer, error) {
	r := &ASSRenderer{style: style}
	if style.Highlight.Enabled {
		h, err := newHighlighter(style.Highlight, style.PrimaryColour)
		if err != nil {
			return nil, err
		}
		r.highlighter = h
	}
	return r, nil
}

// renders the header block followed by one Dialogue event per cue. Per-cue
// text is escaped and highlighted line by line, joined with \N and prefixed
// with the fade directive.
func (r *ASSRenderer) Render(cues []Cue) (string, error) {
	marginL := clampMargin(r.style.MarginLeft)
	marginR := clampMargin(r.style.MarginRight)
	marginV := clampMargin(r.style.MarginVertical)
	fade := fmt.Sprintf("{\\fad(%d,%d)}",
		int(math.Round(r.style.FadeIn*1000)),
		int(math.Round(r.style.FadeOut*1000)))

	var sb strings.Builder
	r.writeHeader(&sb, marginL, marginR, marginV)

	for _, cue := range cues {
		sb.WriteString(fmt.Sprintf("Dialogue: 0,%s,%s,Default,,%d,%d,%d,,%s%s\n",
			FormatASSTimestamp(cue.Start),
			FormatASSTimestamp(cue.End),
			marginL, marginR, marginV,
			fade, r.formatText(cue.Text)))
	}

	return sb.String(), nil
}

func (r *ASSRenderer) writeHeader(sb *strings.Builder, marginL, marginR, marginV int) {
	bold := 0
	if r.style.Bold {
		bold = -1
	}

	sb.WriteString("[Script Info]\n")
	sb.WriteString("Title: jimaku captions\n")
	sb.WriteString("ScriptType: v4.00+\n")
	sb.WriteString("Collisions: Normal\n")
	sb.WriteString("PlayDepth: 0\n\n")

	sb.WriteString("[V4+ Styles]\n")
	sb.WriteString("Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n")
	sb.WriteString(fmt.Sprintf("Style: Default,%s,%d,%s,%s,%s,%s,%d,0,0,0,100,100,0,0,1,%s,%s,%d,%d,%d,%d,1\n\n",
		r.style.FontName,
		r.style.FontSize,
		r.style.PrimaryColour,
		r.style.SecondaryColour,
		r.style.OutlineColour,
		r.style.BackColour,
		bold,
		formatASSNumber(r.style.Outline),
		formatASSNumber(r.style.Shadow),
		r.style.Alignment,
		marginL, marginR, marginV))

	sb.WriteString("[Events]\n")
	sb.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")
}

// formatText escapes each display line, applies highlighting to it and only
// then joins the lines with \N. Both transforms run per line so the inserted
// markers and the override tags never see each other.
func (r *ASSRenderer) formatText(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = escapeASSLine(line)
		if r.highlighter != nil {
			line = r.highlighter.apply(line)
		}
		lines[i] = line
	}
	return strings.Join(lines, `\N`)
}

// escapeASSLine escapes the runes that are syntactically significant in the
// container within one display line.
func escapeASSLine(line string) string {
	line = strings.ReplaceAll(line, `\`, `\\`)
	line = strings.ReplaceAll(line, "{", `\{`)
	line = strings.ReplaceAll(line, "}", `\}`)
	return line
}

func clampMargin(v float64) int {
	n := int(math.Round(v))
	if n < 0 {
		n = 0
	}
	return n
}

func formatASSNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
