package caption

import (
	"strings"
	"unicode"
)

// comma-class runes that may be discarded at a line cut
const separatorRunes = "、，,"

// pure separators never carry meaning at the head of a display line
func isSeparatorRune(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(separatorRunes, r)
}

// wrapLines breaks text into lines of at most maxChars runes. The scan is
// rune by rune: a full line is cut at the budget, a separator landing on the
// cut is discarded so no line opens with a stray comma or space, and any
// other rune starts the next line (hard cut at exactly maxChars). Text that
// already fits is returned as a single line.
func wrapLines(text string, maxChars int) []string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) == 0 {
		return nil
	}
	if len(runes) <= maxChars {
		return []string{string(runes)}
	}

	var lines []string
	var line []rune
	flush := func() {
		lines = append(lines, strings.TrimRight(string(line), " \t"))
		line = line[:0]
	}
	for _, r := range runes {
		if len(line) >= maxChars {
			flush()
		}
		if len(line) == 0 && len(lines) > 0 && isSeparatorRune(r) {
			continue
		}
		line = append(line, r)
	}
	if len(line) > 0 {
		flush()
	}

	return lines
}

// wrapBlocks wraps one cue's raw text into display blocks of at most
// layout.MaxLines lines each. With OverflowSplit the text past the first
// block continues in follow-up blocks; with OverflowTruncate it is dropped,
// reproducing the legacy single-block output.
func wrapBlocks(text string, layout LayoutConfig) []string {
	lines := wrapLines(text, layout.MaxCharsPerLine)
	if len(lines) == 0 {
		return nil
	}
	if layout.Overflow == OverflowTruncate && len(lines) > layout.MaxLines {
		lines = lines[:layout.MaxLines]
	}

	var blocks []string
	for start := 0; start < len(lines); start += layout.MaxLines {
		end := min(start+layout.MaxLines, len(lines))
		blocks = append(blocks, strings.Join(lines[start:end], "\n"))
	}

	return blocks
}
