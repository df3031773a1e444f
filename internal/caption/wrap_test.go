package caption

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestWrapLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxChars int
		want     []string
	}{
		{
			name:     "short text unchanged",
			input:    "こんにちは。",
			maxChars: 10,
			want:     []string{"こんにちは。"},
		},
		{
			name:     "hard cut at exact budget",
			input:    "abcdefghij",
			maxChars: 5,
			want:     []string{"abcde", "fghij"},
		},
		{
			name:     "space at cut is dropped",
			input:    "abcde fghij",
			maxChars: 5,
			want:     []string{"abcde", "fghij"},
		},
		{
			name:     "trailing space inside budget trimmed",
			input:    "abcd efgh",
			maxChars: 5,
			want:     []string{"abcd", "efgh"},
		},
		{
			name:     "comma at cut is dropped",
			input:    "あいうえお、かきくけこ",
			maxChars: 5,
			want:     []string{"あいうえお", "かきくけこ"},
		},
		{
			name:     "terminal punctuation opens next line",
			input:    "あいうえお。かきくけこ",
			maxChars: 5,
			want:     []string{"あいうえお", "。かきくけ", "こ"},
		},
		{
			name:     "empty input",
			input:    "   ",
			maxChars: 5,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapLines(tt.input, tt.maxChars)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d lines, got %d: %q", len(tt.want), len(got), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
			for i, line := range got {
				if utf8.RuneCountInString(line) > tt.maxChars {
					t.Errorf("line %d exceeds budget: %q", i, line)
				}
			}
		})
	}
}

func TestWrapBlocksSplit(t *testing.T) {
	layout := LayoutConfig{MaxCharsPerLine: 42, MaxLines: 2, Overflow: OverflowSplit}
	input := strings.Repeat("あ", 200)

	blocks := wrapBlocks(input, layout)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks for 200 runes, got %d", len(blocks))
	}

	total := 0
	for i, block := range blocks {
		lines := strings.Split(block, "\n")
		if len(lines) > layout.MaxLines {
			t.Errorf("block %d has %d lines", i, len(lines))
		}
		for _, line := range lines {
			n := utf8.RuneCountInString(line)
			if n > layout.MaxCharsPerLine {
				t.Errorf("block %d line exceeds budget: %d runes", i, n)
			}
			total += n
		}
	}
	if total != 200 {
		t.Errorf("split mode lost text: %d of 200 runes kept", total)
	}
}

func TestWrapBlocksTruncate(t *testing.T) {
	layout := LayoutConfig{MaxCharsPerLine: 42, MaxLines: 2, Overflow: OverflowTruncate}
	input := strings.Repeat("あ", 200)

	blocks := wrapBlocks(input, layout)
	if len(blocks) != 1 {
		t.Fatalf("expected a single truncated block, got %d", len(blocks))
	}

	lines := strings.Split(blocks[0], "\n")
	if len(lines) != 2 {
		t.Fatalf("expected exactly 2 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if utf8.RuneCountInString(line) != 42 {
			t.Errorf("line %d: expected 42 runes, got %d", i, utf8.RuneCountInString(line))
		}
	}
}

func TestWrapBlocksShortText(t *testing.T) {
	layout := LayoutConfig{MaxCharsPerLine: 42, MaxLines: 2, Overflow: OverflowSplit}
	blocks := wrapBlocks("short cue", layout)
	if len(blocks) != 1 || blocks[0] != "short cue" {
		t.Errorf("short text should pass through unchanged, got %q", blocks)
	}
}
