package caption

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestPackFragmentsGreedy(t *testing.T) {
	layout := LayoutConfig{MaxCharsPerLine: 42, MaxLines: 2}

	// 100 sentences of 5 runes each against an 84-rune budget packs 16
	// sentences (80 runes) per cue before closing.
	var fragments []string
	for i := 0; i < 100; i++ {
		fragments = append(fragments, "あいうえ。")
	}

	chunks := packFragments(fragments, layout)
	if len(chunks) != 7 {
		t.Fatalf("expected 7 chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks[:6] {
		if n := utf8.RuneCountInString(chunk); n != 80 {
			t.Errorf("chunk %d: expected 80 runes, got %d", i, n)
		}
	}
	if n := utf8.RuneCountInString(chunks[6]); n != 20 {
		t.Errorf("final chunk: expected 20 runes, got %d", n)
	}
}

func TestPackFragmentsFinalBufferFlushed(t *testing.T) {
	layout := LayoutConfig{MaxCharsPerLine: 10, MaxLines: 2}
	fragments := []string{"あいうえおかきくけこ。", "さしす。"}

	chunks := packFragments(fragments, layout)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %q", chunks)
	}
	if chunks[1] != "さしす。" {
		t.Errorf("trailing fragment lost: %q", chunks)
	}
}

func TestPackFragmentsOverLongFragmentAlone(t *testing.T) {
	layout := LayoutConfig{MaxCharsPerLine: 10, MaxLines: 2}
	long := strings.Repeat("あ", 50) + "。"
	fragments := []string{"やあ。", long, "じゃあね。"}

	chunks := packFragments(fragments, layout)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d: %q", len(chunks), chunks)
	}
	if chunks[1] != long {
		t.Errorf("over-long fragment should be packed alone, got %q", chunks[1])
	}
}

func TestPackFragmentsNoFragmentLoss(t *testing.T) {
	layout := LayoutConfig{MaxCharsPerLine: 7, MaxLines: 2}
	fragments := splitSentences("一つ。二つ目の文。三つ目はもっと長い文です。四。")

	chunks := packFragments(fragments, layout)
	joined := strings.Join(chunks, "")
	if joined != strings.Join(fragments, "") {
		t.Errorf("packing lost text: %q vs %q", joined, fragments)
	}
}
