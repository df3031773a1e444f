package caption

import "strings"

// runes that close a sentence-like fragment, in Japanese and Latin
// punctuation sets
const terminalRunes = "。！？.!?"

func isTerminalRune(r rune) bool {
	return strings.ContainsRune(terminalRunes, r)
}

// splitSentences slices text into ordered sentence fragments. A fragment
// ends at a run of terminal punctuation or at a line break; consecutive
// terminal marks ("!?") stay attached to the fragment they close. Fragments
// are trimmed and whitespace-only spans are dropped rather than emitted
// empty.
func splitSentences(text string) []string {
	var fragments []string
	var buf []rune

	flush := func() {
		fragment := strings.TrimSpace(string(buf))
		buf = buf[:0]
		if fragment != "" {
			fragments = append(fragments, fragment)
		}
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\n' {
			flush()
			continue
		}
		buf = append(buf, r)
		if isTerminalRune(r) {
			for i+1 < len(runes) && isTerminalRune(runes[i+1]) {
				i++
				buf = append(buf, runes[i])
			}
			flush()
		}
	}
	flush()

	return fragments
}
