package caption

import (
	"strings"
	"unicode/utf8"
)

// packFragments greedily accumulates sentence fragments into cue-sized
// chunks under a budget of MaxCharsPerLine*MaxLines runes. A chunk closes
// when the next fragment would push it past the budget; the final non-empty
// chunk always closes, so no fragment is lost at the boundary. A single
// fragment longer than the budget goes into a chunk of its own and is left
// to the wrapper.
func packFragments(fragments []string, layout LayoutConfig) []string {
	budget := layout.MaxCharsPerLine * layout.MaxLines

	var chunks []string
	var buf strings.Builder
	bufLen := 0

	for _, fragment := range fragments {
		length := utf8.RuneCountInString(fragment)
		if bufLen > 0 && bufLen+length > budget {
			chunks = append(chunks, buf.String())
			buf.Reset()
			bufLen = 0
		}
		buf.WriteString(fragment)
		bufLen += length
	}
	if bufLen > 0 {
		chunks = append(chunks, buf.String())
	}

	return chunks
}
