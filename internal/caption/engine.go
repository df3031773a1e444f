package caption

import "strings"

// Synthesizer turns a narration script into timed caption cues. It holds no
// mutable state between invocations and is safe to reuse.
type Synthesizer struct {
	cfg Config
}

// NewSynthesizer validates cfg and returns an engine bound to it.
func NewSynthesizer(cfg Config) (*Synthesizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Synthesizer{cfg: cfg}, nil
}

// Synthesize segments text into sentences, packs them into cues under the
// layout budget, wraps each cue's text and assigns the timeline. It returns
// ErrEmptyInput for empty or whitespace-only text; non-trivial input always
// yields at least one cue.
func (s *Synthesizer) Synthesize(text string) ([]Cue, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	fragments := splitSentences(text)
	chunks := packFragments(fragments, s.cfg.Layout)

	var cues []Cue
	for _, chunk := range chunks {
		for _, block := range wrapBlocks(chunk, s.cfg.Layout) {
			cues = append(cues, Cue{
				Index: len(cues) + 1,
				Text:  block,
			})
		}
	}

	assignTimeline(cues, s.cfg.Timing)

	return cues, nil
}
