package caption

// displayLength counts display runes, excluding line-break markers.
func displayLength(text string) int {
	n := 0
	for _, r := range text {
		if r != '\n' {
			n++
		}
	}
	return n
}

// assignTimeline walks the ordered cue list once, assigning back-to-back
// start/end times from the reading-speed model. Each cue's raw duration is
// its display length divided by the reading speed, clamped to the configured
// bounds. When a target duration is set the whole timeline is rescaled
// linearly so the last cue ends at the measured narration length.
func assignTimeline(cues []Cue, timing TimingConfig) {
	clock := 0.0
	for i := range cues {
		duration := float64(displayLength(cues[i].Text)) / timing.ReadingCharsPerSecond
		if duration < timing.MinCueDuration {
			duration = timing.MinCueDuration
		}
		if duration > timing.MaxCueDuration {
			duration = timing.MaxCueDuration
		}
		cues[i].Start = clock
		cues[i].End = clock + duration
		clock = cues[i].End
	}

	if timing.TargetDuration > 0 && clock > 0 {
		scale := timing.TargetDuration / clock
		for i := range cues {
			cues[i].Start *= scale
			cues[i].End *= scale
		}
	}
}
