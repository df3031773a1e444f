package caption

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

func splitMillis(seconds float64) (h, m, s, ms int64) {
	total := int64(math.Round(seconds * 1000))
	if total < 0 {
		total = 0
	}
	ms = total % 1000
	total /= 1000
	s = total % 60
	total /= 60
	m = total % 60
	h = total / 60
	return
}

// FormatSRTTimestamp renders seconds as HH:MM:SS,mmm.
func FormatSRTTimestamp(seconds float64) string {
	h, m, s, ms := splitMillis(seconds)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// FormatVTTTimestamp renders seconds as HH:MM:SS.mmm.
func FormatVTTTimestamp(seconds float64) string {
	h, m, s, ms := splitMillis(seconds)
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

// FormatASSTimestamp renders seconds as H:MM:SS.CC. Centisecond precision
// is a property of the container format, not a rounding bug.
func FormatASSTimestamp(seconds float64) string {
	total := int64(math.Round(seconds * 100))
	if total < 0 {
		total = 0
	}
	cs := total % 100
	total /= 100
	s := total % 60
	total /= 60
	m := total % 60
	h := total / 60
	return fmt.Sprintf("%d:%02d:%02d.%02d", h, m, s, cs)
}

var srtTimestampRegex = regexp.MustCompile(`^(\d{2,}):(\d{2}):(\d{2}),(\d{3})$`)

// ParseSRTTimestamp parses the comma-decimal timestamp shape back to
// seconds with millisecond precision.
func ParseSRTTimestamp(ts string) (float64, error) {
	matches := srtTimestampRegex.FindStringSubmatch(strings.TrimSpace(ts))
	if matches == nil {
		return 0, fmt.Errorf("invalid timestamp %q", ts)
	}
	h, _ := strconv.ParseInt(matches[1], 10, 64)
	m, _ := strconv.ParseInt(matches[2], 10, 64)
	s, _ := strconv.ParseInt(matches[3], 10, 64)
	ms, _ := strconv.ParseInt(matches[4], 10, 64)
	if m > 59 || s > 59 {
		return 0, fmt.Errorf("invalid timestamp %q", ts)
	}
	return float64(h*3600+m*60+s) + float64(ms)/1000, nil
}

// TotalDurationFromSRT recomputes the narration length from a rendered
// plain-format document by reading the end of its last timing line.
func TotalDurationFromSRT(doc string) (float64, error) {
	var last string
	for _, line := range strings.Split(doc, "\n") {
		if strings.Contains(line, " --> ") {
			last = line
		}
	}
	if last == "" {
		return 0, fmt.Errorf("no timing lines in document")
	}
	parts := strings.SplitN(last, " --> ", 2)
	end, err := ParseSRTTimestamp(parts[1])
	if err != nil {
		return 0, fmt.Errorf("bad timing line %q: %w", last, err)
	}
	return end, nil
}
