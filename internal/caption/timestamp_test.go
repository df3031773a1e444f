package caption

import (
	"math"
	"testing"
)

func TestFormatTimestamps(t *testing.T) {
	tests := []struct {
		seconds float64
		srt     string
		vtt     string
		ass     string
	}{
		{0, "00:00:00,000", "00:00:00.000", "0:00:00.00"},
		{1.5, "00:00:01,500", "00:00:01.500", "0:00:01.50"},
		{59.999, "00:00:59,999", "00:00:59.999", "0:01:00.00"},
		{61.25, "00:01:01,250", "00:01:01.250", "0:01:01.25"},
		{3661.007, "01:01:01,007", "01:01:01.007", "1:01:01.01"},
		{7322.5, "02:02:02,500", "02:02:02.500", "2:02:02.50"},
		{-3, "00:00:00,000", "00:00:00.000", "0:00:00.00"},
	}
	for _, tt := range tests {
		if got := FormatSRTTimestamp(tt.seconds); got != tt.srt {
			t.Errorf("FormatSRTTimestamp(%g) = %q, want %q", tt.seconds, got, tt.srt)
		}
		if got := FormatVTTTimestamp(tt.seconds); got != tt.vtt {
			t.Errorf("FormatVTTTimestamp(%g) = %q, want %q", tt.seconds, got, tt.vtt)
		}
		if got := FormatASSTimestamp(tt.seconds); got != tt.ass {
			t.Errorf("FormatASSTimestamp(%g) = %q, want %q", tt.seconds, got, tt.ass)
		}
	}
}

func TestFormatSRTTimestampRounding(t *testing.T) {
	// millisecond rounding, not truncation
	if got := FormatSRTTimestamp(1.2345); got != "00:00:01,235" {
		t.Errorf("expected round half up, got %q", got)
	}
	if got := FormatSRTTimestamp(1.2344); got != "00:00:01,234" {
		t.Errorf("expected round down, got %q", got)
	}
}

func TestParseSRTTimestamp(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"00:00:00,000", 0, false},
		{"00:01:01,250", 61.25, false},
		{"01:01:01,007", 3661.007, false},
		{"100:00:00,000", 360000, false},
		{"  00:00:01,500  ", 1.5, false},
		{"00:60:00,000", 0, true},
		{"00:00:60,000", 0, true},
		{"00:00:00.000", 0, true},
		{"0:00:00,000", 0, true},
		{"garbage", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseSRTTimestamp(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseSRTTimestamp(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSRTTimestamp(%q): %v", tt.in, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ParseSRTTimestamp(%q) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestSRTTimestampRoundTrip(t *testing.T) {
	for _, seconds := range []float64{0, 0.001, 1.5, 59.999, 61.25, 3661.007, 35999.999} {
		got, err := ParseSRTTimestamp(FormatSRTTimestamp(seconds))
		if err != nil {
			t.Fatalf("round trip %g: %v", seconds, err)
		}
		if math.Abs(got-seconds) > 0.0005 {
			t.Errorf("round trip %g lost precision: got %g", seconds, got)
		}
	}
}

func TestTotalDurationFromSRT(t *testing.T) {
	doc := "1\n00:00:00,000 --> 00:00:02,500\nこんにちは。\n\n" +
		"2\n00:00:02,500 --> 00:00:06,750\n今日は晴れです。\n\n"
	got, err := TotalDurationFromSRT(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got != 6.75 {
		t.Errorf("expected 6.75, got %g", got)
	}

	if _, err := TotalDurationFromSRT("no cues here"); err == nil {
		t.Error("expected error for document without timing lines")
	}
}
