package logging

import "testing"

func TestNewLogger(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		logger := NewLogger(verbose)
		if logger == nil || logger.SugaredLogger == nil {
			t.Fatalf("NewLogger(%v) returned nil logger", verbose)
		}
	}
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	if logger == nil || logger.SugaredLogger == nil {
		t.Fatal("NewNop returned nil logger")
	}
	logger.Infow("discarded", "key", "value")
}
