package logger

import (
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		s    string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"none", LevelNone},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}
	for _, c := range cases {
		if got := ParseLevel(c.s); got != c.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", c.s, got, c.want)
		}
	}
}

func TestLevelFilter(t *testing.T) {
	var b strings.Builder
	l := New(LevelWarn, &b)
	l.Debug("dropped %d", 1)
	l.Info("dropped %d", 2)
	l.Warn("kept %d", 3)
	l.Error("kept %d", 4)
	out := b.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("low-level lines not filtered:\n%s", out)
	}
	if !strings.Contains(out, "[WARN] kept 3") || !strings.Contains(out, "[ERROR] kept 4") {
		t.Errorf("missing expected lines:\n%s", out)
	}
}

func TestNone(t *testing.T) {
	var b strings.Builder
	l := New(LevelNone, &b)
	l.Error("should not appear")
	if b.Len() != 0 {
		t.Errorf("LevelNone wrote %q", b.String())
	}
}
