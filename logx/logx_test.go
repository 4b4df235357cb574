package logx

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
}

func TestWriterLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, DEBUG)
	l.now = fixedClock

	NewLogToX(l, "profile").LogPrintf(INFO, "%d blocks", 12)

	want := "12:30:45.000     INFO [profile] 12 blocks\n"
	if got := buf.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWriterLoggerFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, WARN)

	log := NewLogToX(l, "x")
	log.LogPrint(DEBUG, "hidden")
	log.LogPrint(INFO, "hidden")
	log.LogPrint(WARN, "shown")
	log.LogPrint(ERROR, "shown too")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Messages below WARN should be dropped, got %q", out)
	}
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("Expected 2 lines, got %d: %q", n, out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", DEBUG, true},
		{"INFO", INFO, true},
		{" warn ", WARN, true},
		{"warning", WARN, true},
		{"critical", CRITICAL, true},
		{"loud", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseLevel(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNopDiscards(t *testing.T) {
	// must not panic and must filter everything
	Nop.LogPrintX("s", CRITICAL, "x")
	if Nop.Level() <= CRITICAL {
		t.Error("Nop should be above every level")
	}
}
