package utils

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestDurationUS(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want float64
	}{
		{"one microsecond", time.Microsecond, 1.0},
		{"one millisecond", time.Millisecond, 1000.0},
		{"one second", time.Second, 1_000_000.0},
		{"half microsecond", 500 * time.Nanosecond, 0.5},
		{"zero", 0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DurationUS(tt.d)
			if got != tt.want {
				t.Errorf("DurationUS(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestPrintTimingStatsRespectsVerbose(t *testing.T) {
	oldVerbose, oldOutput := Verbose, Output
	defer func() {
		Verbose, Output = oldVerbose, oldOutput
	}()

	var buf bytes.Buffer
	Output = &buf

	stats := &TimingStats{
		TotalTime:       10 * time.Millisecond,
		ForwardPassTime: 4 * time.Millisecond,
	}

	Verbose = false
	PrintTimingStats(stats, 5)
	if buf.Len() != 0 {
		t.Errorf("expected no output with Verbose=false, got %q", buf.String())
	}

	Verbose = true
	PrintTimingStats(stats, 5)
	out := buf.String()
	if !strings.Contains(out, "TIMING STATISTICS") {
		t.Errorf("expected header in output, got %q", out)
	}
	if !strings.Contains(out, "Steps completed: 5") {
		t.Errorf("expected step count in output, got %q", out)
	}
}
