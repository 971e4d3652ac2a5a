package logging

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/felixgeelhaar/bolt/v3"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	config := DefaultConfig()
	if config.Level != "info" {
		t.Errorf("Level = %s, want info", config.Level)
	}
	if config.Format != "console" {
		t.Errorf("Format = %s, want console", config.Format)
	}
	if config.Output != os.Stderr {
		t.Errorf("Output = %v, want os.Stderr", config.Output)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bolt.Level
	}{
		{"trace", bolt.TRACE},
		{"debug", bolt.DEBUG},
		{"INFO", bolt.INFO},
		{"warn", bolt.WARN},
		{"error", bolt.ERROR},
		{"unknown", bolt.INFO},
		{"", bolt.INFO},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFieldsReachJSONOutput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := New(Config{Level: "debug", Format: "json", Output: buf})
	ev := &LogEvent{event: logger.Info()}
	ev.Add(State("running")).
		Add(Ticks(12)).
		Add(Point("pos", 1.5, -2)).
		Add(Float("angle", 0.25, 2)).
		Add(Err(errors.New("boom"))).
		Msg("tick")

	out := buf.String()
	for _, want := range []string{`"state":"running"`, `"ticks":12`, `"pos_x":"1.500"`, `"pos_y":"-2.000"`, `"angle":"0.25"`, "boom", "tick"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLevelFiltersEvents(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := New(Config{Level: "warn", Format: "json", Output: buf})
	logger.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info event should be filtered at warn level, got %q", buf.String())
	}
	logger.Warn().Msg("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("warn event missing from %q", buf.String())
	}
}
