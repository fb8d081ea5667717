package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/logger"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			if got := logger.ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNew_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(&buf, "info", "text")

	log.Debug("hidden")
	log.Info("annotated", "path", "README.md", "rewritten", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record written at info level: %q", out)
	}
	if !strings.Contains(out, "msg=annotated") || !strings.Contains(out, "rewritten=3") {
		t.Errorf("text output = %q, want msg and attrs", out)
	}
}

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(&buf, "debug", "JSON")

	log.Debug("entry rewritten", "line", 12)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if rec["msg"] != "entry rewritten" {
		t.Errorf("msg = %v, want %q", rec["msg"], "entry rewritten")
	}
	if rec["line"] != float64(12) {
		t.Errorf("line = %v, want 12", rec["line"])
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	log := logger.Discard()
	if log.Enabled(t.Context(), slog.LevelError) {
		t.Error("Discard() logger reports enabled")
	}
}
