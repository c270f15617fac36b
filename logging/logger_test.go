package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected slog.Level
	}{
		{"debug level", "DEBUG", slog.LevelDebug},
		{"info level", "INFO", slog.LevelInfo},
		{"warn level", "WARN", slog.LevelWarn},
		{"warning level", "warning", slog.LevelWarn},
		{"error level", "ERROR", slog.LevelError},
		{"invalid level", "LOUD", slog.LevelInfo},
		{"empty value", "", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(LevelVariable, tt.envValue)
			if level := levelFromEnv(); level != tt.expected {
				t.Errorf("levelFromEnv() = %v, want %v", level, tt.expected)
			}
		})
	}
}

func TestJSONLogger(t *testing.T) {
	t.Setenv(LevelVariable, "DEBUG")
	t.Setenv(FormatVariable, "JSON")

	var buf bytes.Buffer
	NewLogger(&buf).Debug("bisection iteration", "iteration", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "bisection iteration" || entry["iteration"] != float64(3) {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestTextLoggerFiltersLevel(t *testing.T) {
	t.Setenv(LevelVariable, "WARN")
	t.Setenv(FormatVariable, "")

	var buf bytes.Buffer
	logger := NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "angle_deg", 45.0)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message must be filtered: %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "angle_deg=45") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestWrapError(t *testing.T) {
	base := errors.New("base")
	wrapped := WrapError(base, "loading %s", "inputs.txt")
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error must keep the chain")
	}
	if wrapped.Error() != "loading inputs.txt: base" {
		t.Errorf("unexpected message %q", wrapped.Error())
	}
	if WrapError(nil, "context") != nil {
		t.Error("nil error must stay nil")
	}
}
