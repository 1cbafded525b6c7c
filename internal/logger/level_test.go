package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestLogLevelFiltering verifies that messages are filtered based on log level
func TestLogLevelFiltering(t *testing.T) {
	levels := []string{"trace", "debug", "info", "warn", "error"}

	for ci, configured := range levels {
		for mi, message := range levels {
			shouldAppear := mi >= ci
			t.Run(configured+" logger, "+message+" message", func(t *testing.T) {
				buf := &bytes.Buffer{}
				logger := NewConsoleLogger(buf, configured)
				logAt(logger, message, message+" msg")

				contains := strings.Contains(buf.String(), message+" msg")
				if shouldAppear && !contains {
					t.Errorf("expected %q in output, got %q", message+" msg", buf.String())
				}
				if !shouldAppear && contains {
					t.Errorf("expected %q to be filtered, got %q", message+" msg", buf.String())
				}
			})
		}
	}
}

func logAt(l Logger, level, message string) {
	switch level {
	case "trace":
		l.LogTrace("%s", message)
	case "debug":
		l.LogDebug("%s", message)
	case "info":
		l.LogInfo("%s", message)
	case "warn":
		l.LogWarn("%s", message)
	case "error":
		l.LogError("%s", message)
	}
}

// TestLogLevelEdgeCases verifies normalization of configured levels
func TestLogLevelEdgeCases(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "info"},
		{"DEBUG", "debug"},
		{"  Warn  ", "warn"},
		{"verbose", "info"},
		{"error", "error"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := normalizeLogLevel(tt.input); got != tt.expected {
				t.Errorf("normalizeLogLevel(%q) = %q, want %q", tt.input, got, tt.expected)
			}
			if got := NewConsoleLogger(nil, tt.input).Level(); got != tt.expected {
				t.Errorf("Level() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestFileLoggerWithLogLevel verifies FileLogger filters like ConsoleLogger
func TestFileLoggerWithLogLevel(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	logger, err := NewFileLogger(logDir, "warn")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	logger.LogDebug("debug message")
	logger.LogInfo("info message")
	logger.LogWarn("warn message")
	logger.LogError("error message")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	content, err := os.ReadFile(logger.Path())
	if err != nil {
		t.Fatalf("failed to read run log: %v", err)
	}
	output := string(content)

	for _, filtered := range []string{"debug message", "info message"} {
		if strings.Contains(output, filtered) {
			t.Errorf("%q should be filtered at warn level", filtered)
		}
	}
	for _, kept := range []string{"[WARN] warn message", "[ERROR] error message"} {
		if !strings.Contains(output, kept) {
			t.Errorf("expected %q in run log, got %q", kept, output)
		}
	}
}
