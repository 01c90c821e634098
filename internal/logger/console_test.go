package logger

import (
	"bytes"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"
)

// TestNewConsoleLogger verifies the constructor creates a ConsoleLogger with the provided writer.
func TestNewConsoleLogger(t *testing.T) {
	t.Run("with valid writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "warn")

		if logger.writer != buf {
			t.Error("writer not set correctly")
		}
		if logger.min != LevelWarn {
			t.Errorf("expected minimum level %v, got %v", LevelWarn, logger.min)
		}
		if logger.labels[LevelWarn] != "WARN" {
			t.Errorf("labels must be plain for a buffer, got %q", logger.labels[LevelWarn])
		}
	})

	t.Run("with nil writer", func(t *testing.T) {
		logger := NewConsoleLogger(nil, "debug")
		logger.LogError("discarded")
	})

	t.Run("normalizes level", func(t *testing.T) {
		if got := NewConsoleLogger(nil, "  DEBUG ").min; got != LevelDebug {
			t.Errorf("min = %v, want DEBUG", got)
		}
		if got := NewConsoleLogger(nil, "loud").min; got != LevelInfo {
			t.Errorf("min = %v, want INFO fallback", got)
		}
	})
}

// TestLogLevelFiltering verifies that messages are filtered based on log level
func TestLogLevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		messageLevel string
		shouldAppear bool
	}{
		{name: "trace sees trace", logLevel: "trace", messageLevel: "trace", shouldAppear: true},
		{name: "debug blocks trace", logLevel: "debug", messageLevel: "trace", shouldAppear: false},
		{name: "debug sees debug", logLevel: "debug", messageLevel: "debug", shouldAppear: true},
		{name: "info blocks debug", logLevel: "info", messageLevel: "debug", shouldAppear: false},
		{name: "info sees info", logLevel: "info", messageLevel: "info", shouldAppear: true},
		{name: "warn blocks info", logLevel: "warn", messageLevel: "info", shouldAppear: false},
		{name: "warn sees warn", logLevel: "warn", messageLevel: "warn", shouldAppear: true},
		{name: "warn sees error", logLevel: "warn", messageLevel: "error", shouldAppear: true},
		{name: "error blocks warn", logLevel: "error", messageLevel: "warn", shouldAppear: false},
		{name: "error sees error", logLevel: "error", messageLevel: "error", shouldAppear: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewConsoleLogger(buf, tt.logLevel)
			message := tt.messageLevel + " msg"

			switch tt.messageLevel {
			case "trace":
				logger.LogTrace(message)
			case "debug":
				logger.LogDebug(message)
			case "info":
				logger.LogInfo(message)
			case "warn":
				logger.LogWarn(message)
			case "error":
				logger.LogError(message)
			}

			contains := strings.Contains(buf.String(), message)
			if tt.shouldAppear && !contains {
				t.Errorf("expected %q in output, got %q", message, buf.String())
			}
			if !tt.shouldAppear && contains {
				t.Errorf("expected %q to be filtered, got %q", message, buf.String())
			}
		})
	}
}

func TestLogFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "debug")

	logger.LogDebug("cannot read /root/secret: permission denied")

	logger.now = func() time.Time { return time.Date(2026, 1, 2, 9, 5, 7, 0, time.UTC) }
	logger.LogWarn("hide pattern '[' is invalid")

	pattern := regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[DEBUG\] cannot read /root/secret: permission denied\n\[09:05:07\] \[WARN\] hide pattern '\[' is invalid\n$`)
	if !pattern.MatchString(buf.String()) {
		t.Errorf("unexpected format: %q", buf.String())
	}
}

func TestConcurrentLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.LogInfo("line")
		}()
	}
	wg.Wait()

	if got := strings.Count(buf.String(), "\n"); got != 20 {
		t.Errorf("expected 20 lines, got %d", got)
	}
}

func TestNoOpLogger(t *testing.T) {
	var l Logger = NewNoOpLogger()
	l.LogTrace("x")
	l.LogDebug("x")
	l.LogInfo("x")
	l.LogWarn("x")
	l.LogError("x")
}

func TestValidLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		if !ValidLevel(level) {
			t.Errorf("ValidLevel(%q) = false", level)
		}
	}
	if ValidLevel("verbose") {
		t.Error("ValidLevel(verbose) = true")
	}
}

func TestLevelString(t *testing.T) {
	if got := LevelError.String(); got != "ERROR" {
		t.Errorf("LevelError.String() = %q", got)
	}
	if got := Level(9).String(); got != "Level(9)" {
		t.Errorf("Level(9).String() = %q", got)
	}
	if l, ok := ParseLevel("Warn"); !ok || l != LevelWarn {
		t.Errorf("ParseLevel(Warn) = %v, %v", l, ok)
	}
}
