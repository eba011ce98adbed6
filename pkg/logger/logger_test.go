package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/thom899g/sentiment-driven-trading-ai/pkg/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LoggingConfig
		wantLevel zerolog.Level
	}{
		{"debug level", config.LoggingConfig{Level: "debug", Format: "json"}, zerolog.DebugLevel},
		{"info level", config.LoggingConfig{Level: "info", Format: "json"}, zerolog.InfoLevel},
		{"warn level", config.LoggingConfig{Level: "warn", Format: "json"}, zerolog.WarnLevel},
		{"error level", config.LoggingConfig{Level: "error", Format: "console"}, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.cfg)
			if logger == nil {
				t.Fatal("Expected logger to be created")
			}

			if logger.zlog.GetLevel() != tt.wantLevel {
				t.Errorf("Expected level %v, got %v", tt.wantLevel, logger.zlog.GetLevel())
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"invalid", zerolog.InfoLevel}, // Default
		{"", zerolog.InfoLevel},        // Default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseLogLevel(tt.input)
			if got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse log output: %v", err)
	}
	return logEntry
}

func TestLoggerMethods(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(config.LoggingConfig{Level: "debug", Format: "json"}, &buf)

	tests := []struct {
		name      string
		logFunc   func()
		wantMsg   string
		wantLevel string
	}{
		{"debug", func() { logger.Debug("debug message") }, "debug message", "debug"},
		{"info", func() { logger.Info("info message") }, "info message", "info"},
		{"warn", func() { logger.Warn("warn message") }, "warn message", "warn"},
		{"error", func() { logger.Error("error message") }, "error message", "error"},
		{"infof", func() { logger.Infof("mode: %s", "PAPER") }, "mode: PAPER", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.logFunc()

			logEntry := decodeEntry(t, &buf)
			if logEntry["level"] != tt.wantLevel {
				t.Errorf("Expected level %q, got %q", tt.wantLevel, logEntry["level"])
			}
			if logEntry["message"] != tt.wantMsg {
				t.Errorf("Expected message %q, got %q", tt.wantMsg, logEntry["message"])
			}
			if logEntry["service"] != "sentiment-trader" {
				t.Errorf("Expected service field, got %v", logEntry["service"])
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected info to be filtered at warn level, got %s", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("Expected warn output, got %s", buf.String())
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(config.LoggingConfig{Level: "info", Format: "json"}, &buf)

	logger.WithField("mode", "LIVE").
		WithFields(map[string]interface{}{
			"sources":   "news,twitter",
			"cooloff_s": 300,
		}).
		Info("config loaded")

	logEntry := decodeEntry(t, &buf)
	if logEntry["mode"] != "LIVE" {
		t.Errorf("Expected mode LIVE, got %v", logEntry["mode"])
	}
	if logEntry["sources"] != "news,twitter" {
		t.Errorf("Expected sources, got %v", logEntry["sources"])
	}
	if logEntry["cooloff_s"] != float64(300) {
		t.Errorf("Expected cooloff_s 300, got %v", logEntry["cooloff_s"])
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(config.LoggingConfig{Level: "info", Format: "json"}, &buf)

	logger.WithError(errors.New("plain failure")).Error("operation failed")

	logEntry := decodeEntry(t, &buf)
	if logEntry["error"] != "plain failure" {
		t.Errorf("Expected error to be 'plain failure', got %v", logEntry["error"])
	}
	if _, ok := logEntry["kind"]; ok {
		t.Errorf("Expected no kind field for plain error, got %v", logEntry["kind"])
	}
}

func TestWithConfigurationError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(config.LoggingConfig{Level: "info", Format: "json"}, &buf)

	_, err := config.Load(config.Environ{
		config.EnvFirebaseProjectID:       "proj",
		config.EnvFirebaseCredentialsPath: "/nonexistent/creds.json",
	})
	if err == nil {
		t.Fatal("Expected load to fail")
	}
	logger.WithError(fmt.Errorf("startup: %w", err)).Error("configuration rejected")

	logEntry := decodeEntry(t, &buf)
	if logEntry["kind"] != "MissingCredentialFile" {
		t.Errorf("Expected kind MissingCredentialFile, got %v", logEntry["kind"])
	}
	if logEntry["field"] != config.EnvFirebaseCredentialsPath {
		t.Errorf("Expected field %s, got %v", config.EnvFirebaseCredentialsPath, logEntry["field"])
	}
	if logEntry["value"] != "/nonexistent/creds.json" {
		t.Errorf("Expected value to be the path, got %v", logEntry["value"])
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(config.LoggingConfig{Level: "info", Format: "pretty"}, &buf)
	logger.Info("test message")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected output to contain 'test message', got: %s", output)
	}
	if strings.HasPrefix(output, "{") {
		t.Errorf("Expected human-readable output, got JSON: %s", output)
	}
}
