package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	mdwlog "github.com/msto63/utf8x/foundation/core/log"
	"github.com/msto63/utf8x/pkg/core/config"
)

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("utf8x")

	if cfg.Name != "utf8x" {
		t.Errorf("Name = %v, want utf8x", cfg.Name)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		input    string
		expected mdwlog.Level
	}{
		{"trace", mdwlog.LevelTrace},
		{"debug", mdwlog.LevelDebug},
		{"info", mdwlog.LevelInfo},
		{"warning", mdwlog.LevelWarn},
		{"error", mdwlog.LevelError},
		{"invalid", mdwlog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			logger := NewLogger(LoggerConfig{Level: tt.input, Output: &bytes.Buffer{}})
			if got := logger.GetLevel(); got != tt.expected {
				t.Errorf("GetLevel() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Name:          "utf8x",
		Level:         "debug",
		Format:        "json",
		Output:        &buf,
		CorrelationID: "run-1",
	})

	logger.Debug("probe", mdwlog.Bool("normalization", true))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["logger"] != "utf8x" {
		t.Errorf("logger = %v, want utf8x", entry["logger"])
	}
	if entry["correlation_id"] != "run-1" {
		t.Errorf("correlation_id = %v, want run-1", entry["correlation_id"])
	}
	if entry["normalization"] != true {
		t.Errorf("normalization = %v, want true", entry["normalization"])
	}
}

func TestNewLogger_GeneratesCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "info", Format: "logfmt", Output: &buf})

	logger.Info("hello")

	out := buf.String()
	idx := strings.Index(out, "correlation_id=")
	if idx < 0 {
		t.Fatalf("no correlation id in %q", out)
	}
	id := strings.Fields(out[idx+len("correlation_id="):])[0]
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("correlation id %q is not a UUID: %v", id, err)
	}
}

func TestNewLogger_UnknownFormatFallsBackToText(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "info", Format: "xml", Output: &buf})

	logger.Info("hello")

	if !strings.Contains(buf.String(), "[INF]") || !strings.Contains(buf.String(), "hello") {
		t.Errorf("unexpected text output %q", buf.String())
	}
	if strings.HasPrefix(buf.String(), "{") {
		t.Errorf("expected text output, got %q", buf.String())
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "error"
	cfg.Logging.Format = "json"

	var buf bytes.Buffer
	logger := FromConfig(cfg, &buf)

	logger.Warn("suppressed")
	if buf.Len() != 0 {
		t.Errorf("warn should be filtered at error level, got %q", buf.String())
	}

	logger.Error("kept")
	if !strings.Contains(buf.String(), `"message":"kept"`) {
		t.Errorf("expected JSON error entry, got %q", buf.String())
	}
}

func TestWrap(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(LoggerConfig{Level: "debug", Format: "logfmt", Output: &buf})

	logger := Wrap(base, "cli").With("command", "len")
	if logger.Name() != "cli" {
		t.Errorf("Name() = %v, want cli", logger.Name())
	}

	logger.Debug("done", "scalars", 20, "orphan")

	out := buf.String()
	for _, want := range []string{"logger=cli", `command="len"`, "scalars=20"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %s", out, want)
		}
	}
	if strings.Contains(out, "orphan") {
		t.Errorf("trailing key without value should be dropped: %q", out)
	}
}

func TestLogger_LogMethods(t *testing.T) {
	logger := Wrap(mdwlog.Discard(), "test")

	logger.Debug("debug message", "key", "value")
	logger.Info("info message", "key", "value")
	logger.Warn("warn message", "key", "value")
	logger.Error("error message", "key", "value")
	logger.Info("message without key-values")
}

func TestToFields(t *testing.T) {
	fields := toFields()
	if fields != nil {
		t.Error("toFields() with no args should return nil")
	}

	fields = toFields("key1", "value1", "key2", 42)
	if fields == nil {
		t.Fatal("toFields() returned nil")
	}
	if fields["key1"] != "value1" {
		t.Errorf("fields[key1] = %v, want value1", fields["key1"])
	}
	if fields["key2"] != 42 {
		t.Errorf("fields[key2] = %v, want 42", fields["key2"])
	}

	fields = toFields(123, "value")
	if len(fields) != 0 {
		t.Errorf("Non-string key should be skipped, got %v fields", len(fields))
	}
}

func BenchmarkLogger_Info(b *testing.B) {
	logger := Wrap(mdwlog.Discard(), "benchmark")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", "iteration", i)
	}
}
