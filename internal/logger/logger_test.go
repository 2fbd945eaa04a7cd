package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	defer slog.SetDefault(slog.Default())

	InitLoggerWithWriter(Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
	}, &buf)

	Info("test message", "key", "value", "number", 42)

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	expected := map[string]interface{}{
		"service":     "test-service",
		"version":     "1.0.0",
		"environment": "test",
		"msg":         "test message",
		"level":       "INFO",
		"key":         "value",
		"number":      float64(42),
	}
	for k, want := range expected {
		if logEntry[k] != want {
			t.Errorf("Expected %s=%v, got %v", k, want, logEntry[k])
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	defer slog.SetDefault(slog.Default())

	InitLoggerWithWriter(Config{Level: "warn", Format: "text"}, &buf)
	Info("hidden")
	Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Info record should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("Warn record missing: %s", out)
	}
}

func TestRequestIDContext(t *testing.T) {
	var buf bytes.Buffer
	defer slog.SetDefault(slog.Default())
	InitLoggerWithWriter(Config{Level: "info", Format: "json"}, &buf)

	ctx := WithRequestID(context.Background(), "test-req-123")
	if got := GetRequestID(ctx); got != "test-req-123" {
		t.Errorf("Expected request_id=test-req-123, got %s", got)
	}

	FromContext(ctx).Info("with id")
	if !strings.Contains(buf.String(), `"request_id":"test-req-123"`) {
		t.Errorf("Expected request_id in output, got %s", buf.String())
	}

	if GetRequestID(context.Background()) != "" {
		t.Error("Expected empty request id on bare context")
	}
}

func TestConfigPresets(t *testing.T) {
	prod := ProductionConfig()
	if !prod.IsJSON() || prod.Environment != EnvironmentProduction || prod.AddSource {
		t.Errorf("Unexpected production config: %+v", prod)
	}

	dev := DevelopmentConfig()
	if dev.IsJSON() || dev.LogLevel() != slog.LevelDebug || !dev.AddSource {
		t.Errorf("Unexpected development config: %+v", dev)
	}

	if DefaultConfig().LogLevel() != slog.LevelInfo {
		t.Error("Expected info level by default")
	}
}
