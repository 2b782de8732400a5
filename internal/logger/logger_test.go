package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer

	config := Config{
		Level:       slog.LevelInfo,
		JSON:        true,
		Service:     "test-service",
		Version:     "1.0.0",
		Environment: "test",
	}

	InitLoggerWithWriter(config, &buf)

	// Log a test message
	Info("test message", "key", "value", "number", 42)

	// Parse JSON output
	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	// Verify base attributes
	if logEntry["service"] != "test-service" {
		t.Errorf("Expected service=test-service, got %v", logEntry["service"])
	}

	if logEntry["version"] != "1.0.0" {
		t.Errorf("Expected version=1.0.0, got %v", logEntry["version"])
	}

	if logEntry["environment"] != "test" {
		t.Errorf("Expected environment=test, got %v", logEntry["environment"])
	}

	// Verify message
	if logEntry["msg"] != "test message" {
		t.Errorf("Expected msg='test message', got %v", logEntry["msg"])
	}

	// Verify level
	if logEntry["level"] != "INFO" {
		t.Errorf("Expected level=INFO, got %v", logEntry["level"])
	}

	// Verify custom attributes
	if logEntry["key"] != "value" {
		t.Errorf("Expected key=value, got %v", logEntry["key"])
	}

	if logEntry["number"] != float64(42) {
		t.Errorf("Expected number=42, got %v", logEntry["number"])
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test-req-123")

	requestID := GetRequestID(ctx)
	if requestID != "test-req-123" {
		t.Errorf("Expected request_id=test-req-123, got %s", requestID)
	}

	// Test with logger
	log := FromContext(ctx)
	if log == nil {
		t.Error("Expected non-nil logger")
	}

	if GetRequestID(context.Background()) != "" {
		t.Error("Expected empty request_id without one in context")
	}
}

func TestFromContext_AddsRequestID(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: slog.LevelDebug, JSON: true, Service: "svc"}, &buf)

	ctx := WithRequestID(context.Background(), "req-42")
	FromContext(ctx).Debug("donation created")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if logEntry["request_id"] != "req-42" {
		t.Errorf("Expected request_id=req-42, got %v", logEntry["request_id"])
	}
}

func TestLogLevelFiltering(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: slog.LevelWarn}, &buf)

	Info("hidden")
	Warn("shown")

	out := buf.String()
	if bytes.Contains([]byte(out), []byte("hidden")) {
		t.Errorf("info line should be filtered at warn level: %s", out)
	}
	if !bytes.Contains([]byte(out), []byte("shown")) {
		t.Errorf("warn line missing: %s", out)
	}
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		environment string
		wantLevel   slog.Level
		wantJSON    bool
		wantSource  bool
	}{
		{name: "production json", level: "info", format: "json", environment: "production", wantLevel: slog.LevelInfo, wantJSON: true},
		{name: "dev text adds source", level: "debug", format: "text", environment: "dev", wantLevel: slog.LevelDebug, wantSource: true},
		{name: "upper case", level: "ERROR", format: "JSON", environment: "Development", wantLevel: slog.LevelError, wantJSON: true, wantSource: true},
		{name: "warning alias", level: "warning", format: "text", environment: "test", wantLevel: slog.LevelWarn},
		{name: "empty defaults", environment: "staging", wantLevel: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig(tt.level, tt.format, "", "", tt.environment)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Level != tt.wantLevel {
				t.Errorf("Expected level %v, got %v", tt.wantLevel, cfg.Level)
			}
			if cfg.JSON != tt.wantJSON {
				t.Errorf("Expected JSON=%v, got %v", tt.wantJSON, cfg.JSON)
			}
			if cfg.AddSource != tt.wantSource {
				t.Errorf("Expected AddSource=%v, got %v", tt.wantSource, cfg.AddSource)
			}
			if cfg.Service != DefaultServiceName || cfg.Version != DefaultVersion {
				t.Errorf("Expected default service and version, got %s %s", cfg.Service, cfg.Version)
			}
		})
	}
}

func TestParseConfig_Rejects(t *testing.T) {
	if _, err := ParseConfig("verbose", "text", "svc", "1.0.0", "dev"); err == nil {
		t.Error("Expected error for unknown level")
	}
	if _, err := ParseConfig("info", "yaml", "svc", "1.0.0", "dev"); err == nil {
		t.Error("Expected error for unknown format")
	}
}
