package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Debug("debug message", nil)
	l.Info("info message", nil)
	l.Warn("warn message", nil)
	l.Error("error message", nil, nil)

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Error("debug message should be filtered at WARN level")
	}
	if strings.Contains(output, "info message") {
		t.Error("info message should be filtered at WARN level")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("warn message should be logged at WARN level")
	}
	if !strings.Contains(output, "error message") {
		t.Error("error message should be logged at WARN level")
	}
}

func TestLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo, &buf)

	l.Info("teammatch imported", Fields{"league_key": "1BL-2017", "matches": 7})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry.Level != "INFO" {
		t.Errorf("expected level INFO, got %s", entry.Level)
	}
	if entry.Message != "teammatch imported" {
		t.Errorf("unexpected message: %s", entry.Message)
	}
	if entry.Fields["league_key"] != "1BL-2017" {
		t.Errorf("expected league_key field, got %v", entry.Fields)
	}
	if entry.Timestamp == "" {
		t.Error("expected timestamp to be set")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"DEBUG", LevelDebug},
		{"INFO", LevelInfo},
		{"WARN", LevelWarn},
		{"ERROR", LevelError},
		{"verbose", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestCounters(t *testing.T) {
	c := NewCounters()
	c.Incr("imports.ok")
	c.Incr("imports.ok")
	c.Incr("imports.failed")

	snapshot := c.Snapshot()
	if snapshot["imports.ok"] != 2 {
		t.Errorf("expected imports.ok == 2, got %d", snapshot["imports.ok"])
	}
	if snapshot["imports.failed"] != 1 {
		t.Errorf("expected imports.failed == 1, got %d", snapshot["imports.failed"])
	}

	// Snapshot must be a copy, not a live view.
	snapshot["imports.ok"] = 99
	if c.Snapshot()["imports.ok"] != 2 {
		t.Error("Snapshot should return a copy")
	}
}
