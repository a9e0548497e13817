// Package logging tests for the JSON logger.
package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// TestLog_jsonShape verifies an entry serializes with all its fields.
func TestLog_jsonShape(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{out: &buf, minLevel: LevelDebug}

	l.Error("something broke", errors.New("boom"), map[string]interface{}{
		"component": "store",
	})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}
	if entry.Level != "ERROR" {
		t.Errorf("Level = %q, want ERROR", entry.Level)
	}
	if entry.Message != "something broke" {
		t.Errorf("Message = %q, want the message", entry.Message)
	}
	if entry.Error != "boom" {
		t.Errorf("Error = %q, want boom", entry.Error)
	}
	if entry.Context["component"] != "store" {
		t.Errorf("Context = %v, want the context map", entry.Context)
	}
	if entry.Timestamp == "" {
		t.Error("Timestamp is empty")
	}
}

// TestLog_minLevelFilters verifies entries below the minimum are dropped.
func TestLog_minLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{out: &buf, minLevel: LevelWarn}

	l.Debug("dropped")
	l.Info("dropped too")
	l.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("output = %q, contains filtered entries", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("output = %q, missing the warn entry", out)
	}
}

// TestMergeContext verifies later maps win on key collisions.
func TestMergeContext(t *testing.T) {
	if got := mergeContext(); got != nil {
		t.Errorf("mergeContext() = %v, want nil", got)
	}

	merged := mergeContext(
		map[string]interface{}{"a": 1, "b": 1},
		map[string]interface{}{"b": 2},
	)
	if merged["a"] != 1 || merged["b"] != 2 {
		t.Errorf("mergeContext() = %v, want later values to win", merged)
	}
}
