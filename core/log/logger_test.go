// File: logger_test.go
// Title: Logger Tests
// Description: Unit tests for the structured logger, levels, formatters
//              and performance timers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Level
		wantErr bool
	}{
		{"Trace", "trace", LevelTrace, false},
		{"Debug short", "dbg", LevelDebug, false},
		{"Info with spaces", "  info  ", LevelInfo, false},
		{"Warning long form", "warning", LevelWarn, false},
		{"Error uppercase", "ERROR", LevelError, false},
		{"Fatal", "fatal", LevelFatal, false},
		{"Invalid", "verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelShouldLog(t *testing.T) {
	if LevelDebug.ShouldLog(LevelInfo) {
		t.Error("debug should not log at info minimum")
	}
	if !LevelError.ShouldLog(LevelInfo) {
		t.Error("error should log at info minimum")
	}
	if !LevelInfo.ShouldLog(LevelInfo) {
		t.Error("info should log at info minimum")
	}
}

func TestJSONFormatter(t *testing.T) {
	entry := NewEntry(LevelInfo, "statement evaluated")
	entry.Logger = "parley"
	entry.StatementID = "abc-123"
	entry.Fields["candidates"] = 4
	entry.Duration = 5 * time.Millisecond

	formatter := NewJSONFormatter()
	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded["message"] != "statement evaluated" {
		t.Errorf("message = %v", decoded["message"])
	}
	if decoded["level"] != "info" {
		t.Errorf("level = %v", decoded["level"])
	}
	if decoded["logger"] != "parley" {
		t.Errorf("logger = %v", decoded["logger"])
	}
	if decoded["statement_id"] != "abc-123" {
		t.Errorf("statement_id = %v", decoded["statement_id"])
	}
	if decoded["candidates"] != float64(4) {
		t.Errorf("candidates = %v", decoded["candidates"])
	}
	if decoded["duration_ms"] != float64(5) {
		t.Errorf("duration_ms = %v", decoded["duration_ms"])
	}
}

func TestTextFormatter(t *testing.T) {
	entry := NewEntry(LevelWarn, "no binding succeeded")
	entry.Error = errors.New("unknown method")

	formatter := NewTextFormatter()
	formatter.DisableTimestamp = true

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}

	line := string(data)
	if !strings.Contains(line, "[WRN]") {
		t.Errorf("missing level marker in %q", line)
	}
	if !strings.Contains(line, "no binding succeeded") {
		t.Errorf("missing message in %q", line)
	}
	if !strings.Contains(line, `error="unknown method"`) {
		t.Errorf("missing error in %q", line)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelWarn,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Debug("hidden")
	logger.Info("also hidden")
	logger.Warn("visible")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("filtered messages appeared in output: %q", output)
	}
	if !strings.Contains(output, "visible") {
		t.Errorf("warn message missing from output: %q", output)
	}
}

func TestLoggerWithFieldIsImmutable(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithConfig(Config{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
	})

	derived := base.WithField("statement", "list notes")
	base.Info("from base")

	if strings.Contains(buf.String(), "list notes") {
		t.Errorf("base logger inherited derived field: %q", buf.String())
	}

	buf.Reset()
	derived.Info("from derived")
	if !strings.Contains(buf.String(), "list notes") {
		t.Errorf("derived logger lost its field: %q", buf.String())
	}
}

func TestLoggerWithStatementID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
	}).WithStatementID("stmt-42")

	logger.Debug("binding selected")

	if !strings.Contains(buf.String(), "stmt-42") {
		t.Errorf("statement ID missing from output: %q", buf.String())
	}
}

func TestTimerStop(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
	})

	timer := logger.StartTimer("evaluate")
	elapsed := timer.Stop()

	if elapsed < 0 {
		t.Errorf("elapsed time negative: %v", elapsed)
	}
	if !strings.Contains(buf.String(), "evaluate completed") {
		t.Errorf("completion message missing: %q", buf.String())
	}

	// A second Stop must be a no-op.
	buf.Reset()
	if d := timer.Stop(); d != 0 {
		t.Errorf("second Stop returned %v, want 0", d)
	}
	if buf.Len() != 0 {
		t.Errorf("second Stop logged again: %q", buf.String())
	}
}

func TestTimerStopWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
	})

	timer := logger.StartTimer("evaluate")
	timer.StopWithError(errors.New("no interpretation succeeded"))

	output := buf.String()
	if !strings.Contains(output, "evaluate failed") {
		t.Errorf("failure message missing: %q", output)
	}
	if !strings.Contains(output, "no interpretation succeeded") {
		t.Errorf("error missing: %q", output)
	}
}

func TestFieldsMerge(t *testing.T) {
	a := Fields{"x": 1, "y": 2}
	b := Fields{"y": 3, "z": 4}

	merged := a.Merge(b)
	if merged["x"] != 1 || merged["y"] != 3 || merged["z"] != 4 {
		t.Errorf("Merge produced %v", merged)
	}
	if a["y"] != 2 {
		t.Errorf("Merge mutated receiver: %v", a)
	}
}
